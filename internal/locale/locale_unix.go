//go:build !windows

package locale

import (
	"os"
	"strings"
)

// localeEnvKeys is the POSIX precedence order for the category that governs
// character classification and therefore the codeset.
var localeEnvKeys = [...]string{"LC_ALL", "LC_CTYPE", "LANG"}

// PreferredEncoding reports the encoding of the user's preferred locale by
// inspecting LC_ALL, LC_CTYPE, and LANG in that order. Empty values are
// skipped as an unset variable would be. A fully unset environment answers
// utf-8, the default of every current platform.
func PreferredEncoding() (string, bool) {
	for _, key := range localeEnvKeys {
		value, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		return EncodingFromLocale(value)
	}
	return "utf-8", true
}
