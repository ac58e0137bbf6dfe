// Package locale derives the user's preferred character encoding from the
// process environment. It never calls into or mutates global locale state:
// the answer is computed from environment variables on Unix and from the
// active ANSI code page on Windows, so querying it cannot perturb other
// code in the process.
package locale

import "strings"

// EncodingFromLocale extracts the codeset from a locale string such as
// "en_US.UTF-8@euro" and normalises it to a codec registry name. Locale
// names without a codeset answer the platform default; the "C" and "POSIX"
// locales answer ASCII.
func EncodingFromLocale(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", false
	}
	if i := strings.IndexByte(v, '@'); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return NormalizeCodeset(v[i+1:])
	}
	switch strings.ToUpper(v) {
	case "C", "POSIX":
		return "us-ascii", true
	}
	// Locale names without a codeset historically meant a platform table
	// lookup; every current platform defaults that table to UTF-8.
	return "utf-8", true
}

// NormalizeCodeset folds a raw codeset spelling ("UTF-8", "utf8",
// "ISO8859-1") into the registry name textio resolves codecs with.
func NormalizeCodeset(codeset string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(codeset))
	c = strings.ReplaceAll(c, "_", "-")
	if c == "" {
		return "", false
	}
	if alias, ok := codesetAliases[c]; ok {
		return alias, true
	}
	if rest, ok := strings.CutPrefix(c, "iso8859-"); ok {
		return "iso-8859-" + rest, true
	}
	if rest, ok := strings.CutPrefix(c, "8859-"); ok {
		return "iso-8859-" + rest, true
	}
	return c, true
}

var codesetAliases = map[string]string{
	"utf8":           "utf-8",
	"utf-8":          "utf-8",
	"ascii":          "us-ascii",
	"us-ascii":       "us-ascii",
	"646":            "us-ascii",
	"ansi-x3.4-1968": "us-ascii",
	"eucjp":          "euc-jp",
	"euc-jp":         "euc-jp",
	"euckr":          "euc-kr",
	"euc-kr":         "euc-kr",
	"sjis":           "shift_jis",
	"shift-jis":      "shift_jis",
	"shiftjis":       "shift_jis",
	"big5":           "big5",
	"gb2312":         "gbk",
	"gbk":            "gbk",
	"koi8-r":         "koi8-r",
	"koi8r":          "koi8-r",
	"latin1":         "iso-8859-1",
	"latin-1":        "iso-8859-1",
}
