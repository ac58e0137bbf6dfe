//go:build !windows

package device

import (
	"golang.org/x/term"

	"pkt.systems/textio/internal/locale"
)

// Encoding reports the encoding of the device behind fd. A terminal fd
// answers with the locale's preferred encoding, the same answer the
// terminal session was configured with; anything else reports false.
func Encoding(fd uintptr) (string, bool) {
	if !term.IsTerminal(int(fd)) {
		return "", false
	}
	return locale.PreferredEncoding()
}
