//go:build windows

package device

import (
	"golang.org/x/sys/windows"

	"pkt.systems/textio/internal/locale"
)

// Encoding reports the console code page for fd. Console input and output
// keep separate code pages: descriptor 0 answers the input page, 1 and 2
// (and any other console handle) the output page. Non-console handles
// report false.
func Encoding(fd uintptr) (string, bool) {
	handle := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return "", false
	}
	var (
		cp  uint32
		err error
	)
	if fd == 0 {
		cp, err = windows.GetConsoleCP()
	} else {
		cp, err = windows.GetConsoleOutputCP()
	}
	if err != nil || cp == 0 {
		return "", false
	}
	return locale.CodePageName(cp)
}
