//go:build windows

package locale

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// PreferredEncoding reports the process's active ANSI code page mapped to a
// codec registry name.
func PreferredEncoding() (string, bool) {
	return CodePageName(windows.GetACP())
}

// CodePageName maps a Windows code page number to a codec registry name.
// Code pages without a registry equivalent report false.
func CodePageName(cp uint32) (string, bool) {
	switch cp {
	case 65001:
		return "utf-8", true
	case 20127:
		return "us-ascii", true
	case 874:
		return "windows-874", true
	case 932:
		return "shift_jis", true
	case 936:
		return "gbk", true
	case 949:
		return "euc-kr", true
	case 950:
		return "big5", true
	case 54936:
		return "gb18030", true
	case 20866:
		return "koi8-r", true
	case 21866:
		return "koi8-u", true
	}
	if cp >= 1250 && cp <= 1258 {
		return fmt.Sprintf("windows-%d", cp), true
	}
	if cp >= 28591 && cp <= 28606 {
		return fmt.Sprintf("iso-8859-%d", cp-28590), true
	}
	return "", false
}
