package textio_test

import "pkt.systems/textio"

// fixedRuntime builds a fully injected Runtime: no device answer, a fixed
// locale answer (or none when localeName is empty), and hints recorded or
// discarded. Keeps tests away from the process environment.
func fixedRuntime(devMode bool, localeName string, hints *textio.ObservedHints) *textio.Runtime {
	rt := &textio.Runtime{
		DevMode: devMode,
		DeviceEncoding: func(uintptr) (string, bool) {
			return "", false
		},
		LocaleEncoding: func() (string, bool) {
			if localeName == "" {
				return "", false
			}
			return localeName, true
		},
	}
	if hints != nil {
		rt.Hints = hints.Record
	} else {
		rt.Hints = textio.DiscardHints
	}
	return rt
}
