package textio

import "strings"

type encodingKind uint8

const (
	encodingUnspecified encodingKind = iota
	encodingLocale
	encodingNamed
)

// Encoding describes how a text stream's codec should be chosen. The zero
// value means the caller did not specify an encoding at all, which is
// distinct from the Locale sentinel: both select the same codec, but only
// the zero value is subject to the dev-mode omission hint.
type Encoding struct {
	kind encodingKind
	name string
}

// Locale is the sentinel that defers codec selection to the stream's device
// and the environment's preferred locale encoding. It is deliberately not a
// codec name: its resolution depends on the file descriptor and can change
// between processes, which a static registry alias cannot express.
var Locale = Encoding{kind: encodingLocale}

// Named returns an Encoding carrying an explicit codec name. The name is
// passed to the codec registry verbatim apart from whitespace trimming;
// Named("") is the zero (unspecified) Encoding.
func Named(name string) Encoding {
	name = strings.TrimSpace(name)
	if name == "" {
		return Encoding{}
	}
	return Encoding{kind: encodingNamed, name: name}
}

// ParseEncoding converts a textual encoding selector into an Encoding. The
// empty string parses to the unspecified zero value and "locale" (case
// insensitive) parses to the Locale sentinel, so configuration surfaces such
// as flags and environment variables cannot accidentally produce a Named
// value that shadows the sentinel.
func ParseEncoding(value string) Encoding {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Encoding{}
	}
	if strings.EqualFold(trimmed, localeSentinelName) {
		return Locale
	}
	return Encoding{kind: encodingNamed, name: trimmed}
}

// IsUnspecified reports whether e is the zero value, meaning no encoding was
// supplied at all.
func (e Encoding) IsUnspecified() bool { return e.kind == encodingUnspecified }

// IsLocale reports whether e is the Locale sentinel.
func (e Encoding) IsLocale() bool { return e.kind == encodingLocale }

// Name returns the explicit codec name and true when e is a Named encoding.
func (e Encoding) Name() (string, bool) {
	if e.kind != encodingNamed {
		return "", false
	}
	return e.name, true
}

// String renders e for human consumption. It is not a codec name: use
// Reader.EncodingName or Writer.EncodingName for the resolved codec of a
// constructed stream.
func (e Encoding) String() string {
	switch e.kind {
	case encodingLocale:
		return localeSentinelName
	case encodingNamed:
		return e.name
	default:
		return "unspecified"
	}
}
