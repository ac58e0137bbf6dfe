package textio

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// localeSentinelName is the textual spelling of the Locale sentinel. It is
// rejected by the codec registry on purpose: the sentinel's resolution
// depends on the stream's device and the environment, which a static
// registry alias cannot express.
const localeSentinelName = "locale"

// ErrNoEncoding is returned from stream construction when the sentinel (or
// an omitted encoding) cannot be resolved because neither the device nor
// the locale query produced an encoding.
var ErrNoEncoding = errors.New("textio: no encoding determinable")

// lookupCodec resolves name through the registry and returns the canonical
// name alongside the codec.
func lookupCodec(name string) (string, encoding.Encoding, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil, errors.New("textio: empty encoding name")
	}
	if strings.EqualFold(trimmed, localeSentinelName) {
		return "", nil, fmt.Errorf("textio: %q is a selection sentinel, not a codec name", trimmed)
	}
	codec, err := htmlindex.Get(trimmed)
	if err != nil {
		return "", nil, fmt.Errorf("textio: unknown encoding %q: %w", trimmed, err)
	}
	canonical, err := htmlindex.Name(codec)
	if err != nil {
		canonical = strings.ToLower(trimmed)
	}
	return canonical, codec, nil
}

type fdStream interface {
	Fd() uintptr
}

// codecFor picks the concrete codec for an already-resolved Encoding.
// Named encodings go straight to the registry. The Locale sentinel asks the
// device behind the stream's file descriptor first (when the stream exposes
// one and the device answers), then the locale query.
func (rt *Runtime) codecFor(enc Encoding, stream any) (string, encoding.Encoding, error) {
	if name, ok := enc.Name(); ok {
		return lookupCodec(name)
	}
	if f, ok := stream.(fdStream); ok {
		if name, ok := rt.LookupDeviceEncoding(f.Fd()); ok {
			return lookupCodec(name)
		}
	}
	if name, ok := rt.LookupLocaleEncoding(); ok {
		return lookupCodec(name)
	}
	return "", nil, ErrNoEncoding
}
