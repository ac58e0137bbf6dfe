package textio

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"pkt.systems/textio/internal/device"
	"pkt.systems/textio/internal/locale"
)

// Runtime bundles the process-wide collaborators of the encoding policy:
// the dev-mode switch, the device and locale encoding queries, and the hint
// sink. The zero value is usable; nil fields fall back to the real platform
// queries and the stderr sink. Fields are construction-time configuration
// and must not be mutated once the Runtime is shared.
type Runtime struct {
	// DevMode enables the omission hint emitted when a caller relies on the
	// implicit locale default. Production processes normally leave it off.
	DevMode bool

	// DeviceEncoding answers the encoding reported by the device behind an
	// open file descriptor, or false when the device reports none. Nil uses
	// the platform query (terminals answer, pipes and files do not).
	DeviceEncoding func(fd uintptr) (string, bool)

	// LocaleEncoding answers the environment's preferred encoding. Nil uses
	// the platform query, which never mutates process locale state.
	LocaleEncoding func() (string, bool)

	// Hints receives policy diagnostics. Nil delivers to StderrHints.
	Hints HintFunc
}

var (
	defaultRuntimeOnce sync.Once
	defaultRuntime     *Runtime
)

// DefaultRuntime returns the process runtime, built once from the
// environment on first use (see RuntimeFromEnv). Streams and resolvers with
// a nil Runtime use it.
func DefaultRuntime() *Runtime {
	defaultRuntimeOnce.Do(func() {
		defaultRuntime = RuntimeFromEnv()
	})
	return defaultRuntime
}

func (rt *Runtime) orDefault() *Runtime {
	if rt == nil {
		return DefaultRuntime()
	}
	return rt
}

// LookupDeviceEncoding reports the device encoding for fd through the
// runtime's query, falling back to the platform query when none is
// injected.
func (rt *Runtime) LookupDeviceEncoding(fd uintptr) (string, bool) {
	rt = rt.orDefault()
	if rt.DeviceEncoding != nil {
		return rt.DeviceEncoding(fd)
	}
	return device.Encoding(fd)
}

// LookupLocaleEncoding reports the preferred locale encoding through the
// runtime's query, falling back to the platform query when none is
// injected.
func (rt *Runtime) LookupLocaleEncoding() (string, bool) {
	rt = rt.orDefault()
	if rt.LocaleEncoding != nil {
		return rt.LocaleEncoding()
	}
	return locale.PreferredEncoding()
}

func (rt *Runtime) hint(h Hint) {
	fn := rt.Hints
	if fn == nil {
		fn = StderrHints
	}
	fn(h)
}

// RuntimeFromEnvOption customizes RuntimeFromEnv behavior.
type RuntimeFromEnvOption func(*runtimeFromEnvConfig)

type runtimeFromEnvConfig struct {
	prefix  string
	runtime Runtime
}

// WithEnvPrefix overrides the environment variable prefix used by
// RuntimeFromEnv.
func WithEnvPrefix(prefix string) RuntimeFromEnvOption {
	return func(cfg *runtimeFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvRuntime seeds RuntimeFromEnv with explicit Runtime values.
// Environment values override seeded ones.
func WithEnvRuntime(rt Runtime) RuntimeFromEnvOption {
	return func(cfg *runtimeFromEnvConfig) {
		cfg.runtime = rt
	}
}

// RuntimeFromEnv builds a Runtime from environment variables, allowing an
// optional seed. Recognised variables are {prefix}DEVMODE (boolean),
// {prefix}LOCALE (overrides the locale query with a fixed encoding name),
// and {prefix}HINTS (stderr, or off/discard/none to drop hints). The
// default prefix is "TEXTIO_".
func RuntimeFromEnv(opts ...RuntimeFromEnvOption) *Runtime {
	cfg := runtimeFromEnvConfig{prefix: "TEXTIO_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.runtime
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "DEVMODE"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.DevMode = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "LOCALE"); ok {
		if name := strings.TrimSpace(value); name != "" {
			resolved.LocaleEncoding = func() (string, bool) {
				return name, true
			}
		}
	}
	if value, ok := lookupEnv(prefix, "HINTS"); ok {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "stderr":
			resolved.Hints = StderrHints
		case "off", "discard", "none":
			resolved.Hints = DiscardHints
		}
	}
	return &resolved
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}
