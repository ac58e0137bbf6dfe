package textio

// resolveCallDepth is the number of stack frames between the function that
// resolves the caller name and the caller of the public entry point: the
// name-resolution frame, resolve itself, the internal constructor or method
// frame, and the public entry frame. CallerSkip counts further wrapping
// frames on top of this.
const resolveCallDepth = 4

// ResolveEncoding applies the omission policy to enc: a Named or Locale
// value is returned unchanged with no side effect, while the unspecified
// zero value yields Locale and, when the runtime is in dev mode, emits
// exactly one pending-deprecation hint.
//
// skip attributes the hint through wrapping layers. With skip 0 the hint
// names the caller of the function that invoked ResolveEncoding; each
// intermediate helper that defaults the encoding on behalf of its own
// caller adds one. The returned value never depends on dev mode, so
// repeated calls with the same arguments resolve identically.
func (rt *Runtime) ResolveEncoding(enc Encoding, skip int) Encoding {
	return rt.orDefault().resolve(enc, skip, resolveCallDepth)
}

// ResolveEncoding is the package-level form of Runtime.ResolveEncoding,
// using DefaultRuntime.
func ResolveEncoding(enc Encoding, skip int) Encoding {
	return DefaultRuntime().resolve(enc, skip, resolveCallDepth)
}

// resolve performs the actual policy. depth positions the attribution frame
// relative to this call and must count every frame between
// functionNameFromCaller and the public entry point's caller; skip shifts
// it further up for layered adapters. The caller name is computed here, not
// in a helper, so the frame arithmetic stays in one place.
func (rt *Runtime) resolve(enc Encoding, skip, depth int) Encoding {
	if !enc.IsUnspecified() {
		return enc
	}
	if rt.DevMode {
		if skip < 0 {
			skip = 0
		}
		rt.hint(Hint{
			Category: CategoryPendingDeprecation,
			Message:  unspecifiedEncodingMessage,
			Caller:   functionNameFromCaller(skip + depth),
		})
	}
	return Locale
}
