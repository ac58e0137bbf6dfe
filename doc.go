// Package textio selects the character encoding of text streams through a
// single, observable policy point. It wraps byte streams in buffered
// decoding readers and encoding writers whose codec is chosen from an
// explicit name, the device behind the stream's file descriptor, or the
// environment's preferred locale encoding.
//
// # Design overview
//
//   - Tri-state encoding: the Encoding value distinguishes "caller said
//     nothing" (the zero value), the Locale sentinel, and an explicit codec
//     name. The three branches are handled exhaustively in the resolver and
//     the stream constructors, so the "caller said nothing" path can never
//     silently merge with the sentinel path.
//   - Single diagnostic point: every API that defaults an omitted encoding
//     funnels through Runtime.ResolveEncoding, which emits at most one
//     pending-deprecation hint per call when dev mode is on. Layered helpers
//     bump CallerSkip so the hint names the original call site rather than
//     internal plumbing.
//   - Injectable runtime: dev mode, the device-encoding query, the locale
//     query, and the hint sink live on a Runtime value. Tests construct
//     their own Runtime; production code uses DefaultRuntime, configured
//     once from the environment.
//   - Codec registry: names resolve through golang.org/x/text's htmlindex,
//     after a small normalisation pass. The literal name "locale" is never a
//     codec; the sentinel exists only as the tagged Encoding variant because
//     its meaning depends on the stream and the environment at construction
//     time.
//
// # Usage
//
//	f, _ := os.Open("notes.txt")
//	r, err := textio.NewReaderWithOptions(f, textio.ReaderOptions{
//		Encoding: textio.Named("iso-8859-1"),
//	})
//
// Omitting the encoding entirely selects the locale path and, when
// TEXTIO_DEVMODE is set, reports the omission:
//
//	r, err := textio.NewReader(f)
//
// Passing the sentinel opts in to locale selection without a hint:
//
//	r, err := textio.NewReaderWithOptions(f, textio.ReaderOptions{Encoding: textio.Locale})
//
// The subproc subpackage wraps os/exec pipes in text streams and always
// passes the sentinel, so subprocess plumbing never trips the dev-mode
// hint. The cmd/textenc CLI exposes the same policy for inspection and
// transcoding from a shell.
package textio
