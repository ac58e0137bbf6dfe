package textio

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/text/transform"
)

// defaultBufferSize is the buffered size of Reader and Writer when the
// options leave BufferSize zero.
const defaultBufferSize = 4096

// ReaderOptions controls text-stream construction.
type ReaderOptions struct {
	// Encoding selects the codec. The zero value means "not specified" and
	// resolves like Locale, plus the dev-mode omission hint; Locale selects
	// the device/locale path silently; Named names a registry codec.
	Encoding Encoding

	// Runtime supplies dev mode, queries, and the hint sink. Nil uses
	// DefaultRuntime.
	Runtime *Runtime

	// CallerSkip shifts hint attribution up the stack, one per wrapping
	// helper, so an omission hint names the original call site.
	CallerSkip int

	// BufferSize sets the decoded-side buffer size. Zero means the default.
	BufferSize int

	// CloseUnderlying transfers ownership of the stream: Reader.Close then
	// closes it when it implements io.Closer.
	CloseUnderlying bool
}

// Reader is a buffered text reader that decodes the bytes of an underlying
// stream into UTF-8 using the codec chosen at construction time.
type Reader struct {
	br      *bufio.Reader
	closer  io.Closer
	encName string
}

// NewReader wraps r selecting the encoding as if none was specified: the
// locale path applies and dev mode reports the omission against NewReader's
// caller. Use NewReaderWithOptions to choose explicitly.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderWithOptions(r, ReaderOptions{CallerSkip: 1})
}

// NewReaderWithOptions wraps r according to opts. Construction fails when
// an explicit codec name is unknown, or with ErrNoEncoding when the locale
// path cannot determine an encoding at all.
func NewReaderWithOptions(r io.Reader, opts ReaderOptions) (*Reader, error) {
	return newReader(r, opts)
}

func newReader(r io.Reader, opts ReaderOptions) (*Reader, error) {
	if r == nil {
		return nil, errors.New("textio: nil reader")
	}
	rt := opts.Runtime.orDefault()
	enc := rt.resolve(opts.Encoding, opts.CallerSkip, resolveCallDepth)
	name, codec, err := rt.codecFor(enc, r)
	if err != nil {
		return nil, err
	}
	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	decoded := transform.NewReader(r, codec.NewDecoder())
	tr := &Reader{
		br:      bufio.NewReaderSize(decoded, size),
		encName: name,
	}
	if opts.CloseUnderlying {
		if c, ok := r.(io.Closer); ok {
			tr.closer = c
		}
	}
	return tr, nil
}

// EncodingName returns the canonical name of the codec the Reader decodes
// with, after device/locale resolution.
func (r *Reader) EncodingName() string { return r.encName }

// Read implements io.Reader over the decoded text.
func (r *Reader) Read(p []byte) (int, error) { return r.br.Read(p) }

// ReadRune reads a single decoded rune.
func (r *Reader) ReadRune() (rune, int, error) { return r.br.ReadRune() }

// ReadString reads decoded text until the first occurrence of delim,
// returning a string including the delimiter, with bufio.Reader semantics.
func (r *Reader) ReadString(delim byte) (string, error) { return r.br.ReadString(delim) }

// Close releases the underlying stream when the Reader owns it, which is
// the case for the file-opening helpers. Readers over caller-supplied
// streams do not own them and Close is then a no-op.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
