package textio

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/text/transform"
)

// WriterOptions controls encoding text-writer construction. The fields
// mirror ReaderOptions.
type WriterOptions struct {
	Encoding   Encoding
	Runtime    *Runtime
	CallerSkip int
	BufferSize int

	// CloseUnderlying transfers ownership of the stream: Writer.Close then
	// closes it when it implements io.Closer.
	CloseUnderlying bool
}

// Writer is a buffered text writer that encodes UTF-8 input into the codec
// chosen at construction time before handing bytes to the underlying
// stream. Close (or at least Flush) must be called to drain buffered text.
type Writer struct {
	bw      *bufio.Writer
	tw      io.WriteCloser
	closer  io.Closer
	encName string
}

// NewWriter wraps w selecting the encoding as if none was specified,
// mirroring NewReader's policy including the dev-mode omission hint.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterWithOptions(w, WriterOptions{CallerSkip: 1})
}

// NewWriterWithOptions wraps w according to opts.
func NewWriterWithOptions(w io.Writer, opts WriterOptions) (*Writer, error) {
	return newWriter(w, opts)
}

func newWriter(w io.Writer, opts WriterOptions) (*Writer, error) {
	if w == nil {
		return nil, errors.New("textio: nil writer")
	}
	rt := opts.Runtime.orDefault()
	enc := rt.resolve(opts.Encoding, opts.CallerSkip, resolveCallDepth)
	name, codec, err := rt.codecFor(enc, w)
	if err != nil {
		return nil, err
	}
	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	encoded := transform.NewWriter(w, codec.NewEncoder())
	tw := &Writer{
		bw:      bufio.NewWriterSize(encoded, size),
		tw:      encoded,
		encName: name,
	}
	if opts.CloseUnderlying {
		if c, ok := w.(io.Closer); ok {
			tw.closer = c
		}
	}
	return tw, nil
}

// EncodingName returns the canonical name of the codec the Writer encodes
// into, after device/locale resolution.
func (w *Writer) EncodingName() string { return w.encName }

// Write implements io.Writer. p must be valid UTF-8; runes the target
// codec cannot represent surface as an error from the encoder.
func (w *Writer) Write(p []byte) (int, error) { return w.bw.Write(p) }

// WriteString writes s through the encoder.
func (w *Writer) WriteString(s string) (int, error) { return w.bw.WriteString(s) }

// WriteRune writes a single rune through the encoder.
func (w *Writer) WriteRune(r rune) (int, error) { return w.bw.WriteRune(r) }

// Flush pushes buffered text through the encoder to the underlying stream.
// Partial trailing runes stay buffered in the encoder until Close.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// Close flushes the buffer, finalises the encoder, and closes the
// underlying stream when the Writer owns it (file-creating helpers).
// Writers over caller-supplied streams leave them open.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	err := w.bw.Flush()
	if cerr := w.tw.Close(); err == nil {
		err = cerr
	}
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
