package textio_test

import (
	"bytes"
	"errors"
	"testing"

	"pkt.systems/textio"
)

func TestWriterEncodesExplicitEncoding(t *testing.T) {
	hints := &textio.ObservedHints{}
	rt := fixedRuntime(true, "utf-8", hints)

	var buf bytes.Buffer
	w, err := textio.NewWriterWithOptions(&buf, textio.WriterOptions{
		Encoding: textio.Named("koi8-r"),
		Runtime:  rt,
	})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if _, err := w.WriteString("ав"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xC1, 0xD7}) {
		t.Fatalf("unexpected encoded bytes % X", got)
	}
	if hints.Count() != 0 {
		t.Fatalf("explicit encoding must never hint, got %d", hints.Count())
	}
}

func TestWriterFlushPushesBufferedText(t *testing.T) {
	rt := fixedRuntime(false, "utf-8", nil)

	var buf bytes.Buffer
	w, err := textio.NewWriterWithOptions(&buf, textio.WriterOptions{Encoding: textio.Locale, Runtime: rt})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if _, err := w.WriteString("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("text should stay buffered before Flush, got %d bytes", buf.Len())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if buf.String() != "hello" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriterOmittedMatchesSentinelSelection(t *testing.T) {
	hints := &textio.ObservedHints{}
	rt := fixedRuntime(true, "koi8-r", hints)

	var a, b bytes.Buffer

	viaSentinel, err := textio.NewWriterWithOptions(&a, textio.WriterOptions{Encoding: textio.Locale, Runtime: rt})
	if err != nil {
		t.Fatalf("sentinel construct: %v", err)
	}
	if hints.Count() != 0 {
		t.Fatalf("sentinel construction hinted")
	}

	viaOmission, err := textio.NewWriterWithOptions(&b, textio.WriterOptions{Runtime: rt})
	if err != nil {
		t.Fatalf("omitted construct: %v", err)
	}
	if hints.Count() != 1 {
		t.Fatalf("omitted construction should hint exactly once, got %d", hints.Count())
	}
	if viaSentinel.EncodingName() != viaOmission.EncodingName() {
		t.Fatalf("selection differs: %q vs %q", viaSentinel.EncodingName(), viaOmission.EncodingName())
	}

	for _, w := range []*textio.Writer{viaSentinel, viaOmission} {
		if _, err := w.WriteString("а"); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("encoded output differs: % X vs % X", a.Bytes(), b.Bytes())
	}
}

func TestWriterUnsupportedRuneSurfacesError(t *testing.T) {
	rt := fixedRuntime(false, "utf-8", nil)

	var buf bytes.Buffer
	w, err := textio.NewWriterWithOptions(&buf, textio.WriterOptions{
		Encoding: textio.Named("koi8-r"),
		Runtime:  rt,
	})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	w.WriteString("→") // not representable in koi8-r
	if err := w.Close(); err == nil {
		t.Fatalf("expected an encoding error for an unsupported rune")
	}
}

func TestWriterNoEncodingDeterminable(t *testing.T) {
	rt := fixedRuntime(false, "", nil)

	var buf bytes.Buffer
	_, err := textio.NewWriterWithOptions(&buf, textio.WriterOptions{Encoding: textio.Locale, Runtime: rt})
	if !errors.Is(err, textio.ErrNoEncoding) {
		t.Fatalf("expected ErrNoEncoding, got %v", err)
	}
}
