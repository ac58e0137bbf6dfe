package textio

import (
	"io"
	"os"
)

// OpenFile opens name for reading as text with no encoding specified: the
// locale path applies and a dev-mode hint names OpenFile's caller. The
// returned Reader owns the file; close it when done.
func OpenFile(name string) (*Reader, error) {
	return openFile(name, ReaderOptions{})
}

// OpenFileWithOptions opens name for reading as text with explicit
// options. A CallerSkip in opts counts from the caller of this function.
func OpenFileWithOptions(name string, opts ReaderOptions) (*Reader, error) {
	return openFile(name, opts)
}

// ReadFileString reads the whole of name as text with no encoding
// specified and returns the decoded contents.
func ReadFileString(name string) (string, error) {
	r, err := openFile(name, ReaderOptions{})
	if err != nil {
		return "", err
	}
	defer r.Close()
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// CreateFile creates or truncates name for writing as text with no
// encoding specified. The returned Writer owns the file; Close flushes the
// encoder and closes it.
func CreateFile(name string) (*Writer, error) {
	return createFile(name, WriterOptions{})
}

// CreateFileWithOptions creates or truncates name for writing as text with
// explicit options.
func CreateFileWithOptions(name string, opts WriterOptions) (*Writer, error) {
	return createFile(name, opts)
}

// WriteFileString writes contents to name as text with no encoding
// specified, creating or truncating the file.
func WriteFileString(name, contents string) error {
	w, err := createFile(name, WriterOptions{})
	if err != nil {
		return err
	}
	if _, err := w.WriteString(contents); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// openFile raises CallerSkip by two: one for itself and one for the public
// helper above it, so an omission hint lands on the helper's caller.
func openFile(name string, opts ReaderOptions) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	opts.CallerSkip += 2
	opts.CloseUnderlying = true
	r, err := NewReaderWithOptions(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func createFile(name string, opts WriterOptions) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	opts.CallerSkip += 2
	opts.CloseUnderlying = true
	w, err := NewWriterWithOptions(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}
