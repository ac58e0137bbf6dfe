// Package subproc runs child processes whose pipe text is decoded through
// the textio policy. Pipe streams always pass the Locale sentinel
// explicitly, never the unspecified zero value: what the default pipe
// encoding ought to be is a policy question that has not been settled, so
// the dev-mode omission hint must not fire for subprocess plumbing.
package subproc

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"pkt.systems/textio"
)

// Cmd wraps exec.Cmd with text-decoding pipe accessors. All exec.Cmd
// methods and fields remain available through embedding.
type Cmd struct {
	*exec.Cmd

	rt *textio.Runtime
}

// Command returns a Cmd for the named program with the given arguments.
func Command(name string, arg ...string) *Cmd {
	return &Cmd{Cmd: exec.Command(name, arg...)}
}

// CommandContext is Command with a context governing the process lifetime.
func CommandContext(ctx context.Context, name string, arg ...string) *Cmd {
	return &Cmd{Cmd: exec.CommandContext(ctx, name, arg...)}
}

// WithRuntime overrides the textio runtime used for the pipe streams.
// Mainly for tests that inject locale answers and hint sinks.
func (c *Cmd) WithRuntime(rt *textio.Runtime) *Cmd {
	c.rt = rt
	return c
}

func (c *Cmd) pipeOptions() textio.ReaderOptions {
	return textio.ReaderOptions{Encoding: textio.Locale, Runtime: c.rt}
}

// StdoutText returns a text reader over the process's standard output,
// decoded with the locale policy. Must be called before Start.
func (c *Cmd) StdoutText() (*textio.Reader, error) {
	pipe, err := c.Cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	return textio.NewReaderWithOptions(pipe, c.pipeOptions())
}

// StderrText returns a text reader over the process's standard error,
// decoded with the locale policy. Must be called before Start.
func (c *Cmd) StderrText() (*textio.Reader, error) {
	pipe, err := c.Cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	return textio.NewReaderWithOptions(pipe, c.pipeOptions())
}

// StdinText returns a text writer feeding the process's standard input,
// encoded with the locale policy. Must be called before Start; close it to
// signal end of input.
func (c *Cmd) StdinText() (*textio.Writer, error) {
	pipe, err := c.Cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	w, err := textio.NewWriterWithOptions(pipe, textio.WriterOptions{
		Encoding:        textio.Locale,
		Runtime:         c.rt,
		CloseUnderlying: true,
	})
	if err != nil {
		pipe.Close()
		return nil, err
	}
	return w, nil
}

// OutputString runs the command and returns its standard output decoded
// with the locale policy.
func (c *Cmd) OutputString() (string, error) {
	raw, err := c.Cmd.Output()
	if err != nil {
		return "", err
	}
	return c.decode(raw)
}

// CombinedOutputString runs the command and returns its combined standard
// output and standard error decoded with the locale policy.
func (c *Cmd) CombinedOutputString() (string, error) {
	raw, err := c.Cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	return c.decode(raw)
}

func (c *Cmd) decode(raw []byte) (string, error) {
	r, err := textio.NewReaderWithOptions(bytes.NewReader(raw), c.pipeOptions())
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
