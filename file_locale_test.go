//go:build !windows

package textio_test

import (
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/textio"
)

// These tests steer the default runtime's locale query through the POSIX
// environment, which only exists off Windows.

func TestReadFileStringUsesLocaleEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.ISO8859-1")

	path := filepath.Join(t.TempDir(), "latin.txt")
	if err := os.WriteFile(path, []byte{0xE9}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := textio.ReadFileString(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "é" {
		t.Fatalf("unexpected decode: %q", got)
	}
}

func TestWriteFileStringRoundTrip(t *testing.T) {
	t.Setenv("LC_ALL", "C.UTF-8")

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := textio.WriteFileString(path, "héllo\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := textio.ReadFileString(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "héllo\n" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}
