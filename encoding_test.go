package textio_test

import (
	"testing"

	"pkt.systems/textio"
)

func TestEncodingZeroValueIsUnspecified(t *testing.T) {
	var enc textio.Encoding
	if !enc.IsUnspecified() {
		t.Fatalf("zero Encoding should be unspecified")
	}
	if enc.IsLocale() {
		t.Fatalf("zero Encoding should not be the locale sentinel")
	}
	if name, ok := enc.Name(); ok {
		t.Fatalf("zero Encoding should carry no name, got %q", name)
	}
	if got := enc.String(); got != "unspecified" {
		t.Fatalf("unexpected String: %q", got)
	}
}

func TestNamedTrimsAndRejectsEmpty(t *testing.T) {
	enc := textio.Named("  utf-8  ")
	name, ok := enc.Name()
	if !ok || name != "utf-8" {
		t.Fatalf("expected trimmed name utf-8, got %q ok=%v", name, ok)
	}
	if !textio.Named("").IsUnspecified() {
		t.Fatalf("Named(\"\") should be the unspecified zero value")
	}
	if !textio.Named("   ").IsUnspecified() {
		t.Fatalf("Named of blanks should be the unspecified zero value")
	}
}

func TestParseEncodingSelectors(t *testing.T) {
	cases := []struct {
		in          string
		locale      bool
		unspecified bool
		name        string
	}{
		{in: "", unspecified: true},
		{in: "   ", unspecified: true},
		{in: "locale", locale: true},
		{in: "LOCALE", locale: true},
		{in: " Locale ", locale: true},
		{in: "utf-8", name: "utf-8"},
		{in: "koi8-r", name: "koi8-r"},
	}
	for _, tc := range cases {
		enc := textio.ParseEncoding(tc.in)
		if enc.IsUnspecified() != tc.unspecified {
			t.Fatalf("%q: unspecified=%v, want %v", tc.in, enc.IsUnspecified(), tc.unspecified)
		}
		if enc.IsLocale() != tc.locale {
			t.Fatalf("%q: locale=%v, want %v", tc.in, enc.IsLocale(), tc.locale)
		}
		if tc.name != "" {
			name, ok := enc.Name()
			if !ok || name != tc.name {
				t.Fatalf("%q: name=%q ok=%v, want %q", tc.in, name, ok, tc.name)
			}
		}
	}
}

func TestLocaleSentinelStringIsNotNamed(t *testing.T) {
	if got := textio.Locale.String(); got != "locale" {
		t.Fatalf("unexpected sentinel String: %q", got)
	}
	if _, ok := textio.Locale.Name(); ok {
		t.Fatalf("the sentinel must not report a codec name")
	}
}
