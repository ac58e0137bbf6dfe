package textio

import (
	"fmt"
	"io"
	"os"
)

// CategoryPendingDeprecation marks hints about behaviour that still works
// today but is slated to change; weaker than a deprecation proper.
const CategoryPendingDeprecation = "pending-deprecation"

// unspecifiedEncodingMessage is the fixed text emitted when a caller relies
// on the implicit locale default. The wording names the future default so
// readers of a log can tell what will change underneath them.
const unspecifiedEncodingMessage = "'encoding' not specified; the default will change to 'utf-8' in a future release"

// Hint is a non-fatal diagnostic produced by the encoding policy. Delivery,
// filtering, and deduplication are the sink's business, not textio's.
type Hint struct {
	// Category classifies the hint; currently always
	// CategoryPendingDeprecation.
	Category string
	// Message is the fixed human-readable text of the hint.
	Message string
	// Caller names the function the hint is attributed to, after CallerSkip
	// adjustment. "unknown" when the stack could not be resolved.
	Caller string
}

// HintFunc receives hints. Implementations must be safe for concurrent use
// when the owning Runtime is shared.
type HintFunc func(Hint)

// StderrHints writes one line per hint to standard error. It is the sink of
// DefaultRuntime.
func StderrHints(h Hint) {
	writeHint(os.Stderr, h)
}

// DiscardHints drops every hint. Useful as an explicit "off" sink.
func DiscardHints(Hint) {}

func writeHint(w io.Writer, h Hint) {
	if h.Caller != "" && h.Caller != unknownFunction {
		fmt.Fprintf(w, "textio: %s: %s [%s]\n", h.Category, h.Message, h.Caller)
		return
	}
	fmt.Fprintf(w, "textio: %s: %s\n", h.Category, h.Message)
}
