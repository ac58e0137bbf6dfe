package textio

import "sync"

// ObservedHints records every hint delivered to it so policy behaviour can
// be asserted without touching process-wide state. Pass the Record method as
// a Runtime's Hints sink.
type ObservedHints struct {
	mu    sync.Mutex
	hints []Hint
}

// Record stores h. Safe for concurrent use.
func (o *ObservedHints) Record(h Hint) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.hints = append(o.hints, h)
	o.mu.Unlock()
}

// Count returns the number of hints recorded so far.
func (o *ObservedHints) Count() int {
	if o == nil {
		return 0
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.hints)
}

// Hints returns a copy of the recorded hints in delivery order.
func (o *ObservedHints) Hints() []Hint {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Hint, len(o.hints))
	copy(out, o.hints)
	return out
}

// Last returns the most recently recorded hint, if any.
func (o *ObservedHints) Last() (Hint, bool) {
	if o == nil {
		return Hint{}, false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.hints) == 0 {
		return Hint{}, false
	}
	return o.hints[len(o.hints)-1], true
}

// Reset forgets all recorded hints.
func (o *ObservedHints) Reset() {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.hints = o.hints[:0]
	o.mu.Unlock()
}
