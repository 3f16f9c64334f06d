//-----------------------------------------------------------------------------
/*

Completion Set

A finite ordered sequence of candidate strings assembled by the host's
completion producer. Owned by the editor for the lifetime of Completion
mode and released on exit.

*/
//-----------------------------------------------------------------------------

package engine

// CompletionSet is an ordered list of candidate strings for the line
// currently being completed.
type CompletionSet struct {
	items []string
}

// NewCompletionSet returns an empty candidate set.
func NewCompletionSet() *CompletionSet {
	return &CompletionSet{}
}

// Add appends a candidate string, copying it into the set.
func (c *CompletionSet) Add(s string) {
	c.items = append(c.items, s)
}

// Len returns the number of candidates.
func (c *CompletionSet) Len() int {
	return len(c.items)
}

// At returns the i'th candidate.
func (c *CompletionSet) At(i int) string {
	return c.items[i]
}

// CompletionProducer populates set with candidates for the given line.
type CompletionProducer func(line string, set *CompletionSet)

// filterCurrent returns the candidates that are not byte-identical to
// current, preserving order. Tab should never appear to be a no-op.
func filterCurrent(items []string, current string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}

//-----------------------------------------------------------------------------
// Completion mode

func (e *Editor) beep() {
	_, _ = e.io.Write([]byte{0x07})
}

// enterCompletion invokes the host completion producer and, if it offers
// anything usable, switches to Completion mode.
func (e *Editor) enterCompletion() StepResult {
	set := NewCompletionSet()
	if e.io.Completion != nil {
		e.io.Completion(string(e.buf[:e.length]), set)
	}
	items := filterCurrent(set.items, string(e.buf[:e.length]))
	if len(items) == 0 {
		e.beep()
		return StepResult{Status: StatusMore}
	}
	e.completions = &CompletionSet{items: items}
	e.completionIdx = 0
	e.savedBuf = append(e.savedBuf[:0], e.buf[:e.length]...)
	e.savedLen = e.length
	e.savedPos = e.pos
	e.mode = modeCompletion
	e.showCompletion()
	return StepResult{Status: StatusMore}
}

// showCompletion paints the candidate at completionIdx (or, at the
// len'th position, the original buffer) in place of the real buffer.
func (e *Editor) showCompletion() {
	if e.completionIdx < e.completions.Len() {
		n := copy(e.buf, e.completions.At(e.completionIdx))
		e.length = n
		e.pos = n
	} else {
		n := copy(e.buf, e.savedBuf[:e.savedLen])
		e.length = n
		e.pos = e.savedPos
	}
	e.refreshLine()
}

// exitCompletion leaves Completion mode. If accept is true and the
// highlighted slot is an actual candidate (not the len'th "original
// buffer" slot) its text is copied into the live buffer; otherwise the
// buffer as it was before entering Completion mode is restored.
func (e *Editor) exitCompletion(accept bool) {
	if accept && e.completionIdx < e.completions.Len() {
		n := copy(e.buf, e.completions.At(e.completionIdx))
		e.length = n
		e.pos = n
	} else {
		n := copy(e.buf, e.savedBuf[:e.savedLen])
		e.length = n
		e.pos = e.savedPos
	}
	e.completions = nil
	e.mode = modeReadRegular
}

// stepCompletion consumes one byte while browsing candidates.
func (e *Editor) stepCompletion() StepResult {
	b, ok := e.io.GetByte()
	if !ok {
		return StepResult{Status: StatusMore}
	}
	switch b {
	case KeycodeTab:
		e.completionIdx = (e.completionIdx + 1) % (e.completions.Len() + 1)
		if e.completionIdx == e.completions.Len() {
			e.beep()
		}
		e.showCompletion()
		return StepResult{Status: StatusMore}
	case KeycodeESC:
		e.exitCompletion(false)
		e.refreshLine()
		return StepResult{Status: StatusMore}
	default:
		e.exitCompletion(true)
		return e.dispatchRegular(b)
	}
}
