package engine

import "testing"

func Test_UnrecognizedEscapeIsIgnored(t *testing.T) {
	f := newFakeIO("")
	e := newDumbEditor(t, f, Config{})
	// ESC Z is not a recognized form; it is consumed and ignored, then
	// ordinary typing resumes.
	f.feed("a\x1bZb\r")
	r := runUntil(e, "> ", 16)
	if r.Status != StatusCommitted || r.Line != "ab" {
		t.Fatalf("got (%v, %q), want (Committed, \"ab\")", r.Status, r.Line)
	}
}

func Test_ExtendedDeleteForm(t *testing.T) {
	f := newFakeIO("")
	e := newDumbEditor(t, f, Config{})
	// "abc", Home, ESC [ 3 ~ (delete-forward) removes 'a'.
	f.feed("abc\x01\x1b[3~\r")
	r := runUntil(e, "> ", 16)
	if r.Status != StatusCommitted || r.Line != "bc" {
		t.Fatalf("got (%v, %q), want (Committed, \"bc\")", r.Status, r.Line)
	}
}

func Test_SS3HomeEnd(t *testing.T) {
	f := newFakeIO("")
	e := newDumbEditor(t, f, Config{})
	// "abc", ESC O H (home), insert 'x' -> "xabc"
	f.feed("abc\x1bOHx\r")
	r := runUntil(e, "> ", 16)
	if r.Status != StatusCommitted || r.Line != "xabc" {
		t.Fatalf("got (%v, %q), want (Committed, \"xabc\")", r.Status, r.Line)
	}
}

func Test_BareEscapeWaitsForMore(t *testing.T) {
	f := newFakeIO("")
	e := newDumbEditor(t, f, Config{})
	f.feed("a\x1b")
	var r StepResult
	for i := 0; i < 3; i++ { // 'a', ESC, then one more idle step
		r = e.Step("> ")
	}
	if r.Status != StatusMore {
		t.Fatalf("status = %v, want More (engine idles with no timeout on a lone ESC)", r.Status)
	}
	if e.mode != modeReadEsc {
		t.Fatalf("mode = %v, want modeReadEsc", e.mode)
	}
}
