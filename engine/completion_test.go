package engine

import "testing"

func Test_FilterCurrentDropsExactMatch(t *testing.T) {
	tests := []struct {
		items   []string
		current string
		want    []string
	}{
		{[]string{"help", "hello"}, "he", []string{"help", "hello"}},
		{[]string{"help", "he"}, "he", []string{"help"}},
		{[]string{"he"}, "he", []string{}},
	}
	for i, v := range tests {
		got := filterCurrent(v.items, v.current)
		if len(got) != len(v.want) {
			t.Fatalf("%d: got %v, want %v", i, got, v.want)
		}
		for j := range got {
			if got[j] != v.want[j] {
				t.Errorf("%d: [%d] = %q, want %q", i, j, got[j], v.want[j])
			}
		}
	}
}

func Test_CompletionCyclesThroughOriginal(t *testing.T) {
	f := newFakeIO("")
	e := newDumbEditor(t, f, Config{})
	e.io.Completion = func(line string, set *CompletionSet) {
		set.Add("help")
		set.Add("hello")
	}
	f.feed("he")
	e.Step("> ") // 'h'
	e.Step("> ") // 'e'
	if string(e.buf[:e.length]) != "he" {
		t.Fatalf("buffer before Tab = %q, want \"he\"", e.buf[:e.length])
	}

	f.feed("\t")
	e.Step("> ")
	if e.mode != modeCompletion {
		t.Fatalf("mode after Tab = %v, want modeCompletion", e.mode)
	}
	if string(e.buf[:e.length]) != "help" {
		t.Fatalf("buffer after first Tab = %q, want \"help\"", e.buf[:e.length])
	}

	f.feed("\t")
	e.Step("> ")
	if string(e.buf[:e.length]) != "hello" {
		t.Fatalf("buffer after second Tab = %q, want \"hello\"", e.buf[:e.length])
	}

	f.feed("\t")
	e.Step("> ")
	if string(e.buf[:e.length]) != "he" {
		t.Fatalf("buffer after third Tab (wrap to original) = %q, want \"he\"", e.buf[:e.length])
	}
	if e.mode != modeCompletion {
		t.Fatalf("mode after wrap = %v, want still modeCompletion", e.mode)
	}
}

func Test_CompletionEmptyProducerBeeps(t *testing.T) {
	f := newFakeIO("")
	e := newDumbEditor(t, f, Config{})
	f.feed("x")
	e.Step("> ") // 'x'

	f.feed("\t")
	r := e.Step("> ")
	if r.Status != StatusMore || e.mode != modeReadRegular {
		t.Fatalf("Tab with no completion producer left mode=%v status=%v, want modeReadRegular/More", e.mode, r.Status)
	}
	if len(f.out) == 0 || f.out[len(f.out)-1] != 0x07 {
		t.Fatalf("expected a trailing BEL in output, got %q", f.out)
	}
}
