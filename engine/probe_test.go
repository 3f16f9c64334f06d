package engine

import "testing"

func Test_ParseCursorReply(t *testing.T) {
	tests := []struct {
		buf  string
		cols int
		ok   bool
	}{
		{"\x1b[24;80R", 80, true},
		{"\x1b[1;1R", 1, true},
		{"garbage", 0, false},
		{"\x1b[24;80", 0, false},      // missing trailing R
		{"\x1b[24-80R", 0, false},     // missing the ';' field separator
		{"\x1b[24;eightyR", 0, false}, // non-numeric column
	}
	for i, v := range tests {
		cols, ok := parseCursorReply([]byte(v.buf))
		if ok != v.ok {
			t.Fatalf("%d: ok = %v, want %v (buf %q)", i, ok, v.ok, v.buf)
		}
		if ok && cols != v.cols {
			t.Errorf("%d: cols = %d, want %d", i, cols, v.cols)
		}
	}
}

func Test_ProbeSuccessSetsColsAndSmartTerm(t *testing.T) {
	f := newFakeIO("\x1b[5;12R\x1b[5;100R")
	e := New(Config{IO: f.smartIO()})
	for i := 0; i < 20 && e.mode != modeInit; i++ {
		e.Step("> ")
	}
	if !e.smartTerm {
		t.Fatalf("smartTerm = false after a well-formed probe")
	}
	if e.cols != 100 {
		t.Fatalf("cols = %d, want 100", e.cols)
	}
	if e.LastProbeErr() != nil {
		t.Fatalf("LastProbeErr = %v, want nil", e.LastProbeErr())
	}
}

func Test_ProbeMalformedReplyDowngrades(t *testing.T) {
	f := newFakeIO("\x1b[not-a-reply-R")
	e := New(Config{IO: f.smartIO()})
	for i := 0; i < 20 && e.mode != modeInit; i++ {
		e.Step("> ")
	}
	if e.smartTerm {
		t.Fatalf("smartTerm = true after a malformed reply")
	}
	if e.cols != defaultCols {
		t.Fatalf("cols = %d, want default %d", e.cols, defaultCols)
	}
	if e.LastProbeErr() != ErrParse {
		t.Fatalf("LastProbeErr = %v, want %v", e.LastProbeErr(), ErrParse)
	}
}
