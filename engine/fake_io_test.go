//-----------------------------------------------------------------------------
/*

Fake IO

An in-memory GetByte/Write pair standing in for the host layer, so the
engine can be driven from plain byte slices instead of a real terminal.
newDumbEditor is the workhorse for everything except the probe/rendering
tests themselves: it drives the two probe steps to a forced failure
*before* any real input is queued, since the prober discards whatever
byte stream it finds ahead of the DSR reply it's waiting for - queuing
real input earlier would just feed it to the prober as noise.

*/
//-----------------------------------------------------------------------------

package engine

import "testing"

// fakeIO queues input bytes and records every write.
type fakeIO struct {
	in      []byte
	inPos   int
	out     []byte
	writes  int
	elapsed bool
}

func newFakeIO(input string) *fakeIO {
	return &fakeIO{in: []byte(input)}
}

func (f *fakeIO) getByte() (byte, bool) {
	if f.inPos >= len(f.in) {
		return 0, false
	}
	b := f.in[f.inPos]
	f.inPos++
	return b, true
}

func (f *fakeIO) write(p []byte) (int, error) {
	f.out = append(f.out, p...)
	f.writes++
	return len(p), nil
}

func (f *fakeIO) feed(s string) {
	f.in = append(f.in, s...)
}

// dumbIO reports the probe deadline as already elapsed, so the very first
// probe round trip fails with no reply ever required.
func (f *fakeIO) dumbIO() IO {
	return IO{
		GetByte:      f.getByte,
		Write:        f.write,
		TimerArm:     func() {},
		TimerElapsed: func() bool { return true },
	}
}

// smartIO wires a timer that never elapses until the test sets f.elapsed,
// so a probe only fails where the test wants it to.
func (f *fakeIO) smartIO() IO {
	return IO{
		GetByte:      f.getByte,
		Write:        f.write,
		TimerArm:     func() {},
		TimerElapsed: func() bool { return f.elapsed },
	}
}

// newDumbEditor returns an Editor whose initial probe has already failed
// (cols=80, dumb terminal) with an empty input queue, ready for the test
// to feed real bytes into f without any of them being swallowed as
// pre-reply noise.
func newDumbEditor(t *testing.T, f *fakeIO, cfg Config) *Editor {
	t.Helper()
	cfg.IO = f.dumbIO()
	e := New(cfg)
	e.Step("> ") // stepGetColumns: emits the probe, no GetByte call yet
	e.Step("> ") // stepGetColumns1: empty queue, deadline already elapsed
	if e.mode != modeInit {
		t.Fatalf("probe priming left mode=%v, want modeInit", e.mode)
	}
	return e
}

// runUntil steps e up to max times, stopping early once status is anything
// other than StatusMore. Panics if max is exhausted without a terminal
// status, so a stuck test fails loudly instead of hanging.
func runUntil(e *Editor, prompt string, max int) StepResult {
	var r StepResult
	for i := 0; i < max; i++ {
		r = e.Step(prompt)
		if r.Status != StatusMore {
			return r
		}
	}
	panic("runUntil: exceeded step budget without a terminal status")
}
