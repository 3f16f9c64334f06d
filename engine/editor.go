//-----------------------------------------------------------------------------
/*

Engine State Machine

The outer coroutine-equivalent that sequences terminal probing, one-time
setup, byte-at-a-time regular editing, escape/completion sub-modes, and
termination. Step performs at most one input byte of progress and is
cheap and side-effect-free (beyond timeout accounting) to call again when
nothing is available - the host is expected to drive it from a polling
loop that interleaves other work.

This corresponds to the "edit(buf, buflen, prompt) -> i32" operation in
the embedded-C ancestor of this design: Step is the same operation, typed
for Go instead of a raw buffer pointer and length.

*/
//-----------------------------------------------------------------------------

package engine

import "fmt"

type mode int

const (
	modeGetColumns mode = iota
	modeGetColumns1
	modeGetColumns2
	modeInit
	modeReadRegular
	modeReadEsc
	modeCompletion
)

// defaultMaxLine is the hard line length cap.
const defaultMaxLine = 4096

// defaultHistoryLen is the default history capacity.
const defaultHistoryLen = 100

// IO is the capability record of host-provided callbacks: a record passed
// at construction rather than global function pointers.
type IO struct {
	// GetByte returns one byte and true, or false if nothing is available
	// right now. Must never block.
	GetByte func() (byte, bool)
	// Write performs an unbuffered write; must not block indefinitely.
	Write func(p []byte) (int, error)
	// Completion is optional.
	Completion CompletionProducer
	// Hints is optional.
	Hints HintsProducer
	// TimerArm and TimerElapsed are optional; together they back the
	// terminal prober's deadline. If either is nil both are replaced with
	// a timer that never elapses.
	TimerArm     func()
	TimerElapsed func() bool
}

// Config configures a new Editor.
type Config struct {
	IO IO
	// MaxLine bounds the buffer; 0 selects the default (4096).
	MaxLine int
	// HistoryMaxLen is the initial history capacity; 0 selects the
	// default (100).
	HistoryMaxLen int
	// Hotkey, if non-zero, commits the line the same way Enter does but
	// appends the hotkey byte to the committed text instead of consuming
	// it. Ported from deadsy/go-cli's SetHotkey; off by default.
	Hotkey byte
	// Multiline selects the row-wrapped renderer. Off (single-line,
	// horizontal scroll) by default.
	Multiline bool
}

// Editor is the single long-lived record the engine owns. The host never
// mutates its interior; it only calls the exported methods.
type Editor struct {
	io      IO
	maxLine int
	hotkey  byte

	mode mode

	buf    []byte
	length int
	pos    int
	oldpos int

	prompt string
	plen   int

	cols      int
	smartTerm bool

	probeFailure error

	maxrows int

	history       *History
	historyIndex  int
	scratchActive bool

	seq    [3]byte
	seqIdx int

	completions   *CompletionSet
	completionIdx int
	savedBuf      []byte
	savedLen      int
	savedPos      int

	curPosBuf     []byte
	curPosInitial int

	ab appendBuffer

	multiline     bool
	suppressHints bool
}

// New returns a fresh Editor. The prober starts immediately on the first
// Step call.
func New(cfg Config) *Editor {
	maxLine := cfg.MaxLine
	if maxLine <= 0 {
		maxLine = defaultMaxLine
	}
	histLen := cfg.HistoryMaxLen
	if histLen <= 0 {
		histLen = defaultHistoryLen
	}
	io := cfg.IO
	if io.TimerArm == nil || io.TimerElapsed == nil {
		io.TimerArm = func() {}
		io.TimerElapsed = func() bool { return false }
	}
	e := &Editor{
		io:        io,
		maxLine:   maxLine,
		hotkey:    cfg.Hotkey,
		mode:      modeGetColumns,
		buf:       make([]byte, maxLine),
		cols:      defaultCols,
		history:   NewHistory(histLen),
		multiline: cfg.Multiline,
	}
	return e
}

// Step advances the engine by at most one input byte.
func (e *Editor) Step(prompt string) StepResult {
	if prompt != e.prompt {
		e.prompt = prompt
		e.plen = len(prompt)
	}
	switch e.mode {
	case modeGetColumns:
		return e.stepGetColumns()
	case modeGetColumns1:
		return e.stepGetColumns1()
	case modeGetColumns2:
		return e.stepGetColumns2()
	case modeInit:
		e.initSession()
		return e.stepReadRegular()
	case modeReadRegular:
		return e.stepReadRegular()
	case modeReadEsc:
		return e.stepReadEsc()
	case modeCompletion:
		return e.stepCompletion()
	default:
		return StepResult{Status: StatusError, Err: fmt.Errorf("engine: invalid mode %d", e.mode)}
	}
}

// initSession clears the buffer, paints the prompt, and seeds the history
// scratch slot. Falls through into ReadRegular within the same Step call.
func (e *Editor) initSession() {
	e.length = 0
	e.pos = 0
	e.oldpos = 0
	e.maxrows = 0
	e.historyIndex = 0
	e.history.pushScratch("")
	e.scratchActive = true
	if e.smartTerm {
		e.refreshLine()
	} else if e.plen > 0 {
		_, _ = e.io.Write([]byte(e.prompt))
	}
	e.mode = modeReadRegular
}

// stepReadRegular consumes one byte in the ordinary editing mode.
func (e *Editor) stepReadRegular() StepResult {
	b, ok := e.io.GetByte()
	if !ok {
		return StepResult{Status: StatusMore}
	}
	return e.dispatchRegular(b)
}

// finishSession discards the scratch slot and re-arms the engine for the
// next line: smart terminals re-probe (the window may have been resized),
// dumb terminals skip straight back to Init.
func (e *Editor) finishSession() {
	if e.scratchActive {
		e.history.popScratch()
		e.scratchActive = false
	}
	if e.smartTerm {
		e.mode = modeGetColumns
	} else {
		e.mode = modeInit
	}
}

// RefreshEditor forces an on-demand redraw, e.g. after the host prints an
// asynchronous line of its own. Pure repaint: does not touch logical state.
func (e *Editor) RefreshEditor() {
	e.refreshLine()
}

// UpdatePrompt swaps the prompt string and repaints.
func (e *Editor) UpdatePrompt(prompt string) {
	e.prompt = prompt
	e.plen = len(prompt)
	e.refreshLine()
}

// ClearScreen emits the clear-screen sequence and forces re-probing: the
// in-progress line is abandoned, the same as a fresh session starting.
func (e *Editor) ClearScreen() {
	_, _ = e.io.Write([]byte("\x1b[H\x1b[2J"))
	if e.scratchActive {
		e.history.popScratch()
		e.scratchActive = false
	}
	e.mode = modeGetColumns
}

// SetMultiLine selects the renderer.
func (e *Editor) SetMultiLine(on bool) {
	e.multiline = on
}

// SetHints installs or replaces the hints producer after construction.
func (e *Editor) SetHints(h HintsProducer) {
	e.io.Hints = h
}

// SmartTerminalConnected reports whether the last probe succeeded.
func (e *Editor) SmartTerminalConnected() bool {
	return e.smartTerm
}

// History exposes the history store for the host-facing wrapper methods.
func (e *Editor) History() *History {
	return e.history
}
