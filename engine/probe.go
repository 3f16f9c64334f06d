//-----------------------------------------------------------------------------
/*

Terminal Prober

Determines the terminal's column width with only the byte stream - no
ioctl, since the engine has no notion of a file descriptor. Emits a
Device Status Report (ESC [ 6 n), accumulates the reply discarding
anything before the leading ESC, then repeats the probe after moving the
cursor to the far right column so the second reply's column is the true
width. A host-armed deadline (optional; see Config) bounds each leg.
Any failure - timeout, malformed reply, or a failing second probe -
downgrades to an 80-column dumb terminal with no further decoration.

*/
//-----------------------------------------------------------------------------

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultCols is used when probing fails.
const defaultCols = 80

// maxProbeReply bounds how many bytes of a cursor-position reply are
// buffered before giving up on a malformed response.
const maxProbeReply = 32

func (e *Editor) stepGetColumns() StepResult {
	e.curPosBuf = e.curPosBuf[:0]
	e.probeFailure = nil
	_, _ = e.io.Write([]byte("\x1b[6n"))
	e.io.TimerArm()
	e.mode = modeGetColumns1
	return StepResult{Status: StatusMore}
}

func (e *Editor) stepGetColumns1() StepResult {
	col, done, ok := e.readCursorPosition()
	if !done {
		return StepResult{Status: StatusMore}
	}
	if !ok {
		return e.probeFailed()
	}
	e.curPosInitial = col
	e.curPosBuf = e.curPosBuf[:0]
	_, _ = e.io.Write([]byte("\x1b[999C"))
	e.io.TimerArm()
	e.mode = modeGetColumns2
	return StepResult{Status: StatusMore}
}

func (e *Editor) stepGetColumns2() StepResult {
	col, done, ok := e.readCursorPosition()
	if !done {
		return StepResult{Status: StatusMore}
	}
	if !ok {
		return e.probeFailed()
	}
	e.cols = col
	e.smartTerm = true
	if col > e.curPosInitial {
		_, _ = e.io.Write([]byte(fmt.Sprintf("\x1b[%dD", col-e.curPosInitial)))
	}
	e.mode = modeInit
	return StepResult{Status: StatusMore}
}

// readCursorPosition pulls at most one byte toward a pending "ESC [ rows ;
// cols R" reply. done is true once the reply is complete (ok reports
// whether it parsed) or the deadline/overflow gives up (ok is false). On
// failure e.probeFailure records which sentinel LastProbeErr should report.
func (e *Editor) readCursorPosition() (cols int, done bool, ok bool) {
	b, avail := e.io.GetByte()
	if !avail {
		if e.io.TimerElapsed() {
			e.probeFailure = ErrProbeTimeout
			return 0, true, false
		}
		return 0, false, false
	}
	if len(e.curPosBuf) == 0 && b != KeycodeESC {
		// discard everything before the leading ESC
		return 0, false, false
	}
	e.curPosBuf = append(e.curPosBuf, b)
	if b != 'R' {
		if len(e.curPosBuf) >= maxProbeReply {
			e.probeFailure = ErrParse
			return 0, true, false
		}
		return 0, false, false
	}
	cols, parsed := parseCursorReply(e.curPosBuf)
	if !parsed {
		e.probeFailure = ErrParse
	}
	return cols, true, parsed
}

func (e *Editor) probeFailed() StepResult {
	e.cols = defaultCols
	e.smartTerm = false
	e.curPosBuf = e.curPosBuf[:0]
	e.mode = modeInit
	return StepResult{Status: StatusMore}
}

// LastProbeErr returns the sentinel error from the most recent failed
// terminal probe (ErrProbeTimeout or ErrParse), or nil if the last probe
// that ran to completion succeeded. The host is expected to log this, not
// act on it: Step already downgraded to an 80-column dumb terminal.
func (e *Editor) LastProbeErr() error {
	return e.probeFailure
}

// parseCursorReply parses "ESC [ rows ; cols R" and returns cols.
func parseCursorReply(buf []byte) (int, bool) {
	if len(buf) < 6 || buf[0] != KeycodeESC || buf[1] != '[' || buf[len(buf)-1] != 'R' {
		return 0, false
	}
	fields := strings.Split(string(buf[2:len(buf)-1]), ";")
	if len(fields) != 2 {
		return 0, false
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return cols, true
}
