//-----------------------------------------------------------------------------
/*

Key Dispatcher

Maps a single input byte, read while in ReadRegular, to an editor
operation. Printable bytes insert; the fixed control bytes in spec
section 4.5 move the cursor, edit the buffer, or transition the engine
into a sub-mode (escape, completion) or out of ReadRegular entirely
(commit, EOF, interrupt).

*/
//-----------------------------------------------------------------------------

package engine

// dispatchRegular handles one byte read while in ReadRegular (or
// re-dispatches a byte that just ended an escape sequence or a completion
// session the same way).
func (e *Editor) dispatchRegular(b byte) StepResult {
	switch {
	case b == KeycodeCR || (e.hotkey != 0 && b == e.hotkey):
		return e.commit(b)
	case b == KeycodeCtrlC:
		e.advancePastLine()
		e.finishSession()
		return StepResult{Status: StatusInterrupted}
	case b == KeycodeCtrlD:
		if e.length > 0 {
			e.deleteAtCursor()
		} else {
			e.advancePastLine()
			e.finishSession()
			return StepResult{Status: StatusEOF}
		}
	case b == KeycodeCtrlA:
		e.moveHome()
	case b == KeycodeCtrlB:
		e.moveLeft()
	case b == KeycodeCtrlE:
		e.moveEnd()
	case b == KeycodeCtrlF:
		e.moveRight()
	case b == KeycodeCtrlH || b == KeycodeBS:
		e.backspace()
	case b == KeycodeTab:
		return e.enterCompletion()
	case b == KeycodeCtrlK:
		e.deleteToEnd()
	case b == KeycodeCtrlL:
		_, _ = e.io.Write([]byte("\x1b[H\x1b[2J"))
		e.refreshLine()
	case b == KeycodeCtrlN:
		e.historyNext()
	case b == KeycodeCtrlP:
		e.historyPrev()
	case b == KeycodeCtrlT:
		e.transpose()
	case b == KeycodeCtrlU:
		e.deleteLine()
	case b == KeycodeCtrlW:
		e.deletePrevWord()
	case b == KeycodeESC:
		e.enterEsc()
	default:
		e.insertByte(b)
	}
	return StepResult{Status: StatusMore}
}

// commit handles Enter and the optional hotkey.
func (e *Editor) commit(b byte) StepResult {
	line := string(e.buf[:e.length])
	if e.hotkey != 0 && b == e.hotkey {
		line += string(e.hotkey)
	}
	if e.smartTerm {
		if e.io.Hints != nil {
			// Repaint without hints so the committed line isn't followed
			// by stale annotation.
			e.suppressHints = true
			e.refreshLine()
			e.suppressHints = false
		}
		e.advancePastLine()
	} else {
		// Dumb terminal: no per-keystroke redraw happened, so the commit
		// gets a passive echo of what was typed.
		_, _ = e.io.Write(e.buf[:e.length])
		_, _ = e.io.Write([]byte("\r\n"))
	}
	e.finishSession()
	return StepResult{Status: StatusCommitted, Line: line}
}

// advancePastLine moves the terminal's own cursor down past the just-
// painted line, the same unconditional "\r\n" the teacher emits after
// edit() returns. A smart terminal only ever moved its cursor within the
// line during editing; without this, the next session's redraw begins
// with a bare "\r" and repaints the new prompt over the row still
// holding the line just committed.
func (e *Editor) advancePastLine() {
	if e.smartTerm {
		_, _ = e.io.Write([]byte("\r\n"))
	}
}

//-----------------------------------------------------------------------------
// History navigation

// historyRawIndex maps the 0-based "distance from newest" index to a raw,
// oldest-first slot in the history store.
func (e *Editor) historyRawIndex(idx int) int {
	return e.history.Len() - 1 - idx
}

// historyPrev moves to an older entry (Up / Ctrl-P), stashing the live
// buffer at the slot being left so it can be returned to unmodified.
func (e *Editor) historyPrev() {
	if e.history.Len() == 0 {
		return
	}
	e.history.set(e.historyRawIndex(e.historyIndex), string(e.buf[:e.length]))
	e.historyIndex++
	if e.historyIndex >= e.history.Len() {
		e.historyIndex = e.history.Len() - 1
	}
	e.setBuffer(e.history.at(e.historyRawIndex(e.historyIndex)))
}

// historyNext moves to a newer entry (Down / Ctrl-N), clamping at the live
// buffer rather than wrapping.
func (e *Editor) historyNext() {
	if e.history.Len() == 0 {
		return
	}
	e.history.set(e.historyRawIndex(e.historyIndex), string(e.buf[:e.length]))
	e.historyIndex--
	if e.historyIndex < 0 {
		e.historyIndex = 0
	}
	e.setBuffer(e.history.at(e.historyRawIndex(e.historyIndex)))
}
