//-----------------------------------------------------------------------------
/*

Append Buffer and Renderer

The append buffer coalesces every escape sequence and byte of a redraw
into one slice, flushed to the sink with a single write, so a terminal
never sees a half-painted line. The renderer has two modes: a
horizontal-scrolling single line, and a row-wrapped multi-line display
that tracks how many rows the buffer has ever used (maxrows) so it can
blank stale rows when the buffer shrinks.

*/
//-----------------------------------------------------------------------------

package engine

import "fmt"

// appendBuffer is a trivially-owned growable byte vector.
type appendBuffer struct {
	buf []byte
}

func (a *appendBuffer) writeString(s string) {
	a.buf = append(a.buf, s...)
}

func (a *appendBuffer) writeBytes(b []byte) {
	a.buf = append(a.buf, b...)
}

func (a *appendBuffer) reset() {
	a.buf = a.buf[:0]
}

// flush writes the accumulated bytes in one call and resets the buffer.
// Partial writes are discarded whole - an allocation or short-write here
// never corrupts editor state, only the next redraw fixes the screen up.
func (a *appendBuffer) flush(w func([]byte) (int, error)) {
	if len(a.buf) == 0 {
		return
	}
	_, _ = w(a.buf)
	a.reset()
}

//-----------------------------------------------------------------------------

// refreshLine repaints the line in whichever mode is active. A dumb
// terminal never receives decoration escapes or per-keystroke redraws, so
// this is a no-op for it; the committed line is echoed separately.
func (e *Editor) refreshLine() {
	if !e.smartTerm {
		return
	}
	if e.multiline {
		e.refreshMultiLine()
	} else {
		e.refreshSingleLine()
	}
	e.ab.flush(e.io.Write)
}

func (e *Editor) currentHint() *Hint {
	if e.suppressHints || e.io.Hints == nil {
		return nil
	}
	return e.io.Hints(string(e.buf[:e.length]))
}

// refreshSingleLine implements the horizontal-scroll renderer.
func (e *Editor) refreshSingleLine() {
	start, end := 0, e.length
	// trim the left so the cursor stays on screen
	for e.plen+e.pos-start >= e.cols {
		start++
	}
	// trim the right so the line never exceeds the column count
	for e.plen+end-start >= e.cols {
		end--
	}
	if end < start {
		end = start
	}

	e.ab.reset()
	e.ab.writeString("\r")
	e.ab.writeString(e.prompt)
	e.ab.writeBytes(e.buf[start:end])

	avail := e.cols - e.plen - (end - start) - 1
	e.ab.writeBytes(buildHint(e.currentHint(), e.buf[:e.length], avail))

	e.ab.writeString("\x1b[0K")
	e.ab.writeString(fmt.Sprintf("\r\x1b[%dC", e.plen+e.pos-start))
}

// refreshMultiLine implements the row-wrapped renderer.
func (e *Editor) refreshMultiLine() {
	rows := (e.plen + e.length + e.cols - 1) / e.cols
	if rows == 0 {
		rows = 1
	}
	rpos := (e.plen + e.oldpos + e.cols) / e.cols
	oldRows := e.maxrows
	if rows > e.maxrows {
		e.maxrows = rows
	}

	e.ab.reset()
	if oldRows-rpos > 0 {
		e.ab.writeString(fmt.Sprintf("\x1b[%dB", oldRows-rpos))
	}
	for i := 0; i < oldRows-1; i++ {
		e.ab.writeString("\r\x1b[0K\x1b[1A")
	}
	e.ab.writeString("\r\x1b[0K")
	e.ab.writeString(e.prompt)
	e.ab.writeBytes(e.buf[:e.length])

	avail := e.cols - e.plen - e.length - 1
	e.ab.writeBytes(buildHint(e.currentHint(), e.buf[:e.length], avail))

	if e.pos == e.length && (e.pos+e.plen)%e.cols == 0 {
		e.ab.writeString("\n\r")
		rows++
		if rows > e.maxrows {
			e.maxrows = rows
		}
	}

	rpos2 := (e.plen + e.pos + e.cols) / e.cols
	if rows-rpos2 > 0 {
		e.ab.writeString(fmt.Sprintf("\x1b[%dA", rows-rpos2))
	}
	col := (e.plen + e.pos) % e.cols
	if col != 0 {
		e.ab.writeString(fmt.Sprintf("\r\x1b[%dC", col))
	} else {
		e.ab.writeString("\r")
	}
	e.oldpos = e.pos
}
