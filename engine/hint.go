//-----------------------------------------------------------------------------
/*

Hints

Inline suggestions painted after the buffer, never part of the committed
line. The host's hints producer returns up to two strings: an args
template (optionally containing [placeholder] runs) and a free-form
description. When the buffer being edited contains spaces, the
placeholder whose zero-based index equals the number of spaces present is
picked out with reverse video - a crude positional "you are filling in
this argument now" cue.

*/
//-----------------------------------------------------------------------------

package engine

import (
	"bytes"
	"strings"
)

// Hint is produced by the host's HintsProducer.
type Hint struct {
	Args string // e.g. "[key] [value]", may contain no placeholders at all
	Desc string // free-form description, rendered after Args
}

// HintsProducer returns a hint for the current buffer contents, or nil.
type HintsProducer func(line string) *Hint

const (
	hintColor   = "\x1b[90m"
	hintReverse = "\x1b[7m"
	hintPlain   = "\x1b[27m" + hintColor
	hintReset   = "\x1b[0m"
)

type hintSegment struct {
	text        string
	placeholder bool
}

// splitArgsTemplate breaks s into plain runs and [bracketed] placeholder
// runs, in order.
func splitArgsTemplate(s string) []hintSegment {
	var segs []hintSegment
	for len(s) > 0 {
		if s[0] == '[' {
			if end := strings.IndexByte(s, ']'); end >= 0 {
				segs = append(segs, hintSegment{text: s[:end+1], placeholder: true})
				s = s[end+1:]
				continue
			}
		}
		next := strings.IndexByte(s, '[')
		if next < 0 {
			segs = append(segs, hintSegment{text: s})
			break
		}
		segs = append(segs, hintSegment{text: s[:next]})
		s = s[next:]
	}
	return segs
}

// buildHint renders the hint escape sequence for the given buffer, or nil
// if there is no hint or no room to show one. avail is the number of
// columns left after the prompt and buffer (plen + len already consumed).
func buildHint(h *Hint, buf []byte, avail int) []byte {
	if h == nil || avail <= 0 {
		return nil
	}
	if h.Args == "" && h.Desc == "" {
		return nil
	}

	spaceCount := bytes.Count(buf, []byte{' '})

	var out bytes.Buffer
	out.WriteByte(' ')
	out.WriteString(hintColor)
	written := 1

	emit := func(s string, reverse bool) {
		if reverse {
			out.WriteString(hintReverse)
		}
		for i := 0; i < len(s) && written < avail; i++ {
			out.WriteByte(s[i])
			written++
		}
		if reverse {
			out.WriteString(hintPlain)
		}
	}

	placeholderIdx := 0
	for _, seg := range splitArgsTemplate(h.Args) {
		if written >= avail {
			break
		}
		highlight := seg.placeholder && spaceCount > 0 && placeholderIdx == spaceCount
		emit(seg.text, highlight)
		if seg.placeholder {
			placeholderIdx++
		}
	}
	if h.Desc != "" && written < avail {
		emit(" "+h.Desc, false)
	}
	out.WriteString(hintReset)
	return out.Bytes()
}
