// Package engine implements a non-blocking, re-entrant single-line editor.
//
// It consumes one byte at a time from a polled source, paints an edited
// line over a byte sink, and returns the finished line when the user
// commits it. There is no blocking read and no goroutine backing an
// editing session: Step is a plain state machine method, safe to call
// from whatever loop the host already has, as often as a byte might be
// ready.
//
// Based on the deadsy/go-cli line editor, itself based on antirez's
// linenoise, reworked from a blocking syscall-select loop into an
// explicit coroutine-as-state-machine so it can run with no OS thread
// and no blocking I/O underneath it.
package engine
