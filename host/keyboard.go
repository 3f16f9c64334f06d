//-----------------------------------------------------------------------------
/*

Polled Keyboard

A non-blocking byte source for engine.IO.GetByte, built on the same
select()-with-zero-timeout trick deadsy/go-cli's would_block/getRune use
for their 20ms lookahead - here the timeout is always zero, since the
engine never wants to block: a step with nothing available just reports
StatusMore and the host moves on to its own work.

Also supplies the terminal prober's deadline: TimerArm/TimerElapsed are a
plain wall-clock timeout, the same budget deadsy/go-cli spends on its
escape-sequence lookahead reads.

*/
//-----------------------------------------------------------------------------

package host

import (
	"syscall"
	"time"

	"github.com/deadsy/go-fdset"
)

// probeTimeout bounds how long the terminal prober waits for a DSR reply.
const probeTimeout = 100 * time.Millisecond

// Keyboard polls a file descriptor for a single ready byte at a time.
type Keyboard struct {
	fd       int
	deadline time.Time
}

// NewKeyboard wraps fd, typically syscall.Stdin.
func NewKeyboard(fd int) *Keyboard {
	return &Keyboard{fd: fd}
}

// GetByte returns one byte and true if the descriptor is immediately
// readable, or 0, false if nothing is available right now. Never blocks.
func (k *Keyboard) GetByte() (byte, bool) {
	rd := syscall.FdSet{}
	fdset.Set(k.fd, &rd)
	zero := syscall.Timeval{}
	n, err := syscall.Select(k.fd+1, &rd, nil, nil, &zero)
	if err != nil || n == 0 {
		return 0, false
	}
	buf := make([]byte, 1)
	if _, err := syscall.Read(k.fd, buf); err != nil {
		return 0, false
	}
	return buf[0], true
}

// TimerArm starts the terminal prober's deadline.
func (k *Keyboard) TimerArm() {
	k.deadline = time.Now().Add(probeTimeout)
}

// TimerElapsed reports whether the deadline armed by TimerArm has passed.
func (k *Keyboard) TimerElapsed() bool {
	return !k.deadline.IsZero() && time.Now().After(k.deadline)
}
