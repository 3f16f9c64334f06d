//-----------------------------------------------------------------------------
/*

Raw Mode

Puts a file descriptor into the character-at-a-time, no-echo mode the
engine expects, and restores it on the way out. Ported from
deadsy/go-cli's setRawMode/restoreMode, unchanged in substance - only the
bookkeeping (who owns the saved termios) moves from the *Linenoise
receiver to this package's *TTY.

*/
//-----------------------------------------------------------------------------

package host

import (
	"fmt"
	"syscall"

	"github.com/creack/termios/raw"
	"github.com/mattn/go-isatty"
)

// TTY owns a file descriptor's raw-mode lifecycle.
type TTY struct {
	fd    int
	raw   bool
	saved *raw.Termios
}

// NewTTY wraps fd. It does not itself touch the terminal mode.
func NewTTY(fd int) *TTY {
	return &TTY{fd: fd}
}

// IsTerminal reports whether fd refers to an actual terminal device. A
// program reading from a pipe or a file should not attempt raw mode at all.
func (t *TTY) IsTerminal() bool {
	return isatty.IsTerminal(uintptr(t.fd))
}

// EnableRaw switches the terminal to raw mode, remembering the prior
// settings so DisableRaw can put them back.
func (t *TTY) EnableRaw() error {
	if !t.IsTerminal() {
		return fmt.Errorf("host: fd %d is not a tty", t.fd)
	}
	original, err := raw.TcGetAttr(uintptr(t.fd))
	if err != nil {
		return fmt.Errorf("host: get termios: %w", err)
	}
	mode := *original
	mode.Iflag &^= syscall.IGNBRK | syscall.BRKINT | syscall.PARMRK | syscall.ISTRIP |
		syscall.INLCR | syscall.IGNCR | syscall.ICRNL | syscall.IXON
	mode.Oflag &^= syscall.OPOST
	mode.Lflag &^= syscall.ECHO | syscall.ECHONL | syscall.ICANON | syscall.ISIG | syscall.IEXTEN
	mode.Cflag &^= syscall.CSIZE | syscall.PARENB
	mode.Cflag |= syscall.CS8
	mode.Cc[syscall.VMIN] = 1
	mode.Cc[syscall.VTIME] = 0
	if err := raw.TcSetAttr(uintptr(t.fd), &mode); err != nil {
		return fmt.Errorf("host: set termios: %w", err)
	}
	t.saved = original
	t.raw = true
	return nil
}

// DisableRaw restores the terminal mode captured by EnableRaw. A no-op if
// raw mode was never entered.
func (t *TTY) DisableRaw() error {
	if !t.raw {
		return nil
	}
	if err := raw.TcSetAttr(uintptr(t.fd), t.saved); err != nil {
		return fmt.Errorf("host: restore termios: %w", err)
	}
	t.raw = false
	return nil
}

// Write performs an unbuffered write to the wrapped descriptor.
func (t *TTY) Write(p []byte) (int, error) {
	return syscall.Write(t.fd, p)
}
