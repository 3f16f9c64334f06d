//-----------------------------------------------------------------------------
/*

Key Code Diagnostics

A development aid, ported from deadsy/go-cli's Linenoise.PrintKeycodes:
prints the scan code of every incoming byte until the literal bytes
"quit" are seen. Reimplemented as a host-side poll loop over GetByte
rather than a blocking read, since the engine package itself has no
notion of a diagnostic mode - the behavior belongs entirely to the host.

*/
//-----------------------------------------------------------------------------

package host

import (
	"fmt"
	"time"
	"unicode"

	"github.com/deadsy/go-noline/engine"
)

// PrintKeyCodes polls getByte until the four-byte sequence "quit" has been
// typed, printing each incoming byte's scan code to the USER sink. idle is
// slept between empty polls so the loop does not spin the CPU.
func PrintKeyCodes(user USER, getByte func() (byte, bool), idle time.Duration) {
	user.Put("key codes debugging mode.\n")
	user.Put("press keys to see scan codes. Type 'quit' at any time to exit.\n")

	var cmd [4]byte
	for {
		b, ok := getByte()
		if !ok {
			time.Sleep(idle)
			continue
		}

		var s string
		if unicode.IsPrint(rune(b)) {
			s = string(rune(b))
		} else {
			switch b {
			case engine.KeycodeCR:
				s = "\\r"
			case engine.KeycodeTab:
				s = "\\t"
			case engine.KeycodeESC:
				s = "ESC"
			case engine.KeycodeLF:
				s = "\\n"
			case engine.KeycodeBS:
				s = "BS"
			default:
				s = "?"
			}
		}
		user.Put(fmt.Sprintf("'%s' 0x%x (%d)\r\n", s, b, b))

		copy(cmd[:], cmd[1:])
		cmd[3] = b
		if string(cmd[:]) == "quit" {
			return
		}
	}
}
