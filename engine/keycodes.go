//-----------------------------------------------------------------------------
/*

Key Codes

Single byte control codes. All but KeycodeNull and KeycodeLF are
recognized by the regular-mode key dispatcher. The editor never decodes
multi-byte UTF8 sequences, so these are plain byte values, not runes.

*/
//-----------------------------------------------------------------------------

package engine

// Keycode* are single-byte control codes used outside of an escape sequence.
const (
	KeycodeNull  = 0x00
	KeycodeCtrlA = 0x01
	KeycodeCtrlB = 0x02
	KeycodeCtrlC = 0x03
	KeycodeCtrlD = 0x04
	KeycodeCtrlE = 0x05
	KeycodeCtrlF = 0x06
	KeycodeCtrlH = 0x08
	KeycodeTab   = 0x09
	KeycodeLF    = 0x0a
	KeycodeCtrlK = 0x0b
	KeycodeCtrlL = 0x0c
	KeycodeCR    = 0x0d
	KeycodeCtrlN = 0x0e
	KeycodeCtrlP = 0x10
	KeycodeCtrlT = 0x14
	KeycodeCtrlU = 0x15
	KeycodeCtrlW = 0x17
	KeycodeESC   = 0x1b
	KeycodeBS    = 0x7f
)

//-----------------------------------------------------------------------------
