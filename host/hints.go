//-----------------------------------------------------------------------------
/*

Hints

Inline, as-you-type suggestions for the flat command CLI: once the verb
typed so far resolves to exactly one Registry entry, that entry's
argument list becomes the hint shown to the right of the cursor.

*/
//-----------------------------------------------------------------------------

package host

import (
	"strings"

	"github.com/deadsy/go-noline/engine"
)

// RegistryHints returns an engine.HintsProducer that turns the Registry
// entry matching the current line's first token into a Hint, once that
// token resolves unambiguously.
func RegistryHints(reg Registry) engine.HintsProducer {
	return func(line string) *engine.Hint {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil
		}
		matches := reg.matching(fields[0])
		if len(matches) != 1 {
			return nil
		}
		entry := matches[0]
		parts := make([]string, len(entry.Cmd.Args))
		for i, h := range entry.Cmd.Args {
			parts[i] = "[" + h.Parm + "]"
		}
		desc := entry.Cmd.Descr
		if len(entry.Cmd.Args) > 0 {
			desc = entry.Cmd.Args[0].Descr
		}
		return &engine.Hint{Args: strings.Join(parts, " "), Desc: desc}
	}
}
