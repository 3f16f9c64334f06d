//-----------------------------------------------------------------------------
/*

Flat Command Dispatch

A small command interpreter built on top of the engine: a single flat
table of named commands (no menu hierarchy), unique-prefix matching,
tab completion over command names, command history, and a trailing-'?'
help convention. Unlike a menu tree, a command's full argument list
either matches on the first token or it doesn't - there is no nested
submenu state to carry across tokens, which is what keeps dispatch here
to a single linear scan instead of a per-level tree walk.

*/
//-----------------------------------------------------------------------------

package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/deadsy/go-noline/engine"
)

//-----------------------------------------------------------------------------

// Help describes one argument a command accepts.
type Help struct {
	Parm  string
	Descr string
}

// USER is the object a command writes its output to.
type USER interface {
	Put(s string)
}

// Command is one entry in a Registry.
type Command struct {
	Descr string
	Args  []Help
	// Func runs the command. Its return value is passed back by dispatch;
	// Step discards it, so the next prompt always starts empty.
	Func func(*CLI, []string) string
}

// Entry pairs a command with the name it is invoked by.
type Entry struct {
	Name string
	Cmd  Command
}

// Registry is the flat, ordered set of commands a CLI dispatches against.
type Registry []Entry

// generalHelp documents the fixed key bindings; not part of a Registry.
var generalHelp = []Help{
	{"?", "display command help - Eg. ?, se?"},
	{"<up>", "go backwards in command history"},
	{"<dn>", "go forwards in command history"},
	{"<tab>", "auto complete a command name"},
	{"* note", "commands can be abbreviated to a unique prefix"},
}

// HistoryArgs documents the built-in history command's argument.
var HistoryArgs = []Help{
	{"<index>", "recall history entry <index>"},
}

//-----------------------------------------------------------------------------

// resolve finds the Registry entry addressed by name: an exact match
// wins outright; otherwise name must be a prefix of exactly one entry.
func (r Registry) resolve(name string) (Entry, error) {
	var matches []Entry
	for _, e := range r {
		if e.Name == name {
			return e, nil
		}
		if strings.HasPrefix(e.Name, name) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return Entry{}, fmt.Errorf("unknown command: %s", name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, e := range matches {
			names[i] = e.Name
		}
		return Entry{}, fmt.Errorf("ambiguous command %q: %s", name, strings.Join(names, ", "))
	}
}

// matching returns every entry whose name has the given prefix, in
// Registry order.
func (r Registry) matching(prefix string) []Entry {
	var out []Entry
	for _, e := range r {
		if strings.HasPrefix(e.Name, prefix) {
			out = append(out, e)
		}
	}
	return out
}

//-----------------------------------------------------------------------------

// printTable writes name/description pairs in one left-justified column,
// its width sized to the longest name among the rows actually printed.
func printTable(user USER, rows []Entry, descr func(Entry) string) {
	width := 0
	for _, e := range rows {
		if w := runewidth.StringWidth(e.Name); w > width {
			width = w
		}
	}
	for _, e := range rows {
		pad := width + 2 - runewidth.StringWidth(e.Name)
		if pad < 1 {
			pad = 1
		}
		user.Put(e.Name + strings.Repeat(" ", pad) + descr(e) + "\n")
	}
}

func printArgHelp(user USER, args []Help) {
	if len(args) == 0 {
		user.Put("  <cr>: perform the function\n")
		return
	}
	width := 0
	for _, h := range args {
		if w := runewidth.StringWidth(h.Parm); w > width {
			width = w
		}
	}
	for _, h := range args {
		pad := width + 1 - runewidth.StringWidth(h.Parm)
		user.Put("  " + h.Parm + strings.Repeat(" ", pad) + ": " + h.Descr + "\n")
	}
}

//-----------------------------------------------------------------------------

// completionCallback satisfies engine.CompletionProducer. Only the
// command verb completes; once a space has been typed the user is into
// argument territory this CLI has no completions for.
func (c *CLI) completionCallback(line string, set *engine.CompletionSet) {
	if strings.ContainsRune(line, ' ') {
		return
	}
	for _, e := range c.registry.matching(line) {
		if e.Name != line {
			set.Add(e.Name)
		}
	}
}

// dispatch parses and runs one committed line. It returns the line minus
// its trailing help marker for a help request, or whatever the command
// returned. Step discards this value; it is not placed in the next
// prompt's buffer.
func (c *CLI) dispatch(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	fields := strings.Fields(trimmed)
	verb := fields[0]
	args := fields[1:]

	if strings.HasSuffix(verb, "?") {
		prefix := strings.TrimSuffix(verb, "?")
		matches := c.registry.matching(prefix)
		if len(matches) == 0 {
			c.Put("unknown command: " + prefix + "\n")
		} else {
			printTable(c.User, matches, func(e Entry) string { return e.Cmd.Descr })
		}
		return line[:len(line)-1]
	}

	entry, err := c.registry.resolve(verb)
	if err != nil {
		c.Put(err.Error() + "\n")
		c.editor.HistoryAdd(trimmed)
		return ""
	}

	if len(args) != 0 {
		lastArg := args[len(args)-1]
		if strings.HasSuffix(lastArg, "?") {
			printArgHelp(c.User, entry.Cmd.Args)
			return line[:len(line)-1]
		}
	}

	next := entry.Cmd.Func(c, args)
	if next != "" {
		return next
	}
	c.editor.HistoryAdd(trimmed)
	return ""
}

//-----------------------------------------------------------------------------

// CLI ties a Registry to an engine.Editor and a USER sink.
type CLI struct {
	User     USER
	editor   *engine.Editor
	registry Registry
	prompt   string
	running  bool
}

// NewCLI wires up a fresh Editor against io, routing completion through
// the registry and binding '?' as the inline-help hotkey.
func NewCLI(user USER, io engine.IO) *CLI {
	c := &CLI{User: user, prompt: "> ", running: true}
	io.Completion = c.completionCallback
	c.editor = engine.New(engine.Config{IO: io, Hotkey: '?'})
	return c
}

// Editor exposes the underlying engine handle, e.g. for SetMultiLine.
func (c *CLI) Editor() *engine.Editor {
	return c.editor
}

// SetRegistry installs the set of dispatchable commands.
func (c *CLI) SetRegistry(r Registry) {
	c.registry = r
}

// SetPrompt changes the command prompt.
func (c *CLI) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Put forwards to the user-provided sink.
func (c *CLI) Put(s string) {
	c.User.Put(s)
}

// GeneralHelp displays the fixed key-binding help.
func (c *CLI) GeneralHelp() {
	for _, h := range generalHelp {
		c.Put(fmt.Sprintf("  %-8s: %s\n", h.Parm, h.Descr))
	}
}

// HistoryLoad reads command history from path.
func (c *CLI) HistoryLoad(path string) error {
	return c.editor.HistoryLoad(path)
}

// HistorySave writes command history to path.
func (c *CLI) HistorySave(path string) error {
	return c.editor.HistorySave(path)
}

// HistoryCommand implements the standard "history" command: with no
// arguments it lists every entry; with a numeric argument it returns the
// addressed entry followed by a space. Step discards that return value,
// so the entry is not placed in the next line buffer.
func (c *CLI) HistoryCommand(args []string) string {
	h := c.editor.History().Entries()
	n := len(h)
	if len(args) == 1 {
		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 0 || idx >= n {
			c.Put("invalid history index\n")
			return ""
		}
		return h[n-idx-1] + " "
	}
	if n == 0 {
		c.Put("no history\n")
		return ""
	}
	for i, line := range h {
		c.Put(fmt.Sprintf("%-3d: %s\n", n-i-1, line))
	}
	return ""
}

// Step advances the CLI by at most one input byte, dispatching a
// finished line as soon as the engine reports one. Returns false once
// the session should end (Ctrl-C or Ctrl-D against an empty line).
func (c *CLI) Step() bool {
	r := c.editor.Step(c.prompt)
	switch r.Status {
	case engine.StatusCommitted:
		c.dispatch(r.Line)
	case engine.StatusEOF, engine.StatusInterrupted, engine.StatusError:
		c.running = false
	}
	return c.running
}

// Running reports whether the CLI is still accepting input.
func (c *CLI) Running() bool {
	return c.running
}

// Exit stops the CLI from the inside, e.g. an "exit" command.
func (c *CLI) Exit() {
	c.running = false
}

//-----------------------------------------------------------------------------
