//-----------------------------------------------------------------------------
/*
Example code to demonstrate the non-blocking command line interface: a
tiny in-memory key/value store driven entirely through the CLI.
*/
//-----------------------------------------------------------------------------

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"syscall"
	"time"

	"github.com/deadsy/go-noline/engine"
	"github.com/deadsy/go-noline/host"
)

//-----------------------------------------------------------------------------
// in-memory store

type store struct {
	data map[string]string
}

func newStore() *store {
	return &store{data: make(map[string]string)}
}

func (s *store) set(args []string) string {
	if len(args) != 2 {
		return ""
	}
	s.data[args[0]] = args[1]
	return ""
}

func (s *store) get(c *host.CLI, args []string) string {
	if len(args) != 1 {
		c.Put("usage: get <key>\n")
		return ""
	}
	v, ok := s.data[args[0]]
	if !ok {
		c.Put("no such key\n")
		return ""
	}
	c.Put(v + "\n")
	return ""
}

func (s *store) del(args []string) string {
	if len(args) == 1 {
		delete(s.data, args[0])
	}
	return ""
}

func (s *store) list(c *host.CLI, args []string) string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		c.Put("empty\n")
		return ""
	}
	for _, k := range keys {
		c.Put(fmt.Sprintf("%s = %s\n", k, s.data[k]))
	}
	return ""
}

//-----------------------------------------------------------------------------
// command registry

// kbd is the shared keyboard source; the keycodes command reads it
// directly for the diagnostic loop, bypassing the engine entirely while
// it runs.
var kbd *host.Keyboard

func buildRegistry(s *store) host.Registry {
	return host.Registry{
		{Name: "help", Cmd: host.Command{
			Descr: "display key bindings",
			Func:  func(c *host.CLI, args []string) string { c.GeneralHelp(); return "" },
		}},
		{Name: "set", Cmd: host.Command{
			Descr: "set a key's value",
			Args:  []host.Help{{Parm: "key", Descr: "key name"}, {Parm: "value", Descr: "value to store"}},
			Func:  func(c *host.CLI, args []string) string { return s.set(args) },
		}},
		{Name: "get", Cmd: host.Command{
			Descr: "print a key's value",
			Args:  []host.Help{{Parm: "key", Descr: "key name"}},
			Func:  s.get,
		}},
		{Name: "del", Cmd: host.Command{
			Descr: "delete a key",
			Args:  []host.Help{{Parm: "key", Descr: "key name"}},
			Func:  func(c *host.CLI, args []string) string { return s.del(args) },
		}},
		{Name: "list", Cmd: host.Command{
			Descr: "list every stored key",
			Func:  s.list,
		}},
		{Name: "history", Cmd: host.Command{
			Descr: "command history",
			Args:  host.HistoryArgs,
			Func:  func(c *host.CLI, args []string) string { return c.HistoryCommand(args) },
		}},
		{Name: "keycodes", Cmd: host.Command{
			Descr: "display key codes",
			Func: func(c *host.CLI, args []string) string {
				host.PrintKeyCodes(c.User, kbd.GetByte, 10*time.Millisecond)
				return ""
			},
		}},
		{Name: "exit", Cmd: host.Command{
			Descr: "exit application",
			Func:  func(c *host.CLI, args []string) string { c.Exit(); return "" },
		}},
	}
}

//-----------------------------------------------------------------------------

// stdoutSink is the USER a command writes its output to.
type stdoutSink struct{}

func (stdoutSink) Put(s string) {
	fmt.Printf("%s", s)
}

//-----------------------------------------------------------------------------

func main() {
	hpath := flag.String("history", "history.txt", "history file path")
	multilineFlag := flag.Bool("multiline", false, "enable multiline editing mode")
	flag.Parse()

	tty := host.NewTTY(syscall.Stdin)
	if tty.IsTerminal() {
		if err := tty.EnableRaw(); err != nil {
			log.Fatalf("noline: %v", err)
		}
		defer tty.DisableRaw()
	}
	kbd = host.NewKeyboard(syscall.Stdin)

	c := host.NewCLI(stdoutSink{}, engine.IO{
		GetByte:      kbd.GetByte,
		Write:        tty.Write,
		TimerArm:     kbd.TimerArm,
		TimerElapsed: kbd.TimerElapsed,
	})
	registry := buildRegistry(newStore())
	c.SetRegistry(registry)
	c.SetPrompt("kv> ")
	c.Editor().SetMultiLine(*multilineFlag)
	c.Editor().SetHints(host.RegistryHints(registry))

	if err := c.HistoryLoad(*hpath); err != nil {
		log.Printf("noline: %v", err)
	}

	var lastLoggedProbeErr error
	for c.Running() {
		c.Step()
		if err := c.Editor().LastProbeErr(); err != nil && err != lastLoggedProbeErr {
			log.Printf("noline: %v", err)
			lastLoggedProbeErr = err
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := c.HistorySave(*hpath); err != nil {
		log.Printf("noline: %v", err)
	}
	os.Exit(0)
}

//-----------------------------------------------------------------------------
