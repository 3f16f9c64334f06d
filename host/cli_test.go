package host

import (
	"testing"

	"github.com/deadsy/go-noline/engine"
)

func testRegistry() Registry {
	return Registry{
		{Name: "set", Cmd: Command{Descr: "set a key"}},
		{Name: "get", Cmd: Command{Descr: "get a key"}},
		{Name: "exit", Cmd: Command{Descr: "exit"}},
	}
}

func Test_RegistryResolve(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		name    string
		wantOK  bool
		wantCmd string
	}{
		{"set", true, "set"},
		{"se", true, "set"},
		{"e", true, "exit"},
		{"x", false, ""},
		{"s", true, "set"},
	}
	for _, tt := range tests {
		e, err := r.resolve(tt.name)
		if tt.wantOK && err != nil {
			t.Errorf("resolve(%q) = err %v, want entry %q", tt.name, err, tt.wantCmd)
		}
		if tt.wantOK && e.Name != tt.wantCmd {
			t.Errorf("resolve(%q) = %q, want %q", tt.name, e.Name, tt.wantCmd)
		}
		if !tt.wantOK && err == nil {
			t.Errorf("resolve(%q) = %q, want error", tt.name, e.Name)
		}
	}
}

func Test_RegistryResolveAmbiguous(t *testing.T) {
	r := Registry{
		{Name: "show", Cmd: Command{}},
		{Name: "shutdown", Cmd: Command{}},
	}
	if _, err := r.resolve("sh"); err == nil {
		t.Fatalf("resolve(\"sh\") succeeded, want ambiguous error")
	}
}

func Test_RegistryMatching(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		prefix string
		want   int
	}{
		{"", 3},
		{"s", 1},
		{"e", 1},
		{"z", 0},
	}
	for _, tt := range tests {
		if got := len(r.matching(tt.prefix)); got != tt.want {
			t.Errorf("matching(%q) = %d entries, want %d", tt.prefix, got, tt.want)
		}
	}
}

func Test_CompletionCallback(t *testing.T) {
	c := &CLI{registry: testRegistry()}
	set := engine.NewCompletionSet()
	c.completionCallback("se", set)
	if set.Len() != 1 || set.At(0) != "set" {
		t.Fatalf("completions for \"se\" = %v, want [set]", set)
	}

	set = engine.NewCompletionSet()
	c.completionCallback("set foo", set)
	if set.Len() != 0 {
		t.Fatalf("completions past a space = %d, want 0", set.Len())
	}

	set = engine.NewCompletionSet()
	c.completionCallback("set", set)
	if set.Len() != 0 {
		t.Fatalf("completions for an exact, already-complete name = %d, want 0", set.Len())
	}
}

func Test_DispatchRunsResolvedCommand(t *testing.T) {
	var gotArgs []string
	c := &CLI{
		User: &putCollector{},
		registry: Registry{
			{Name: "echo", Cmd: Command{Func: func(_ *CLI, args []string) string {
				gotArgs = args
				return ""
			}}},
		},
	}
	c.editor = engine.New(engine.Config{IO: engine.IO{
		GetByte: func() (byte, bool) { return 0, false },
		Write:   func(p []byte) (int, error) { return len(p), nil },
	}})
	c.dispatch("echo a b c")
	if len(gotArgs) != 3 || gotArgs[0] != "a" || gotArgs[2] != "c" {
		t.Fatalf("dispatch passed args %v, want [a b c]", gotArgs)
	}
}

func Test_DispatchUnknownCommand(t *testing.T) {
	pc := &putCollector{}
	c := &CLI{User: pc, registry: testRegistry()}
	c.editor = engine.New(engine.Config{IO: engine.IO{
		GetByte: func() (byte, bool) { return 0, false },
		Write:   func(p []byte) (int, error) { return len(p), nil },
	}})
	c.dispatch("frobnicate")
	if len(pc.lines) != 1 || pc.lines[0] != "unknown command: frobnicate\n" {
		t.Fatalf("output = %v, want a single unknown-command line", pc.lines)
	}
}

type putCollector struct {
	lines []string
}

func (p *putCollector) Put(s string) {
	p.lines = append(p.lines, s)
}
