package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/internal/command"
	"github.com/msto63/mcalc/internal/plugins"
)

func newTestShell(t *testing.T, input string) (*Shell, *bytes.Buffer) {
	t.Helper()

	registry := command.NewRegistry(nil)
	for _, p := range plugins.All() {
		for _, cmd := range p.Commands() {
			if err := registry.Register(cmd); err != nil {
				t.Fatalf("Register(%s) error = %v", cmd.Name(), err)
			}
		}
	}

	var out bytes.Buffer
	sh, err := New(registry, Config{
		In:        strings.NewReader(input),
		Out:       &out,
		SessionID: "test-session",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sh, &out
}

func TestNew_RegistersMenuLast(t *testing.T) {
	sh, _ := newTestShell(t, "")

	list := sh.registry.List()
	if last := list[len(list)-1]; last.Name != command.MenuCommandName {
		t.Errorf("last command = %s, want %s", last.Name, command.MenuCommandName)
	}
	if sh.State() != StateAwaitingInput {
		t.Errorf("State() = %s, want %s", sh.State(), StateAwaitingInput)
	}
	if sh.Session().ID != "test-session" {
		t.Errorf("session ID = %q", sh.Session().ID)
	}
}

func TestNew_GeneratesSessionID(t *testing.T) {
	sh, err := New(command.NewRegistry(nil), Config{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(sh.Session().ID) != 36 {
		t.Errorf("session ID = %q, want a UUID", sh.Session().ID)
	}
}

func TestRun_AddThenExit(t *testing.T) {
	sh, out := newTestShell(t, "add\n5 3\nexit\nexit\n")

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Application started. Type 'show_menu' to see the menu or 'exit' to exit.\n\n>>> ",
		"Operation: Addition",
		"The result of 5 add 3 is equal to 8\n",
		"Exiting addition operation.",
		">>> Exiting...\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if !sh.Exited() || sh.State() != StateExited {
		t.Errorf("State() = %s, want %s", sh.State(), StateExited)
	}
	if sh.Session().History.Len() != 1 {
		t.Errorf("history length = %d, want 1", sh.Session().History.Len())
	}
	if executed, failed := sh.Stats(); executed != 1 || failed != 0 {
		t.Errorf("Stats() = %d, %d, want 1, 0", executed, failed)
	}
}

func TestRun_EndOfInputExits(t *testing.T) {
	sh, out := newTestShell(t, "")

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasSuffix(out.String(), ">>> Exiting...\n") {
		t.Errorf("output = %q", out.String())
	}
	if !sh.Exited() {
		t.Error("shell should exit at end of input")
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		want       []string
		wantFailed int
	}{
		{
			name: "empty input shows menu",
			line: "",
			want: []string{"Application Menu:", "show_menu: Show the dynamic menu of all commands."},
		},
		{
			name:       "unknown command shows menu",
			line:       "power 2 3",
			want:       []string{"Unknown command: power 2 3\n", "Application Menu:", "add: Continuously add two numbers."},
			wantFailed: 1,
		},
		{
			name:       "command error is reported",
			line:       "history rewind",
			want:       []string{"Error executing command: "},
			wantFailed: 1,
		},
		{
			name: "history lists earlier calculation",
			line: "history",
			want: []string{"1. Calculation(1, 2, add) = 3\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := newTestShell(t, "")
			if _, err := sh.Session().Calculator().Evaluate("1", "2", calculator.Add); err != nil {
				t.Fatal(err)
			}
			sh.Handle(context.Background(), tt.line)

			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
			if sh.State() != StateAwaitingInput {
				t.Errorf("State() = %s, want %s", sh.State(), StateAwaitingInput)
			}
			if _, failed := sh.Stats(); failed != tt.wantFailed {
				t.Errorf("failed = %d, want %d", failed, tt.wantFailed)
			}
			if got := sh.Session().History.Len(); got != 1 {
				t.Errorf("history length = %d, want 1", got)
			}
		})
	}
}

func TestRun_UnknownCommandKeepsHistory(t *testing.T) {
	sh, out := newTestShell(t, "add\n1 2\nexit\npower 2 3\nhistory\nexit\n")

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	unknown := strings.Index(got, "Unknown command: power 2 3\n")
	listed := strings.LastIndex(got, "1. Calculation(1, 2, add) = 3\n")
	if unknown < 0 || listed < unknown {
		t.Errorf("history after unknown command not listed:\n%s", got)
	}
	if strings.Contains(got, "2. Calculation") {
		t.Errorf("unknown command added a history entry:\n%s", got)
	}
	if sh.Session().History.Len() != 1 {
		t.Errorf("history length = %d, want 1", sh.Session().History.Len())
	}
}

func TestRun_LongOperandLine(t *testing.T) {
	digits := strings.Repeat("7", 70000)
	sh, out := newTestShell(t, "add\n"+digits+" 2\n1 2\nexit\nhistory\nexit\n")

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"The result of 1 add 2 is equal to 3\n",
		"1. Calculation(" + digits + ", 2, add) = " + strings.Repeat("7", 69999) + "9\n",
		"2. Calculation(1, 2, add) = 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", abbrev(want))
		}
	}
	if !strings.HasSuffix(got, ">>> Exiting...\n") || !sh.Exited() {
		t.Errorf("shell did not exit cleanly, output ends %q", got[len(got)-min(len(got), 80):])
	}
}

func TestRun_LineOverLimit(t *testing.T) {
	tooLong := strings.Repeat("1", command.MaxLineLength+1)
	sh, out := newTestShell(t, tooLong+"\nadd\n"+tooLong+"\n1 2\nexit\nhistory\nexit\n")

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		">>> Error: input line longer than 1048576 bytes\n>>> ",
		"Error: input line longer than 1048576 bytes\nPlease try again or type 'exit' to exit.\n\n",
		"The result of 1 add 2 is equal to 3\n",
		"1. Calculation(1, 2, add) = 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if sh.Session().History.Len() != 1 || !sh.Exited() {
		t.Errorf("history length = %d, exited = %v", sh.Session().History.Len(), sh.Exited())
	}
}

func abbrev(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}

func TestHandle_ExitIsCaseInsensitive(t *testing.T) {
	sh, out := newTestShell(t, "")

	sh.Handle(context.Background(), "  EXIT ")
	if out.String() != "Exiting...\n" || !sh.Exited() {
		t.Errorf("output = %q, exited = %v", out.String(), sh.Exited())
	}

	sh.Handle(context.Background(), "add")
	if out.String() != "Exiting...\n" {
		t.Errorf("input after exit was processed: %q", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	sh, _ := newTestShell(t, "history\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sh.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
