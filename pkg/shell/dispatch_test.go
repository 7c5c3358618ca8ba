package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcarmo/go-minish/pkg/shell"
	"github.com/rcarmo/go-minish/pkg/testutil"
)

func newTestShell(t *testing.T) (*shell.Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdio, out, errBuf := testutil.CaptureStdioNoInput()
	return shell.New(stdio, quietLogger()), out, errBuf
}

// lockCwd pins the working directory for tests that run cd.
func lockCwd(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestDispatchEmptyArgvIsNoop(t *testing.T) {
	sh, out, errBuf := newTestShell(t)
	if o := sh.Dispatch(shell.Command{}); o != shell.OutcomeSuccess {
		t.Errorf("outcome = %s, want success", o)
	}
	if out.String() != "" || errBuf.String() != "" {
		t.Errorf("no-op produced output: %q %q", out.String(), errBuf.String())
	}
}

func TestDispatchCd(t *testing.T) {
	lockCwd(t)
	sh, _, _ := newTestShell(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	if out := sh.Dispatch(shell.Command{Argv: []string{"cd", sub}}); out != shell.OutcomeSuccess {
		t.Fatalf("cd outcome = %s, want success", out)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(wd) != "sub" {
		t.Errorf("working directory = %s, want .../sub", wd)
	}
}

func TestDispatchCdFailureLeavesCwd(t *testing.T) {
	lockCwd(t)
	sh, _, _ := newTestShell(t)
	before, _ := os.Getwd()

	out := sh.Dispatch(shell.Command{Argv: []string{"cd", "/does/not/exist"}})
	if out != shell.OutcomeFail {
		t.Errorf("outcome = %s, want fail", out)
	}
	after, _ := os.Getwd()
	if before != after {
		t.Errorf("working directory changed: %s -> %s", before, after)
	}
}

func TestDispatchCdMissingArgument(t *testing.T) {
	lockCwd(t)
	sh, _, _ := newTestShell(t)
	if out := sh.Dispatch(shell.Command{Argv: []string{"cd"}}); out != shell.OutcomeFail {
		t.Errorf("outcome = %s, want fail", out)
	}
}

func TestDispatchCdRejectsFile(t *testing.T) {
	lockCwd(t)
	sh, _, _ := newTestShell(t)
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if out := sh.Dispatch(shell.Command{Argv: []string{"cd", file}}); out != shell.OutcomeFail {
		t.Errorf("outcome = %s, want fail", out)
	}
}

func TestDispatchExit(t *testing.T) {
	sh, _, _ := newTestShell(t)
	for _, argv := range [][]string{{"exit"}, {"exit", "0"}, {"exit", "ignored", "args"}} {
		if out := sh.Dispatch(shell.Command{Argv: argv}); out != shell.OutcomeExit {
			t.Errorf("argv %v: outcome = %s, want exit", argv, out)
		}
	}
}

func TestDispatchHelp(t *testing.T) {
	sh, out, _ := newTestShell(t)
	if o := sh.Dispatch(shell.Command{Argv: []string{"help", "extra"}}); o != shell.OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", o)
	}
	got := out.String()
	for _, name := range []string{"cd", "help", "exit"} {
		testutil.AssertOutputContains(t, got, name)
	}
}
