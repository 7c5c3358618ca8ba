// Package shell implements minish, a minimal interactive shell: one
// lexer over the shell grammar, a fixed builtin table, and a synchronous
// spawn-and-wait launcher for everything else.
package shell

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/rcarmo/go-minish/pkg/core"
)

// Shell ties the components together. All I/O goes through the injected
// Stdio and all diagnostics through the injected Logger; the only mutable
// state crossing loop iterations is the process working directory.
type Shell struct {
	stdio    *core.Stdio
	log      *core.Logger
	builtins []builtin
}

// New returns a Shell with the fixed builtin table.
func New(stdio *core.Stdio, log *core.Logger) *Shell {
	return &Shell{
		stdio:    stdio,
		log:      log,
		builtins: defaultBuiltins(),
	}
}

// Run executes the shell. With no arguments it enters the interactive
// read loop; "-c line" evaluates a single command line and exits with its
// outcome. A "-v" ahead of either switches diagnostics to debug level.
func Run(stdio *core.Stdio, args []string) int {
	level := core.LogError
	if len(args) > 0 && args[0] == "-v" {
		level = core.LogDebug
		args = args[1:]
	}
	sh := New(stdio, core.NewLogger(stdio.Err, level))

	if len(args) > 0 {
		if args[0] != "-c" {
			return core.UsageError(stdio, "minish", "usage: minish [-v] [-c line]")
		}
		if len(args) < 2 {
			return core.UsageError(stdio, "minish", "-c: missing command line")
		}
		if sh.Eval([]byte(args[1])) == OutcomeFail {
			return core.ExitFailure
		}
		return core.ExitSuccess
	}
	return sh.Interactive()
}

// Eval runs one input line through lex, build, and dispatch. Per-line
// state lives and dies inside this call.
func (sh *Shell) Eval(line []byte) Outcome {
	cmd, err := BuildCommand(line, sh.log)
	if err != nil {
		sh.log.Errorf("%v", err)
		return OutcomeFail
	}
	out := sh.Dispatch(cmd)
	sh.log.Debugf("dispatch: %q -> %s", cmd.Argv, out)
	return out
}

// Interactive drives the prompt-read-eval loop until an exit command or
// end of input. A real terminal gets line editing; anything else gets
// plain buffered reads so the shell stays scriptable.
func (sh *Shell) Interactive() int {
	if f, ok := sh.stdio.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return sh.loopTerminal()
	}
	return sh.loopPlain()
}

func (sh *Shell) loopTerminal() int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "minish > ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stderr:          sh.stdio.Err,
	})
	if err != nil {
		sh.log.Errorf("readline: %v", err)
		return core.ExitFailure
	}
	defer rl.Close()

	for {
		p, err := sh.prompt()
		if err != nil {
			sh.log.Errorf("getwd: %v", err)
			return core.ExitFailure
		}
		rl.SetPrompt(p)

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return core.ExitSuccess
		}
		if sh.Eval([]byte(line)) == OutcomeExit {
			return core.ExitSuccess
		}
	}
}

func (sh *Shell) loopPlain() int {
	// Scanner's default buffer bounds the accepted line length.
	scanner := bufio.NewScanner(sh.stdio.In)
	for {
		p, err := sh.prompt()
		if err != nil {
			sh.log.Errorf("getwd: %v", err)
			return core.ExitFailure
		}
		sh.stdio.Print(p)

		if !scanner.Scan() {
			return core.ExitSuccess
		}
		if sh.Eval(scanner.Bytes()) == OutcomeExit {
			return core.ExitSuccess
		}
	}
}

// prompt is the trailing path segment of the working directory. Not being
// able to read the working directory is the one failure that tears the
// loop down.
func (sh *Shell) prompt() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Base(dir) + " > ", nil
}
