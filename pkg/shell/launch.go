package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

var errNotFound = errors.New("command not found")

// Launch spawns an external program and blocks until it terminates. The
// child inherits the shell's standard streams and the ambient environment;
// argv[0] is both the lookup name and the name the program sees. A zero
// exit status maps to Success, everything else to Fail: the shell does
// not distinguish "not found" from "ran and failed".
//
// An empty argv reaching this point is a dispatcher invariant violation,
// guarded here instead of left undefined.
func (sh *Shell) Launch(argv []string) Outcome {
	if len(argv) == 0 || argv[0] == "" {
		sh.log.Errorf("launch: empty argument vector")
		return OutcomeFail
	}
	path, err := lookPath(argv[0])
	if err != nil {
		sh.log.Errorf("%s: %v", argv[0], err)
		return OutcomeFail
	}
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  sh.stdio.In,
		Stdout: sh.stdio.Out,
		Stderr: sh.stdio.Err,
	}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() == -1 {
				sh.log.Debugf("%s: terminated by signal: %v", argv[0], exitErr)
			}
			return OutcomeFail
		}
		sh.log.Errorf("%s: %v", argv[0], err)
		return OutcomeFail
	}
	return OutcomeSuccess
}

// lookPath resolves a command name against $PATH. A name containing a
// path separator bypasses the search and is used as-is.
func lookPath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		if err := isExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, name)
		if isExecutable(path) == nil {
			return path, nil
		}
	}
	return "", errNotFound
}

func isExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file")
	}
	return unix.Access(path, unix.X_OK)
}
