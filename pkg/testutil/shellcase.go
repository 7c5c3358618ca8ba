package testutil

import (
	"os"
	"testing"

	"github.com/rcarmo/go-minish/pkg/core"
)

// RunShell is the entry-point signature under test.
type RunShell func(stdio *core.Stdio, args []string) int

// ShellTestCase defines a parameterized test case for the shell.
type ShellTestCase struct {
	Name       string                         // Test name
	Args       []string                       // Command line arguments
	Input      string                         // Stdin input
	WantCode   int                            // Expected exit code
	WantOut    string                         // Expected stdout (exact match)
	WantOutSub string                         // Expected stdout substring
	WantErrSub string                         // Expected stderr substring
	Files      map[string]string              // Files to create in temp dir
	Check      func(t *testing.T, dir string) // Optional post-run check
}

// RunShellTests runs a slice of parameterized shell test cases, each in
// its own temp working directory.
func RunShellTests(t *testing.T, run RunShell, tests []ShellTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var dir string
			if len(tt.Files) > 0 {
				dir = TempDirWithFiles(t, tt.Files)
			} else {
				dir = t.TempDir()
			}

			oldDir, _ := os.Getwd()
			if err := os.Chdir(dir); err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { _ = os.Chdir(oldDir) })

			stdio, out, errBuf := CaptureStdio(tt.Input)
			code := run(stdio, tt.Args)

			AssertExitCode(t, code, tt.WantCode)
			if tt.WantOut != "" {
				AssertOutput(t, out.String(), tt.WantOut)
			}
			if tt.WantOutSub != "" {
				AssertOutputContains(t, out.String(), tt.WantOutSub)
			}
			if tt.WantErrSub != "" {
				AssertOutputContains(t, errBuf.String(), tt.WantErrSub)
			}
			if tt.Check != nil {
				tt.Check(t, dir)
			}
		})
	}
}
