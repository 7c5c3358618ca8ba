// Command minish is the standalone entry point for the minish shell.
package main

import (
	"os"

	"github.com/rcarmo/go-minish/pkg/core"
	"github.com/rcarmo/go-minish/pkg/shell"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(shell.Run(stdio, os.Args[1:]))
}
