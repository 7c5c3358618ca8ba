package shell

import (
	"errors"
	"fmt"

	"github.com/rcarmo/go-minish/pkg/core"
)

// ErrUnsupported reports an operator the execution engine cannot wire yet.
var ErrUnsupported = errors.New("operator not supported")

// Command is one dispatchable unit built from a line's word tokens. Argv
// holds owned copies of the word spans; an empty Argv is the valid result
// of a blank line. Background records a trailing '&', which is recognized
// but not acted on.
type Command struct {
	Argv       []string
	Background bool
}

// BuildCommand drains one lexer pass over buf and materializes the
// argument vector straight from its Word tokens. There is a single
// grammar: the same tokens the diagnostic trace sees are the ones argv is
// built from.
//
// Pipe and redirection tokens are part of the grammar but have no home in
// the single-command execution engine, so a line containing them is
// rejected rather than leaking operator bytes into a child's argv. An
// ampersand is dropped after setting Background.
func BuildCommand(buf []byte, log *core.Logger) (Command, error) {
	lx := NewLexer(buf)
	var cmd Command
	for {
		tok := lx.Next()
		log.Debugf("token %s %q [%d:%d]", tok.Kind, tok.Text(buf), tok.Start, tok.End)
		switch tok.Kind {
		case End:
			return cmd, nil
		case Word:
			cmd.Argv = append(cmd.Argv, tok.Text(buf))
		case Ampersand:
			cmd.Background = true
			log.Debugf("background marker ignored, running in foreground")
		default:
			return Command{}, fmt.Errorf("%q: %w", tok.Text(buf), ErrUnsupported)
		}
	}
}
