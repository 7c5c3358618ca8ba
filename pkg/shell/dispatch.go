package shell

// Outcome is the tri-state result a command reports back to the read
// loop. Success and Fail both keep the loop running; Exit terminates it.
// No richer exit-code propagation crosses this boundary.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFail
	OutcomeExit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFail:
		return "fail"
	case OutcomeExit:
		return "exit"
	}
	return "unknown"
}

// Dispatch routes one command. An empty argv is a no-op. The first exact
// name match in the builtin table wins and receives the full argv;
// anything else goes to the process launcher.
func (sh *Shell) Dispatch(cmd Command) Outcome {
	if len(cmd.Argv) == 0 {
		return OutcomeSuccess
	}
	for _, b := range sh.builtins {
		if b.name == cmd.Argv[0] {
			return b.fn(sh, cmd.Argv)
		}
	}
	return sh.Launch(cmd.Argv)
}
