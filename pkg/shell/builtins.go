package shell

import "os"

// builtinFunc runs in-process with the full argument vector, argv[0]
// included.
type builtinFunc func(sh *Shell, argv []string) Outcome

type builtin struct {
	name string
	fn   builtinFunc
}

// defaultBuiltins returns the fixed builtin table. Order is match
// priority; the table never changes after Shell construction.
func defaultBuiltins() []builtin {
	return []builtin{
		{"cd", builtinCd},
		{"help", builtinHelp},
		{"exit", builtinExit},
	}
}

// builtinCd changes the working directory, the only shell state that
// survives across loop iterations. There is no fallback to $HOME: cd
// without an argument fails.
func builtinCd(sh *Shell, argv []string) Outcome {
	if len(argv) < 2 {
		sh.log.Errorf("cd: missing argument")
		return OutcomeFail
	}
	target := argv[1]
	info, err := os.Stat(target)
	if err != nil {
		sh.log.Errorf("cd: %s: %v", target, err)
		return OutcomeFail
	}
	if !info.IsDir() {
		sh.log.Errorf("cd: %s: not a directory", target)
		return OutcomeFail
	}
	if err := os.Chdir(target); err != nil {
		sh.log.Errorf("cd: %s: %v", target, err)
		return OutcomeFail
	}
	return OutcomeSuccess
}

// builtinHelp prints the banner and the builtin list. It has no failure
// path and ignores its arguments.
func builtinHelp(sh *Shell, argv []string) Outcome {
	sh.stdio.Println("minish, a minimal shell")
	sh.stdio.Println("Type program names and arguments, then hit enter.")
	sh.stdio.Println("The following commands are built in:")
	for _, b := range sh.builtins {
		sh.stdio.Printf("  %s\n", b.name)
	}
	return OutcomeSuccess
}

func builtinExit(sh *Shell, argv []string) Outcome {
	return OutcomeExit
}
