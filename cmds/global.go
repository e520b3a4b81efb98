package cmds

// GlobalExecutor is the process-wide executor. Packages that own a
// knob register it here from their init functions.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}
