package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	// aliases share the *Command; print each once under its names
	printed := make(map[*Command][]string)
	for name, command := range commands {
		printed[command] = append(printed[command], name)
	}

	var order []*Command
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if !slices.Contains(order, command) {
			order = append(order, command)
		}
	}

	pad := strings.Repeat("  ", indent)
	for _, command := range order {
		names := printed[command]
		slices.Sort(names)
		fmt.Fprintf(os.Stderr, "%s%s", pad, strings.Join(names, " | "))
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "\n%s  %s", pad, command.Description)
		}
		fmt.Fprintln(os.Stderr)
		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
