// Command opsheet reports on a Tinkoff Invest brokerage account.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/opsheet/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// answers the shell when it asks for completions, and exits.
	cmd.Completion(commander, flag.CommandLine).Complete("opsheet")

	flag.Parse()

	// unknown subcommands may be provided by an opsheet-<name> binary in PATH.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
