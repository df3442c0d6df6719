// Command skv tracks a collection of purchased market items and their
// current sell price.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/skinvault/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	completion().Complete("skv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["topic"] = &complete.Command{
		Args: predict.Set{"readme", "fees", "impexp", "refresh", "search", "*"},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"vault-dir": predict.Dirs("*"),
		},
	}
}
