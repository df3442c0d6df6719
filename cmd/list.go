package cmd

import (
	"context"
	"flag"

	"github.com/etnz/skinvault/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the tracked items" }
func (*listCmd) Usage() string {
	return `skv list

  Displays every tracked item with its buy price, current price and profit.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := openStore().Items()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ListMarkdown(renderer.NewList(items)))
	return subcommands.ExitSuccess
}
