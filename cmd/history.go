package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/skinvault/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display an item's price history" }
func (*historyCmd) Usage() string {
	return `skv history <id | market_hash_name>

  Displays every recorded price observation of a single item, oldest first.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}

	items, err := openStore().Items()
	if err != nil {
		return fail(err)
	}
	i, err := findItem(items, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HistoryMarkdown(renderer.NewHistory(&items[i])))
	return subcommands.ExitSuccess
}
