package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/skinvault/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	update bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `skv summary [-u]

  Displays the vault summary: totals, best and worst performers, and a
  per-item recommendation table.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "Refresh prices before summarizing.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	if c.update {
		if _, err := newScheduler(store).RunTick(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error refreshing prices: %v\n", err)
		}
	}

	items, err := store.Items()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(items)))
	return subcommands.ExitSuccess
}
