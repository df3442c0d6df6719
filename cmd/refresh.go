package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh the price of every tracked item once" }
func (*refreshCmd) Usage() string {
	return `skv refresh

  Resolves the current price of every item in the vault, records the changed
  ones in their history, and saves the result. This is the same pass the
  'watch' command runs on its interval.
`
}

func (*refreshCmd) SetFlags(*flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := newScheduler(openStore()).RunTick(ctx); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
