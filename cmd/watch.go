package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
)

type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "keep refreshing prices on the configured interval" }
func (*watchCmd) Usage() string {
	return `skv watch

  Runs the auto-refresh loop until interrupted. A refresh pass runs on the
  configured interval as long as auto refresh is enabled and the vault is not
  empty; settings changes are picked up on the next round without restarting.
`
}

func (*watchCmd) SetFlags(*flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Watching the vault, Ctrl+C to stop.")
	newScheduler(openStore()).Run(ctx)
	return subcommands.ExitSuccess
}
