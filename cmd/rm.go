package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the vault" }
func (*rmCmd) Usage() string {
	return `skv rm <id | market_hash_name>

  Removes a tracked item. The item is matched by id first, then by market
  hash name.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}

	store := openStore()
	items, err := store.Items()
	if err != nil {
		return fail(err)
	}
	i, err := findItem(items, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	removed := items[i]
	items = append(items[:i], items[i+1:]...)
	if err := store.SaveItems(items); err != nil {
		return fail(err)
	}

	fmt.Printf("Removed %q from the vault.\n", removed.Name)
	return subcommands.ExitSuccess
}
