package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/skinvault"
	"github.com/etnz/skinvault/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the item catalog" }
func (*searchCmd) Usage() string {
	return `skv search [<query>]

  Searches the item catalog by market hash name and shows the current ask of
  each match. With a query argument the search runs once. Without arguments
  the command is interactive: it reads queries from stdin, coalescing rapid
  edits and cancelling a search made stale by a newer one, until EOF.

Usage Examples:
$ skv search "ak-47 redline"

`
}

func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	resolver := newResolver()

	run := func(ctx context.Context, query string) {
		entries, err := resolver.Search(ctx, query)
		if ctx.Err() != nil {
			// A newer query made this one stale, drop the result.
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", query, err)
			return
		}
		printMarkdown(renderer.SearchMarkdown(renderer.NewSearch(query, entries)))
	}

	if f.NArg() > 0 {
		run(ctx, strings.Join(f.Args(), " "))
		return subcommands.ExitSuccess
	}

	debouncer := skinvault.NewDebouncer(run)
	defer debouncer.Close()

	fmt.Println("Type a query (at least", skinvault.DefaultMinQuery, "characters), Ctrl+D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		debouncer.Input(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
