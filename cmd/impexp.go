package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole vault as JSON on stdout" }
func (*exportCmd) Usage() string {
	return `skv export > backup.json

  Writes the items and the settings as a single portable JSON document.
`
}

func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w := bufio.NewWriter(os.Stdout)
	if err := openStore().Export(w); err != nil {
		return fail(err)
	}
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the vault content from a JSON document on stdin" }
func (*importCmd) Usage() string {
	return `skv import < backup.json

  Reads a document produced by 'skv export' and replaces the vault content.
  The document is validated in full first: a malformed one leaves the vault
  untouched. A document carrying only items or only settings replaces just
  that part.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := openStore().Import(os.Stdin); err != nil {
		return fail(err)
	}
	fmt.Fprintln(os.Stderr, "Vault imported.")
	return subcommands.ExitSuccess
}

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every item and reset the settings" }
func (*clearCmd) Usage() string {
	return `skv clear -f

  Deletes the vault files. This cannot be undone, take a backup with
  'skv export' first.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Actually clear the vault.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Refusing to clear the vault without -f.")
		return subcommands.ExitUsageError
	}
	if err := openStore().Clear(); err != nil {
		return fail(err)
	}
	fmt.Fprintln(os.Stderr, "Vault cleared.")
	return subcommands.ExitSuccess
}
