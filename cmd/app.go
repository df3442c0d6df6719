// Package cmd implements the CLI application to manage the vault.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/skinvault"
	"github.com/etnz/skinvault/steam"
	"github.com/google/subcommands"
)

// Commands lists every subcommand in registration order.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&listCmd{},
	&historyCmd{},
	&searchCmd{},
	&refreshCmd{},
	&watchCmd{},
	&summaryCmd{},
	&settingsCmd{},
	&exportCmd{},
	&importCmd{},
	&clearCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var vaultDir = flag.String("vault-dir", defaultVaultDir(), "Path to the vault folder holding items and settings")

func defaultVaultDir() string {
	if dir := os.Getenv("SKINVAULT_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skinvault"
	}
	return filepath.Join(home, ".skinvault")
}

// openStore opens the vault store at the configured folder.
func openStore() *skinvault.Store { return skinvault.NewStore(*vaultDir) }

// newResolver builds a price resolver over the live market endpoints.
func newResolver() *skinvault.Resolver { return skinvault.NewResolver(steam.New()) }

// newScheduler assembles the refresh machinery over the store. The store is
// re-read before every tick so concurrent edits are honored.
func newScheduler(s *skinvault.Store) *skinvault.Scheduler {
	return skinvault.NewScheduler(
		newResolver(),
		skinvault.LogNotifier{},
		func() skinvault.Settings {
			st, err := s.Settings()
			if err != nil {
				return skinvault.DefaultSettings()
			}
			return st
		},
		func() []skinvault.Item {
			items, err := s.Items()
			if err != nil {
				return nil
			}
			return items
		},
		s.SaveItems,
	)
}

// findItem locates an item by id or by market hash name.
func findItem(items []skinvault.Item, key string) (int, error) {
	for i := range items {
		if items[i].ID == key {
			return i, nil
		}
	}
	for i := range items {
		if items[i].HashName == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no item %q in the vault", key)
}

// fail prints an error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
