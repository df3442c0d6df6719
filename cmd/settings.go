package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/skinvault"
	"github.com/etnz/skinvault/renderer"
	"github.com/google/subcommands"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	auto      string
	interval  int
	threshold float64
	theme     string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the vault settings" }
func (*settingsCmd) Usage() string {
	return `skv settings [-auto on|off] [-interval <ms>] [-threshold <percent>] [-theme dark|light]

  Without flags, displays the current settings. With flags, updates the named
  settings and leaves the others untouched. A running 'skv watch' picks the
  change up on its next round.

Usage Examples:
$ skv settings -auto on -interval 300000

`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.auto, "auto", "", "Enable or disable auto refresh (on or off).")
	f.IntVar(&c.interval, "interval", 0, fmt.Sprintf("Refresh interval in milliseconds, one of %v.", skinvault.RefreshIntervals))
	f.Float64Var(&c.threshold, "threshold", 0, "Profit percent that triggers an alert.")
	f.StringVar(&c.theme, "theme", "", "Terminal rendering theme (dark or light).")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	st, err := store.Settings()
	if err != nil {
		return fail(err)
	}

	changed := false
	switch c.auto {
	case "":
	case "on":
		st.AutoRefresh, changed = true, true
	case "off":
		st.AutoRefresh, changed = false, true
	default:
		return fail(fmt.Errorf("invalid -auto %q, want on or off", c.auto))
	}
	if c.interval != 0 {
		st.RefreshMillis, changed = c.interval, true
	}
	if c.threshold != 0 {
		st.AlertThreshold, changed = skinvault.Percent(c.threshold), true
	}
	if c.theme != "" {
		st.Theme, changed = c.theme, true
	}

	if changed {
		if err := st.Validate(); err != nil {
			return fail(err)
		}
		if err := store.SaveSettings(st); err != nil {
			return fail(err)
		}
	}

	printMarkdown(renderer.SettingsMarkdown(renderer.NewSettings(st)))
	return subcommands.ExitSuccess
}
