package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/etnz/skinvault"
	"github.com/google/subcommands"
)

func TestFindItem(t *testing.T) {
	items := []skinvault.Item{
		{ID: "1", HashName: "AK-47 | Redline (Field-Tested)"},
		{ID: "2", HashName: "AWP | Asiimov (Field-Tested)"},
	}

	testCases := []struct {
		key     string
		want    int
		wantErr bool
	}{
		{"2", 1, false},
		{"AK-47 | Redline (Field-Tested)", 0, false},
		{"M4A4 | Howl", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			got, err := findItem(items, tc.key)
			if (err != nil) != tc.wantErr {
				t.Fatalf("findItem(%q) error = %v, wantErr %v", tc.key, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("findItem(%q) = %d, want %d", tc.key, got, tc.want)
			}
		})
	}
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()
	*vaultDir = dir

	c := &settingsCmd{}
	f := flag.NewFlagSet("settings", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-interval", "300000", "-threshold", "25"}); err != nil {
		t.Fatal(err)
	}
	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("settings returned %v, want success", status)
	}

	st, err := openStore().Settings()
	if err != nil {
		t.Fatal(err)
	}
	if st.RefreshMillis != 300_000 {
		t.Errorf("RefreshMillis = %d, want 300000", st.RefreshMillis)
	}
	if st.AlertThreshold != 25 {
		t.Errorf("AlertThreshold = %v, want 25", st.AlertThreshold)
	}
	// Untouched settings keep their default.
	if !st.AutoRefresh || st.Theme != "dark" {
		t.Errorf("AutoRefresh = %v Theme = %q, want defaults preserved", st.AutoRefresh, st.Theme)
	}
}

func TestSettingsCommandRejectsUnsupportedInterval(t *testing.T) {
	dir := t.TempDir()
	*vaultDir = dir

	c := &settingsCmd{}
	f := flag.NewFlagSet("settings", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-interval", "1234"}); err != nil {
		t.Fatal(err)
	}
	if status := c.Execute(context.Background(), f); status == subcommands.ExitSuccess {
		t.Fatal("settings accepted an unsupported interval")
	}

	// Nothing was written.
	st, err := openStore().Settings()
	if err != nil {
		t.Fatal(err)
	}
	if st.RefreshMillis != skinvault.DefaultSettings().RefreshMillis {
		t.Errorf("RefreshMillis = %d, want the default preserved", st.RefreshMillis)
	}
}
