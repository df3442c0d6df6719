package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/skinvault"
	"github.com/etnz/skinvault/date"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name      string
	condition string
	float     float64
	price     string
	bought    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "track a newly purchased item" }
func (*addCmd) Usage() string {
	return `skv add -p <buy_price> [-n <name>] [-c <condition>] [-f <float>] [-d <buy_date>] <market_hash_name>

  Validates the market hash name against the item catalog, resolves the
  current price, and appends the item to the vault. An unknown hash name
  aborts the command and nothing is written.

Usage Examples:
$ skv add -p 10.50 -c "Field-Tested" "AK-47 | Redline (Field-Tested)"

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Display name. Defaults to the catalog name.")
	f.StringVar(&c.condition, "c", "", "Wear condition, e.g. Field-Tested.")
	f.Float64Var(&c.float, "f", 0, "Float value of the item.")
	f.StringVar(&c.price, "p", "", "Buy price in USD.")
	f.StringVar(&c.bought, "d", date.Today().String(), "Buy date.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	hashName := f.Arg(0)

	buy, err := strconv.ParseFloat(c.price, 64)
	if err != nil || buy <= 0 {
		return fail(fmt.Errorf("invalid buy price %q, want a positive amount", c.price))
	}
	bought, err := date.Parse(c.bought)
	if err != nil {
		return fail(fmt.Errorf("invalid buy date: %w", err))
	}

	entry, err := newResolver().Lookup(ctx, hashName)
	if errors.Is(err, skinvault.ErrNotFound) {
		return fail(fmt.Errorf("unknown item %q, check the exact market hash name with 'skv search'", hashName))
	}
	if err != nil {
		return fail(err)
	}

	name := c.name
	if name == "" {
		name = entry.Name
	}
	item := skinvault.Item{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		HashName:    entry.HashName,
		Name:        name,
		Type:        entry.Type,
		Rarity:      entry.Rarity,
		RarityColor: entry.RarityColor,
		Condition:   c.condition,
		Float:       c.float,
		BuyPrice:    skinvault.M(buy),
		BuyDate:     bought,
		ImageURL:    entry.Image,
	}
	if !entry.SalePrice.IsZero() {
		item.SetPrice(entry.SalePrice, time.Now())
	}

	store := openStore()
	items, err := store.Items()
	if err != nil {
		return fail(err)
	}
	items = append(items, item)
	if err := store.SaveItems(items); err != nil {
		return fail(err)
	}

	fmt.Printf("Added %q to the vault", item.Name)
	if item.HasPrice() {
		fmt.Printf(", current price %s", item.CurrentPrice)
	}
	fmt.Println(".")
	return subcommands.ExitSuccess
}
