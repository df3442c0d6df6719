// Package steam accesses the public data sources backing the vault: the
// community item catalog, the hash-name to name-id mapping, and the Steam
// market order-book histogram.
package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/skinvault"
)

// Default endpoints. The catalog and the mapping are community-maintained
// static JSON files; the histogram is the live Steam market endpoint.
const (
	DefaultCatalogURL = "https://raw.githubusercontent.com/ByMykel/CSGO-API/main/public/api/en/all.json"
	DefaultMappingURL = "https://raw.githubusercontent.com/somespecialone/steam-item-name-ids/refs/heads/master/data/cs2.json"
	DefaultMarketURL  = "https://steamcommunity.com/market"
)

// Client fetches raw market data. All three base URLs are settable so tests
// can point them at local fake servers.
type Client struct {
	CatalogURL string
	MappingURL string
	MarketURL  string

	HTTP *http.Client
}

// New returns a client over the default public endpoints.
func New() *Client {
	return &Client{
		CatalogURL: DefaultCatalogURL,
		MappingURL: DefaultMappingURL,
		MarketURL:  DefaultMarketURL,
		HTTP:       http.DefaultClient,
	}
}

// The catalog file is a single object keyed by item id.
//
//	{
//	  "skin-ak47-redline": {
//	    "id": "skin-ak47-redline",
//	    "name": "AK-47 | Redline",
//	    "market_hash_name": "AK-47 | Redline (Field-Tested)",
//	    "image": "https://...",
//	    "rarity": { "name": "Classified", "color": "#d32ce6" },
//	    "weapon": { "name": "AK-47" },
//	    "category": { "name": "Rifles" }
//	  }, ...
//	}
type jcatalogItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MarketHashName string `json:"market_hash_name"`
	Image          string `json:"image"`
	Rarity         struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	} `json:"rarity"`
	Weapon struct {
		Name string `json:"name"`
	} `json:"weapon"`
	Category struct {
		Name string `json:"name"`
	} `json:"category"`
}

// FetchCatalog downloads the full item catalog.
func (c *Client) FetchCatalog(ctx context.Context) ([]skinvault.CatalogItem, error) {
	content := make(map[string]jcatalogItem)
	if err := jwget(ctx, c.HTTP, c.CatalogURL, &content); err != nil {
		return nil, err
	}
	items := make([]skinvault.CatalogItem, 0, len(content))
	for _, ji := range content {
		kind := ji.Weapon.Name
		if kind == "" {
			kind = ji.Category.Name
		}
		if kind == "" {
			kind = "Unknown"
		}
		rarity := ji.Rarity.Name
		if rarity == "" {
			rarity = "Unknown"
		}
		items = append(items, skinvault.CatalogItem{
			ID:          ji.ID,
			HashName:    ji.MarketHashName,
			Name:        ji.Name,
			Type:        kind,
			Rarity:      rarity,
			RarityColor: ji.Rarity.Color,
			Image:       ji.Image,
		})
	}
	return items, nil
}

// FetchNameIDs downloads the full hash-name to name-id mapping.
func (c *Client) FetchNameIDs(ctx context.Context) (map[string]int64, error) {
	content := make(map[string]int64)
	if err := jwget(ctx, c.HTTP, c.MappingURL, &content); err != nil {
		return nil, err
	}
	return content, nil
}

// FetchOrderBook queries the live order-book histogram for a name-id.
//
// The endpoint answers with a loosely typed document where the interesting
// numbers come as strings of minor currency units:
//
//	{
//	  "success": 1,
//	  "lowest_sell_order": "1050",
//	  "highest_buy_order": "980",
//	  ...
//	}
//
// Missing orders show up as absent or null fields, which read as zero.
func (c *Client) FetchOrderBook(ctx context.Context, nameID int64) (skinvault.OrderBook, error) {
	q := url.Values{}
	q.Set("country", "US")
	q.Set("language", "english")
	q.Set("currency", "1")
	q.Set("item_nameid", strconv.FormatInt(nameID, 10))
	q.Set("norender", "1")
	addr := c.MarketURL + "/itemordershistogram?" + q.Encode()

	var jobj any
	if err := jwget(ctx, c.HTTP, addr, &jobj); err != nil {
		return skinvault.OrderBook{}, fmt.Errorf("order book for %d: %w", nameID, err)
	}

	sell, err := centsAt(jobj, "$.lowest_sell_order")
	if err != nil {
		return skinvault.OrderBook{}, fmt.Errorf("order book for %d: %w", nameID, err)
	}
	buy, err := centsAt(jobj, "$.highest_buy_order")
	if err != nil {
		return skinvault.OrderBook{}, fmt.Errorf("order book for %d: %w", nameID, err)
	}
	return skinvault.OrderBook{LowestSellCents: sell, HighestBuyCents: buy}, nil
}

// centsAt extracts an amount of minor currency units at a jsonpath, coping
// with the endpoint's habit of returning numbers as strings.
func centsAt(jobj any, path string) (int64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// An absent field means no orders on that side of the book.
		return 0, nil
	}
	switch v := jval.(type) {
	case nil:
		return 0, nil
	case float64:
		return int64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read %q: invalid amount %q: %w", path, s, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot read %q: neither a number nor a string but %T", path, jval)
	}
}

var _ skinvault.MarketSource = (*Client)(nil)
