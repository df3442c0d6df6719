// Package skinvault provides the types and logic for tracking a personal
// collection of purchased in-game market items. It is designed to be
// local-first: every item, price point and setting lives in plain JSON files
// under a vault directory that the user fully owns.
//
// The core functionalities include:
//   - Item Tracking: Recording purchases (hash name, buy price, buy date) and
//     maintaining an append-only price history per item.
//   - Price Resolution: Resolving a market hash name to its current sell
//     price through a two-stage lookup (catalog search, numeric name-id,
//     order-book histogram), net of the marketplace fee.
//   - Auto Refresh: A scheduler that periodically re-resolves prices for all
//     tracked items, persists the updated collection and emits profit alerts.
//   - Analytics: A stateless view of the collection producing invested
//     capital, current value, profit, best/worst performers and a sell/hold
//     recommendation per item.
//   - Data Persistence: Import and export of the full vault as a single
//     portable JSON document.
//
// This package serves as the foundational logic for the `skv` command-line
// tool.
package skinvault
