package skinvault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// this file contains code to persist the vault in a folder, in a way that is
// still human readable and git friendly: one JSON file for the items, one
// for the settings.

const (
	itemsFilename    = "items.json"
	settingsFilename = "settings.json"
)

// Store persists the item collection and the settings under a vault
// directory. A missing directory or missing files read as an empty
// collection and default settings, never as errors: the vault springs into
// existence on the first write.
type Store struct {
	dir string
}

// NewStore returns a store over the given vault directory.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the vault directory.
func (s *Store) Dir() string { return s.dir }

// Items reads the full item collection.
func (s *Store) Items() ([]Item, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, itemsFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", itemsFilename, err)
	}
	return items, nil
}

// SaveItems writes the full item collection, replacing the previous one.
func (s *Store) SaveItems(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	return s.write(itemsFilename, b)
}

// Settings reads the settings, merged over the defaults so a file written by
// an older version still yields a complete value.
func (s *Store) Settings() (Settings, error) {
	st := DefaultSettings()
	b, err := os.ReadFile(filepath.Join(s.dir, settingsFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(b, &st); err != nil {
		return DefaultSettings(), fmt.Errorf("parse %s: %w", settingsFilename, err)
	}
	return st, nil
}

// SaveSettings persists the settings.
func (s *Store) SaveSettings(st Settings) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.write(settingsFilename, b)
}

// Clear removes both vault files. The directory itself is kept.
func (s *Store) Clear() error {
	for _, name := range []string{itemsFilename, settingsFilename} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) write(name string, b []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), append(b, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
