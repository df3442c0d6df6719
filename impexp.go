package skinvault

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the import/export format.
// It is a single human-readable JSON document, easy to back up and to move
// between machines.

// jdocument is the import/export document: the items, the settings, and the
// instant the export was taken. On import every key is optional; present
// keys overwrite the corresponding part of the vault, absent keys leave it
// untouched.
type jdocument struct {
	Items      []Item          `json:"items,omitempty"`
	Settings   json.RawMessage `json:"settings,omitempty"`
	ExportDate string          `json:"exportDate,omitempty"`
}

// Export writes the full vault state to 'w' as a single JSON document.
func (s *Store) Export(w io.Writer) error {
	items, err := s.Items()
	if err != nil {
		return err
	}
	settings, err := s.Settings()
	if err != nil {
		return err
	}
	jsettings, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	doc := jdocument{
		Items:      items,
		Settings:   jsettings,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("cannot write export document: %w", err)
	}
	return nil
}

// Import reads a document from 'r' and merges it into the vault.
//
// The document is parsed in full before anything is written: a malformed
// document is rejected atomically, no partial merge occurs. Settings are
// merged over the current ones, so a document carrying only some settings
// keys keeps the rest.
func (s *Store) Import(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read import document: %w", err)
	}
	var doc jdocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("cannot parse import document: %w", err)
	}

	// Validate the settings fragment before writing anything.
	var settings Settings
	if doc.Settings != nil {
		settings, err = s.Settings()
		if err != nil {
			return err
		}
		if err := json.Unmarshal(doc.Settings, &settings); err != nil {
			return fmt.Errorf("cannot parse import settings: %w", err)
		}
	}

	if doc.Items != nil {
		if err := s.SaveItems(doc.Items); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := s.SaveSettings(settings); err != nil {
			return err
		}
	}
	return nil
}
