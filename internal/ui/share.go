package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/paperfeed/paperlens/internal/filter"
	"github.com/paperfeed/paperlens/internal/urlstate"
)

// ExportFiltersToClipboard copies the applied filters as a shareable query
// string. Default selections are omitted so the link stays short.
func (m *Model) ExportFiltersToClipboard() (string, error) {
	query := urlstate.EncodeQuery(m.store.Current())
	if err := clipboard.WriteAll(query); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return query, nil
}

// ImportFiltersFromClipboard reads a shared filter link from the clipboard and
// installs it as both the applied and pending state.
func (m *Model) ImportFiltersFromClipboard() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}

	state, err := DecodeShared(text)
	if err != nil {
		return err
	}

	m.store.Replace(state)
	return nil
}

// DecodeShared turns pasted text into a filter state. It accepts a bare query
// string or a full URL with the query after "?". Unknown keys and malformed
// values fall back to their defaults without poisoning the rest.
func DecodeShared(text string) (filter.State, error) {
	query := extractQuery(text)
	if query == "" {
		return filter.NewState(), nil
	}

	state, err := urlstate.ParseQuery(query)
	if err != nil {
		return filter.State{}, fmt.Errorf("not a filter link: %w", err)
	}
	return state, nil
}

func extractQuery(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "?"); i >= 0 {
		text = text[i+1:]
	}
	if i := strings.Index(text, "#"); i >= 0 {
		text = text[:i]
	}
	return text
}
