package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// PresetStore persists named filter presets. Each preset is a filter query
// string in the same format the copy-filters key produces, so presets and
// shared links stay interchangeable.
type PresetStore struct {
	Version   string            `json:"version"`
	UpdatedAt time.Time         `json:"updated_at"`
	Presets   map[string]Preset `json:"presets"`
}

type Preset struct {
	Query   string `json:"query"`
	SavedAt string `json:"saved_at"`
}

func GetPresetStorePath() string {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "presets.json")
}

func LoadPresetStore() (*PresetStore, error) {
	path := GetPresetStorePath()
	if path == "" {
		return &PresetStore{Presets: make(map[string]Preset)}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &PresetStore{Version: "1.0", Presets: make(map[string]Preset)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preset store: %w", err)
	}

	var store PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse preset store: %w", err)
	}

	if store.Presets == nil {
		store.Presets = make(map[string]Preset)
	}

	return &store, nil
}

func (s *PresetStore) Save() error {
	path := GetPresetStorePath()
	if path == "" {
		return fmt.Errorf("cannot determine preset store path")
	}

	s.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preset store: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (s *PresetStore) SetPreset(name, query string) {
	if s.Presets == nil {
		s.Presets = make(map[string]Preset)
	}
	s.Presets[name] = Preset{
		Query:   query,
		SavedAt: time.Now().Format(time.RFC3339),
	}
}

func (s *PresetStore) GetPreset(name string) (Preset, bool) {
	if s.Presets == nil {
		return Preset{}, false
	}
	preset, ok := s.Presets[name]
	return preset, ok
}

func (s *PresetStore) DeletePreset(name string) {
	delete(s.Presets, name)
}

// Names returns the preset names in stable alphabetical order.
func (s *PresetStore) Names() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
