package storage

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
	LastLevel string  `json:"lastLevel"`
}

// itemStore is the part of gdata.Manager settings use.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Settings reads and writes player settings. A nil *Settings is valid and
// does nothing, so callers need not check whether persistence is available.
type Settings struct {
	items itemStore
}

// OpenSettings initializes the gdata manager for settings storage.
func OpenSettings(appName string) (*Settings, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open settings: %w", err)
	}
	return &Settings{items: m}, nil
}

// Load returns saved settings, or nil when nothing was saved yet.
func (s *Settings) Load() (*SavedSettings, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.Warn("Could not load settings", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("storage: cannot parse saved settings: %w", err)
	}
	return &saved, nil
}

func (s *Settings) Save(saved *SavedSettings) error {
	if s == nil || s.items == nil || saved == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("storage: cannot serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}
