// Package storage persists what the dashboard remembers between runs.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/model"
)

// Saved is the persisted form of the display settings.
type Saved struct {
	TimeFormat string `yaml:"time-format"`
	Blur       bool   `yaml:"blur"`
}

// SavedFrom converts settings to their persisted form.
func SavedFrom(s control.Settings) Saved {
	return Saved{TimeFormat: s.TimeFormat.String(), Blur: s.Blur}
}

// Settings converts back to display settings.
func (s Saved) Settings() (control.Settings, error) {
	format, err := model.ParseTimeFormat(s.TimeFormat)
	if err != nil {
		return control.Settings{}, err
	}
	return control.Settings{TimeFormat: format, Blur: s.Blur}, nil
}

// FileHandler reads and writes the saved settings as YAML.
type FileHandler struct {
	mutex    sync.Mutex
	filename string
}

// NewFileHandler returns a handler for the given file.
func NewFileHandler(filename string) *FileHandler {
	return &FileHandler{filename: filename}
}

// Read returns the saved settings; false if nothing was saved yet.
func (h *FileHandler) Read() (Saved, bool, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := os.ReadFile(h.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Saved{}, false, nil
	}
	if err != nil {
		return Saved{}, false, fmt.Errorf("could not read '%s' (%w)", h.filename, err)
	}

	var s Saved
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Saved{}, false, fmt.Errorf("could not parse '%s' (%w)", h.filename, err)
	}
	return s, true, nil
}

// Write replaces the saved settings, creating the directory if needed.
func (h *FileHandler) Write(s Saved) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not encode settings (%w)", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.filename), 0o755); err != nil {
		return fmt.Errorf("could not create directory for '%s' (%w)", h.filename, err)
	}
	if err := os.WriteFile(h.filename, data, 0o644); err != nil {
		return fmt.Errorf("could not write '%s' (%w)", h.filename, err)
	}
	return nil
}
