package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tiwariank/goaleasy/internal/model"
)

// ExportVersion tags export files so future formats can be migrated.
const ExportVersion = 1

// Export is the portable snapshot written by ExportFile.
type Export struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exported_at"`
	Language   model.Language `json:"language"`
	User       model.User     `json:"user"`
	Goals      []model.Goal   `json:"goals"`
}

// ExportFile writes the current state as a portable JSON document.
func (s *Store) ExportFile(path string) error {
	state := s.Snapshot()
	export := Export{
		Version:    ExportVersion,
		ExportedAt: s.now().Format(time.RFC3339),
		Language:   state.Language,
		User:       state.User,
		Goals:      state.Goals,
	}
	raw, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}

// ImportFile replaces the current state with the contents of an export file.
// The replacement is atomic in memory; the usual async save cycle persists it.
func (s *Store) ImportFile(path string) (Export, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("read export %s: %w", path, err)
	}
	var export Export
	if err := json.Unmarshal(raw, &export); err != nil {
		return Export{}, fmt.Errorf("parse export %s: %w", path, err)
	}
	if export.Version != ExportVersion {
		return Export{}, fmt.Errorf("unsupported export version %d", export.Version)
	}
	if report := RunDoctor(model.AppState{Goals: export.Goals}); !report.Clean() {
		return Export{}, fmt.Errorf("export fails integrity checks: %+v", report)
	}

	s.mu.Lock()
	s.state.Language = export.Language
	s.state.User = export.User
	s.state.Goals = export.Goals
	s.mu.Unlock()

	s.persist()
	return export, nil
}
