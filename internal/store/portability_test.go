package store_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/store"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src := newTestStore(t, newFakeKV(), nil)

	goal := src.AddGoal(store.AddGoalInput{Title: "Save ₹10,000", Size: model.SizeMedium})
	src.ToggleTask(goal.ID, goal.Tasks[0].ID)
	src.SetLanguage(model.LangHindi)

	path := filepath.Join(t.TempDir(), "export.json")
	if err := src.ExportFile(path); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestStore(t, newFakeKV(), nil)
	export, err := dst.ImportFile(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if export.Version != store.ExportVersion {
		t.Fatalf("expected version %d, got %d", store.ExportVersion, export.Version)
	}

	want := src.Snapshot()
	got := dst.Snapshot()
	if diff := cmp.Diff(want.Goals, got.Goals); diff != "" {
		t.Fatalf("goals changed across export/import (-want +got):\n%s", diff)
	}
	if want.User != got.User || want.Language != got.Language {
		t.Fatalf("profile or language lost: %+v vs %+v", want.User, got.User)
	}
}

func TestImportRejectsCorruptExports(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, newFakeKV(), nil)

	path := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, path, `{"version": 99, "goals": []}`)
	if _, err := s.ImportFile(path); err == nil {
		t.Fatal("expected error for unsupported version")
	}

	// Duplicate goal ids fail the integrity check before anything is replaced.
	writeFile(t, path, `{
		"version": 1,
		"user": {"name": "X", "avatar": "🙂", "streak": 0, "progress": 0},
		"language": "en",
		"goals": [
			{"id": "g1", "title": "A", "size": "small", "targetDate": "2026-04-01T00:00:00Z", "createdAt": "2026-03-01T00:00:00Z", "current": 0, "target": 10000, "tasks": [], "milestones": [{"id":"m1","title":"x","status":"todo","date":"2026-03-02T00:00:00Z"},{"id":"m2","title":"x","status":"todo","date":"2026-03-03T00:00:00Z"},{"id":"m3","title":"x","status":"todo","date":"2026-03-04T00:00:00Z"}]},
			{"id": "g1", "title": "B", "size": "small", "targetDate": "2026-04-01T00:00:00Z", "createdAt": "2026-03-01T00:00:00Z", "current": 0, "target": 10000, "tasks": [], "milestones": [{"id":"m1","title":"x","status":"todo","date":"2026-03-02T00:00:00Z"},{"id":"m2","title":"x","status":"todo","date":"2026-03-03T00:00:00Z"},{"id":"m3","title":"x","status":"todo","date":"2026-03-04T00:00:00Z"}]}
		]
	}`)
	before := s.Snapshot()
	if _, err := s.ImportFile(path); err == nil {
		t.Fatal("expected error for duplicate goal ids")
	}
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Fatalf("failed import must not change state (-want +got):\n%s", diff)
	}
}
