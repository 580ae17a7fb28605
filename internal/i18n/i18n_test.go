package i18n_test

import (
	"testing"

	"github.com/tiwariank/goaleasy/internal/i18n"
	"github.com/tiwariank/goaleasy/internal/model"
)

func TestForFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	if got := i18n.For(model.Language("fr")).Today; got != "Today" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := i18n.For(model.LangHindi).Today; got == "Today" {
		t.Fatal("expected Hindi table for hi")
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	if got := i18n.FilterLabel(model.LangEnglish, model.FilterWeek); got != "This Week" {
		t.Fatalf("unexpected filter label %q", got)
	}
	if got := i18n.StatusLabel(model.LangEnglish, model.StatusDoing); got != "Doing" {
		t.Fatalf("unexpected status label %q", got)
	}
}
