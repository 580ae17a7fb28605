package store_test

import (
	"testing"
	"time"

	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/store"
)

func TestFilteredGoalsWindows(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, newFakeKV(), nil)

	goalAt := func(created time.Time, title string) {
		s.SetGoals(append(s.Snapshot().Goals, model.Goal{
			ID:        title,
			Title:     title,
			Size:      model.SizeSmall,
			CreatedAt: created.Format(time.RFC3339),
		}))
	}
	goalAt(testNow.Add(-2*time.Hour), "today")       // same day
	goalAt(testNow.AddDate(0, 0, -3), "this-week")   // 3 days ago
	goalAt(testNow.AddDate(0, 0, -20), "this-month") // 20 days ago
	goalAt(testNow.AddDate(0, -3, 0), "old")         // 3 months ago

	cases := []struct {
		filter model.Filter
		want   int
	}{
		{model.FilterToday, 1},
		{model.FilterWeek, 2},
		{model.FilterMonth, 3},
		{model.FilterAll, 4},
	}
	for _, tc := range cases {
		s.SetFilter(tc.filter)
		if got := len(s.FilteredGoals()); got != tc.want {
			t.Fatalf("filter %s: expected %d goals, got %d", tc.filter, tc.want, got)
		}
	}
}

func TestProgressClamped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		current, target float64
		want            float64
	}{
		{0, 10000, 0},
		{2500, 10000, 25},
		{15000, 10000, 100},
		{5, 0, 0},
	}
	for _, tc := range cases {
		got := store.Progress(model.Goal{Current: tc.current, Target: tc.target})
		if got != tc.want {
			t.Fatalf("progress(%v/%v): expected %v, got %v", tc.current, tc.target, tc.want, got)
		}
	}
}

func TestDaysLeftFlooredAtZero(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, newFakeKV(), nil)

	future := model.Goal{TargetDate: testNow.AddDate(0, 0, 12).Format(time.RFC3339)}
	if got := s.DaysLeft(future); got != 12 {
		t.Fatalf("expected 12 days left, got %d", got)
	}

	past := model.Goal{TargetDate: testNow.AddDate(0, 0, -5).Format(time.RFC3339)}
	if got := s.DaysLeft(past); got != 0 {
		t.Fatalf("expected 0 days left for past target, got %d", got)
	}

	if got := s.DaysLeft(model.Goal{TargetDate: "garbage"}); got != 0 {
		t.Fatalf("expected 0 days left for unparseable date, got %d", got)
	}
}

func TestRunDoctorFlagsDrift(t *testing.T) {
	t.Parallel()

	clean := model.AppState{Goals: []model.Goal{{
		ID:   "g1",
		Size: model.SizeSmall,
		Milestones: []model.Milestone{
			{ID: "m1", Status: model.StatusTodo},
			{ID: "m2", Status: model.StatusDoing},
			{ID: "m3", Status: model.StatusDone},
		},
		Tasks: []model.Task{{ID: "t1"}, {ID: "t2"}},
	}}}
	if report := store.RunDoctor(clean); !report.Clean() {
		t.Fatalf("expected clean report, got %+v", report)
	}

	dirty := model.AppState{Goals: []model.Goal{
		{
			ID:   "g1",
			Size: model.SizeSmall,
			Milestones: []model.Milestone{
				{ID: "m1", Status: model.StatusTodo},
				{ID: "m1", Status: "blocked"},
			},
			Tasks: []model.Task{{ID: "t1"}, {ID: "t1"}},
		},
		{ID: "g1", Size: model.SizeBig},
	}}
	report := store.RunDoctor(dirty)
	if report.DuplicateGoalIDs != 1 {
		t.Fatalf("expected 1 duplicate goal id, got %d", report.DuplicateGoalIDs)
	}
	if report.DuplicateChildIDs != 2 {
		t.Fatalf("expected 2 duplicate child ids, got %d", report.DuplicateChildIDs)
	}
	// Both goals drift: 2 milestones on a small plan, 0 on a big one.
	if report.MilestoneCountDrift != 2 {
		t.Fatalf("expected 2 drifted plans, got %d", report.MilestoneCountDrift)
	}
	if report.InvalidStatuses != 1 {
		t.Fatalf("expected 1 invalid status, got %d", report.InvalidStatuses)
	}
}
