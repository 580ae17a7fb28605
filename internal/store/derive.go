package store

import (
	"math"
	"time"

	"github.com/tiwariank/goaleasy/internal/model"
)

// FilteredGoals returns a deep copy of the goals whose creation time falls in
// the active filter window. Goals with unparseable creation timestamps only
// show under the "all" filter.
func (s *Store) FilteredGoals() []model.Goal {
	s.mu.Lock()
	filter := s.state.Filter
	goals := make([]model.Goal, 0, len(s.state.Goals))
	for _, g := range s.state.Goals {
		goals = append(goals, g.Clone())
	}
	s.mu.Unlock()

	if filter == model.FilterAll {
		return goals
	}

	now := s.now()
	var cutoff time.Time
	switch filter {
	case model.FilterToday:
		cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case model.FilterWeek:
		cutoff = now.AddDate(0, 0, -7)
	case model.FilterMonth:
		cutoff = now.AddDate(0, -1, 0)
	}

	out := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		createdAt, err := time.Parse(time.RFC3339, g.CreatedAt)
		if err != nil {
			continue
		}
		if !createdAt.Before(cutoff) {
			out = append(out, g)
		}
	}
	return out
}

// Progress reports a goal's completion percentage, clamped to [0, 100].
// A zero target reads as zero progress.
func Progress(g model.Goal) float64 {
	if g.Target == 0 {
		return 0
	}
	pct := g.Current / g.Target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysLeft reports whole days until the goal's target date, floored at zero.
func (s *Store) DaysLeft(g model.Goal) int {
	targetDate, err := time.Parse(time.RFC3339, g.TargetDate)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(targetDate.Sub(s.now()).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
