// Package milestone derives a goal's milestone plan from its size and target
// date. Generation is pure: given the same clock reading and inputs it
// produces the same schedule.
package milestone

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tiwariank/goaleasy/internal/model"
)

// DefaultWindow is the planning window applied when a goal has no target date.
const DefaultWindow = 30 * 24 * time.Hour

// Generate returns the ordered milestone plan for a goal. The window runs
// from now to targetDate (or now+30d when targetDate is nil) and is split
// into size.MilestoneCount() whole-day intervals. A window shorter than the
// count floors the interval to zero and yields duplicate dates; that matches
// the app's observed behavior and is left uncorrected.
func Generate(title string, size model.GoalSize, targetDate *time.Time, now time.Time) []model.Milestone {
	count := size.MilestoneCount()
	end := now.Add(DefaultWindow)
	if targetDate != nil {
		end = *targetDate
	}

	daysDiff := int(math.Ceil(end.Sub(now).Hours() / 24))
	interval := daysDiff / count
	if interval < 0 {
		interval = 0
	}

	out := make([]model.Milestone, 0, count)
	for i := 0; i < count; i++ {
		date := now.AddDate(0, 0, interval*(i+1))
		out = append(out, model.Milestone{
			ID:     uuid.NewString(),
			Title:  fmt.Sprintf("Milestone %d: %s", i+1, title),
			Status: model.StatusTodo,
			Date:   date.Format(time.RFC3339),
		})
	}
	return out
}
