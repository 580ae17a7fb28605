package store

import "github.com/tiwariank/goaleasy/internal/model"

// DoctorReport summarizes invariant violations found in a state tree.
type DoctorReport struct {
	DuplicateGoalIDs    int `json:"duplicate_goal_ids"`
	DuplicateChildIDs   int `json:"duplicate_child_ids"`
	MilestoneCountDrift int `json:"milestone_count_drift"`
	InvalidStatuses     int `json:"invalid_statuses"`
}

// Clean reports whether no violations were found.
func (r DoctorReport) Clean() bool {
	return r.DuplicateGoalIDs == 0 && r.DuplicateChildIDs == 0 &&
		r.MilestoneCountDrift == 0 && r.InvalidStatuses == 0
}

// RunDoctor audits a state tree against the core invariants: goal ids unique
// across the collection, task/milestone ids unique within their goal, the
// milestone count matching the goal's size, and statuses within the closed
// enum. Legacy blobs written by hand or by older versions are the usual
// source of drift.
func RunDoctor(state model.AppState) DoctorReport {
	var report DoctorReport

	goalIDs := map[string]bool{}
	for _, g := range state.Goals {
		if goalIDs[g.ID] {
			report.DuplicateGoalIDs++
		}
		goalIDs[g.ID] = true

		childIDs := map[string]bool{}
		for _, t := range g.Tasks {
			if childIDs[t.ID] {
				report.DuplicateChildIDs++
			}
			childIDs[t.ID] = true
		}
		childIDs = map[string]bool{}
		for _, m := range g.Milestones {
			if childIDs[m.ID] {
				report.DuplicateChildIDs++
			}
			childIDs[m.ID] = true

			switch m.Status {
			case model.StatusTodo, model.StatusDoing, model.StatusDone:
			default:
				report.InvalidStatuses++
			}
		}

		if len(g.Milestones) != g.Size.MilestoneCount() {
			report.MilestoneCountDrift++
		}
	}

	return report
}
