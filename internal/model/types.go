package model

import (
	"fmt"
	"strings"
)

// GoalSize controls how many milestones a goal's plan is split into.
type GoalSize string

const (
	SizeSmall  GoalSize = "small"
	SizeMedium GoalSize = "medium"
	SizeBig    GoalSize = "big"
)

// MilestoneCount returns the fixed number of milestones for a size.
func (s GoalSize) MilestoneCount() int {
	switch s {
	case SizeSmall:
		return 3
	case SizeMedium:
		return 5
	default:
		return 8
	}
}

// ParseGoalSize accepts canonical size names plus the "large" alias found in
// older persisted data.
func ParseGoalSize(raw string) (GoalSize, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "big", "large":
		return SizeBig, nil
	}
	return "", fmt.Errorf("invalid goal size %q (expected small, medium, or big)", raw)
}

// MilestoneStatus is the kanban column a milestone sits in.
type MilestoneStatus string

const (
	StatusTodo  MilestoneStatus = "todo"
	StatusDoing MilestoneStatus = "doing"
	StatusDone  MilestoneStatus = "done"
)

// ParseMilestoneStatus accepts canonical statuses plus the "in-progress"
// alias found in older persisted data.
func ParseMilestoneStatus(raw string) (MilestoneStatus, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "todo":
		return StatusTodo, nil
	case "doing", "in-progress":
		return StatusDoing, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("invalid milestone status %q (expected todo, doing, or done)", raw)
}

// Filter selects which goals a dashboard view shows, by creation window.
type Filter string

const (
	FilterToday Filter = "today"
	FilterWeek  Filter = "week"
	FilterMonth Filter = "month"
	FilterAll   Filter = "all"
)

func ParseFilter(raw string) (Filter, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "today":
		return FilterToday, nil
	case "week":
		return FilterWeek, nil
	case "month":
		return FilterMonth, nil
	case "all":
		return FilterAll, nil
	}
	return "", fmt.Errorf("invalid filter %q (expected today, week, month, or all)", raw)
}

// Language selects the UI string table.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

func ParseLanguage(raw string) (Language, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "en":
		return LangEnglish, nil
	case "hi":
		return LangHindi, nil
	}
	return "", fmt.Errorf("invalid language %q (expected en or hi)", raw)
}

// User is the single local profile. Streak and progress are owned by the
// store; name and avatar are user-editable.
type User struct {
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Streak   int     `json:"streak"`
	Progress float64 `json:"progress"`
}

// DefaultUser is the profile used when nothing has been persisted yet.
func DefaultUser() User {
	return User{Name: "User", Avatar: "👨", Streak: 0, Progress: 0}
}

// Task is a binary done/not-done item owned by exactly one goal.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Milestone is a scheduled checkpoint within a goal's timeline. Date is an
// RFC3339 timestamp string, matching the persisted blob shape.
type Milestone struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Status MilestoneStatus `json:"status"`
	Date   string          `json:"date"`
}

// Goal is the top-level aggregate. Its milestone plan is generated once at
// creation and never resized; tasks may be appended afterwards.
type Goal struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	TargetDate string      `json:"targetDate"`
	Size       GoalSize    `json:"size"`
	Current    float64     `json:"current"`
	Target     float64     `json:"target"`
	CreatedAt  string      `json:"createdAt"`
	Tasks      []Task      `json:"tasks"`
	Milestones []Milestone `json:"milestones"`
}

// Task returns the task with the given id, or nil.
func (g *Goal) Task(id string) *Task {
	for i := range g.Tasks {
		if g.Tasks[i].ID == id {
			return &g.Tasks[i]
		}
	}
	return nil
}

// Milestone returns the milestone with the given id, or nil.
func (g *Goal) Milestone(id string) *Milestone {
	for i := range g.Milestones {
		if g.Milestones[i].ID == id {
			return &g.Milestones[i]
		}
	}
	return nil
}

// DoneTaskCount reports how many of the goal's tasks are completed.
func (g *Goal) DoneTaskCount() int {
	n := 0
	for _, t := range g.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so snapshots cannot alias store-owned slices.
func (g Goal) Clone() Goal {
	out := g
	out.Tasks = append([]Task(nil), g.Tasks...)
	out.Milestones = append([]Milestone(nil), g.Milestones...)
	return out
}

// AppState is the unit of persistence: language, user, and goals are each
// serialized under their own key. Filter is session-only.
type AppState struct {
	Language Language `json:"language"`
	User     User     `json:"user"`
	Goals    []Goal   `json:"goals"`
	Filter   Filter   `json:"filter"`
}

// DefaultState is the state used on first run.
func DefaultState() AppState {
	return AppState{
		Language: LangEnglish,
		User:     DefaultUser(),
		Goals:    []Goal{},
		Filter:   FilterWeek,
	}
}

// Clone deep-copies the state tree.
func (s AppState) Clone() AppState {
	out := s
	out.Goals = make([]Goal, len(s.Goals))
	for i, g := range s.Goals {
		out.Goals[i] = g.Clone()
	}
	return out
}
