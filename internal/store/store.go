// Package store owns the application state tree: the user profile, the goal
// collection, language, and the active dashboard filter. All writes go
// through its mutation methods, which keep the invariants (fixed milestone
// plans, streak accounting, id uniqueness) and trigger persistence and
// notification side effects without blocking the caller.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tiwariank/goaleasy/internal/db"
	"github.com/tiwariank/goaleasy/internal/milestone"
	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/notify"
)

// DefaultTarget is the fixed progress target assigned to every new goal.
const DefaultTarget = 10000

// Seed tasks attached to every new goal.
var seedTaskTitles = [2]string{"Start working on goal", "Make first progress"}

// KV is the durable key-value adapter the store persists through.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// Scheduler accepts one-shot notification requests.
type Scheduler interface {
	ScheduleAt(ctx context.Context, n notify.Notification) (string, error)
}

// Store is the single owner of the mutable AppState. Mutations are
// mutex-guarded; persistence and notification scheduling happen off the
// mutation path and never fail a mutation.
type Store struct {
	mu    sync.Mutex
	state model.AppState

	kv        KV
	scheduler Scheduler
	logger    *zap.Logger
	now       func() time.Time

	persister    *persister
	inflight     sync.WaitGroup
	reminderHour int
}

// Option adjusts store construction, mainly for tests.
type Option func(*Store)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithReminderHour sets the local hour for next-day goal reminders.
func WithReminderHour(hour int) Option {
	return func(s *Store) {
		if hour >= 0 && hour <= 23 {
			s.reminderHour = hour
		}
	}
}

// WithDefaultLanguage sets the language used when none has been persisted
// yet. A persisted language always wins.
func WithDefaultLanguage(lang model.Language) Option {
	return func(s *Store) { s.state.Language = lang }
}

// New loads persisted state through kv (defaulting each key independently on
// absence or parse failure) and starts the background persister. Callers must
// Close the store to flush the final snapshot.
func New(ctx context.Context, kv KV, scheduler Scheduler, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		state:        model.DefaultState(),
		kv:           kv,
		scheduler:    scheduler,
		logger:       logger,
		now:          time.Now,
		reminderHour: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	s.persister = newPersister(kv, logger)
	return s
}

// Close waits for in-flight notification requests, flushes any unsaved
// snapshot, and stops the persister goroutine.
func (s *Store) Close() {
	s.inflight.Wait()
	s.persister.close()
}

func (s *Store) load(ctx context.Context) {
	if raw, ok := s.loadKey(ctx, db.KeyUser); ok {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			s.logger.Warn("malformed persisted user, using default", zap.Error(err))
		} else {
			s.state.User = u
		}
	}
	if raw, ok := s.loadKey(ctx, db.KeyGoals); ok {
		var gs []model.Goal
		if err := json.Unmarshal([]byte(raw), &gs); err != nil {
			s.logger.Warn("malformed persisted goals, using default", zap.Error(err))
		} else {
			s.state.Goals = gs
		}
	}
	if raw, ok := s.loadKey(ctx, db.KeyLanguage); ok {
		lang, err := model.ParseLanguage(raw)
		if err != nil {
			s.logger.Warn("malformed persisted language, using default", zap.Error(err))
		} else {
			s.state.Language = lang
		}
	}
}

func (s *Store) loadKey(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Load(ctx, key)
	if err != nil {
		s.logger.Warn("load persisted state failed, using default", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AddGoalInput carries the user-supplied fields of a new goal.
type AddGoalInput struct {
	Title      string
	Size       model.GoalSize
	TargetDate *time.Time
}

// AddGoal appends a new goal with two seed tasks and a size-derived milestone
// plan, then schedules a next-morning reminder for it.
func (s *Store) AddGoal(in AddGoalInput) model.Goal {
	now := s.now()
	targetDate := now
	if in.TargetDate != nil {
		targetDate = *in.TargetDate
	}
	if in.Size == "" {
		in.Size = model.SizeMedium
	}

	goal := model.Goal{
		ID:         uuid.NewString(),
		Title:      in.Title,
		TargetDate: targetDate.Format(time.RFC3339),
		Size:       in.Size,
		Current:    0,
		Target:     DefaultTarget,
		CreatedAt:  now.Format(time.RFC3339),
		Tasks: []model.Task{
			{ID: uuid.NewString(), Title: seedTaskTitles[0], Done: false},
			{ID: uuid.NewString(), Title: seedTaskTitles[1], Done: false},
		},
		Milestones: milestone.Generate(in.Title, in.Size, in.TargetDate, now),
	}

	s.mu.Lock()
	s.state.Goals = append(s.state.Goals, goal)
	s.mu.Unlock()

	s.persist()

	// Reminder for tomorrow morning, 08:00 local time by default.
	tomorrow := now.AddDate(0, 0, 1)
	fireAt := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), s.reminderHour, 0, 0, 0, tomorrow.Location())
	s.schedule(notify.Notification{
		Title:  "Good Morning! 🌅",
		Body:   "Time to work on: " + goal.Title,
		FireAt: fireAt,
		Data:   map[string]string{"goalId": goal.ID},
	})

	return goal
}

// GoalPatch is a partial goal update; nil fields are left unchanged.
type GoalPatch struct {
	Title      *string
	Size       *model.GoalSize
	TargetDate *time.Time
	Current    *float64
	Target     *float64
}

// UpdateGoal merges patch into the matching goal. Missing ids are a logged
// no-op.
func (s *Store) UpdateGoal(goalID string, patch GoalPatch) {
	s.mu.Lock()
	goal := s.findGoal(goalID)
	if goal == nil {
		s.mu.Unlock()
		s.logger.Warn("update for unknown goal", zap.String("goalId", goalID))
		return
	}
	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.Size != nil {
		goal.Size = *patch.Size
	}
	if patch.TargetDate != nil {
		goal.TargetDate = patch.TargetDate.Format(time.RFC3339)
	}
	if patch.Current != nil {
		goal.Current = *patch.Current
	}
	if patch.Target != nil {
		goal.Target = *patch.Target
	}
	s.mu.Unlock()

	s.persist()
}

// DeleteGoal removes the matching goal. Missing ids are a logged no-op.
func (s *Store) DeleteGoal(goalID string) {
	s.mu.Lock()
	found := false
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == goalID {
			s.state.Goals = append(s.state.Goals[:i], s.state.Goals[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		s.logger.Warn("delete for unknown goal", zap.String("goalId", goalID))
		return
	}
	s.persist()
}

// AddTask appends a new undone task to the goal. Missing goals are a logged
// no-op.
func (s *Store) AddTask(goalID, title string) {
	s.mu.Lock()
	goal := s.findGoal(goalID)
	if goal == nil {
		s.mu.Unlock()
		s.logger.Warn("add task for unknown goal", zap.String("goalId", goalID))
		return
	}
	goal.Tasks = append(goal.Tasks, model.Task{ID: uuid.NewString(), Title: title, Done: false})
	s.mu.Unlock()

	s.persist()
}

// ToggleTask flips the task's done flag. A false→true transition increments
// the user streak; the streak is never decremented, so un-toggling leaves it
// alone. Missing goal or task ids are a logged no-op.
func (s *Store) ToggleTask(goalID, taskID string) {
	s.mu.Lock()
	goal := s.findGoal(goalID)
	if goal == nil {
		s.mu.Unlock()
		s.logger.Warn("toggle task for unknown goal", zap.String("goalId", goalID))
		return
	}
	task := goal.Task(taskID)
	if task == nil {
		s.mu.Unlock()
		s.logger.Warn("toggle unknown task", zap.String("goalId", goalID), zap.String("taskId", taskID))
		return
	}
	task.Done = !task.Done
	if task.Done {
		s.state.User.Streak++
	}
	s.mu.Unlock()

	s.persist()
}

// MoveMilestone sets the milestone's status. Any target status is accepted;
// there is no todo→doing→done ordering rule. An actual transition into done
// fires a completion notification; repeating the move is idempotent and does
// not re-fire. Missing ids are a logged no-op.
func (s *Store) MoveMilestone(goalID, milestoneID string, status model.MilestoneStatus) {
	s.mu.Lock()
	goal := s.findGoal(goalID)
	if goal == nil {
		s.mu.Unlock()
		s.logger.Warn("move milestone for unknown goal", zap.String("goalId", goalID))
		return
	}
	ms := goal.Milestone(milestoneID)
	if ms == nil {
		s.mu.Unlock()
		s.logger.Warn("move unknown milestone", zap.String("goalId", goalID), zap.String("milestoneId", milestoneID))
		return
	}
	completed := status == model.StatusDone && ms.Status != model.StatusDone
	ms.Status = status
	s.mu.Unlock()

	s.persist()

	if completed {
		s.schedule(notify.Notification{
			Title:  "Milestone Completed! 🎉",
			Body:   "Keep up the great work!",
			FireAt: s.now(),
			Data:   map[string]string{"goalId": goalID, "milestoneId": milestoneID},
		})
	}
}

// SetLanguage replaces the UI language.
func (s *Store) SetLanguage(lang model.Language) {
	s.mu.Lock()
	s.state.Language = lang
	s.mu.Unlock()
	s.persist()
}

// SetUser replaces the profile wholesale.
func (s *Store) SetUser(u model.User) {
	s.mu.Lock()
	s.state.User = u
	s.mu.Unlock()
	s.persist()
}

// SetGoals replaces the goal collection wholesale.
func (s *Store) SetGoals(goals []model.Goal) {
	s.mu.Lock()
	s.state.Goals = goals
	s.mu.Unlock()
	s.persist()
}

// SetFilter replaces the dashboard filter. The filter is session state and is
// not persisted.
func (s *Store) SetFilter(f model.Filter) {
	s.mu.Lock()
	s.state.Filter = f
	s.mu.Unlock()
}

// findGoal must be called with the mutex held.
func (s *Store) findGoal(id string) *model.Goal {
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			return &s.state.Goals[i]
		}
	}
	return nil
}

// persist hands the current snapshot to the background persister. The caller
// must not hold the mutex.
func (s *Store) persist() {
	s.mu.Lock()
	snap := s.state.Clone()
	s.mu.Unlock()
	s.persister.enqueue(snap)
}

const scheduleTimeout = 5 * time.Second

// schedule fires a notification request without blocking the mutation path.
// Failures are logged; delivery is best-effort.
func (s *Store) schedule(n notify.Notification) {
	if s.scheduler == nil {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), scheduleTimeout)
		defer cancel()
		if _, err := s.scheduler.ScheduleAt(ctx, n); err != nil {
			s.logger.Warn("schedule notification failed", zap.String("title", n.Title), zap.Error(err))
		}
	}()
}
