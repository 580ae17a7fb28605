package store_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/notify"
	"github.com/tiwariank/goaleasy/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeKV is an in-memory persistence adapter. Closing the store flushes the
// persister, after which reads see the final snapshot.
type fakeKV struct {
	mu      sync.Mutex
	data    map[string]string
	saves   int
	failing bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Load(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Save(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return fmt.Errorf("disk full")
	}
	f.data[key] = value
	f.saves++
	return nil
}

func (f *fakeKV) get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeKV) set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

func (f *fakeKV) setFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

// fakeScheduler records scheduling requests.
type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []notify.Notification
}

func (f *fakeScheduler) ScheduleAt(_ context.Context, n notify.Notification) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, n)
	return fmt.Sprintf("n%d", len(f.scheduled)), nil
}

func (f *fakeScheduler) all() []notify.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.Notification(nil), f.scheduled...)
}

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, kv *fakeKV, scheduler *fakeScheduler) *store.Store {
	t.Helper()
	// A typed nil pointer must not reach the Scheduler interface.
	var sched store.Scheduler
	if scheduler != nil {
		sched = scheduler
	}
	s := store.New(context.Background(), kv, sched, nil, store.WithClock(func() time.Time { return testNow }))
	t.Cleanup(s.Close)
	return s
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustGoal(t *testing.T, s *store.Store, id string) model.Goal {
	t.Helper()
	for _, g := range s.Snapshot().Goals {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("goal %s not in state", id)
	return model.Goal{}
}
