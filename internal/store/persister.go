package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tiwariank/goaleasy/internal/db"
	"github.com/tiwariank/goaleasy/internal/model"
)

const saveTimeout = 10 * time.Second

// persister writes state snapshots to the KV adapter from a single background
// goroutine. The pending channel holds at most one snapshot: a burst of
// mutations coalesces to the latest state, so the adapter sees at most one
// in-flight save plus one queued snapshot at any time.
type persister struct {
	kv        KV
	logger    *zap.Logger
	pending   chan model.AppState
	done      chan struct{}
	closeOnce sync.Once
}

func newPersister(kv KV, logger *zap.Logger) *persister {
	p := &persister{
		kv:      kv,
		logger:  logger,
		pending: make(chan model.AppState, 1),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// enqueue replaces any queued snapshot with the newer one. Never blocks.
func (p *persister) enqueue(snap model.AppState) {
	for {
		select {
		case p.pending <- snap:
			return
		default:
		}
		select {
		case <-p.pending:
		default:
		}
	}
}

// close drains the last queued snapshot, writes it, and stops the goroutine.
// Safe to call more than once.
func (p *persister) close() {
	p.closeOnce.Do(func() { close(p.pending) })
	<-p.done
}

func (p *persister) run() {
	defer close(p.done)
	for snap := range p.pending {
		p.save(snap)
	}
}

// save writes the three persisted keys of one snapshot. Failures are logged
// and do not roll back in-memory state; durability is best-effort.
func (p *persister) save(snap model.AppState) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	userJSON, err := json.Marshal(snap.User)
	if err != nil {
		p.logger.Error("encode user state", zap.Error(err))
		return
	}
	goalsJSON, err := json.Marshal(snap.Goals)
	if err != nil {
		p.logger.Error("encode goals state", zap.Error(err))
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.kv.Save(ctx, db.KeyUser, string(userJSON)) })
	g.Go(func() error { return p.kv.Save(ctx, db.KeyGoals, string(goalsJSON)) })
	g.Go(func() error { return p.kv.Save(ctx, db.KeyLanguage, string(snap.Language)) })
	if err := g.Wait(); err != nil {
		p.logger.Warn("persist state failed", zap.Error(err))
	}
}
