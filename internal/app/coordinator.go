// Package app holds the application state coordinator: a single in-memory
// document mutated only through a fixed set of transitions, each of which
// re-derives aggregate fields and schedules a persistent save.
package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/roadlog/internal/aggregate"
	"github.com/balkashynov/roadlog/internal/models"
	"github.com/balkashynov/roadlog/internal/store"
	"github.com/balkashynov/roadlog/internal/streak"
)

// Clock supplies the current time; injectable so streak and freeze-day
// logic is deterministic under test.
type Clock func() time.Time

// Coordinator owns the document for the process lifetime. All transitions
// run synchronously on the caller's goroutine; persistence is the only
// asynchronous operation and never blocks or rolls back a transition.
type Coordinator struct {
	store *store.Store
	clock Clock
	log   *logrus.Logger

	doc models.Document

	saveCh  chan models.Document
	flushCh chan chan struct{}
	done    chan struct{}
}

// New loads the document, applies the monthly freeze-counter reset if one
// is due, refreshes derived fields for today and starts the write queue.
func New(st *store.Store, clock Clock, log *logrus.Logger) *Coordinator {
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Coordinator{
		store:   st,
		clock:   clock,
		log:     log,
		doc:     st.Load(),
		saveCh:  make(chan models.Document, 1),
		flushCh: make(chan chan struct{}),
		done:    make(chan struct{}),
	}
	go c.runSaves()

	now := c.clock()
	reset := c.applyFreezeReset(now)
	aggregate.Recompute(&c.doc, now)
	if reset {
		c.scheduleSave()
	}
	return c
}

// Document returns a copy of the current state.
func (c *Coordinator) Document() models.Document {
	return c.doc.Clone()
}

// Close drains the write queue so the final state reaches disk. It must be
// the last call on the coordinator.
func (c *Coordinator) Close() {
	c.flush()
	close(c.saveCh)
	<-c.done
}

// flush blocks until every save scheduled so far has been written.
func (c *Coordinator) flush() {
	ack := make(chan struct{})
	c.flushCh <- ack
	<-ack
}

// applyFreezeReset zeroes the monthly freeze counter when the stored reset
// month differs from now. Returns whether anything changed.
func (c *Coordinator) applyFreezeReset(now time.Time) bool {
	if !streak.ShouldResetMonthlyFreezeCounter(c.doc.Streaks.LastFreezeReset, now) {
		return false
	}
	c.doc.Streaks.FreezeDaysThisMonth = 0
	c.doc.Streaks.LastFreezeReset = now.Format("2006-01-02")
	return true
}

// scheduleSave enqueues the current state on the single-flight write queue.
// A pending, not-yet-written state is superseded (last write wins): every
// intermediate state is replaced only by a later state that is itself
// saved, so no transition is silently dropped.
func (c *Coordinator) scheduleSave() {
	snapshot := c.doc.Clone()
	for {
		select {
		case c.saveCh <- snapshot:
			return
		default:
		}
		select {
		case <-c.saveCh:
		default:
		}
	}
}

// runSaves serialises writes to the store so the backup-then-overwrite
// sequence can never interleave with itself.
func (c *Coordinator) runSaves() {
	for {
		select {
		case doc, ok := <-c.saveCh:
			if !ok {
				close(c.done)
				return
			}
			if !c.store.Save(doc) {
				c.log.Warn("save failed, continuing on in-memory state")
			}
		case ack := <-c.flushCh:
			select {
			case doc := <-c.saveCh:
				if !c.store.Save(doc) {
					c.log.Warn("save failed, continuing on in-memory state")
				}
			default:
			}
			close(ack)
		}
	}
}
