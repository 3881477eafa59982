package repositories

import (
	"context"
	"time"
)

type txQuerier struct {
	s *Storage
}

func (t *txQuerier) view(fn func(d *dataset))              { fn(t.s.data) }
func (t *txQuerier) update(fn func(d *dataset) error) error { return fn(t.s.data) }
func (t *txQuerier) now() time.Time                         { return t.s.clock() }
func (t *txQuerier) nextID(prefix string) string            { return t.s.nextID(prefix) }

// WithTx runs fn with the storage write lock held. Repositories built on the
// Querier passed to fn see and modify the same data; if fn returns an error or
// panics, every collection is restored to its state before the call.
func WithTx(ctx context.Context, storage *Storage, fn func(tx Querier) error) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	storage.mu.Lock()
	defer storage.mu.Unlock()

	backup := storage.data.clone()
	defer func() {
		if p := recover(); p != nil {
			storage.data = backup
			panic(p)
		} else if err != nil {
			storage.data = backup
		}
	}()

	err = fn(&txQuerier{s: storage})
	return err
}
