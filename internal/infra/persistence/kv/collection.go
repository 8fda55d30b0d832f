package kv

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	domainerrors "stylebank/internal/domain/errors"

	"github.com/pkg/errors"
)

// collection is a typed view over one stored JSON array document. It owns
// the codec and the single-writer discipline for its key.
type collection[T any] struct {
	db   *DB
	key  string
	lock *sync.Mutex
}

func newCollection[T any](db *DB, key string) *collection[T] {
	return &collection[T]{
		db:   db,
		key:  key,
		lock: db.lockFor(key),
	}
}

// load reads and decodes the whole collection. A missing key yields an
// empty slice. A malformed blob also yields an empty slice: the store is
// client-grade data, so decode failures are logged and recovered from
// rather than propagated (documented fail-open policy).
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	data, ok, err := c.db.store.Read(ctx, c.key)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to read collection "+c.key)
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.db.logger.Warn("Malformed collection blob, treating as empty",
			slog.String("collection", c.key),
			slog.Any("error", err),
		)

		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// save encodes and overwrites the whole collection in one write.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %s", c.key)
	}

	if err := c.db.store.Write(ctx, c.key, data); err != nil {
		return domainerrors.NewStorageError(err, "failed to write collection "+c.key)
	}

	return nil
}

// mutate runs fn over the decoded collection and persists the result, all
// inside the collection's critical section. fn returning an error aborts
// the write and the error is returned unchanged.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return c.save(ctx, updated)
}

// filter returns the items matching the predicate, preserving order.
func (c *collection[T]) filter(ctx context.Context, pred func(T) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	out := []T{}
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}

	return out, nil
}

// first returns the first item matching the predicate.
func (c *collection[T]) first(ctx context.Context, pred func(T) bool) (*T, bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, false, err
	}

	for i := range items {
		if pred(items[i]) {
			item := items[i]

			return &item, true, nil
		}
	}

	return nil, false, nil
}
