// Package kv contains the concrete implementation of the persistence layer
// on top of the key-value blob store. Every entity collection is one JSON
// array document under a fixed key; queries are in-memory scans and every
// mutation is a read-modify-write of the whole collection, serialized
// through a per-collection lock so concurrent mutations cannot lose updates.
package kv

import (
	"log/slog"
	"sync"

	"stylebank/internal/infra/storage"

	"go.uber.org/fx"
)

// Collection keys. Each maps 1:1 to an entity type.
const (
	KeyUsers       = "users"
	KeyClosetItems = "closetItems"
	KeyWearRecords = "wearRecords"
	KeyOutfitCards = "outfitCards"
	KeyOrders      = "orders"
	KeySellers     = "sellers"
	KeyCreators    = "creators"
)

// DB bundles the blob store with the per-collection write locks. All
// repositories share one DB so their mutations serialize per collection.
type DB struct {
	store  storage.Store
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// DBParams holds dependencies for the DB, injected by Fx.
type DBParams struct {
	fx.In

	Store  storage.Store
	Logger *slog.Logger
}

// New is the constructor for DB. This function will be used as an Fx provider.
func New(params DBParams) *DB {
	return &DB{
		store:  params.Store,
		logger: params.Logger,
		locks:  map[string]*sync.Mutex{},
	}
}

// lockFor returns the mutex guarding a collection key, creating it on first use.
func (db *DB) lockFor(key string) *sync.Mutex {
	db.mu.Lock()
	defer db.mu.Unlock()

	lock, ok := db.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		db.locks[key] = lock
	}

	return lock
}
