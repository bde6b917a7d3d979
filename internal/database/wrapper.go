// Package database defines the foodgram data model and the storage contract
// shared by the postgres and sqlite backends.
package database

import (
	"context"
	"fmt"
)

// Backend is a concrete store. Both postgres.Store and sqlite.Store satisfy it.
type Backend interface {
	Querier

	// InTx runs fn against a transaction scoped Querier, committing when fn
	// returns nil and rolling back otherwise.
	InTx(ctx context.Context, fn func(Querier) error) error
	EnsureSchema(ctx context.Context) error
	Close() error
}

type Database struct {
	Querier

	backend Backend
}

func New(backend Backend) *Database {
	return &Database{
		Querier: backend,
		backend: backend,
	}
}

// WithTx runs fn inside a transaction. A Database built without a backend
// (as in tests using MockQuerier) runs fn directly against its Querier.
func (db *Database) WithTx(ctx context.Context, fn func(Querier) error) error {
	if db.backend == nil {
		return fn(db.Querier)
	}
	return db.backend.InTx(ctx, fn)
}

// EnsureSchema ensures the database schema is applied.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if db.backend == nil {
		return nil
	}
	if err := db.backend.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

func (db *Database) Close() error {
	if db == nil || db.backend == nil {
		return nil
	}
	return db.backend.Close()
}
