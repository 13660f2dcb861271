// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package chaindb implements the database interface on top of
// the badger backed chaindb key value store.
package chaindb

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ctt-network/kp/internal/database"
)

// Settings are the settings used to open the database.
type Settings struct {
	// Path is the data directory of the database.
	Path string
	// InMemory opens the badger engine in memory only mode.
	InMemory bool
}

// Database wraps a chaindb database to implement database.Database.
type Database struct {
	db chaindb.Database
}

var _ database.Database = (*Database)(nil)

// New opens a chaindb database using the given settings.
func New(settings Settings) (*Database, error) {
	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  settings.Path,
		InMemory: settings.InMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("opening chaindb: %w", err)
	}

	return &Database{db: db}, nil
}

// Get returns the value stored at key, or an error wrapping
// database.ErrKeyNotFound if the key does not exist.
func (d *Database) Get(key []byte) (value []byte, err error) {
	value, err = d.db.Get(key)
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
		}
		return nil, err
	}
	return value, nil
}

func (d *Database) Has(key []byte) (bool, error) { return d.db.Has(key) }

func (d *Database) Put(key, value []byte) error { return d.db.Put(key, value) }

func (d *Database) Del(key []byte) error { return d.db.Del(key) }

func (d *Database) Flush() error { return d.db.Flush() }

func (d *Database) Close() error { return d.db.Close() }

func (d *Database) Path() string { return d.db.Path() }

// NewBatch returns a write batch flushed atomically to the database.
func (d *Database) NewBatch() database.Batch {
	return &batch{batch: d.db.NewBatch()}
}

type batch struct {
	batch chaindb.Batch
}

func (b *batch) Put(key, value []byte) error { return b.batch.Put(key, value) }

func (b *batch) Del(key []byte) error { return b.batch.Del(key) }

func (b *batch) Flush() error { return b.batch.Flush() }

func (b *batch) ValueSize() int { return b.batch.ValueSize() }

func (b *batch) Reset() { b.batch.Reset() }
