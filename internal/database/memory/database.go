// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package memory provides an in-memory database implementation.
package memory

import (
	"fmt"
	"sync"

	"github.com/ctt-network/kp/internal/database"
)

// Database is an in-memory database implementation.
type Database struct {
	closed    bool
	keyValues map[string][]byte
	mutex     sync.RWMutex
}

var _ database.Database = (*Database)(nil)

// New returns a new in-memory database.
func New() *Database {
	return &Database{
		keyValues: make(map[string][]byte),
	}
}

// Get retrieves a value from the database using the given key.
// It returns `ErrKeyNotFound` if the key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	db.panicOnClosed()

	value, ok := db.keyValues[string(key)]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
	}

	return copyBytes(value), nil
}

// Has returns true if the key exists in the database.
func (db *Database) Has(key []byte) (has bool, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	db.panicOnClosed()

	_, has = db.keyValues[string(key)]
	return has, nil
}

// Put sets a value at the given key in the database.
// The value byte slice is deep copied to avoid any mutation surprises.
// The error returned is always nil.
func (db *Database) Put(key, value []byte) (err error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.panicOnClosed()

	db.keyValues[string(key)] = copyBytes(value)

	return nil
}

// Del deletes a the given key in the database.
// If the key is not found, no error is returned.
func (db *Database) Del(key []byte) (err error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.panicOnClosed()

	delete(db.keyValues, string(key))

	return nil
}

// Flush is a no-op for the in-memory database.
func (db *Database) Flush() (err error) { return nil }

// Path returns an empty string since the database is not on disk.
func (db *Database) Path() string { return "" }

// NewBatch returns a new write batch for the database.
// It is not thread-safe to write to the batch, but flushing it is
// thread-safe for the database.
func (db *Database) NewBatch() database.Batch {
	db.panicOnClosed()
	return newWriteBatch(db)
}

// Len returns the number of keys stored.
func (db *Database) Len() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.keyValues)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.closed = true
	db.keyValues = nil
	return nil
}
