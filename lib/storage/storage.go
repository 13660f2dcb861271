// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package storage implements the transactional key value state the
// runtime modules read and write, on top of a database.
package storage

import (
	"errors"
	"fmt"

	"github.com/ctt-network/kp/internal/database"
	"github.com/ctt-network/kp/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "storage"))

// SetLogLevel sets the level of the storage package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

var (
	ErrNoTransaction = errors.New("no storage transaction in progress")
)

// Storage is the state of the runtime modules. Writes are buffered in
// a pending change set and nested transaction layers until Commit writes
// them to the database in a single batch.
// It is not safe for concurrent use: operations are applied one at a time.
type Storage struct {
	db           database.Database
	pending      *changeSet
	transactions []*changeSet
}

// New creates a storage backed by the given database.
func New(db database.Database) *Storage {
	return &Storage{
		db:      db,
		pending: newChangeSet(),
	}
}

// Get returns the value stored at key and true, or false if the key is not set.
func (s *Storage) Get(key []byte) (value []byte, found bool, err error) {
	k := string(key)
	for i := len(s.transactions) - 1; i >= 0; i-- {
		value, upserted, deleted := s.transactions[i].get(k)
		switch {
		case upserted:
			return value, true, nil
		case deleted:
			return nil, false, nil
		}
	}

	value, upserted, deleted := s.pending.get(k)
	switch {
	case upserted:
		return value, true, nil
	case deleted:
		return nil, false, nil
	}

	value, err = s.db.Get(key)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting key 0x%x from database: %w", key, err)
	}
	return value, true, nil
}

// Has returns true if a value is stored at key.
func (s *Storage) Has(key []byte) (bool, error) {
	_, found, err := s.Get(key)
	return found, err
}

// Set sets the value at key in the current transaction layer.
func (s *Storage) Set(key, value []byte) {
	s.top().upsert(string(key), value)
}

// Delete removes the key in the current transaction layer.
func (s *Storage) Delete(key []byte) {
	s.top().delete(string(key))
}

func (s *Storage) top() *changeSet {
	if len(s.transactions) == 0 {
		return s.pending
	}
	return s.transactions[len(s.transactions)-1]
}

// BeginTransaction starts a new nested transaction layer.
func (s *Storage) BeginTransaction() {
	s.transactions = append(s.transactions, newChangeSet())
}

// CommitTransaction merges the current transaction layer into its parent.
func (s *Storage) CommitTransaction() error {
	n := len(s.transactions)
	if n == 0 {
		return ErrNoTransaction
	}
	last := s.transactions[n-1]
	s.transactions = s.transactions[:n-1]
	last.mergeInto(s.top())
	return nil
}

// RollbackTransaction discards all storage changes made since
// BeginTransaction was called.
func (s *Storage) RollbackTransaction() error {
	n := len(s.transactions)
	if n == 0 {
		return ErrNoTransaction
	}
	s.transactions = s.transactions[:n-1]
	return nil
}

// Transactional runs fn in a new transaction layer, committed if fn
// returns a nil error and rolled back otherwise.
func (s *Storage) Transactional(fn func() error) (err error) {
	s.BeginTransaction()
	defer func() {
		if r := recover(); r != nil {
			_ = s.RollbackTransaction()
			panic(r)
		}
	}()

	err = fn()
	if err != nil {
		if rollbackErr := s.RollbackTransaction(); rollbackErr != nil {
			return fmt.Errorf("%w (rollback failed: %s)", err, rollbackErr)
		}
		return err
	}

	return s.CommitTransaction()
}

// Commit writes all the pending changes to the database in one batch.
// It fails if a transaction is still in progress.
func (s *Storage) Commit() error {
	if len(s.transactions) > 0 {
		return fmt.Errorf("%d storage transactions still in progress", len(s.transactions))
	}

	batch := s.db.NewBatch()
	for key := range s.pending.deletes {
		err := batch.Del([]byte(key))
		if err != nil {
			return fmt.Errorf("deleting key in batch: %w", err)
		}
	}
	for key, value := range s.pending.upserts {
		err := batch.Put([]byte(key), value)
		if err != nil {
			return fmt.Errorf("putting key in batch: %w", err)
		}
	}

	err := batch.Flush()
	if err != nil {
		return fmt.Errorf("flushing batch: %w", err)
	}

	logger.Tracef("committed %d storage changes", s.pending.len())
	s.pending = newChangeSet()
	return nil
}
