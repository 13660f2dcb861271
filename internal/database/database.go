// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database defines the key value database interfaces
// the state is persisted to.
package database

import (
	"errors"
	"io"
)

// ErrKeyNotFound is returned when a key is not found in the database.
var ErrKeyNotFound = errors.New("key not found")

type Reader interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

type Writer interface {
	Put(key, value []byte) error
	Del(key []byte) error
	Flush() error
}

// Batch is a write-only operation.
type Batch interface {
	Writer

	ValueSize() int
	Reset()
}

// Database wraps all database operations. All methods are safe for concurrent use.
type Database interface {
	Reader
	Writer
	io.Closer

	Path() string
	NewBatch() Batch
}

type Table interface {
	Reader
	Writer
	Path() string
	NewBatch() Batch
}
