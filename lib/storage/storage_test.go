// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ctt-network/kp/internal/database/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Storage_transactions(t *testing.T) {
	t.Parallel()

	db := memory.New()
	s := New(db)

	s.Set([]byte("a"), []byte{1})

	s.BeginTransaction()
	s.Set([]byte("a"), []byte{2})
	s.Set([]byte("b"), []byte{3})

	s.BeginTransaction()
	s.Delete([]byte("a"))
	_, found, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, s.RollbackTransaction())

	value, found, err := s.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte{2}, value)

	require.NoError(t, s.CommitTransaction())
	err = s.CommitTransaction()
	assert.ErrorIs(t, err, ErrNoTransaction)

	// nothing reaches the database before Commit
	assert.Equal(t, 0, db.Len())
	require.NoError(t, s.Commit())
	assert.Equal(t, 2, db.Len())

	value, err = db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, value)
}

func Test_Storage_Transactional(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		fn         func(s *Storage) error
		errWrapped error
		found      bool
	}{
		"commit": {
			fn: func(s *Storage) error {
				s.Set([]byte("key"), []byte{1})
				return nil
			},
			found: true,
		},
		"rollback": {
			fn: func(s *Storage) error {
				s.Set([]byte("key"), []byte{1})
				return errTest
			},
			errWrapped: errTest,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := New(memory.New())
			err := s.Transactional(func() error { return testCase.fn(s) })
			assert.ErrorIs(t, err, testCase.errWrapped)

			found, err := s.Has([]byte("key"))
			require.NoError(t, err)
			assert.Equal(t, testCase.found, found)
		})
	}
}

func Test_Storage_Transactional_panic(t *testing.T) {
	t.Parallel()

	s := New(memory.New())
	assert.Panics(t, func() {
		_ = s.Transactional(func() error {
			s.Set([]byte("key"), []byte{1})
			panic("boom")
		})
	})

	found, err := s.Has([]byte("key"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, s.transactions)
}

type testRecord struct {
	Count uint64
	Name  []byte
	Flag  bool
}

type testKey struct {
	App   uint32
	Model []byte
}

func Test_Map(t *testing.T) {
	t.Parallel()

	s := New(memory.New())
	m := NewMap[testKey, testRecord]("Test", "Records")

	key := testKey{App: 1, Model: []byte("model")}
	_, found, err := m.TryGet(s, key)
	require.NoError(t, err)
	assert.False(t, found)

	err = m.Mutate(s, key, func(r *testRecord) error {
		r.Count++
		r.Name = []byte("first")
		return nil
	})
	require.NoError(t, err)

	record, err := m.Get(s, key)
	require.NoError(t, err)
	assert.Equal(t, testRecord{Count: 1, Name: []byte("first")}, record)

	other := testKey{App: 2, Model: []byte("model")}
	contains, err := m.Contains(s, other)
	require.NoError(t, err)
	assert.False(t, contains)

	require.NoError(t, m.Remove(s, key))
	contains, err = m.Contains(s, key)
	require.NoError(t, err)
	assert.False(t, contains)
}

func Test_DoubleMap_and_Value(t *testing.T) {
	t.Parallel()

	s := New(memory.New())
	dm := NewDoubleMap[uint32, []byte, uint64]("Test", "Counts")
	v := NewValue[[]uint32]("Test", "List")

	require.NoError(t, dm.Put(s, 1, []byte("a"), 10))
	require.NoError(t, dm.Mutate(s, 1, []byte("a"), func(c *uint64) error {
		*c += 5
		return nil
	}))
	count, err := dm.Get(s, 1, []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, uint64(15), count)

	count, err = dm.Get(s, 1, []byte("b"))
	require.NoError(t, err)
	assert.Zero(t, count)

	errAbort := errors.New("abort")
	err = v.Mutate(s, func(list *[]uint32) error {
		*list = append(*list, 1)
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)
	exists, err := v.Exists(s)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, v.Put(s, []uint32{3, 4}))
	list, err := v.Get(s)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 4}, list)
}

func Test_Prefix(t *testing.T) {
	t.Parallel()

	prefix := Prefix("System", "Number")
	require.Len(t, prefix, 32)
	// well known storage key of System::Number
	assert.Equal(t,
		"26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac",
		hex.EncodeToString(prefix))
}
