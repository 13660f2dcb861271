// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chaindb

import (
	"testing"

	"github.com/ctt-network/kp/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Database(t *testing.T) {
	t.Parallel()

	db, err := New(Settings{Path: t.TempDir(), InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		err := db.Close()
		assert.NoError(t, err)
	})

	_, err = db.Get([]byte("missing"))
	require.ErrorIs(t, err, database.ErrKeyNotFound)

	batch := db.NewBatch()
	require.NoError(t, batch.Put([]byte("a"), []byte{1}))
	require.NoError(t, batch.Put([]byte("b"), []byte{2}))
	require.NoError(t, batch.Flush())

	value, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, value)

	require.NoError(t, db.Del([]byte("a")))
	has, err := db.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}
