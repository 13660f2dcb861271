// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"testing"

	"github.com/ctt-network/kp/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type powerSnapshot struct {
	total     uint64
	account   uint64
	commodity CommodityPower
	board     []BoardEntry
	appBoard  []BoardEntry
}

func (r *testRuntime) powerSnapshot(owner common.AccountID, cartID []byte) (snapshot powerSnapshot) {
	r.t.Helper()
	var err error
	snapshot.total, err = r.kp.TotalPower()
	require.NoError(r.t, err)
	snapshot.account, err = r.kp.AccountPower(owner)
	require.NoError(r.t, err)
	snapshot.commodity, err = r.kp.CommodityPower(testApp, cartID)
	require.NoError(r.t, err)
	snapshot.board, err = r.kp.LeaderBoard(testApp, testModel)
	require.NoError(r.t, err)
	snapshot.appBoard, err = r.kp.LeaderBoard(testApp, nil)
	require.NoError(r.t, err)
	return snapshot
}

func Test_Pallet_refreshCommodity_idempotent(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())
	owner := common.AccountID{0x10}
	cart := []byte("cart")
	r.setupCart(owner, cart)

	initial := r.powerSnapshot(owner, cart)
	assert.Equal(t, uint64(3_100), initial.total)
	assert.Equal(t, uint64(3_100), initial.account)
	assert.Equal(t, []string{"cart"}, boardCarts(initial.board))

	for i := 0; i < 2; i++ {
		require.NoError(t, r.kp.refreshCommodity(testApp, cart))
		assert.Equal(t, initial, r.powerSnapshot(owner, cart))
	}

	require.NoError(t, r.kp.replacePower(owner, initial.account, initial.account))
	assert.Equal(t, initial, r.powerSnapshot(owner, cart))
}

func Test_replaceClamped(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value       uint64
		previous    uint64
		next        uint64
		expected    uint64
		errSentinel error
	}{
		"unchanged": {
			value:    100,
			previous: 40,
			next:     40,
			expected: 100,
		},
		"replace": {
			value:    100,
			previous: 40,
			next:     10,
			expected: 70,
		},
		"previous above value clamps": {
			value:    30,
			previous: 40,
			next:     10,
			expected: 10,
		},
		"overflow": {
			value:       ^uint64(0),
			next:        1,
			expected:    ^uint64(0),
			errSentinel: ErrOverflow,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			value := testCase.value
			err := replaceClamped(&value, testCase.previous, testCase.next, "power")
			assert.ErrorIs(t, err, testCase.errSentinel)
			assert.Equal(t, testCase.expected, value)
		})
	}
}
