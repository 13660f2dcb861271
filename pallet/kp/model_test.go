// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"testing"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/pallet/balances"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelPayload(modelID []byte, typeID uint32) ModelPayload {
	return ModelPayload{
		AppID:         testApp,
		ModelID:       modelID,
		ExpertID:      []byte("expert"),
		CommodityName: []byte("tea"),
		CommodityType: typeID,
	}
}

func Test_Pallet_CreateModel(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())
	r.createModel(testCreator, testModel)

	model, found, err := r.kp.Model(testApp, testModel)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, Model{
		AppID:         testApp,
		ModelID:       testModel,
		ExpertID:      []byte("expert"),
		Status:        ModelEnabled,
		CommodityName: []byte("tea"),
		CommodityType: testTypeID,
		Sender:        testKey,
		Owner:         testCreator,
		CreateReward:  arith.NewBalance(5),
	}, model)

	assert.Equal(t, arith.NewBalance(testEndowment-testDeposit+5), r.free(testCreator))
	assert.Equal(t, arith.NewBalance(testDeposit), r.reserved(testCreator))
	deposit, err := r.kp.ModelDeposit(testApp, testModel)
	require.NoError(t, err)
	assert.Equal(t, arith.NewBalance(testDeposit), deposit)

	isCreator, err := r.members.IsModelCreator(testCreator, testApp, testModel)
	require.NoError(t, err)
	assert.True(t, isCreator)

	// the creation benefit is paid once per commodity type
	other := common.AccountID{0x40}
	r.createModel(other, []byte("other"))
	model, _, err = r.kp.Model(testApp, []byte("other"))
	require.NoError(t, err)
	assert.True(t, model.CreateReward.IsZero())
	assert.Equal(t, arith.NewBalance(testEndowment-testDeposit), r.free(other))
}

func Test_Pallet_CreateModel_errors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		setup       func(r *testRuntime)
		creator     common.AccountID
		payload     ModelPayload
		errSentinel error
	}{
		"unknown commodity type": {
			creator:     testCreator,
			payload:     modelPayload([]byte("new"), 99),
			errSentinel: ErrCommodityTypeNotFound,
		},
		"model exists": {
			setup: func(r *testRuntime) {
				r.createModel(common.AccountID{0x40}, []byte("new"))
			},
			creator:     testCreator,
			payload:     modelPayload([]byte("new"), testTypeID),
			errSentinel: ErrModelAlreadyExisted,
		},
		"over app limit": {
			setup: func(r *testRuntime) {
				require.NoError(r.t, r.kp.SetAppModelTotal(testAdmin, testApp, 1))
				r.createModel(common.AccountID{0x40}, testModel)
			},
			creator:     testCreator,
			payload:     modelPayload([]byte("new"), testTypeID),
			errSentinel: ErrModelOverLimit,
		},
		"deposit not covered": {
			creator:     common.AccountID{0x41},
			payload:     modelPayload([]byte("new"), testTypeID),
			errSentinel: balances.ErrInsufficientBalance,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := newTestRuntime(t, testConfig())
			r.endow(testCreator)
			if testCase.setup != nil {
				testCase.setup(r)
			}

			err := r.kp.CreateModel(signed(testCase.creator, testCase.payload))
			assert.ErrorIs(t, err, testCase.errSentinel)

			isCreator, err := r.members.IsModelCreator(testCase.creator, testApp, []byte("new"))
			require.NoError(t, err)
			assert.False(t, isCreator)
		})
	}
}

func Test_Pallet_SetAppModelTotal(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())
	err := r.kp.SetAppModelTotal(testCreator, testApp, 1)
	assert.ErrorIs(t, err, ErrNotAppAdmin)
}

func Test_Pallet_SetCommodityType(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())
	require.NoError(t, r.kp.SetCommodityType(testRoot, 9, []byte("nine")))
	require.NoError(t, r.kp.SetCommodityType(testRoot, 3, []byte("three")))
	require.NoError(t, r.kp.SetCommodityType(testRoot, testTypeID, []byte("seven")))

	types, err := r.kp.CommodityTypes()
	require.NoError(t, err)
	assert.Equal(t, []CommodityType{
		{TypeID: 3, Desc: []byte("three")},
		{TypeID: testTypeID, Desc: []byte("seven")},
		{TypeID: 9, Desc: []byte("nine")},
	}, types)

	err = r.kp.SetCommodityType(testAdmin, 1, []byte("one"))
	assert.ErrorIs(t, err, ErrNotFinanceRoot)
}

func Test_Pallet_ModelStatus(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())

	err := r.kp.DisableModel(testAdmin, testApp, testModel)
	assert.ErrorIs(t, err, ErrModelNotFound)

	r.createModel(testCreator, testModel)
	err = r.kp.DisableModel(testCreator, testApp, testModel)
	assert.ErrorIs(t, err, ErrNotAppAdmin)

	require.NoError(t, r.kp.DisableModel(testAdmin, testApp, testModel))
	model, _, err := r.kp.Model(testApp, testModel)
	require.NoError(t, err)
	assert.Equal(t, ModelDisabled, model.Status)

	require.NoError(t, r.kp.EnableModel(testAdmin, testApp, testModel))
	model, _, err = r.kp.Model(testApp, testModel)
	require.NoError(t, err)
	assert.Equal(t, ModelEnabled, model.Status)
}

func Test_Pallet_AddModelDeposit(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())
	r.createModel(testCreator, testModel)

	err := r.kp.AddModelDeposit(testCreator, testApp, testModel, arith.Balance{})
	assert.ErrorIs(t, err, ErrZeroAmount)

	err = r.kp.AddModelDeposit(testAdmin, testApp, testModel, arith.NewBalance(500))
	assert.ErrorIs(t, err, ErrNotModelCreator)

	err = r.kp.AddModelDeposit(testCreator, testApp, []byte("unknown"), arith.NewBalance(500))
	assert.ErrorIs(t, err, ErrModelNotFound)

	require.NoError(t, r.kp.AddModelDeposit(testCreator, testApp, testModel, arith.NewBalance(500)))
	deposit, err := r.kp.ModelDeposit(testApp, testModel)
	require.NoError(t, err)
	assert.Equal(t, arith.NewBalance(testDeposit+500), deposit)
	assert.Equal(t, arith.NewBalance(testDeposit+500), r.reserved(testCreator))
}
