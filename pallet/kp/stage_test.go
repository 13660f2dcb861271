// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StageAt(t *testing.T) {
	t.Parallel()

	periods := Periods{Cycle: 1_000, Collecting: 100, Rewarding: 400}

	testCases := map[string]struct {
		block     uint32
		periods   Periods
		stage     Stage
		remaining uint32
	}{
		"cycle start": {
			block: 0, periods: periods,
			stage: StageCollecting, remaining: 100,
		},
		"rewarding": {
			block: 150, periods: periods,
			stage: StageRewarding, remaining: 350,
		},
		"rewarding last block": {
			block: 499, periods: periods,
			stage: StageRewarding, remaining: 1,
		},
		"confirming": {
			block: 500, periods: periods,
			stage: StageConfirming, remaining: 200,
		},
		"compensating": {
			block: 1_700, periods: periods,
			stage: StageCompensating, remaining: 200,
		},
		"normal": {
			block: 950, periods: periods,
			stage: StageNormal, remaining: 50,
		},
		"odd rewarding period": {
			block: 900, periods: Periods{Cycle: 1_000, Collecting: 100, Rewarding: 401},
			stage: StageCompensating, remaining: 1,
		},
		"no cycle": {
			block: 10, periods: Periods{},
			stage: StageNormal, remaining: 0,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stage, remaining := StageAt(testCase.block, testCase.periods)
			assert.Equal(t, testCase.stage, stage)
			assert.Equal(t, testCase.remaining, remaining)
		})
	}
}

func Test_CycleIndex(t *testing.T) {
	t.Parallel()

	periods := Periods{Cycle: 1_000, Collecting: 100, Rewarding: 400}
	assert.Equal(t, uint32(0), CycleIndex(999, periods))
	assert.Equal(t, uint32(1), CycleIndex(1_000, periods))
	assert.Equal(t, uint32(12), CycleIndex(12_345, periods))
	assert.Equal(t, uint32(0), CycleIndex(12_345, Periods{}))
}

func Test_Pallet_ensureStage(t *testing.T) {
	t.Parallel()

	r := newTestRuntime(t, testConfig())

	r.setBlock(150)
	_, err := r.kp.ensureStage(StageRewarding)
	assert.ErrorIs(t, err, ErrWrongStage)

	r.setBlock(1_150)
	cycle, err := r.kp.ensureStage(StageRewarding, StageConfirming)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), cycle)

	_, err = r.kp.ensureStage(StageCollecting)
	assert.ErrorIs(t, err, ErrWrongStage)

	stage, cycle, remaining, err := r.kp.FinanceStage()
	require.NoError(t, err)
	assert.Equal(t, StageRewarding, stage)
	assert.Equal(t, uint32(1), cycle)
	assert.Equal(t, uint32(350), remaining)
}
