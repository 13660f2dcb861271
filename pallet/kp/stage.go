// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import "fmt"

// Stage is a stage of the financial cycle.
type Stage uint8

const (
	StageNormal Stage = iota
	StageCollecting
	StageRewarding
	StageConfirming
	StageCompensating
)

func (s Stage) String() string {
	switch s {
	case StageNormal:
		return "normal"
	case StageCollecting:
		return "collecting"
	case StageRewarding:
		return "rewarding"
	case StageConfirming:
		return "confirming"
	case StageCompensating:
		return "compensating"
	default:
		return "unknown"
	}
}

// Periods are the lengths in blocks of the cycle and of its stages.
// The confirming and compensating stages each last half the rewarding period.
type Periods struct {
	Cycle      uint32
	Collecting uint32
	Rewarding  uint32
}

// StageAt returns the stage of the cycle at the given block and the
// number of blocks left in it. A zero cycle length disables the cycle.
func StageAt(block uint32, periods Periods) (stage Stage, remaining uint32) {
	if periods.Cycle == 0 {
		return StageNormal, 0
	}

	offset := block % periods.Cycle
	half := periods.Rewarding / 2
	ends := []struct {
		stage Stage
		end   uint32
	}{
		{StageCollecting, periods.Collecting},
		{StageRewarding, periods.Collecting + periods.Rewarding},
		{StageConfirming, periods.Collecting + periods.Rewarding + half},
		{StageCompensating, periods.Collecting + periods.Rewarding + 2*half},
	}
	for _, e := range ends {
		if offset < e.end {
			return e.stage, e.end - offset
		}
	}
	return StageNormal, periods.Cycle - offset
}

// CycleIndex returns the index of the cycle the block belongs to.
func CycleIndex(block uint32, periods Periods) uint32 {
	if periods.Cycle == 0 {
		return 0
	}
	return block / periods.Cycle
}

// ensureStage returns the current cycle index if the current stage is
// one of the allowed stages. The first cycle is never open.
func (p *Pallet) ensureStage(allowed ...Stage) (cycle uint32, err error) {
	block, err := p.blockNumber()
	if err != nil {
		return 0, err
	}
	periods := p.config.periods()
	stage, _ := StageAt(block, periods)
	cycle = CycleIndex(block, periods)
	if cycle == 0 {
		return 0, fmt.Errorf("%w: first cycle", ErrWrongStage)
	}
	for _, s := range allowed {
		if s == stage {
			return cycle, nil
		}
	}
	return 0, fmt.Errorf("%w: %s at block %d", ErrWrongStage, stage, block)
}
