// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

// Noop discards all metrics.
type Noop struct{}

func (Noop) Dispatched(string, error) {}

func (Noop) SetTotalPower(uint64) {}

func (Noop) SetLeaderBoardEntries(string, int) {}

func (Noop) AddBurnt(float64) {}
