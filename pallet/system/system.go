// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package system keeps the block number and the randomness beacon of
// the runtime.
package system

import (
	"errors"
	"fmt"

	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "system"))

// SetLogLevel sets the level of the system package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

const moduleName = "System"

var (
	number     = storage.NewValue[uint32](moduleName, "Number")
	randomness = storage.NewMap[uint32, common.Hash](moduleName, "BlockRandomness")
)

var ErrNoRandomness = errors.New("no randomness for block")

// Pallet is the system runtime module.
type Pallet struct {
	storage *storage.Storage
}

func New(s *storage.Storage) *Pallet {
	return &Pallet{storage: s}
}

// Initialize starts a block with the randomness beacon agreed for it.
func (p *Pallet) Initialize(block uint32, beacon common.Hash) error {
	logger.Tracef("initialising block %d with beacon %s", block, beacon.Short())
	return p.storage.Transactional(func() error {
		if err := number.Put(p.storage, block); err != nil {
			return err
		}
		return randomness.Put(p.storage, block, beacon)
	})
}

// BlockNumber returns the number of the current block.
func (p *Pallet) BlockNumber() (uint32, error) {
	return number.Get(p.storage)
}

// Randomness returns the beacon of the block.
func (p *Pallet) Randomness(block uint32) (common.Hash, error) {
	beacon, found, err := randomness.TryGet(p.storage, block)
	if err != nil {
		return common.Hash{}, err
	}
	if !found {
		return common.Hash{}, fmt.Errorf("%w: %d", ErrNoRandomness, block)
	}
	return beacon, nil
}

// Initialized returns true once a block has been initialised.
func (p *Pallet) Initialized() (bool, error) {
	return number.Exists(p.storage)
}
