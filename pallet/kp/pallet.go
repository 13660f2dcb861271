// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package kp implements the knowledge power runtime module: document and
// commodity power, leaderboards and their lottery, the per cycle income
// redemption and financing proposal exchanges, disputes and slashing.
package kp

import (
	"fmt"

	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/internal/metrics"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/crypto"
	"github.com/ctt-network/kp/lib/crypto/sr25519"
	"github.com/ctt-network/kp/lib/storage"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "kp"))

// SetLogLevel sets the level of the kp package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// Dependencies are the collaborators of the pallet.
type Dependencies struct {
	Storage    *storage.Storage
	System     System
	Currency   Currency
	Membership Membership
	Metrics    Metrics
	Verify     crypto.SigVerifyFunc
}

// Pallet is the kp runtime module. Calls must be applied one at a time.
type Pallet struct {
	config     Config
	storage    *storage.Storage
	system     System
	currency   Currency
	membership Membership
	metrics    Metrics
	verify     crypto.SigVerifyFunc

	techTreasury    common.AccountID
	financeTreasury common.AccountID
}

// New creates the pallet.
func New(config Config, deps Dependencies) *Pallet {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Noop{}
	}
	if deps.Verify == nil {
		deps.Verify = sr25519.VerifySignature
	}
	return &Pallet{
		config:          config,
		storage:         deps.Storage,
		system:          deps.System,
		currency:        deps.Currency,
		membership:      deps.Membership,
		metrics:         deps.Metrics,
		verify:          deps.Verify,
		techTreasury:    common.AccountIDFromSeed(config.TechTreasurySeed),
		financeTreasury: common.AccountIDFromSeed(config.FinanceTreasurySeed),
	}
}

// TechTreasury returns the account of the tech fund.
func (p *Pallet) TechTreasury() common.AccountID { return p.techTreasury }

// FinanceTreasury returns the account paying model income rewards.
func (p *Pallet) FinanceTreasury() common.AccountID { return p.financeTreasury }

// dispatch applies fn in a storage transaction. Nothing fn wrote is
// kept if it returns an error.
func (p *Pallet) dispatch(call string, fn func() error) (err error) {
	err = p.storage.Transactional(fn)
	p.metrics.Dispatched(call, err)
	if err != nil {
		logger.Debugf("%s rejected: %s", call, err)
		return fmt.Errorf("%s: %w", call, err)
	}
	logger.Tracef("%s applied", call)
	return nil
}

func (p *Pallet) blockNumber() (uint32, error) {
	number, err := p.system.BlockNumber()
	if err != nil {
		return 0, fmt.Errorf("getting block number: %w", err)
	}
	return number, nil
}

func (p *Pallet) ensureAppAdmin(who common.AccountID, appID uint32) error {
	ok, err := p.membership.IsAppAdmin(who, appID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s for app %d", ErrNotAppAdmin, who.Short(), appID)
	}
	return nil
}

func (p *Pallet) ensureValidApp(appID uint32) error {
	ok, err := p.membership.IsValidApp(appID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidApp, appID)
	}
	return nil
}

func (p *Pallet) ensureFinanceRoot(who common.AccountID) error {
	ok, err := p.membership.IsFinanceRoot(who)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFinanceRoot, who.Short())
	}
	return nil
}

// OnFinalize runs the end of block processing.
func (p *Pallet) OnFinalize(block uint32) error {
	return p.dispatch("on_finalize", func() error {
		return p.processPreBlackList(block)
	})
}
