// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// Currency is the ledger the pallet moves balances with.
type Currency interface {
	FreeBalance(who common.AccountID) (arith.Balance, error)
	Transfer(from, to common.AccountID, amount arith.Balance, keepAlive bool) error
	Reserve(who common.AccountID, amount arith.Balance) error
	// Unreserve moves up to amount from the reserved to the free balance
	// and returns the part that could not be unreserved.
	Unreserve(who common.AccountID, amount arith.Balance) (arith.Balance, error)
	// SlashReserved removes up to amount from the reserved balance and
	// returns the part that could not be slashed.
	SlashReserved(who common.AccountID, amount arith.Balance) (arith.Balance, error)
	Deposit(who common.AccountID, amount arith.Balance) error
	Burn(who common.AccountID, amount arith.Balance) error
	MinimumBalance() arith.Balance
}

// System provides the block number and the randomness beacon.
type System interface {
	BlockNumber() (uint32, error)
	Randomness(block uint32) (common.Hash, error)
}

// Membership answers role queries and manages app settings and
// model creators.
type Membership interface {
	IsValidApp(appID uint32) (bool, error)
	IsAppAdmin(who common.AccountID, appID uint32) (bool, error)
	IsAppKey(who common.AccountID, appID uint32) (bool, error)
	IsModelCreator(who common.AccountID, appID uint32, modelID []byte) (bool, error)
	IsModelExpert(who common.AccountID, appID uint32, modelID []byte) (bool, error)
	IsPlatformExpert(who common.AccountID, appID uint32) (bool, error)
	IsInvestor(who common.AccountID) (bool, error)
	IsFinanceRoot(who common.AccountID) (bool, error)
	IsFinanceMember(who common.AccountID) (bool, error)
	ValidFinanceMembers() ([]common.AccountID, error)
	// SetModelCreator registers the creator of a model and returns the
	// creation benefit minted to it.
	SetModelCreator(appID uint32, modelID []byte, creator common.AccountID, firstOfType bool) (arith.Balance, error)
	ModelCreator(appID uint32, modelID []byte) (common.AccountID, error)
	AppReturnRate(appID uint32) (arith.Permill, error)
	AppStake(appID uint32) (arith.Balance, error)
	// SlashFinanceMember moves up to amount of the member deposit to the
	// receiver and returns the slashed amount.
	SlashFinanceMember(member, receiver common.AccountID, amount arith.Balance) (arith.Balance, error)
}

// Metrics records dispatch outcomes and power gauges.
type Metrics interface {
	Dispatched(call string, err error)
	SetTotalPower(power uint64)
	SetLeaderBoardEntries(app string, entries int)
	AddBurnt(units float64)
}
