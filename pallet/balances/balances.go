// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package balances implements the currency ledger: free and reserved
// balances, transfers, reservations, slashing, minting and burning.
package balances

import (
	"errors"
	"fmt"

	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "balances"))

// SetLogLevel sets the level of the balances package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

const moduleName = "Balances"

// AccountData holds the balances of an account.
type AccountData struct {
	Free     arith.Balance
	Reserved arith.Balance
}

func (a AccountData) total() arith.Balance {
	var total arith.Balance
	total.Add(&a.Free, &a.Reserved)
	return total
}

var (
	accounts      = storage.NewMap[common.AccountID, AccountData](moduleName, "Account")
	totalIssuance = storage.NewValue[arith.Balance](moduleName, "TotalIssuance")
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrExistentialDeposit  = errors.New("balance below existential deposit")
	ErrKeepAlive           = errors.New("transfer would kill account")
)

// Pallet is the balances runtime module.
type Pallet struct {
	storage            *storage.Storage
	existentialDeposit arith.Balance
}

func New(s *storage.Storage, existentialDeposit arith.Balance) *Pallet {
	return &Pallet{storage: s, existentialDeposit: existentialDeposit}
}

// MinimumBalance returns the existential deposit.
func (p *Pallet) MinimumBalance() arith.Balance {
	return p.existentialDeposit
}

func (p *Pallet) Account(who common.AccountID) (AccountData, error) {
	return accounts.Get(p.storage, who)
}

func (p *Pallet) FreeBalance(who common.AccountID) (arith.Balance, error) {
	account, err := p.Account(who)
	return account.Free, err
}

func (p *Pallet) ReservedBalance(who common.AccountID) (arith.Balance, error) {
	account, err := p.Account(who)
	return account.Reserved, err
}

func (p *Pallet) TotalIssuance() (arith.Balance, error) {
	return totalIssuance.Get(p.storage)
}

// putAccount stores the account, reaping it when its total balance
// falls under the existential deposit. The dust leaves the issuance.
func (p *Pallet) putAccount(who common.AccountID, account AccountData) error {
	total := account.total()
	if !total.Lt(&p.existentialDeposit) {
		return accounts.Put(p.storage, who, account)
	}
	if !total.IsZero() {
		logger.Debugf("reaping account %s with dust %s", who.Short(), arith.String(total))
		if err := p.reduceIssuance(total); err != nil {
			return err
		}
	}
	return accounts.Remove(p.storage, who)
}

func (p *Pallet) reduceIssuance(amount arith.Balance) error {
	return totalIssuance.Mutate(p.storage, func(issuance *arith.Balance) error {
		if issuance.Lt(&amount) {
			logger.Warnf("total issuance %s lower than %s, clamping to zero",
				arith.String(*issuance), arith.String(amount))
		}
		*issuance = arith.SaturatingSub(*issuance, amount)
		return nil
	})
}

// Transfer moves amount from the free balance of from to the free
// balance of to. With keepAlive the sender may not be reaped.
func (p *Pallet) Transfer(from, to common.AccountID, amount arith.Balance, keepAlive bool) error {
	if amount.IsZero() || from == to {
		return nil
	}
	return p.storage.Transactional(func() error {
		sender, err := p.Account(from)
		if err != nil {
			return err
		}
		free, err := arith.Sub(sender.Free, amount)
		if err != nil {
			return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance,
				from.Short(), arith.String(sender.Free), arith.String(amount))
		}
		sender.Free = free
		if total := sender.total(); keepAlive && total.Lt(&p.existentialDeposit) {
			return fmt.Errorf("%w: %s", ErrKeepAlive, from.Short())
		}

		recipient, err := p.Account(to)
		if err != nil {
			return err
		}
		recipient.Free, err = arith.Add(recipient.Free, amount)
		if err != nil {
			return err
		}
		if total := recipient.total(); total.Lt(&p.existentialDeposit) {
			return fmt.Errorf("%w: %s would hold %s", ErrExistentialDeposit, to.Short(), arith.String(total))
		}

		if err := p.putAccount(from, sender); err != nil {
			return err
		}
		return p.putAccount(to, recipient)
	})
}

// Reserve moves amount from the free to the reserved balance.
func (p *Pallet) Reserve(who common.AccountID, amount arith.Balance) error {
	account, err := p.Account(who)
	if err != nil {
		return err
	}
	free, err := arith.Sub(account.Free, amount)
	if err != nil {
		return fmt.Errorf("%w: %s has %s free, reserving %s", ErrInsufficientBalance,
			who.Short(), arith.String(account.Free), arith.String(amount))
	}
	account.Free = free
	account.Reserved, err = arith.Add(account.Reserved, amount)
	if err != nil {
		return err
	}
	return accounts.Put(p.storage, who, account)
}

// Unreserve moves up to amount from the reserved to the free balance
// and returns the part that was not reserved.
func (p *Pallet) Unreserve(who common.AccountID, amount arith.Balance) (arith.Balance, error) {
	account, err := p.Account(who)
	if err != nil {
		return amount, err
	}
	actual := arith.Min(amount, account.Reserved)
	account.Reserved = arith.SaturatingSub(account.Reserved, actual)
	account.Free, err = arith.Add(account.Free, actual)
	if err != nil {
		return amount, err
	}
	if err := accounts.Put(p.storage, who, account); err != nil {
		return amount, err
	}
	return arith.SaturatingSub(amount, actual), nil
}

// Slash removes up to amount from the free balance, then from the
// reserved balance, and returns the part that could not be slashed.
func (p *Pallet) Slash(who common.AccountID, amount arith.Balance) (arith.Balance, error) {
	account, err := p.Account(who)
	if err != nil {
		return amount, err
	}
	fromFree := arith.Min(amount, account.Free)
	account.Free = arith.SaturatingSub(account.Free, fromFree)
	left := arith.SaturatingSub(amount, fromFree)
	fromReserved := arith.Min(left, account.Reserved)
	account.Reserved = arith.SaturatingSub(account.Reserved, fromReserved)
	left = arith.SaturatingSub(left, fromReserved)

	slashed := arith.SaturatingSub(amount, left)
	if err := p.reduceIssuance(slashed); err != nil {
		return amount, err
	}
	if err := p.putAccount(who, account); err != nil {
		return amount, err
	}
	return left, nil
}

// SlashReserved removes up to amount from the reserved balance and
// returns the part that could not be slashed.
func (p *Pallet) SlashReserved(who common.AccountID, amount arith.Balance) (arith.Balance, error) {
	account, err := p.Account(who)
	if err != nil {
		return amount, err
	}
	slashed := arith.Min(amount, account.Reserved)
	account.Reserved = arith.SaturatingSub(account.Reserved, slashed)
	if err := p.reduceIssuance(slashed); err != nil {
		return amount, err
	}
	if err := p.putAccount(who, account); err != nil {
		return amount, err
	}
	return arith.SaturatingSub(amount, slashed), nil
}

// Deposit mints amount to the free balance of the account.
func (p *Pallet) Deposit(who common.AccountID, amount arith.Balance) error {
	if amount.IsZero() {
		return nil
	}
	account, err := p.Account(who)
	if err != nil {
		return err
	}
	account.Free, err = arith.Add(account.Free, amount)
	if err != nil {
		return err
	}
	if total := account.total(); total.Lt(&p.existentialDeposit) {
		return fmt.Errorf("%w: %s would hold %s", ErrExistentialDeposit, who.Short(), arith.String(total))
	}
	err = totalIssuance.Mutate(p.storage, func(issuance *arith.Balance) (err error) {
		*issuance, err = arith.Add(*issuance, amount)
		return err
	})
	if err != nil {
		return err
	}
	return accounts.Put(p.storage, who, account)
}

// Burn destroys amount of the free balance of the account.
func (p *Pallet) Burn(who common.AccountID, amount arith.Balance) error {
	account, err := p.Account(who)
	if err != nil {
		return err
	}
	free, err := arith.Sub(account.Free, amount)
	if err != nil {
		return fmt.Errorf("%w: %s has %s, burning %s", ErrInsufficientBalance,
			who.Short(), arith.String(account.Free), arith.String(amount))
	}
	account.Free = free
	if err := p.reduceIssuance(amount); err != nil {
		return err
	}
	return p.putAccount(who, account)
}
