// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/random"
)

// chooseDelegate picks a finance member at random among the members
// holding the largest deposit. The subject separates the draws made at
// the same block.
func (p *Pallet) chooseDelegate(subject interface{}) (common.AccountID, error) {
	members, err := p.membership.ValidFinanceMembers()
	if err != nil {
		return common.AccountID{}, err
	}
	if len(members) == 0 {
		return common.AccountID{}, ErrNoFinanceMember
	}
	now, err := p.blockNumber()
	if err != nil {
		return common.AccountID{}, err
	}
	beacon, err := p.system.Randomness(now)
	if err != nil {
		return common.AccountID{}, fmt.Errorf("getting randomness: %w", err)
	}
	encoded, err := scale.Marshal(subject)
	if err != nil {
		return common.AccountID{}, fmt.Errorf("encoding delegate subject: %w", err)
	}
	return members[random.NewFromBeacon(beacon, encoded).Intn(len(members))], nil
}

// reserveExchange reserves the amount and its fee from the requester
// and returns the exchange record.
func (p *Pallet) reserveExchange(who common.AccountID, amount arith.Balance, payID []byte) (ExchangeRecord, error) {
	if amount.IsZero() {
		return ExchangeRecord{}, ErrZeroAmount
	}
	fee := p.config.RedeemFeeRate.OfBalance(amount)
	total, err := arith.Add(amount, fee)
	if err != nil {
		return ExchangeRecord{}, err
	}
	if err := p.currency.Reserve(who, total); err != nil {
		return ExchangeRecord{}, fmt.Errorf("reserving exchange: %w", err)
	}
	return ExchangeRecord{
		Amount: amount,
		Fee:    fee,
		Status: ExchangeInitiated,
		PayID:  payID,
	}, nil
}

func ensureInitiated(record ExchangeRecord, found bool) error {
	if !found {
		return ErrRecordNotFound
	}
	if record.Status != ExchangeInitiated {
		return fmt.Errorf("%w: status %d", ErrRecordNotInitiated, record.Status)
	}
	return nil
}

func (p *Pallet) unreserveExchange(account common.AccountID, record ExchangeRecord) error {
	total, err := arith.Add(record.Amount, record.Fee)
	if err != nil {
		return err
	}
	missing, err := p.currency.Unreserve(account, total)
	if err != nil {
		return err
	}
	if !missing.IsZero() {
		return fmt.Errorf("%w: %s of exchange reservation of %s missing",
			arith.ErrUnderflow, arith.String(missing), account.Short())
	}
	return nil
}

// confirmExchange settles a confirmed exchange: the fee goes to the
// delegate and the amount is burnt.
func (p *Pallet) confirmExchange(delegate, account common.AccountID, record *ExchangeRecord, payID []byte) error {
	if !bytes.Equal(record.PayID, payID) {
		return fmt.Errorf("%w: 0x%x", ErrPayIDMismatch, payID)
	}
	if err := p.unreserveExchange(account, *record); err != nil {
		return err
	}
	if !record.Fee.IsZero() {
		if err := p.currency.Transfer(account, delegate, record.Fee, false); err != nil {
			return fmt.Errorf("paying exchange fee: %w", err)
		}
	}
	if err := p.currency.Burn(account, record.Amount); err != nil {
		return fmt.Errorf("burning exchange: %w", err)
	}
	p.metrics.AddBurnt(p.units(record.Amount))
	record.Status = ExchangeConfirmed
	return nil
}

// compensateExchange releases an unconfirmed exchange and slashes the
// delegate deposit by the amount in favour of the requester.
func (p *Pallet) compensateExchange(delegate, account common.AccountID, record *ExchangeRecord) error {
	if err := p.unreserveExchange(account, *record); err != nil {
		return err
	}
	slashed, err := p.membership.SlashFinanceMember(delegate, account, record.Amount)
	if err != nil {
		return fmt.Errorf("slashing finance member %s: %w", delegate.Short(), err)
	}
	if slashed.Lt(&record.Amount) {
		logger.Infof("finance member %s compensated %s of %s to %s",
			delegate.Short(), arith.String(slashed), arith.String(record.Amount), account.Short())
		record.Status = ExchangeCompensationFailed
		return nil
	}
	record.Status = ExchangeCompensated
	return nil
}

func addBurnt(total *arith.Balance, count *uint32, amount arith.Balance) error {
	sum, err := arith.Add(*total, amount)
	if err != nil {
		return err
	}
	*total = sum
	*count++
	return nil
}

// units converts an amount to currency units for metrics.
func (p *Pallet) units(amount arith.Balance) float64 {
	if p.config.CurrencyUnit == 0 {
		return 0
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(amount.ToBig()),
		new(big.Float).SetUint64(p.config.CurrencyUnit)).Float64()
	return f
}
