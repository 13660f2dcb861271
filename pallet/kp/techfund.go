// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// TechFundWithdraw pays from the tech treasury, which must keep at
// least the tech fund base and the existential deposit.
func (p *Pallet) TechFundWithdraw(who, receiver common.AccountID, amount arith.Balance,
	level TechFundWithdrawLevel, withdrawType TechFundWithdrawType, reason common.Hash) error {
	return p.dispatch("tech_fund_withdraw", func() error {
		if err := p.ensureFinanceRoot(who); err != nil {
			return err
		}
		if amount.IsZero() {
			return ErrZeroAmount
		}
		free, err := p.currency.FreeBalance(p.techTreasury)
		if err != nil {
			return err
		}
		floor := p.currency.MinimumBalance()
		if p.config.TechFundBase.Gt(&floor) {
			floor = p.config.TechFundBase
		}
		left, err := arith.Sub(free, amount)
		if err != nil || left.Lt(&floor) {
			return fmt.Errorf("%w: withdrawing %s of %s", ErrTechFundInsufficient,
				arith.String(amount), arith.String(free))
		}
		if err := p.currency.Transfer(p.techTreasury, receiver, amount, false); err != nil {
			return fmt.Errorf("paying tech fund: %w", err)
		}
		return techFundWithdrawals.Mutate(p.storage, func(records *[]TechFundWithdraw) error {
			*records = append(*records, TechFundWithdraw{
				Account: receiver,
				Amount:  amount,
				Level:   level,
				Type:    withdrawType,
				Reason:  reason,
			})
			return nil
		})
	})
}
