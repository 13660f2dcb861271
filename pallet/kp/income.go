// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// ModelIncomes are the incomes of models of an app during a cycle.
type ModelIncomes struct {
	AppID    uint32
	ModelIDs [][]byte
	Incomes  []uint64
}

// ModelIncomeCollecting records the incomes of models of an app for the
// current cycle.
func (p *Pallet) ModelIncomeCollecting(signed Signed[ModelIncomes]) error {
	return p.dispatch("model_income_collecting", func() error {
		s := p.storage
		payload := signed.Payload
		app := payload.AppID

		cycle, err := p.ensureStage(StageCollecting)
		if err != nil {
			return err
		}
		if err := verifySigned(p, app, signed); err != nil {
			return err
		}
		if err := p.ensureValidApp(app); err != nil {
			return err
		}
		if len(payload.ModelIDs) != len(payload.Incomes) {
			return fmt.Errorf("%w: %d model ids, %d incomes",
				ErrIncomeLengthMismatch, len(payload.ModelIDs), len(payload.Incomes))
		}

		seen := make(map[string]struct{}, len(payload.ModelIDs))
		var sum uint64
		for i, modelID := range payload.ModelIDs {
			if err := p.ensureIncomeCollectable(cycle, app, modelID, seen); err != nil {
				return err
			}
			next := sum + payload.Incomes[i]
			if next < sum {
				return fmt.Errorf("%w: income of cycle %d", ErrOverflow, cycle)
			}
			sum = next
		}

		for i, modelID := range payload.ModelIDs {
			key := cycleAppModel{Cycle: cycle, AppID: app, ModelID: modelID}
			if err := modelCycleIncome.Put(s, key, payload.Incomes[i]); err != nil {
				return err
			}
		}
		err = appCycleIncome.Mutate(s, cycleApp{Cycle: cycle, AppID: app}, func(income *AppCycleIncome) error {
			income.Cycle = cycle
			income.AppID = app
			return addIncome(&income.Income, sum)
		})
		if err != nil {
			return err
		}
		return modelCycleIncomeTotal.Mutate(s, cycle, func(total *uint64) error {
			return addIncome(total, sum)
		})
	})
}

func (p *Pallet) ensureIncomeCollectable(cycle, appID uint32, modelID []byte, seen map[string]struct{}) error {
	if _, ok := seen[string(modelID)]; ok {
		return fmt.Errorf("%w: model 0x%x listed twice", ErrIncomeAlreadyExists, modelID)
	}
	seen[string(modelID)] = struct{}{}

	exists, err := modelData.Contains(p.storage, appID, modelID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: app %d model 0x%x", ErrModelNotFound, appID, modelID)
	}
	exists, err = modelCycleIncome.Contains(p.storage, cycleAppModel{Cycle: cycle, AppID: appID, ModelID: modelID})
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: model 0x%x in cycle %d", ErrIncomeAlreadyExists, modelID, cycle)
	}
	slashCycle, slashed, err := modelSlashCycle.TryGet(p.storage, appID, modelID)
	if err != nil {
		return err
	}
	if slashed && slashCycle+1 == cycle {
		return fmt.Errorf("%w: model 0x%x in cycle %d", ErrModelSlashed, modelID, slashCycle)
	}
	return nil
}

func addIncome(total *uint64, income uint64) error {
	sum := *total + income
	if sum < *total {
		return ErrOverflow
	}
	*total = sum
	return nil
}

// ModelIncomeReward pays the creator of a model its share of the income
// reward pool, in proportion of the model income in the app income.
func (p *Pallet) ModelIncomeReward(who common.AccountID, appID uint32, modelID []byte) error {
	return p.dispatch("model_income_reward", func() error {
		s := p.storage
		cycle, err := p.ensureStage(StageRewarding)
		if err != nil {
			return err
		}
		if err := p.ensureModelCreator(who, appID, modelID); err != nil {
			return err
		}
		key := cycleAppModel{Cycle: cycle, AppID: appID, ModelID: modelID}
		exists, err := rewardRecords.Contains(s, key)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: model 0x%x in cycle %d", ErrRewardAlreadyExists, modelID, cycle)
		}
		slashCycle, slashed, err := modelSlashCycle.TryGet(s, appID, modelID)
		if err != nil {
			return err
		}
		if slashed && slashCycle == cycle {
			return fmt.Errorf("%w: reward of cycle %d cancelled", ErrModelSlashed, cycle)
		}

		income, err := modelCycleIncome.Get(s, key)
		if err != nil {
			return err
		}
		appIncome, err := appCycleIncome.Get(s, cycleApp{Cycle: cycle, AppID: appID})
		if err != nil {
			return err
		}
		if income == 0 || appIncome.Income == 0 {
			return fmt.Errorf("%w: model 0x%x in cycle %d", ErrNoIncome, modelID, cycle)
		}

		amount := arith.PerbillFromRational(income, appIncome.Income).OfBalance(p.config.ModelIncomeRewardTotal)
		if err := p.currency.Transfer(p.financeTreasury, who, amount, false); err != nil {
			return fmt.Errorf("paying model reward: %w", err)
		}

		reward := ModelIncomeReward{Account: who, AppID: appID, ModelID: modelID, Reward: amount}
		if err := rewardRecords.Put(s, key, reward); err != nil {
			return err
		}
		err = rewardStore.Mutate(s, cycle, func(rewards *[]ModelIncomeReward) error {
			*rewards = append(*rewards, reward)
			return nil
		})
		if err != nil {
			return err
		}
		return rewardTotal.Mutate(s, func(total *arith.Balance) (err error) {
			*total, err = arith.Add(*total, amount)
			return err
		})
	})
}

// AppIncomeRedeemRequest reserves an exchange of the app income of the
// current cycle from the balance of the requester.
func (p *Pallet) AppIncomeRedeemRequest(who common.AccountID, appID uint32, amount arith.Balance, payID []byte) error {
	return p.dispatch("app_income_redeem_request", func() error {
		s := p.storage
		cycle, err := p.ensureStage(StageRewarding)
		if err != nil {
			return err
		}
		if err := p.ensureValidApp(appID); err != nil {
			return err
		}
		recordKey := appCycleAccount{AppID: appID, Cycle: cycle, Account: who}
		exists, err := redeemRecords.Contains(s, recordKey)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s in cycle %d", ErrRecordAlreadyExists, who.Short(), cycle)
		}

		key := cycleApp{Cycle: cycle, AppID: appID}
		income, err := p.escrow(key)
		if err != nil {
			return err
		}
		if !amount.Lt(&income.Balance) {
			return fmt.Errorf("%w: %s requested, %s left", ErrEscrowExhausted,
				arith.String(amount), arith.String(income.Balance))
		}
		income.Balance, err = arith.Sub(income.Balance, amount)
		if err != nil {
			return err
		}

		record, err := p.reserveExchange(who, amount, payID)
		if err != nil {
			return err
		}
		if err := redeemRecords.Put(s, recordKey, record); err != nil {
			return err
		}
		if err := appCycleIncome.Put(s, key, income); err != nil {
			return err
		}
		return redeemSet.Mutate(s, key, func(accounts *[]common.AccountID) error {
			*accounts = append(*accounts, who)
			return nil
		})
	})
}

// escrow returns the income record of the app for the cycle. The escrow
// ceiling and the finance delegate are set on first use.
func (p *Pallet) escrow(key cycleApp) (income AppCycleIncome, err error) {
	s := p.storage
	income, err = appCycleIncome.Get(s, key)
	if err != nil {
		return income, err
	}
	if income.Income == 0 {
		return income, fmt.Errorf("%w: app %d in cycle %d", ErrNoIncome, key.AppID, key.Cycle)
	}
	assigned, err := redeemDelegate.Contains(s, key)
	if err != nil || assigned {
		return income, err
	}

	rate, err := p.membership.AppReturnRate(key.AppID)
	if err != nil {
		return income, err
	}
	rate = max(rate, p.config.KptExchangeMinRate)
	// income is counted in hundredths of the currency unit
	units, err := arith.Mul(arith.NewBalance(income.Income/100), arith.NewBalance(p.config.CurrencyUnit))
	if err != nil {
		return income, err
	}
	income.Initial = rate.OfBalance(units)
	income.Balance = income.Initial

	delegate, err := p.chooseDelegate(key)
	if err != nil {
		return income, err
	}
	return income, redeemDelegate.Put(s, key, delegate)
}

// AppIncomeRedeemConfirm is called by the finance delegate once the
// exchange was paid out to the account.
func (p *Pallet) AppIncomeRedeemConfirm(who common.AccountID, appID uint32, account common.AccountID, payID []byte) error {
	return p.dispatch("app_income_redeem_confirm", func() error {
		s := p.storage
		cycle, err := p.ensureStage(StageRewarding, StageConfirming)
		if err != nil {
			return err
		}
		key := cycleApp{Cycle: cycle, AppID: appID}
		delegate, err := redeemDelegate.Get(s, key)
		if err != nil {
			return err
		}
		if delegate != who {
			return fmt.Errorf("%w: %s", ErrNotDelegate, who.Short())
		}
		recordKey := appCycleAccount{AppID: appID, Cycle: cycle, Account: account}
		record, found, err := redeemRecords.TryGet(s, recordKey)
		if err != nil {
			return err
		}
		if err := ensureInitiated(record, found); err != nil {
			return err
		}

		if err := p.confirmExchange(delegate, account, &record, payID); err != nil {
			return err
		}
		if err := redeemRecords.Put(s, recordKey, record); err != nil {
			return err
		}
		total, err := redeemBurnTotal.Get(s)
		if err != nil {
			return err
		}
		count, err := redeemBurnCount.Get(s)
		if err != nil {
			return err
		}
		if err := addBurnt(&total, &count, record.Amount); err != nil {
			return err
		}
		if err := redeemBurnTotal.Put(s, total); err != nil {
			return err
		}
		return redeemBurnCount.Put(s, count)
	})
}

// AppIncomeRedeemCompensate releases an exchange the delegate did not
// confirm and compensates the requester from the delegate deposit.
func (p *Pallet) AppIncomeRedeemCompensate(who common.AccountID, appID uint32) error {
	return p.dispatch("app_income_redeem_compensate", func() error {
		s := p.storage
		cycle, err := p.ensureStage(StageCompensating)
		if err != nil {
			return err
		}
		recordKey := appCycleAccount{AppID: appID, Cycle: cycle, Account: who}
		record, found, err := redeemRecords.TryGet(s, recordKey)
		if err != nil {
			return err
		}
		if err := ensureInitiated(record, found); err != nil {
			return err
		}
		delegate, err := redeemDelegate.Get(s, cycleApp{Cycle: cycle, AppID: appID})
		if err != nil {
			return err
		}
		if err := p.compensateExchange(delegate, who, &record); err != nil {
			return err
		}
		return redeemRecords.Put(s, recordKey, record)
	})
}
