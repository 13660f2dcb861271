// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
	"github.com/ctt-network/kp/pallet/balances"
	"github.com/ctt-network/kp/pallet/kp"
	"github.com/ctt-network/kp/pallet/members"
	"github.com/ctt-network/kp/pallet/system"
)

func (c *Config) units(amount uint64) (arith.Balance, error) {
	return arith.Mul(arith.NewBalance(amount), arith.NewBalance(c.KP.CurrencyUnit))
}

// ExistentialDeposit returns the minimum balance of an account.
func (c *Config) ExistentialDeposit() (arith.Balance, error) {
	return c.units(c.Balances.ExistentialDeposit)
}

// MembersConfig converts the members section to the members pallet constants.
func (c *Config) MembersConfig() (cfg members.Config, err error) {
	cfg.MinFinanceMemberDeposit, err = c.units(c.Members.MinFinanceMemberDeposit)
	if err != nil {
		return cfg, fmt.Errorf("min finance member deposit: %w", err)
	}
	cfg.ModelCreatorBenefit, err = c.units(c.Members.ModelCreatorBenefit)
	if err != nil {
		return cfg, fmt.Errorf("model creator benefit: %w", err)
	}
	return cfg, nil
}

// KPConfig converts the kp section to the kp pallet constants.
func (c *Config) KPConfig() (kp.Config, error) {
	k := c.KP
	cfg := kp.Config{
		Top: kp.TopWeights{
			ProductPublish:  arith.Percent(k.TopWeightProductPublish),
			ProductIdentify: arith.Percent(k.TopWeightProductIdentify),
			ProductTry:      arith.Percent(k.TopWeightProductTry),
			AccountAttend:   arith.Percent(k.TopWeightAccountAttend),
			AccountStake:    arith.Percent(k.TopWeightAccountStake),
		},
		Document: kp.DocumentWeights{
			Attend:  arith.Percent(k.DocumentPowerWeightAttend),
			Content: arith.Percent(k.DocumentPowerWeightContent),
			Judge:   arith.Percent(k.DocumentPowerWeightJudge),
		},
		Comment: kp.CommentWeights{
			Count:    arith.Percent(k.CommentPowerWeightCount),
			Cost:     arith.Percent(k.CommentPowerWeightCost),
			PerCost:  arith.Percent(k.CommentPowerWeightPerCost),
			Positive: arith.Percent(k.CommentPowerWeightPositive),
		},
		DocumentCM: kp.DocumentWeights{
			Attend:  arith.Percent(k.DocumentCMPowerWeightAttend),
			Content: arith.Percent(k.DocumentCMPowerWeightContent),
			Judge:   arith.Percent(k.DocumentCMPowerWeightJudge),
		},
		CommentCM: kp.CommentWeights{
			Count:    arith.Percent(k.CommentCMPowerWeightCount),
			Cost:     arith.Percent(k.CommentCMPowerWeightCost),
			PerCost:  arith.Percent(k.CommentCMPowerWeightPerCost),
			Positive: arith.Percent(k.CommentCMPowerWeightPositive),
		},
		CMAccountAttend: arith.Percent(k.CMPowerAccountAttend),

		Publish: kp.PublishWeights{
			ParamRate:  arith.Percent(k.DocumentPublishWeightParamsRate),
			SelfRate:   arith.Percent(k.DocumentPublishWeightSelfRate),
			AttendRate: arith.Percent(k.DocumentPublishWeightAttendRate),
		},
		Identify: kp.IdentifyWeights{
			ParamRate:      arith.Percent(k.DocumentIdentifyWeightParamsRate),
			CheckRate:      arith.Percent(k.DocumentIdentifyWeightCheckRate),
			ConsistentRate: arith.Percent(k.DocumentIdentifyWeightConsistent),
		},
		Try: kp.TryWeights{
			BiasRate:       arith.Percent(k.DocumentTryWeightBiasRate),
			TrueRate:       arith.Percent(k.DocumentTryWeightTrueRate),
			ConsistentRate: arith.Percent(k.DocumentTryWeightConsistentRate),
		},
		Choose: kp.ChooseWeights{
			SellCount: arith.Percent(k.DocumentChooseWeightSellCount),
			TryCount:  arith.Percent(k.DocumentChooseWeightTryCount),
		},
		ModelCreate: kp.ModelCreateWeights{
			ProducerCount: arith.Percent(k.DocumentModelWeightProducerCount),
			ProductCount:  arith.Percent(k.DocumentModelWeightProductCount),
		},

		KptExchangeMinRate: arith.Permill(k.KptExchangeMinRate),
		RedeemFeeRate:      arith.Percent(k.RedeemFeeRate),
		CurrencyUnit:       k.CurrencyUnit,

		LeaderBoardInterval: k.AppLeaderBoardInterval,
		LeaderBoardCapacity: k.AppLeaderBoardMaxPos,

		FinanceExchangePeriod: k.FinanceExchangePeriod,
		CyclePeriod:           k.CyclePeriod,
		CollectingPeriod:      k.CollectingPeriod,
		RewardingPeriod:       k.RewardingPeriod,

		ModelDisputeCycleCount:  k.ModelDisputeCycleCount,
		ModelDisputeLv2Increase: k.ModelDisputeLv2Increase,
		ModelDisputeLv3Increase: k.ModelDisputeLv3Increase,
		ModelDisputeDelayTime:   k.ModelDisputeDelayTime,
		PowerStakeThreshold:     arith.Permill(k.PowerStakeThreshold),

		TechTreasurySeed:    k.TechTreasurySeed,
		FinanceTreasurySeed: k.FinanceTreasurySeed,
	}

	amounts := []struct {
		name   string
		units  uint64
		target *arith.Balance
	}{
		{"model create deposit", k.ModelCreateDeposit, &cfg.ModelCreateDeposit},
		{"model income reward total", k.ModelIncomeRewardTotal, &cfg.ModelIncomeRewardTotal},
		{"model dispute reward lv1", k.ModelDisputeRewardLv1, &cfg.ModelDisputeRewards.Lv1},
		{"model dispute reward lv2", k.ModelDisputeRewardLv2, &cfg.ModelDisputeRewards.Lv2},
		{"model dispute reward lv3", k.ModelDisputeRewardLv3, &cfg.ModelDisputeRewards.Lv3},
		{"model dispute lv1 slash", k.ModelDisputeLv1Slash, &cfg.ModelDisputeLv1Slash},
		{"tech fund base", k.TechFundBase, &cfg.TechFundBase},
	}
	for _, amount := range amounts {
		balance, err := c.units(amount.units)
		if err != nil {
			return kp.Config{}, fmt.Errorf("%s: %w", amount.name, err)
		}
		*amount.target = balance
	}
	return cfg, nil
}

// Endowments decodes the genesis balances.
func (c *Config) Endowments() (map[common.AccountID]arith.Balance, error) {
	endowments := make(map[common.AccountID]arith.Balance, len(c.Genesis.Endowed))
	for _, e := range c.Genesis.Endowed {
		account, err := common.HexToAccountID(e.Account)
		if err != nil {
			return nil, fmt.Errorf("endowed account %s: %w", e.Account, err)
		}
		amount, err := c.units(e.Units)
		if err != nil {
			return nil, fmt.Errorf("endowment of %s: %w", e.Account, err)
		}
		sum, err := arith.Add(endowments[account], amount)
		if err != nil {
			return nil, fmt.Errorf("endowment of %s: %w", e.Account, err)
		}
		endowments[account] = sum
	}
	return endowments, nil
}

// FinanceRoot decodes the genesis finance root, if any.
func (c *Config) FinanceRoot() (root common.AccountID, ok bool, err error) {
	if c.Genesis.FinanceRoot == "" {
		return root, false, nil
	}
	root, err = common.HexToAccountID(c.Genesis.FinanceRoot)
	if err != nil {
		return root, false, fmt.Errorf("finance root: %w", err)
	}
	return root, true, nil
}

// ApplyLogLevels sets the global and the per package log levels.
// An empty package level keeps the global one.
func (c *Config) ApplyLogLevels() error {
	global, err := log.ParseLevel(c.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("global log level: %w", err)
	}
	log.PatchLevel(global)

	packages := []struct {
		level string
		set   func(log.Level)
	}{
		{c.Log.KPLvl, kp.SetLogLevel},
		{c.Log.StorageLvl, storage.SetLogLevel},
		{c.Log.BalancesLvl, balances.SetLogLevel},
		{c.Log.MembersLvl, members.SetLogLevel},
		{c.Log.SystemLvl, system.SetLogLevel},
	}
	for _, p := range packages {
		if p.level == "" {
			continue
		}
		level, err := log.ParseLevel(p.level)
		if err != nil {
			return err
		}
		p.set(level)
	}
	return nil
}
