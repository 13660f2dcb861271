// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"github.com/ctt-network/kp/lib/arith"
)

// TopWeights weight the power dimensions of a commodity.
type TopWeights struct {
	ProductPublish  arith.Percent
	ProductIdentify arith.Percent
	ProductTry      arith.Percent
	AccountAttend   arith.Percent
	AccountStake    arith.Percent
}

// DocumentWeights split a document power into its attend,
// content and judge parts.
type DocumentWeights struct {
	Attend  arith.Percent
	Content arith.Percent
	Judge   arith.Percent
}

// CommentWeights weight the comment aggregates of a document or account.
type CommentWeights struct {
	Count    arith.Percent
	Cost     arith.Percent
	PerCost  arith.Percent
	Positive arith.Percent
}

type PublishWeights struct {
	ParamRate  arith.Percent
	SelfRate   arith.Percent
	AttendRate arith.Percent
}

type IdentifyWeights struct {
	ParamRate      arith.Percent
	CheckRate      arith.Percent
	ConsistentRate arith.Percent
}

type TryWeights struct {
	BiasRate       arith.Percent
	TrueRate       arith.Percent
	ConsistentRate arith.Percent
}

type ChooseWeights struct {
	SellCount arith.Percent
	TryCount  arith.Percent
}

type ModelCreateWeights struct {
	ProducerCount arith.Percent
	ProductCount  arith.Percent
}

// DisputeRewards are the reporter rewards of the three dispute levels.
type DisputeRewards struct {
	Lv1 arith.Balance
	Lv2 arith.Balance
	Lv3 arith.Balance
}

// Config holds the constants of the pallet.
type Config struct {
	Top      TopWeights
	Document DocumentWeights
	Comment  CommentWeights
	// Choose and model create documents use their own weights and feed
	// the account attend power.
	DocumentCM      DocumentWeights
	CommentCM       CommentWeights
	CMAccountAttend arith.Percent

	Publish     PublishWeights
	Identify    IdentifyWeights
	Try         TryWeights
	Choose      ChooseWeights
	ModelCreate ModelCreateWeights

	ModelCreateDeposit     arith.Balance
	ModelIncomeRewardTotal arith.Balance
	KptExchangeMinRate     arith.Permill
	RedeemFeeRate          arith.Percent
	CurrencyUnit           uint64

	LeaderBoardInterval uint32
	LeaderBoardCapacity uint32

	FinanceExchangePeriod uint32
	CyclePeriod           uint32
	CollectingPeriod      uint32
	RewardingPeriod       uint32

	ModelDisputeCycleCount   uint32
	ModelDisputeLv2Increase  uint32
	ModelDisputeLv3Increase  uint32
	ModelDisputeRewards      DisputeRewards
	ModelDisputeLv1Slash     arith.Balance
	ModelDisputeDelayTime    uint32
	TechFundBase             arith.Balance
	PowerStakeThreshold      arith.Permill

	TechTreasurySeed    string
	FinanceTreasurySeed string
}

const unit = 1_000_000_000_000

// DefaultConfig returns the constants of a development chain.
func DefaultConfig() Config {
	return Config{
		Top: TopWeights{
			ProductPublish:  15,
			ProductIdentify: 25,
			ProductTry:      30,
			AccountAttend:   15,
			AccountStake:    15,
		},
		Document:        DocumentWeights{Attend: 40, Content: 40, Judge: 20},
		Comment:         CommentWeights{Count: 20, Cost: 30, PerCost: 30, Positive: 20},
		DocumentCM:      DocumentWeights{Attend: 40, Content: 40, Judge: 20},
		CommentCM:       CommentWeights{Count: 25, Cost: 25, PerCost: 25, Positive: 25},
		CMAccountAttend: 50,

		Publish:     PublishWeights{ParamRate: 30, SelfRate: 40, AttendRate: 30},
		Identify:    IdentifyWeights{ParamRate: 40, CheckRate: 30, ConsistentRate: 30},
		Try:         TryWeights{BiasRate: 30, TrueRate: 40, ConsistentRate: 30},
		Choose:      ChooseWeights{SellCount: 50, TryCount: 50},
		ModelCreate: ModelCreateWeights{ProducerCount: 50, ProductCount: 50},

		ModelCreateDeposit:     arith.NewBalance(1_000 * unit),
		ModelIncomeRewardTotal: arith.NewBalance(10_000 * unit),
		KptExchangeMinRate:     arith.Permill(1_000),
		RedeemFeeRate:          1,
		CurrencyUnit:           unit,

		LeaderBoardInterval: 100,
		LeaderBoardCapacity: 100,

		FinanceExchangePeriod: 200,
		CyclePeriod:           1_000,
		CollectingPeriod:      100,
		RewardingPeriod:       400,

		ModelDisputeCycleCount:  3,
		ModelDisputeLv2Increase: 2,
		ModelDisputeLv3Increase: 3,
		ModelDisputeRewards: DisputeRewards{
			Lv1: arith.NewBalance(10 * unit),
			Lv2: arith.NewBalance(50 * unit),
			Lv3: arith.NewBalance(200 * unit),
		},
		ModelDisputeLv1Slash:  arith.NewBalance(10 * unit),
		ModelDisputeDelayTime: 100,
		TechFundBase:          arith.NewBalance(100_000 * unit),
		PowerStakeThreshold:   arith.Permill(10_000),

		TechTreasurySeed:    "kp/tech",
		FinanceTreasurySeed: "kp/fina",
	}
}

func (c Config) periods() Periods {
	return Periods{
		Cycle:      c.CyclePeriod,
		Collecting: c.CollectingPeriod,
		Rewarding:  c.RewardingPeriod,
	}
}
