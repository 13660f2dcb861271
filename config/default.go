// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

const (
	// DefaultBasePath is the default data directory.
	DefaultBasePath = "~/.kp"
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
	// DefaultDatabase is the default database engine.
	DefaultDatabase = "memory"
)

// Default returns the configuration of a development chain.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			BasePath: DefaultBasePath,
			LogLvl:   DefaultLogLevel,
			Database: DefaultDatabase,
		},
		Log: LogConfig{
			KPLvl:       DefaultLogLevel,
			StorageLvl:  DefaultLogLevel,
			BalancesLvl: DefaultLogLevel,
			MembersLvl:  DefaultLogLevel,
			SystemLvl:   DefaultLogLevel,
		},
		Balances: BalancesConfig{
			ExistentialDeposit: 1,
		},
		Members: MembersConfig{
			MinFinanceMemberDeposit: 1_000,
			ModelCreatorBenefit:     100,
		},
		KP: KPConfig{
			TopWeightProductPublish:  15,
			TopWeightProductIdentify: 25,
			TopWeightProductTry:      30,
			TopWeightAccountAttend:   15,
			TopWeightAccountStake:    15,

			DocumentPowerWeightAttend:  40,
			DocumentPowerWeightContent: 40,
			DocumentPowerWeightJudge:   20,

			CommentPowerWeightCount:    20,
			CommentPowerWeightCost:     30,
			CommentPowerWeightPerCost:  30,
			CommentPowerWeightPositive: 20,

			DocumentCMPowerWeightAttend:  40,
			DocumentCMPowerWeightContent: 40,
			DocumentCMPowerWeightJudge:   20,

			CommentCMPowerWeightCount:    25,
			CommentCMPowerWeightCost:     25,
			CommentCMPowerWeightPerCost:  25,
			CommentCMPowerWeightPositive: 25,
			CMPowerAccountAttend:         50,

			DocumentPublishWeightParamsRate:  30,
			DocumentPublishWeightSelfRate:    40,
			DocumentPublishWeightAttendRate:  30,
			DocumentIdentifyWeightParamsRate: 40,
			DocumentIdentifyWeightCheckRate:  30,
			DocumentIdentifyWeightConsistent: 30,
			DocumentTryWeightBiasRate:        30,
			DocumentTryWeightTrueRate:        40,
			DocumentTryWeightConsistentRate:  30,
			DocumentChooseWeightSellCount:    50,
			DocumentChooseWeightTryCount:     50,
			DocumentModelWeightProducerCount: 50,
			DocumentModelWeightProductCount:  50,

			ModelCreateDeposit:     1_000,
			ModelIncomeRewardTotal: 10_000,
			KptExchangeMinRate:     1_000,
			RedeemFeeRate:          1,
			CurrencyUnit:           1_000_000_000_000,

			AppLeaderBoardInterval: 100,
			AppLeaderBoardMaxPos:   100,

			FinanceExchangePeriod: 200,
			CyclePeriod:           1_000,
			CollectingPeriod:      100,
			RewardingPeriod:       400,

			ModelDisputeCycleCount:  3,
			ModelDisputeLv2Increase: 2,
			ModelDisputeLv3Increase: 3,
			ModelDisputeRewardLv1:   10,
			ModelDisputeRewardLv2:   50,
			ModelDisputeRewardLv3:   200,
			ModelDisputeLv1Slash:    10,
			ModelDisputeDelayTime:   100,
			TechFundBase:            100_000,
			PowerStakeThreshold:     10_000,

			TechTreasurySeed:    "kp/tech",
			FinanceTreasurySeed: "kp/fina",
		},
	}
}
