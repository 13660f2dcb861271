// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config holds the TOML configuration of the runtime.
package config

// Config is a collection of configurations throughout the runtime
type Config struct {
	Global   GlobalConfig   `toml:"global,omitempty"`
	Log      LogConfig      `toml:"log,omitempty"`
	Genesis  GenesisConfig  `toml:"genesis,omitempty"`
	Balances BalancesConfig `toml:"balances,omitempty"`
	Members  MembersConfig  `toml:"members,omitempty"`
	KP       KPConfig       `toml:"kp,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	BasePath string `toml:"basepath,omitempty" validate:"required_if=Database chaindb"`
	LogLvl   string `toml:"log,omitempty"`
	Database string `toml:"database,omitempty" validate:"oneof=memory chaindb"`
	Metrics  bool   `toml:"metrics,omitempty"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	KPLvl       string `toml:"kp,omitempty"`
	StorageLvl  string `toml:"storage,omitempty"`
	BalancesLvl string `toml:"balances,omitempty"`
	MembersLvl  string `toml:"members,omitempty"`
	SystemLvl   string `toml:"system,omitempty"`
}

// GenesisConfig is the initial state of the runtime.
// Accounts are hex encoded 32 byte public keys.
type GenesisConfig struct {
	FinanceRoot string            `toml:"finance-root,omitempty" validate:"omitempty,hexadecimal"`
	Endowed     []EndowmentConfig `toml:"endowed,omitempty" validate:"dive"`
}

// EndowmentConfig is a genesis balance in currency units.
type EndowmentConfig struct {
	Account string `toml:"account" validate:"required,hexadecimal"`
	Units   uint64 `toml:"units" validate:"gt=0"`
}

// BalancesConfig is to marshal/unmarshal toml balances config vars.
// Amounts are in currency units.
type BalancesConfig struct {
	ExistentialDeposit uint64 `toml:"existential-deposit,omitempty"`
}

// MembersConfig is to marshal/unmarshal toml members config vars.
// Amounts are in currency units.
type MembersConfig struct {
	MinFinanceMemberDeposit uint64 `toml:"min-finance-member-deposit,omitempty"`
	ModelCreatorBenefit     uint64 `toml:"model-creator-benefit,omitempty"`
}

// KPConfig is to marshal/unmarshal toml kp config vars. Weights are
// percentages, rates in parts per million and amounts in currency units.
type KPConfig struct {
	TopWeightProductPublish  uint8 `toml:"top-weight-product-publish" validate:"lte=100"`
	TopWeightProductIdentify uint8 `toml:"top-weight-product-identify" validate:"lte=100"`
	TopWeightProductTry      uint8 `toml:"top-weight-product-try" validate:"lte=100"`
	TopWeightAccountAttend   uint8 `toml:"top-weight-account-attend" validate:"lte=100"`
	TopWeightAccountStake    uint8 `toml:"top-weight-account-stake" validate:"lte=100"`

	DocumentPowerWeightAttend  uint8 `toml:"document-power-weight-attend" validate:"lte=100"`
	DocumentPowerWeightContent uint8 `toml:"document-power-weight-content" validate:"lte=100"`
	DocumentPowerWeightJudge   uint8 `toml:"document-power-weight-judge" validate:"lte=100"`

	CommentPowerWeightCount    uint8 `toml:"comment-power-weight-count" validate:"lte=100"`
	CommentPowerWeightCost     uint8 `toml:"comment-power-weight-cost" validate:"lte=100"`
	CommentPowerWeightPerCost  uint8 `toml:"comment-power-weight-per-cost" validate:"lte=100"`
	CommentPowerWeightPositive uint8 `toml:"comment-power-weight-positive" validate:"lte=100"`

	DocumentCMPowerWeightAttend  uint8 `toml:"document-cm-power-weight-attend" validate:"lte=100"`
	DocumentCMPowerWeightContent uint8 `toml:"document-cm-power-weight-content" validate:"lte=100"`
	DocumentCMPowerWeightJudge   uint8 `toml:"document-cm-power-weight-judge" validate:"lte=100"`

	CommentCMPowerWeightCount    uint8 `toml:"comment-cm-power-weight-count" validate:"lte=100"`
	CommentCMPowerWeightCost     uint8 `toml:"comment-cm-power-weight-cost" validate:"lte=100"`
	CommentCMPowerWeightPerCost  uint8 `toml:"comment-cm-power-weight-per-cost" validate:"lte=100"`
	CommentCMPowerWeightPositive uint8 `toml:"comment-cm-power-weight-positive" validate:"lte=100"`
	CMPowerAccountAttend         uint8 `toml:"cm-power-account-attend" validate:"lte=100"`

	DocumentPublishWeightParamsRate  uint8 `toml:"document-publish-weight-params-rate" validate:"lte=100"`
	DocumentPublishWeightSelfRate    uint8 `toml:"document-publish-weight-self-rate" validate:"lte=100"`
	DocumentPublishWeightAttendRate  uint8 `toml:"document-publish-weight-attend-rate" validate:"lte=100"`
	DocumentIdentifyWeightParamsRate uint8 `toml:"document-identify-weight-params-rate" validate:"lte=100"`
	DocumentIdentifyWeightCheckRate  uint8 `toml:"document-identify-weight-check-rate" validate:"lte=100"`
	DocumentIdentifyWeightConsistent uint8 `toml:"document-identify-weight-consistent-rate" validate:"lte=100"`
	DocumentTryWeightBiasRate        uint8 `toml:"document-try-weight-bias-rate" validate:"lte=100"`
	DocumentTryWeightTrueRate        uint8 `toml:"document-try-weight-true-rate" validate:"lte=100"`
	DocumentTryWeightConsistentRate  uint8 `toml:"document-try-weight-consistent-rate" validate:"lte=100"`
	DocumentChooseWeightSellCount    uint8 `toml:"document-choose-weight-sell-count" validate:"lte=100"`
	DocumentChooseWeightTryCount     uint8 `toml:"document-choose-weight-try-count" validate:"lte=100"`
	DocumentModelWeightProducerCount uint8 `toml:"document-model-weight-producer-count" validate:"lte=100"`
	DocumentModelWeightProductCount  uint8 `toml:"document-model-weight-product-count" validate:"lte=100"`

	ModelCreateDeposit     uint64 `toml:"model-create-deposit"`
	ModelIncomeRewardTotal uint64 `toml:"model-income-reward-total"`
	KptExchangeMinRate     uint32 `toml:"kpt-exchange-min-rate" validate:"lte=1000000"`
	RedeemFeeRate          uint8  `toml:"redeem-fee-rate" validate:"lte=100"`
	CurrencyUnit           uint64 `toml:"currency-unit" validate:"gt=0"`

	AppLeaderBoardInterval uint32 `toml:"app-leader-board-interval"`
	AppLeaderBoardMaxPos   uint32 `toml:"app-leader-board-max-pos" validate:"gt=0"`

	FinanceExchangePeriod uint32 `toml:"finance-exchange-period"`
	CyclePeriod           uint32 `toml:"cycle-period"`
	CollectingPeriod      uint32 `toml:"collecting-period"`
	RewardingPeriod       uint32 `toml:"rewarding-period"`

	ModelDisputeCycleCount  uint32 `toml:"model-dispute-cycle-count" validate:"gt=0"`
	ModelDisputeLv2Increase uint32 `toml:"model-dispute-cycle-lv2-increase-count"`
	ModelDisputeLv3Increase uint32 `toml:"model-dispute-cycle-lv3-increase-count"`
	ModelDisputeRewardLv1   uint64 `toml:"model-dispute-reward-lv1"`
	ModelDisputeRewardLv2   uint64 `toml:"model-dispute-reward-lv2"`
	ModelDisputeRewardLv3   uint64 `toml:"model-dispute-reward-lv3"`
	ModelDisputeLv1Slash    uint64 `toml:"model-dispute-lv1-slash"`
	ModelDisputeDelayTime   uint32 `toml:"model-dispute-delay-time"`
	TechFundBase            uint64 `toml:"tech-fund-base"`
	PowerStakeThreshold     uint32 `toml:"power-stake-threshold" validate:"lte=1000000"`

	TechTreasurySeed    string `toml:"tech-treasury-seed" validate:"required"`
	FinanceTreasurySeed string `toml:"finance-treasury-seed" validate:"required,nefield=TechTreasurySeed"`
}
