// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import "errors"

var (
	ErrBadSignature          = errors.New("bad signature")
	ErrNotAppKey             = errors.New("auth server is not an app key")
	ErrNotAppAdmin           = errors.New("caller is not an app admin")
	ErrNotModelCreator       = errors.New("caller is not the model creator")
	ErrNotInvestor           = errors.New("caller is not an investor")
	ErrNotFinanceRoot        = errors.New("caller is not the finance root")
	ErrNotDelegate           = errors.New("caller is not the finance delegate")
	ErrInvalidApp            = errors.New("invalid app")
	ErrModelNotFound         = errors.New("model not found")
	ErrModelAlreadyExisted   = errors.New("model already existed")
	ErrModelDisabled         = errors.New("model is disabled")
	ErrModelOverLimit        = errors.New("app model count over limit")
	ErrCommodityTypeNotFound = errors.New("commodity type not found")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentAlreadyExists = errors.New("document already exists")
	ErrProductNotPublished   = errors.New("product has no publish document")
	ErrCartAlreadyIdentified = errors.New("cart already has an identify document")
	ErrCartAlreadyTried      = errors.New("cart already has a try document")
	ErrCommentAlreadyExists  = errors.New("comment already exists")
	ErrInvalidTrend          = errors.New("invalid comment trend")
	ErrCommodityNotFound     = errors.New("commodity not found")
	ErrCommodityBlacklisted  = errors.New("commodity is blacklisted")
	ErrLotteryTooFrequent    = errors.New("leaderboard lottery interval not elapsed")
	ErrWrongStage            = errors.New("operation not allowed in the current stage")
	ErrIncomeAlreadyExists   = errors.New("model income already collected")
	ErrIncomeLengthMismatch  = errors.New("model ids and incomes differ in length")
	ErrModelSlashed          = errors.New("model was slashed")
	ErrRewardAlreadyExists   = errors.New("model reward already claimed")
	ErrNoIncome              = errors.New("no income")
	ErrRecordAlreadyExists   = errors.New("exchange record already exists")
	ErrRecordNotFound        = errors.New("exchange record not found")
	ErrRecordNotInitiated    = errors.New("exchange record is not initiated")
	ErrPayIDMismatch         = errors.New("pay id mismatch")
	ErrNoFinanceMember       = errors.New("no valid finance member")
	ErrEscrowExhausted       = errors.New("exchange over escrow ceiling")
	ErrProposalOpen          = errors.New("a financing proposal is still open")
	ErrProposalNotFound      = errors.New("financing proposal not found")
	ErrProposalExists        = errors.New("financing proposal already exists")
	ErrExchangeOverQuota     = errors.New("exchange over proposal quota")
	ErrDisputeAlreadyExists  = errors.New("dispute already recorded")
	ErrInvalidDisputeType    = errors.New("invalid dispute type")
	ErrSlashAlreadyExists    = errors.New("slash already recorded")
	ErrTechFundInsufficient  = errors.New("tech fund under base")
	ErrZeroAmount            = errors.New("amount is zero")
	ErrOverflow              = errors.New("arithmetic overflow")
)
