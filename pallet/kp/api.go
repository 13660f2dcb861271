// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// TotalPower returns the sum of the powers of all accounts.
func (p *Pallet) TotalPower() (uint64, error) {
	return totalPower.Get(p.storage)
}

// AccountPower returns the power of the commodities owned by the account.
func (p *Pallet) AccountPower(account common.AccountID) (uint64, error) {
	return minerPower.Get(p.storage, account)
}

// AccountAttendPower returns the power of the choose and model create
// documents of the account in the app.
func (p *Pallet) AccountAttendPower(account common.AccountID, appID uint32) (uint64, error) {
	return accountAttendPower.Get(p.storage, account, appID)
}

// PowerToStakeRatio returns the share of an app stake the power of the
// account converts to.
func (p *Pallet) PowerToStakeRatio(account common.AccountID) (arith.Permill, error) {
	power, err := p.AccountPower(account)
	if err != nil {
		return 0, err
	}
	total, err := p.TotalPower()
	if err != nil {
		return 0, err
	}
	return powerToStakeRatio(power, total, p.config.PowerStakeThreshold), nil
}

// StakeForPower returns the stake of the app the power of the account
// converts to.
func (p *Pallet) StakeForPower(account common.AccountID, appID uint32) (arith.Balance, error) {
	ratio, err := p.PowerToStakeRatio(account)
	if err != nil {
		return arith.Balance{}, err
	}
	stake, err := p.membership.AppStake(appID)
	if err != nil {
		return arith.Balance{}, err
	}
	return ratio.OfBalance(stake), nil
}

// LeaderBoard returns the board of the model, or of the app for an
// empty model id.
func (p *Pallet) LeaderBoard(appID uint32, modelID []byte) ([]BoardEntry, error) {
	return leaderBoards.Get(p.storage, appID, modelID)
}

func (p *Pallet) LeaderBoardRecord(appID uint32, modelID []byte, block uint32) (LeaderBoardResult, bool, error) {
	return leaderBoardRecords.TryGet(p.storage, LeaderBoardRecordKey{AppID: appID, Block: block, ModelID: modelID})
}

// LeaderBoardRecordKeys returns the keys of the lottery results in the
// order they were drawn.
func (p *Pallet) LeaderBoardRecordKeys() ([]LeaderBoardRecordKey, error) {
	return leaderBoardSequenceKeys.Get(p.storage)
}

func (p *Pallet) Model(appID uint32, modelID []byte) (Model, bool, error) {
	return modelData.TryGet(p.storage, appID, modelID)
}

func (p *Pallet) ModelDeposit(appID uint32, modelID []byte) (arith.Balance, error) {
	return modelDeposit.Get(p.storage, appID, modelID)
}

func (p *Pallet) CommodityTypes() ([]CommodityType, error) {
	return commodityTypes.Get(p.storage)
}

func (p *Pallet) Document(appID uint32, documentID []byte) (Document, bool, error) {
	return documents.TryGet(p.storage, appID, documentID)
}

func (p *Pallet) DocumentPower(appID uint32, documentID []byte) (DocumentPower, error) {
	return documentPower.Get(p.storage, appID, documentID)
}

func (p *Pallet) CommodityPower(appID uint32, cartID []byte) (CommodityPower, error) {
	return commodityPower.Get(p.storage, appID, cartID)
}

// IsCommodityBlacklisted returns true if the power of the cart was slashed.
func (p *Pallet) IsCommodityBlacklisted(appID uint32, cartID []byte) (bool, error) {
	return commodityBlackList.Contains(p.storage, appID, cartID)
}

func (p *Pallet) AccountStatistics(account common.AccountID) (AccountStatistics, error) {
	return accountStatistics.Get(p.storage, account)
}

func (p *Pallet) AppCycleIncome(cycle, appID uint32) (AppCycleIncome, error) {
	return appCycleIncome.Get(p.storage, cycleApp{Cycle: cycle, AppID: appID})
}

func (p *Pallet) ModelCycleIncome(cycle, appID uint32, modelID []byte) (uint64, error) {
	return modelCycleIncome.Get(p.storage, cycleAppModel{Cycle: cycle, AppID: appID, ModelID: modelID})
}

func (p *Pallet) ModelIncomeRewards(cycle uint32) ([]ModelIncomeReward, error) {
	return rewardStore.Get(p.storage, cycle)
}

func (p *Pallet) RedeemRecord(appID, cycle uint32, account common.AccountID) (ExchangeRecord, bool, error) {
	return redeemRecords.TryGet(p.storage, appCycleAccount{AppID: appID, Cycle: cycle, Account: account})
}

// RedeemDelegate returns the finance member confirming the redemptions
// of the app in the cycle.
func (p *Pallet) RedeemDelegate(appID, cycle uint32) (common.AccountID, bool, error) {
	return redeemDelegate.TryGet(p.storage, cycleApp{Cycle: cycle, AppID: appID})
}

// RedeemBurnt returns the amount burnt by confirmed redemptions and
// their count.
func (p *Pallet) RedeemBurnt() (arith.Balance, uint32, error) {
	total, err := redeemBurnTotal.Get(p.storage)
	if err != nil {
		return total, 0, err
	}
	count, err := redeemBurnCount.Get(p.storage)
	return total, count, err
}

func (p *Pallet) FinanceProposal(appID uint32, proposalID []byte) (FinanceProposal, bool, error) {
	return financeProposals.TryGet(p.storage, appID, proposalID)
}

func (p *Pallet) FinanceDelegate(appID uint32, proposalID []byte) (common.AccountID, error) {
	return financeDelegate.Get(p.storage, appID, proposalID)
}

func (p *Pallet) FinanceExchangeRecord(appID uint32, proposalID []byte, account common.AccountID) (ExchangeRecord, bool, error) {
	return financeExchanges.TryGet(p.storage, appProposalAccount{AppID: appID, ProposalID: proposalID, Account: account})
}

// FinanceStage returns the stage of the financial cycle at the current
// block, the cycle index and the blocks left in the stage.
func (p *Pallet) FinanceStage() (stage Stage, cycle, remaining uint32, err error) {
	block, err := p.blockNumber()
	if err != nil {
		return 0, 0, 0, err
	}
	periods := p.config.periods()
	stage, remaining = StageAt(block, periods)
	return stage, CycleIndex(block, periods), remaining, nil
}

func (p *Pallet) ModelDisputeRecord(appID uint32, commentID []byte) (ModelDisputeRecord, bool, error) {
	return modelDisputeRecords.TryGet(p.storage, appID, commentID)
}

func (p *Pallet) ModelDisputeCount(cycle, appID uint32, modelID []byte) (uint32, error) {
	return modelDisputeCount.Get(p.storage, cycleAppModel{Cycle: cycle, AppID: appID, ModelID: modelID})
}

func (p *Pallet) CommoditySlashRecord(appID uint32, commentID []byte) (CommoditySlashRecord, bool, error) {
	return commoditySlashRecords.TryGet(p.storage, appID, commentID)
}

func (p *Pallet) ModelPreBlackList() ([]PreBlackListEntry, error) {
	return modelPreBlackList.Get(p.storage)
}

func (p *Pallet) TechFundWithdrawals() ([]TechFundWithdraw, error) {
	return techFundWithdrawals.Get(p.storage)
}
