// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
)

const moduleName = "Kp"

type (
	accountID = common.AccountID
	balance   = arith.Balance
)

// models
var (
	modelData             = storage.NewDoubleMap[uint32, []byte, Model](moduleName, "KPModelDataByHash")
	modelDeposit          = storage.NewDoubleMap[uint32, []byte, balance](moduleName, "KPModelDepositMap")
	commodityTypes        = storage.NewValue[[]CommodityType](moduleName, "CommodityTypeSets")
	commodityTypeDesc     = storage.NewMap[uint32, []byte](moduleName, "CommodityTypeMap")
	modelFirstTypeBenefit = storage.NewDoubleMap[uint32, uint32, bool](moduleName, "ModelFirstTypeBenefitRecord")
	appModelTotal         = storage.NewMap[uint32, uint32](moduleName, "AppModelTotalConfig")
	appModelCount         = storage.NewMap[uint32, uint32](moduleName, "AppModelCount")
)

// documents and comments
var (
	documents           = storage.NewDoubleMap[uint32, []byte, Document](moduleName, "KPDocumentDataByIdHash")
	documentPower       = storage.NewDoubleMap[uint32, []byte, DocumentPower](moduleName, "KPDocumentPowerByIdHash")
	productPublishIndex = storage.NewDoubleMap[uint32, []byte, []byte](moduleName, "KPDocumentProductIndexByIdHash")
	cartIdentifyIndex   = storage.NewDoubleMap[uint32, []byte, []byte](moduleName, "KPCartProductIdentifyIndexByIdHash")
	cartTryIndex        = storage.NewDoubleMap[uint32, []byte, []byte](moduleName, "KPCartProductTryIndexByIdHash")
	productCarts        = storage.NewDoubleMap[uint32, []byte, [][]byte](moduleName, "KPProductCarts")
	comments            = storage.NewDoubleMap[uint32, []byte, Comment](moduleName, "KPCommentDataByIdHash")
	accountComments     = storage.NewDoubleMap[uint32, accountID, CommentRecord](moduleName, "KPCommentAccountRecordMap")
	docCommentMax       = storage.NewMap[uint32, CommentMax](moduleName, "CommentMaxInfoPerDocMap")
	accountCommentMax   = storage.NewMap[uint32, CommentMax](moduleName, "CommentMaxInfoPerAccountMap")
	commentPools        = storage.NewDoubleMap[uint32, []byte, []CommentWeight](moduleName, "DocumentCommentsAccountPool")
	publishMax          = storage.NewMap[uint32, PublishData](moduleName, "DocumentPublishMaxParams")
	identifyMax         = storage.NewMap[uint32, IdentifyData](moduleName, "DocumentIdentifyMaxParams")
	tryMax              = storage.NewMap[uint32, TryData](moduleName, "DocumentTryMaxParams")
	chooseMax           = storage.NewMap[uint32, ChooseData](moduleName, "DocumentChooseMaxParams")
	modelCreateMax      = storage.NewMap[uint32, ModelCreateData](moduleName, "DocumentModelCreateMaxParams")
	maxGoodsPrice       = storage.NewValue[uint64](moduleName, "MaxGoodsPrice")
	accountMaxPurchase  = storage.NewDoubleMap[accountID, uint32, uint64](moduleName, "KPAccountMaxPurchaseByIdHash")
	accountStatistics   = storage.NewMap[accountID, AccountStatistics](moduleName, "AccountStatisticsMap")
	accountCommodities  = storage.NewDoubleMap[accountID, uint32, [][]byte](moduleName, "AccountCommoditySet")
	accountDocuments    = storage.NewDoubleMap[accountID, uint32, [][]byte](moduleName, "AccountDocumentSet")
)

// power
var (
	commodities            = storage.NewDoubleMap[uint32, []byte, Commodity](moduleName, "KPCommodities")
	commodityPower         = storage.NewDoubleMap[uint32, []byte, CommodityPower](moduleName, "KPPurchasePowerByIdHash")
	commodityBlackList     = storage.NewDoubleMap[uint32, []byte, bool](moduleName, "KPPurchaseBlackList")
	totalPower             = storage.NewValue[uint64](moduleName, "TotalPower")
	minerPower             = storage.NewMap[accountID, uint64](moduleName, "MinerPowerByAccount")
	accountAttendPower     = storage.NewDoubleMap[accountID, uint32, uint64](moduleName, "AccountAttendPowerMap")
	appCommodityCount      = storage.NewMap[uint32, uint32](moduleName, "AppCommodityCount")
	appModelCommodityCount = storage.NewDoubleMap[uint32, []byte, uint32](moduleName, "AppModelCommodityCount")
)

// leaderboards
var (
	leaderBoards            = storage.NewDoubleMap[uint32, []byte, []BoardEntry](moduleName, "AppModelCommodityLeaderBoards")
	leaderBoardPresence     = storage.NewMap[boardKey, uint64](moduleName, "LeaderBoardCommoditySet")
	leaderBoardRecords      = storage.NewMap[LeaderBoardRecordKey, LeaderBoardResult](moduleName, "AppLeaderBoardRecord")
	leaderBoardSequenceKeys = storage.NewValue[[]LeaderBoardRecordKey](moduleName, "AppLeaderBoardSequenceKeys")
	leaderBoardLastTime     = storage.NewDoubleMap[uint32, []byte, uint32](moduleName, "AppLeaderBoardLastTime")
)

// cycle income, rewards and redemptions
var (
	modelCycleIncome      = storage.NewMap[cycleAppModel, uint64](moduleName, "ModelCycleIncome")
	appCycleIncome        = storage.NewMap[cycleApp, AppCycleIncome](moduleName, "AppCycleIncome")
	modelCycleIncomeTotal = storage.NewMap[uint32, uint64](moduleName, "ModelCycleIncomeTotal")
	rewardRecords         = storage.NewMap[cycleAppModel, ModelIncomeReward](moduleName, "ModelCycleIncomeRewardRecords")
	rewardStore           = storage.NewMap[uint32, []ModelIncomeReward](moduleName, "ModelCycleIncomeRewardStore")
	rewardTotal           = storage.NewValue[balance](moduleName, "ModelIncomeRewardTotal")
	redeemRecords         = storage.NewMap[appCycleAccount, ExchangeRecord](moduleName, "AppCycleIncomeExchangeRecords")
	redeemSet             = storage.NewMap[cycleApp, []accountID](moduleName, "AppCycleIncomeExchangeSet")
	redeemDelegate        = storage.NewMap[cycleApp, accountID](moduleName, "AppCycleIncomeFinanceMember")
	redeemBurnTotal       = storage.NewValue[balance](moduleName, "AppCycleIncomeBurnTotal")
	redeemBurnCount       = storage.NewValue[uint32](moduleName, "AppCycleIncomeCount")
)

// financing proposals
var (
	financeProposals = storage.NewDoubleMap[uint32, []byte, FinanceProposal](moduleName, "AppFinancedRecord")
	financeLast      = storage.NewValue[FinanceProposalKey](moduleName, "AppFinancedLast")
	financeExchanges = storage.NewMap[appProposalAccount, ExchangeRecord](moduleName, "AppFinancedUserExchangeRecord")
	financeSet       = storage.NewDoubleMap[uint32, []byte, []accountID](moduleName, "AppFinancedUserExchangeSet")
	financeDelegate  = storage.NewDoubleMap[uint32, []byte, accountID](moduleName, "AppFinanceFinanceMember")
	financeBurnTotal = storage.NewValue[balance](moduleName, "AppFinancedBurnTotal")
	financeBurnCount = storage.NewValue[uint32](moduleName, "AppFinancedCount")
)

// disputes, slashing and tech fund
var (
	modelSlashCycle       = storage.NewDoubleMap[uint32, []byte, uint32](moduleName, "ModelSlashCycleRewardIndex")
	modelDisputeCount     = storage.NewMap[cycleAppModel, uint32](moduleName, "ModelCycleDisputeCount")
	modelDisputeRecords   = storage.NewDoubleMap[uint32, []byte, ModelDisputeRecord](moduleName, "ModelDisputeRecords")
	commoditySlashRecords = storage.NewDoubleMap[uint32, []byte, CommoditySlashRecord](moduleName, "CommoditySlashRecords")
	modelPreBlackList     = storage.NewValue[[]PreBlackListEntry](moduleName, "ModelPreBlackList")
	techFundWithdrawals   = storage.NewValue[[]TechFundWithdraw](moduleName, "TechFundWithdrawRecords")
)
