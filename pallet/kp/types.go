// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/google/uuid"
)

// PowerPrecision is the power of a document or commodity scoring
// a full fraction on a dimension weighted at 100%.
const PowerPrecision uint64 = 10_000

// ModelStatus is the status of a model.
type ModelStatus = uint8

const (
	ModelEnabled ModelStatus = iota
	ModelDisabled
)

// DocumentType is the type of a document.
type DocumentType = uint8

const (
	ProductPublish DocumentType = iota
	ProductIdentify
	ProductTry
	ProductChoose
	ModelCreate
)

// CommentTrend is the verdict carried by a comment.
type CommentTrend = uint8

const (
	TrendPositive CommentTrend = iota
	TrendNegative
	// TrendEmpty is the trend of a document no expert commented yet.
	TrendEmpty
)

// ExchangeStatus is the status of a redemption or financing exchange record.
type ExchangeStatus = uint8

const (
	ExchangeInitiated ExchangeStatus = iota
	ExchangeConfirmed
	ExchangeCompensated
	ExchangeCompensationFailed
)

// ModelDisputeType is the gravity of a dispute against a model.
type ModelDisputeType = uint8

const (
	DisputeNoneIntendNormal ModelDisputeType = iota
	DisputeIntendNormal
	DisputeSerious
)

// TechFundWithdrawLevel ranks a tech fund withdrawal from LV1 to LV5.
type TechFundWithdrawLevel = uint8

// TechFundWithdrawType is the kind of work a tech fund withdrawal pays for.
type TechFundWithdrawType = uint8

const (
	TechFundChainDev TechFundWithdrawType = iota
	TechFundTctp
	TechFundModel
	TechFundKnowledge
	TechFundChainAdmin
)

// Model is a commodity model of an app.
type Model struct {
	AppID         uint32
	ModelID       []byte
	ExpertID      []byte
	Status        ModelStatus
	CommodityName []byte
	CommodityType uint32
	ContentHash   common.Hash
	Sender        common.AccountID
	Owner         common.AccountID
	CreateReward  arith.Balance
}

// CommodityType is a registered commodity type.
type CommodityType struct {
	TypeID uint32
	Desc   []byte
}

type PublishData struct {
	ParaIssueRate uint64
	SelfIssueRate uint64
	ReferCount    uint64
}

type IdentifyData struct {
	GoodsPrice        uint64
	IdentRate         uint64
	IdentConsistence  uint64
	SellerConsistence uint64
	CartID            []byte
}

type TryData struct {
	GoodsPrice        uint64
	OffsetRate        uint64
	TrueRate          uint64
	SellerConsistence uint64
	CartID            []byte
}

type ChooseData struct {
	SellCount uint64
	TryCount  uint64
}

type ModelCreateData struct {
	ProducerCount uint64
	ProductCount  uint64
}

// Document is a document of an app. Exactly one of the payload
// pointers matching DocumentType is set.
type Document struct {
	AppID       uint32
	DocumentID  []byte
	ModelID     []byte
	ProductID   []byte
	ContentHash common.Hash
	Sender      common.AccountID
	Owner       common.AccountID
	Type        DocumentType
	Publish     *PublishData
	Identify    *IdentifyData
	Try         *TryData
	Choose      *ChooseData
	ModelCreate *ModelCreateData

	CommentCount         uint64
	CommentTotalFee      uint64
	CommentPositiveCount uint64
	ExpertTrend          CommentTrend
	PlatformTrend        CommentTrend
}

// cartID returns the cart of an identify or try document.
func (d Document) cartID() []byte {
	switch {
	case d.Identify != nil:
		return d.Identify.CartID
	case d.Try != nil:
		return d.Try.CartID
	}
	return nil
}

func (d Document) goodsPrice() uint64 {
	switch {
	case d.Identify != nil:
		return d.Identify.GoodsPrice
	case d.Try != nil:
		return d.Try.GoodsPrice
	}
	return 0
}

// DocumentPower is the power triple of a document.
type DocumentPower struct {
	Attend  uint64
	Content uint64
	Judge   uint64
}

// Total returns the sum of the three powers.
func (p DocumentPower) Total() uint64 {
	return p.Attend + p.Content + p.Judge
}

type Comment struct {
	AppID       uint32
	DocumentID  []byte
	CommentID   []byte
	CommentHash common.Hash
	Fee         uint64
	Trend       CommentTrend
	Sender      common.AccountID
	Owner       common.AccountID
}

// CommentRecord aggregates the comments of an account in an app.
type CommentRecord struct {
	Count         uint64
	Fees          uint64
	PositiveCount uint64
}

// CommentMax holds the per app running maxima of comment aggregates.
// MaxUnitFee is the maximum of total fees divided by count.
type CommentMax struct {
	MaxCount    uint64
	MaxFee      uint64
	MaxPositive uint64
	MaxUnitFee  uint64
}

// Commodity is a cart tracked across its identify and try documents.
type Commodity struct {
	AppID     uint32
	CartID    []byte
	ModelID   []byte
	ProductID []byte
	Owner     common.AccountID
}

// CommodityPower is the composite power breakdown of a commodity.
type CommodityPower struct {
	Publish     DocumentPower
	Identify    DocumentPower
	Try         DocumentPower
	OwnerAction uint64
	Price       uint64
}

// Total returns the composite power of the commodity.
func (c CommodityPower) Total() uint64 {
	return c.Publish.Total() + c.Identify.Total() + c.Try.Total() + c.OwnerAction + c.Price
}

// BoardEntry is an entry of a leaderboard.
type BoardEntry struct {
	CartID   []byte
	CartHash common.Hash
	Power    uint64
	Owner    common.AccountID
}

// BoardItem is a leaderboard entry as stored in a lottery result.
type BoardItem struct {
	CartID []byte
	Power  uint64
	Owner  common.AccountID
}

// LeaderBoardResult pairs a leaderboard snapshot with the accounts
// drawn from the comment pools of its top commodities.
type LeaderBoardResult struct {
	ID       uuid.UUID
	Accounts []common.AccountID
	Board    []BoardItem
}

// LeaderBoardRecordKey identifies a stored lottery result.
type LeaderBoardRecordKey struct {
	AppID   uint32
	Block   uint32
	ModelID []byte
}

// CommentWeight is an entry of a document comment pool.
type CommentWeight struct {
	Account  common.AccountID
	Position uint64
	CashCost uint64
}

type AccountStatistics struct {
	CreateCommodityNum      uint32
	SlashCommodityNum       uint32
	SlashKPTotal            uint64
	CommentNum              uint32
	CommentCostTotal        uint64
	CommentCostMax          uint64
	CommentPositiveTrendNum uint32
	CommentNegativeTrendNum uint32
}

// AppCycleIncome is the income of an app during a cycle. Initial and
// Balance are the escrow ceiling, set on the first redeem request.
type AppCycleIncome struct {
	Initial arith.Balance
	Balance arith.Balance
	Cycle   uint32
	AppID   uint32
	Income  uint64
}

// ExchangeRecord is a redemption or financing exchange request of an account.
type ExchangeRecord struct {
	Amount arith.Balance
	Fee    arith.Balance
	Status ExchangeStatus
	PayID  []byte
}

type ModelIncomeReward struct {
	Account common.AccountID
	AppID   uint32
	ModelID []byte
	Reward  arith.Balance
}

// FinanceProposal is a one-off financing proposal of an investor.
type FinanceProposal struct {
	AppID            uint32
	ProposalID       []byte
	Investor         common.AccountID
	Amount           arith.Balance
	Exchange         arith.Balance
	Block            uint32
	TotalBalance     arith.Balance
	Exchanged        arith.Balance
	ExchangeEndBlock uint32
}

// FinanceProposalKey identifies a financing proposal.
type FinanceProposalKey struct {
	AppID      uint32
	ProposalID []byte
}

type TechFundWithdraw struct {
	Account common.AccountID
	Amount  arith.Balance
	Level   TechFundWithdrawLevel
	Type    TechFundWithdrawType
	Reason  common.Hash
}

type ModelDisputeRecord struct {
	ID          uuid.UUID
	AppID       uint32
	ModelID     []byte
	CommentID   []byte
	DisputeType ModelDisputeType
	Block       uint32
}

type CommoditySlashRecord struct {
	AppID     uint32
	CommentID []byte
	CartID    []byte
	Block     uint32
}

// PreBlackListEntry is a model whose deposit fell under half the
// creation deposit. It is disabled if not topped up in time.
type PreBlackListEntry struct {
	AppID   uint32
	ModelID []byte
	Creator common.AccountID
	Block   uint32
}

type cycleAppModel struct {
	Cycle   uint32
	AppID   uint32
	ModelID []byte
}

type cycleApp struct {
	Cycle uint32
	AppID uint32
}

type appCycleAccount struct {
	AppID   uint32
	Cycle   uint32
	Account common.AccountID
}

type appProposalAccount struct {
	AppID      uint32
	ProposalID []byte
	Account    common.AccountID
}

type boardKey struct {
	AppID    uint32
	ModelID  []byte
	CartHash common.Hash
}
