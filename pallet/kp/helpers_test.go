// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"testing"

	"github.com/ctt-network/kp/internal/database/memory"
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
	"github.com/ctt-network/kp/pallet/balances"
	"github.com/ctt-network/kp/pallet/members"
	"github.com/ctt-network/kp/pallet/system"
	"github.com/stretchr/testify/require"
)

const (
	testApp       uint32 = 1
	testTypeID    uint32 = 7
	testDeposit          = 1_000
	testEndowment        = 1_000_000
)

var (
	testRoot       = common.AccountID{0xf0}
	testAdmin      = common.AccountID{0xf1}
	testKey        = common.AccountID{0xf2}
	testCreator    = common.AccountID{0xf3}
	testModel      = []byte("model")
	testProduct    = []byte("product")
	testBeacon     = common.Hash{0xbe}
	testAppStake   = arith.NewBalance(1_000_000)
	testReturnRate = uint32(500_000)
)

func acceptSignatures(_, _, _ []byte) (bool, error) { return true, nil }

func testConfig() Config {
	config := DefaultConfig()
	config.ModelCreateDeposit = arith.NewBalance(testDeposit)
	config.ModelIncomeRewardTotal = arith.NewBalance(10_000)
	config.ModelDisputeRewards = DisputeRewards{
		Lv1: arith.NewBalance(10),
		Lv2: arith.NewBalance(50),
		Lv3: arith.NewBalance(200),
	}
	config.ModelDisputeLv1Slash = arith.NewBalance(100)
	config.TechFundBase = arith.NewBalance(1_000)
	config.CurrencyUnit = 100
	config.LeaderBoardCapacity = 3
	return config
}

// testRuntime is the kp pallet wired to the system, balances and
// members pallets on an in memory storage.
type testRuntime struct {
	t        *testing.T
	storage  *storage.Storage
	system   *system.Pallet
	balances *balances.Pallet
	members  *members.Pallet
	kp       *Pallet
}

func newTestRuntime(t *testing.T, config Config) *testRuntime {
	t.Helper()

	s := storage.New(memory.New())
	r := &testRuntime{
		t:        t,
		storage:  s,
		system:   system.New(s),
		balances: balances.New(s, arith.NewBalance(1)),
	}
	r.members = members.New(members.Config{
		MinFinanceMemberDeposit: arith.NewBalance(100),
		ModelCreatorBenefit:     arith.NewBalance(5),
	}, s, r.balances)
	r.kp = New(config, Dependencies{
		Storage:    s,
		System:     r.system,
		Currency:   r.balances,
		Membership: r.members,
		Verify:     acceptSignatures,
	})

	r.setBlock(1)
	require.NoError(t, r.members.Genesis(testRoot))
	require.NoError(t, r.members.ConfigAppSetting(testRoot, testApp, members.AppData{
		Name:       []byte("app"),
		ReturnRate: testReturnRate,
		Stake:      testAppStake,
	}))
	require.NoError(t, r.members.ConfigAppAdmin(testRoot, testAdmin, testApp))
	require.NoError(t, r.members.ConfigAppKey(testAdmin, testKey, testApp))
	require.NoError(t, r.kp.SetCommodityType(testRoot, testTypeID, []byte("goods")))
	return r
}

func (r *testRuntime) setBlock(number uint32) {
	r.t.Helper()
	require.NoError(r.t, r.system.Initialize(number, testBeacon))
}

func (r *testRuntime) endow(accounts ...common.AccountID) {
	r.t.Helper()
	for _, account := range accounts {
		require.NoError(r.t, r.balances.Deposit(account, arith.NewBalance(testEndowment)))
	}
}

func (r *testRuntime) free(account common.AccountID) arith.Balance {
	r.t.Helper()
	free, err := r.balances.FreeBalance(account)
	require.NoError(r.t, err)
	return free
}

func (r *testRuntime) reserved(account common.AccountID) arith.Balance {
	r.t.Helper()
	reserved, err := r.balances.ReservedBalance(account)
	require.NoError(r.t, err)
	return reserved
}

func signed[P any](user common.AccountID, payload P) Signed[P] {
	return Signed[P]{
		Payload:             payload,
		AppUser:             user,
		AppUserSignature:    []byte{1},
		AuthServer:          testKey,
		AuthServerSignature: []byte{2},
	}
}

func (r *testRuntime) createModel(creator common.AccountID, modelID []byte) {
	r.t.Helper()
	r.endow(creator)
	err := r.kp.CreateModel(signed(creator, ModelPayload{
		AppID:         testApp,
		ModelID:       modelID,
		ExpertID:      []byte("expert"),
		CommodityName: []byte("tea"),
		CommodityType: testTypeID,
	}))
	require.NoError(r.t, err)
}

func (r *testRuntime) publish(owner common.AccountID, productID []byte, data PublishData) {
	r.t.Helper()
	err := r.kp.CreateProductPublishDocument(signed(owner, PublishDocument{
		Head: DocumentHead{
			AppID:      testApp,
			DocumentID: append([]byte("publish-"), productID...),
			ModelID:    testModel,
			ProductID:  productID,
		},
		Data: data,
	}))
	require.NoError(r.t, err)
}

func (r *testRuntime) identify(owner common.AccountID, productID, cartID []byte, data IdentifyData) {
	r.t.Helper()
	data.CartID = cartID
	err := r.kp.CreateProductIdentifyDocument(signed(owner, IdentifyDocument{
		Head: DocumentHead{
			AppID:      testApp,
			DocumentID: append([]byte("identify-"), cartID...),
			ModelID:    testModel,
			ProductID:  productID,
		},
		Data: data,
	}))
	require.NoError(r.t, err)
}

func (r *testRuntime) comment(commenter common.AccountID, documentID, commentID []byte, fee uint64, trend CommentTrend) {
	r.t.Helper()
	err := r.kp.CreateComment(signed(commenter, CommentPayload{
		AppID:      testApp,
		DocumentID: documentID,
		CommentID:  commentID,
		Fee:        fee,
		Trend:      trend,
	}))
	require.NoError(r.t, err)
}

func (r *testRuntime) commodityTotal(cartID []byte) uint64 {
	r.t.Helper()
	power, err := r.kp.CommodityPower(testApp, cartID)
	require.NoError(r.t, err)
	return power.Total()
}
