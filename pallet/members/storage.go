// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package members

import (
	"sort"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
)

const moduleName = "Members"

// AppData are the settings of an app. ReturnRate is in parts per million.
type AppData struct {
	Name       []byte
	ReturnRate uint32
	Stake      arith.Balance
}

var (
	financeMembers       = storage.NewValue[[]common.AccountID](moduleName, "FinanceMembers")
	financeRoot          = storage.NewValue[common.AccountID](moduleName, "FinanceRoot")
	financeMemberDeposit = storage.NewMap[common.AccountID, arith.Balance](moduleName, "FinanceMemberDeposit")
	investorMembers      = storage.NewValue[[]common.AccountID](moduleName, "InvestorMembers")
	appAdmins            = storage.NewMap[uint32, []common.AccountID](moduleName, "AppAdmins")
	appKeys              = storage.NewMap[uint32, []common.AccountID](moduleName, "AppKeys")
	appData              = storage.NewMap[uint32, AppData](moduleName, "AppDataMap")
	platformExperts      = storage.NewMap[uint32, []common.AccountID](moduleName, "AppPlatformExpertMembers")
	modelCreators        = storage.NewDoubleMap[uint32, []byte, common.AccountID](moduleName, "ModelCreators")
	expertMembers        = storage.NewDoubleMap[uint32, []byte, []common.AccountID](moduleName, "ExpertMembers")
	newAccountBenefits   = storage.NewDoubleMap[uint32, []byte, arith.Balance](moduleName, "NewAccountBenefitRecords")
)

// sorted sets of accounts

func search(set []common.AccountID, account common.AccountID) (int, bool) {
	i := sort.Search(len(set), func(i int) bool {
		return set[i].Compare(account) >= 0
	})
	return i, i < len(set) && set[i] == account
}

func contains(set []common.AccountID, account common.AccountID) bool {
	_, found := search(set, account)
	return found
}

func insert(set []common.AccountID, account common.AccountID) []common.AccountID {
	i, found := search(set, account)
	if found {
		return set
	}
	set = append(set, common.AccountID{})
	copy(set[i+1:], set[i:])
	set[i] = account
	return set
}

func remove(set []common.AccountID, account common.AccountID) []common.AccountID {
	i, found := search(set, account)
	if !found {
		return set
	}
	return append(set[:i], set[i+1:]...)
}
