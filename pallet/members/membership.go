// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package members

import (
	"fmt"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

func (p *Pallet) IsValidApp(appID uint32) (bool, error) {
	return appData.Contains(p.storage, appID)
}

func (p *Pallet) IsAppAdmin(who common.AccountID, appID uint32) (bool, error) {
	admins, err := appAdmins.Get(p.storage, appID)
	return contains(admins, who), err
}

func (p *Pallet) IsAppKey(who common.AccountID, appID uint32) (bool, error) {
	keys, err := appKeys.Get(p.storage, appID)
	return contains(keys, who), err
}

func (p *Pallet) IsModelCreator(who common.AccountID, appID uint32, modelID []byte) (bool, error) {
	creator, found, err := modelCreators.TryGet(p.storage, appID, modelID)
	return found && creator == who, err
}

func (p *Pallet) IsModelExpert(who common.AccountID, appID uint32, modelID []byte) (bool, error) {
	experts, err := expertMembers.Get(p.storage, appID, modelID)
	return contains(experts, who), err
}

func (p *Pallet) IsPlatformExpert(who common.AccountID, appID uint32) (bool, error) {
	experts, err := platformExperts.Get(p.storage, appID)
	return contains(experts, who), err
}

func (p *Pallet) IsInvestor(who common.AccountID) (bool, error) {
	investors, err := investorMembers.Get(p.storage)
	return contains(investors, who), err
}

func (p *Pallet) IsFinanceRoot(who common.AccountID) (bool, error) {
	root, found, err := financeRoot.TryGet(p.storage)
	return found && root == who, err
}

func (p *Pallet) IsFinanceMember(who common.AccountID) (bool, error) {
	members, err := financeMembers.Get(p.storage)
	return containsUnsorted(members, who), err
}

// ValidFinanceMembers returns the finance members tied at the largest
// deposit, or none if that deposit is under the minimum.
func (p *Pallet) ValidFinanceMembers() ([]common.AccountID, error) {
	members, err := financeMembers.Get(p.storage)
	if err != nil {
		return nil, err
	}

	var (
		valid []common.AccountID
		max   arith.Balance
	)
	for _, member := range members {
		deposit, err := financeMemberDeposit.Get(p.storage, member)
		if err != nil {
			return nil, err
		}
		switch deposit.Cmp(&max) {
		case 1:
			max = deposit
			valid = []common.AccountID{member}
		case 0:
			valid = append(valid, member)
		}
	}
	if max.IsZero() || max.Lt(&p.config.MinFinanceMemberDeposit) {
		return nil, nil
	}
	return valid, nil
}

// SlashFinanceMember moves up to amount of the deposit of the member to
// the receiver and returns the amount moved.
func (p *Pallet) SlashFinanceMember(member, receiver common.AccountID, amount arith.Balance) (arith.Balance, error) {
	deposit, err := financeMemberDeposit.Get(p.storage, member)
	if err != nil {
		return arith.Balance{}, err
	}
	slash := arith.Min(deposit, amount)
	if slash.IsZero() {
		return slash, nil
	}
	missing, err := p.currency.Unreserve(member, slash)
	if err != nil {
		return arith.Balance{}, err
	}
	slash = arith.SaturatingSub(slash, missing)
	if err := p.currency.Transfer(member, receiver, slash, false); err != nil {
		return arith.Balance{}, fmt.Errorf("transferring slashed deposit: %w", err)
	}
	logger.Infof("slashed %s of finance member %s deposit to %s",
		arith.String(slash), member.Short(), receiver.Short())
	return slash, financeMemberDeposit.Put(p.storage, member, arith.SaturatingSub(deposit, slash))
}

// SetModelCreator registers the creator of a new model. The creator of
// the first model of a commodity type in an app is minted the creator
// benefit, which is returned.
func (p *Pallet) SetModelCreator(appID uint32, modelID []byte, creator common.AccountID,
	firstOfType bool) (arith.Balance, error) {
	exists, err := modelCreators.Contains(p.storage, appID, modelID)
	if err != nil {
		return arith.Balance{}, err
	}
	if exists {
		return arith.Balance{}, fmt.Errorf("%w: app %d model 0x%x", ErrModelCreatorExists, appID, modelID)
	}
	if err := modelCreators.Put(p.storage, appID, modelID, creator); err != nil {
		return arith.Balance{}, err
	}
	if !firstOfType {
		return arith.Balance{}, nil
	}
	benefit := p.config.ModelCreatorBenefit
	if err := p.currency.Deposit(creator, benefit); err != nil {
		return arith.Balance{}, err
	}
	return benefit, newAccountBenefits.Put(p.storage, appID, modelID, benefit)
}

func (p *Pallet) ModelCreator(appID uint32, modelID []byte) (common.AccountID, error) {
	return modelCreators.Get(p.storage, appID, modelID)
}

func (p *Pallet) AppReturnRate(appID uint32) (arith.Permill, error) {
	data, err := appData.Get(p.storage, appID)
	return arith.Permill(data.ReturnRate), err
}

func (p *Pallet) AppStake(appID uint32) (arith.Balance, error) {
	data, err := appData.Get(p.storage, appID)
	return data.Stake, err
}
