// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package members manages the roles of the runtime: finance members and
// their deposits, investors, app admins, keys and experts, and model
// creators.
package members

import (
	"errors"
	"fmt"

	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "members"))

// SetLogLevel sets the level of the members package logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

var (
	ErrNotFinanceRoot     = errors.New("caller is not the finance root")
	ErrNotFinanceMember   = errors.New("caller is not a finance member")
	ErrNotAppAdmin        = errors.New("caller is not an app admin")
	ErrNotModelCreator    = errors.New("caller is not the model creator")
	ErrModelCreatorExists = errors.New("model creator already set")
	ErrInvalidApp         = errors.New("invalid app")
	ErrReturnRate         = errors.New("return rate over one")
	ErrDepositTooLow      = errors.New("finance member deposit too low")
)

// Currency is the ledger the members deposits are kept in.
type Currency interface {
	Transfer(from, to common.AccountID, amount arith.Balance, keepAlive bool) error
	Reserve(who common.AccountID, amount arith.Balance) error
	Unreserve(who common.AccountID, amount arith.Balance) (arith.Balance, error)
	Deposit(who common.AccountID, amount arith.Balance) error
}

// Config holds the constants of the members pallet.
type Config struct {
	MinFinanceMemberDeposit arith.Balance
	// ModelCreatorBenefit is minted to the creator of the first model
	// of a commodity type in an app.
	ModelCreatorBenefit arith.Balance
}

// Pallet is the members runtime module.
type Pallet struct {
	config   Config
	storage  *storage.Storage
	currency Currency
}

func New(config Config, s *storage.Storage, currency Currency) *Pallet {
	return &Pallet{config: config, storage: s, currency: currency}
}

// Genesis sets the finance root, which is the first finance member.
func (p *Pallet) Genesis(root common.AccountID) error {
	if err := financeRoot.Put(p.storage, root); err != nil {
		return err
	}
	return financeMembers.Put(p.storage, []common.AccountID{root})
}

func (p *Pallet) ensureRoot(who common.AccountID) error {
	ok, err := p.IsFinanceRoot(who)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFinanceRoot, who.Short())
	}
	return nil
}

func (p *Pallet) ensureAdmin(who common.AccountID, appID uint32) error {
	ok, err := p.IsAppAdmin(who, appID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s for app %d", ErrNotAppAdmin, who.Short(), appID)
	}
	return nil
}

func mutateSet[K any](s *storage.Storage, m storage.Map[K, []common.AccountID], key K,
	fn func([]common.AccountID) []common.AccountID) error {
	return m.Mutate(s, key, func(set *[]common.AccountID) error {
		*set = fn(*set)
		return nil
	})
}

// AddFinanceMember adds a finance member.
func (p *Pallet) AddFinanceMember(who, member common.AccountID) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureRoot(who); err != nil {
			return err
		}
		return financeMembers.Mutate(p.storage, func(members *[]common.AccountID) error {
			if !containsUnsorted(*members, member) {
				*members = append(*members, member)
			}
			return nil
		})
	})
}

func containsUnsorted(set []common.AccountID, account common.AccountID) bool {
	for _, a := range set {
		if a == account {
			return true
		}
	}
	return false
}

// FinanceMemberDeposit reserves a deposit of the finance member, making
// it liable for the exchanges it is delegated.
func (p *Pallet) FinanceMemberDeposit(who common.AccountID, amount arith.Balance) error {
	return p.storage.Transactional(func() error {
		ok, err := p.IsFinanceMember(who)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFinanceMember, who.Short())
		}
		deposit, err := financeMemberDeposit.Get(p.storage, who)
		if err != nil {
			return err
		}
		deposit, err = arith.Add(deposit, amount)
		if err != nil {
			return err
		}
		if deposit.Lt(&p.config.MinFinanceMemberDeposit) {
			return fmt.Errorf("%w: %s", ErrDepositTooLow, arith.String(deposit))
		}
		if err := p.currency.Reserve(who, amount); err != nil {
			return err
		}
		return financeMemberDeposit.Put(p.storage, who, deposit)
	})
}

func (p *Pallet) AddInvestor(who, investor common.AccountID) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureRoot(who); err != nil {
			return err
		}
		return investorMembers.Mutate(p.storage, func(set *[]common.AccountID) error {
			*set = insert(*set, investor)
			return nil
		})
	})
}

// ConfigAppSetting registers or updates an app.
func (p *Pallet) ConfigAppSetting(who common.AccountID, appID uint32, data AppData) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureRoot(who); err != nil {
			return err
		}
		if arith.Permill(data.ReturnRate) > arith.OnePermill {
			return fmt.Errorf("%w: %d", ErrReturnRate, data.ReturnRate)
		}
		return appData.Put(p.storage, appID, data)
	})
}

// ConfigAppAdmin adds an admin to a registered app.
func (p *Pallet) ConfigAppAdmin(who, admin common.AccountID, appID uint32) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureRoot(who); err != nil {
			return err
		}
		if err := p.ensureValidApp(appID); err != nil {
			return err
		}
		return mutateSet(p.storage, appAdmins, appID, func(set []common.AccountID) []common.AccountID {
			return insert(set, admin)
		})
	})
}

// ConfigAppKey adds an auth server key to an app.
func (p *Pallet) ConfigAppKey(who, key common.AccountID, appID uint32) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureAdmin(who, appID); err != nil {
			return err
		}
		return mutateSet(p.storage, appKeys, appID, func(set []common.AccountID) []common.AccountID {
			return insert(set, key)
		})
	})
}

func (p *Pallet) RemoveAppKey(who, key common.AccountID, appID uint32) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureAdmin(who, appID); err != nil {
			return err
		}
		return mutateSet(p.storage, appKeys, appID, func(set []common.AccountID) []common.AccountID {
			return remove(set, key)
		})
	})
}

func (p *Pallet) AddPlatformExpert(who, expert common.AccountID, appID uint32) error {
	return p.storage.Transactional(func() error {
		if err := p.ensureAdmin(who, appID); err != nil {
			return err
		}
		return mutateSet(p.storage, platformExperts, appID, func(set []common.AccountID) []common.AccountID {
			return insert(set, expert)
		})
	})
}

// AddModelExpert adds an expert to a model. Only the model creator may.
func (p *Pallet) AddModelExpert(who, expert common.AccountID, appID uint32, modelID []byte) error {
	return p.mutateModelExperts(who, appID, modelID, func(set []common.AccountID) []common.AccountID {
		return insert(set, expert)
	})
}

func (p *Pallet) RemoveModelExpert(who, expert common.AccountID, appID uint32, modelID []byte) error {
	return p.mutateModelExperts(who, appID, modelID, func(set []common.AccountID) []common.AccountID {
		return remove(set, expert)
	})
}

func (p *Pallet) mutateModelExperts(who common.AccountID, appID uint32, modelID []byte,
	fn func([]common.AccountID) []common.AccountID) error {
	return p.storage.Transactional(func() error {
		ok, err := p.IsModelCreator(who, appID, modelID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotModelCreator, who.Short())
		}
		return expertMembers.Mutate(p.storage, appID, modelID, func(set *[]common.AccountID) error {
			*set = fn(*set)
			return nil
		})
	})
}

// TransferModelOwner hands a model over to a new creator.
func (p *Pallet) TransferModelOwner(who common.AccountID, appID uint32, modelID []byte, owner common.AccountID) error {
	return p.storage.Transactional(func() error {
		ok, err := p.IsModelCreator(who, appID, modelID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotModelCreator, who.Short())
		}
		logger.Debugf("model 0x%x of app %d transferred from %s to %s", modelID, appID, who.Short(), owner.Short())
		return modelCreators.Put(p.storage, appID, modelID, owner)
	})
}

func (p *Pallet) ensureValidApp(appID uint32) error {
	ok, err := p.IsValidApp(appID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidApp, appID)
	}
	return nil
}
