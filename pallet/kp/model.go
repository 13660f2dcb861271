// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"
	"sort"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// ModelPayload is the creation request of a model.
type ModelPayload struct {
	AppID         uint32
	ModelID       []byte
	ExpertID      []byte
	CommodityName []byte
	CommodityType uint32
	ContentHash   common.Hash
}

// SetCommodityType adds or renames a commodity type.
func (p *Pallet) SetCommodityType(who common.AccountID, typeID uint32, desc []byte) error {
	return p.dispatch("set_commodity_type", func() error {
		if err := p.ensureFinanceRoot(who); err != nil {
			return err
		}
		err := commodityTypes.Mutate(p.storage, func(types *[]CommodityType) error {
			i := sort.Search(len(*types), func(i int) bool {
				return (*types)[i].TypeID >= typeID
			})
			if i < len(*types) && (*types)[i].TypeID == typeID {
				(*types)[i].Desc = desc
				return nil
			}
			*types = append(*types, CommodityType{})
			copy((*types)[i+1:], (*types)[i:])
			(*types)[i] = CommodityType{TypeID: typeID, Desc: desc}
			return nil
		})
		if err != nil {
			return err
		}
		return commodityTypeDesc.Put(p.storage, typeID, desc)
	})
}

// SetAppModelTotal sets the maximum number of models of an app.
func (p *Pallet) SetAppModelTotal(who common.AccountID, appID uint32, total uint32) error {
	return p.dispatch("set_app_model_total", func() error {
		if err := p.ensureAppAdmin(who, appID); err != nil {
			return err
		}
		return appModelTotal.Put(p.storage, appID, total)
	})
}

// CreateModel creates a model owned by the app user, reserving the
// model deposit from its balance.
func (p *Pallet) CreateModel(signed Signed[ModelPayload]) error {
	return p.dispatch("create_model", func() error {
		s := p.storage
		payload := signed.Payload
		app := payload.AppID
		creator := signed.AppUser

		if err := verifySigned(p, app, signed); err != nil {
			return err
		}
		if err := p.ensureValidApp(app); err != nil {
			return err
		}
		known, err := commodityTypeDesc.Contains(s, payload.CommodityType)
		if err != nil {
			return err
		}
		if !known {
			return fmt.Errorf("%w: %d", ErrCommodityTypeNotFound, payload.CommodityType)
		}
		exists, err := modelData.Contains(s, app, payload.ModelID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: 0x%x", ErrModelAlreadyExisted, payload.ModelID)
		}
		total, limited, err := appModelTotal.TryGet(s, app)
		if err != nil {
			return err
		}
		count, err := appModelCount.Get(s, app)
		if err != nil {
			return err
		}
		if limited && count >= total {
			return fmt.Errorf("%w: %d models of %d", ErrModelOverLimit, count, total)
		}

		if err := p.currency.Reserve(creator, p.config.ModelCreateDeposit); err != nil {
			return fmt.Errorf("reserving model deposit: %w", err)
		}
		benefited, err := modelFirstTypeBenefit.Contains(s, app, payload.CommodityType)
		if err != nil {
			return err
		}
		reward, err := p.membership.SetModelCreator(app, payload.ModelID, creator, !benefited)
		if err != nil {
			return err
		}
		if err := modelFirstTypeBenefit.Put(s, app, payload.CommodityType, true); err != nil {
			return err
		}

		err = modelData.Put(s, app, payload.ModelID, Model{
			AppID:         app,
			ModelID:       payload.ModelID,
			ExpertID:      payload.ExpertID,
			Status:        ModelEnabled,
			CommodityName: payload.CommodityName,
			CommodityType: payload.CommodityType,
			ContentHash:   payload.ContentHash,
			Sender:        signed.AuthServer,
			Owner:         creator,
			CreateReward:  reward,
		})
		if err != nil {
			return err
		}
		if err := modelDeposit.Put(s, app, payload.ModelID, p.config.ModelCreateDeposit); err != nil {
			return err
		}
		return appModelCount.Put(s, app, count+1)
	})
}

// DisableModel stops a model from accepting documents.
func (p *Pallet) DisableModel(who common.AccountID, appID uint32, modelID []byte) error {
	return p.dispatch("disable_model", func() error {
		if err := p.ensureAppAdmin(who, appID); err != nil {
			return err
		}
		return p.setModelStatus(appID, modelID, ModelDisabled)
	})
}

func (p *Pallet) EnableModel(who common.AccountID, appID uint32, modelID []byte) error {
	return p.dispatch("enable_model", func() error {
		if err := p.ensureAppAdmin(who, appID); err != nil {
			return err
		}
		return p.setModelStatus(appID, modelID, ModelEnabled)
	})
}

func (p *Pallet) setModelStatus(appID uint32, modelID []byte, status ModelStatus) error {
	model, found, err := modelData.TryGet(p.storage, appID, modelID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: app %d model 0x%x", ErrModelNotFound, appID, modelID)
	}
	model.Status = status
	return modelData.Put(p.storage, appID, modelID, model)
}

// AddModelDeposit tops up the deposit of a model. A model back to half
// the creation deposit leaves the pre blacklist.
func (p *Pallet) AddModelDeposit(who common.AccountID, appID uint32, modelID []byte, amount arith.Balance) error {
	return p.dispatch("add_model_deposit", func() error {
		s := p.storage
		if amount.IsZero() {
			return ErrZeroAmount
		}
		if err := p.ensureModelCreator(who, appID, modelID); err != nil {
			return err
		}
		deposit, err := modelDeposit.Get(s, appID, modelID)
		if err != nil {
			return err
		}
		deposit, err = arith.Add(deposit, amount)
		if err != nil {
			return err
		}
		if err := p.currency.Reserve(who, amount); err != nil {
			return fmt.Errorf("reserving model deposit: %w", err)
		}
		if err := modelDeposit.Put(s, appID, modelID, deposit); err != nil {
			return err
		}
		if p.depositUnderHalf(deposit) {
			return nil
		}
		return modelPreBlackList.Mutate(s, func(entries *[]PreBlackListEntry) error {
			*entries = removePreBlackListed(*entries, appID, modelID)
			return nil
		})
	})
}

func (p *Pallet) ensureModelCreator(who common.AccountID, appID uint32, modelID []byte) error {
	exists, err := modelData.Contains(p.storage, appID, modelID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: app %d model 0x%x", ErrModelNotFound, appID, modelID)
	}
	ok, err := p.membership.IsModelCreator(who, appID, modelID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotModelCreator, who.Short())
	}
	return nil
}

func (p *Pallet) depositUnderHalf(deposit arith.Balance) bool {
	half := p.config.ModelCreateDeposit
	half.Rsh(&half, 1)
	return deposit.Lt(&half)
}

func removePreBlackListed(entries []PreBlackListEntry, appID uint32, modelID []byte) []PreBlackListEntry {
	kept := entries[:0]
	for _, entry := range entries {
		if entry.AppID == appID && string(entry.ModelID) == string(modelID) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}
