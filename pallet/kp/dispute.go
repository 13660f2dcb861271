// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// SlashCommodityPower clears the power of a cart reported by a comment
// and blacklists it.
func (p *Pallet) SlashCommodityPower(who common.AccountID, appID uint32, cartID, commentID []byte) error {
	return p.dispatch("slash_commodity_power", func() error {
		s := p.storage
		if err := p.ensureAppAdmin(who, appID); err != nil {
			return err
		}
		exists, err := commoditySlashRecords.Contains(s, appID, commentID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: comment 0x%x", ErrSlashAlreadyExists, commentID)
		}
		commodity, found, err := commodities.TryGet(s, appID, cartID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: 0x%x", ErrCommodityNotFound, cartID)
		}
		blacklisted, err := commodityBlackList.Contains(s, appID, cartID)
		if err != nil {
			return err
		}
		if blacklisted {
			return fmt.Errorf("%w: 0x%x", ErrCommodityBlacklisted, cartID)
		}
		now, err := p.blockNumber()
		if err != nil {
			return err
		}

		power, err := p.clearCommodity(commodity)
		if err != nil {
			return err
		}
		err = accountStatistics.Mutate(s, commodity.Owner, func(stats *AccountStatistics) (err error) {
			stats.SlashCommodityNum++
			stats.SlashKPTotal, err = checkedAdd(stats.SlashKPTotal, power, "slashed power total")
			return err
		})
		if err != nil {
			return err
		}
		return commoditySlashRecords.Put(s, appID, commentID, CommoditySlashRecord{
			AppID:     appID,
			CommentID: commentID,
			CartID:    cartID,
			Block:     now,
		})
	})
}

func (p *Pallet) disputeWeight(disputeType ModelDisputeType) (count uint32, reward arith.Balance) {
	switch disputeType {
	case DisputeIntendNormal:
		return p.config.ModelDisputeLv2Increase, p.config.ModelDisputeRewards.Lv2
	case DisputeSerious:
		return p.config.ModelDisputeLv3Increase, p.config.ModelDisputeRewards.Lv3
	default:
		return 1, p.config.ModelDisputeRewards.Lv1
	}
}

// ModelDispute records a dispute against a model reported by a comment.
// The reporter is rewarded from the model deposit, which is slashed too.
// Serious disputes, or too many disputes in a cycle, cancel the model
// reward of the cycle and disable the model.
func (p *Pallet) ModelDispute(who common.AccountID, appID uint32, modelID, commentID []byte,
	disputeType ModelDisputeType, reporter common.AccountID) error {
	return p.dispatch("model_dispute", func() error {
		s := p.storage
		if err := p.ensureAppAdmin(who, appID); err != nil {
			return err
		}
		if disputeType > DisputeSerious {
			return fmt.Errorf("%w: dispute type %d", ErrInvalidDisputeType, disputeType)
		}
		model, found, err := modelData.TryGet(s, appID, modelID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: app %d model 0x%x", ErrModelNotFound, appID, modelID)
		}
		exists, err := modelDisputeRecords.Contains(s, appID, commentID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: comment 0x%x", ErrDisputeAlreadyExists, commentID)
		}
		now, err := p.blockNumber()
		if err != nil {
			return err
		}
		cycle := CycleIndex(now, p.config.periods())

		increase, reward := p.disputeWeight(disputeType)
		countKey := cycleAppModel{Cycle: cycle, AppID: appID, ModelID: modelID}
		count, err := modelDisputeCount.Get(s, countKey)
		if err != nil {
			return err
		}
		count += increase

		deposit, err := modelDeposit.Get(s, appID, modelID)
		if err != nil {
			return err
		}
		deposit, err = p.payFromDeposit(model.Owner, reporter, deposit, reward)
		if err != nil {
			return err
		}
		deposit, err = p.slashDeposit(model.Owner, deposit, p.config.ModelDisputeLv1Slash)
		if err != nil {
			return err
		}
		if err := modelDeposit.Put(s, appID, modelID, deposit); err != nil {
			return err
		}
		if err := modelDisputeCount.Put(s, countKey, count); err != nil {
			return err
		}

		if disputeType == DisputeSerious || count >= p.config.ModelDisputeCycleCount {
			if err := modelSlashCycle.Put(s, appID, modelID, cycle); err != nil {
				return err
			}
			model.Status = ModelDisabled
			if err := modelData.Put(s, appID, modelID, model); err != nil {
				return err
			}
		}
		if disputeType == DisputeSerious {
			if err := p.purgeModelBoards(appID, modelID); err != nil {
				return err
			}
		}
		if p.depositUnderHalf(deposit) {
			err = modelPreBlackList.Mutate(s, func(entries *[]PreBlackListEntry) error {
				*entries = append(removePreBlackListed(*entries, appID, modelID), PreBlackListEntry{
					AppID:   appID,
					ModelID: modelID,
					Creator: model.Owner,
					Block:   now,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}

		record := ModelDisputeRecord{
			AppID:       appID,
			ModelID:     modelID,
			CommentID:   commentID,
			DisputeType: disputeType,
			Block:       now,
		}
		record.ID, err = recordID(record)
		if err != nil {
			return err
		}
		return modelDisputeRecords.Put(s, appID, commentID, record)
	})
}

// payFromDeposit pays up to amount from the reserved model deposit of
// the creator and returns the deposit left.
func (p *Pallet) payFromDeposit(creator, receiver common.AccountID, deposit, amount arith.Balance) (arith.Balance, error) {
	amount = arith.Min(amount, deposit)
	if amount.IsZero() {
		return deposit, nil
	}
	missing, err := p.currency.Unreserve(creator, amount)
	if err != nil {
		return deposit, err
	}
	paid := arith.SaturatingSub(amount, missing)
	if !missing.IsZero() {
		logger.Warnf("model deposit of %s short of %s", creator.Short(), arith.String(missing))
	}
	if !paid.IsZero() {
		if err := p.currency.Transfer(creator, receiver, paid, false); err != nil {
			return deposit, fmt.Errorf("paying from model deposit: %w", err)
		}
	}
	return arith.SaturatingSub(deposit, amount), nil
}

// slashDeposit burns up to amount of the reserved model deposit of the
// creator and returns the deposit left.
func (p *Pallet) slashDeposit(creator common.AccountID, deposit, amount arith.Balance) (arith.Balance, error) {
	amount = arith.Min(amount, deposit)
	if amount.IsZero() {
		return deposit, nil
	}
	missing, err := p.currency.SlashReserved(creator, amount)
	if err != nil {
		return deposit, err
	}
	if !missing.IsZero() {
		logger.Warnf("model deposit of %s short of %s", creator.Short(), arith.String(missing))
	}
	p.metrics.AddBurnt(p.units(arith.SaturatingSub(amount, missing)))
	return arith.SaturatingSub(deposit, amount), nil
}

// processPreBlackList disables the models whose deposit is still under
// half the creation deposit once the delay after their dispute elapsed.
func (p *Pallet) processPreBlackList(block uint32) error {
	s := p.storage
	entries, err := modelPreBlackList.Get(s)
	if err != nil || len(entries) == 0 {
		return err
	}

	pending := make([]PreBlackListEntry, 0, len(entries))
	for _, entry := range entries {
		if block < entry.Block+p.config.ModelDisputeDelayTime {
			pending = append(pending, entry)
			continue
		}
		deposit, err := modelDeposit.Get(s, entry.AppID, entry.ModelID)
		if err != nil {
			return err
		}
		if !p.depositUnderHalf(deposit) {
			continue
		}
		logger.Infof("disabling model 0x%x of app %d, deposit %s", entry.ModelID, entry.AppID, arith.String(deposit))
		if err := p.setModelStatus(entry.AppID, entry.ModelID, ModelDisabled); err != nil {
			return err
		}
	}
	return modelPreBlackList.Put(s, pending)
}
