// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
)

// ensureCommodity registers the cart of an identify or try document,
// owned by the document owner.
func (p *Pallet) ensureCommodity(doc Document) error {
	s := p.storage
	cartID := doc.cartID()
	exists, err := commodities.Contains(s, doc.AppID, cartID)
	if err != nil || exists {
		return err
	}

	err = commodities.Put(s, doc.AppID, cartID, Commodity{
		AppID:     doc.AppID,
		CartID:    cartID,
		ModelID:   doc.ModelID,
		ProductID: doc.ProductID,
		Owner:     doc.Owner,
	})
	if err != nil {
		return err
	}

	err = productCarts.Mutate(s, doc.AppID, doc.ProductID, func(carts *[][]byte) error {
		*carts = append(*carts, cartID)
		return nil
	})
	if err != nil {
		return err
	}
	err = accountCommodities.Mutate(s, doc.Owner, doc.AppID, func(carts *[][]byte) error {
		*carts = append(*carts, cartID)
		return nil
	})
	if err != nil {
		return err
	}
	err = appCommodityCount.Mutate(s, doc.AppID, func(count *uint32) error {
		*count++
		return nil
	})
	if err != nil {
		return err
	}
	err = appModelCommodityCount.Mutate(s, doc.AppID, doc.ModelID, func(count *uint32) error {
		*count++
		return nil
	})
	if err != nil {
		return err
	}
	return accountStatistics.Mutate(s, doc.Owner, func(stats *AccountStatistics) error {
		stats.CreateCommodityNum++
		return nil
	})
}

func (p *Pallet) documentPowerAt(appID uint32, index storageIndex, key []byte) (DocumentPower, error) {
	documentID, found, err := index.TryGet(p.storage, appID, key)
	if err != nil || !found {
		return DocumentPower{}, err
	}
	return documentPower.Get(p.storage, appID, documentID)
}

// storageIndex is a document index keyed by app and product or cart.
type storageIndex interface {
	TryGet(s *storage.Storage, appID uint32, key []byte) ([]byte, bool, error)
}

// computeCommodityPower composes the power of a commodity from its
// documents, the comments of its owner and its goods price.
func (p *Pallet) computeCommodityPower(commodity Commodity) (power CommodityPower, err error) {
	power.Publish, err = p.documentPowerAt(commodity.AppID, productPublishIndex, commodity.ProductID)
	if err != nil {
		return power, err
	}
	power.Identify, err = p.documentPowerAt(commodity.AppID, cartIdentifyIndex, commodity.CartID)
	if err != nil {
		return power, err
	}
	power.Try, err = p.documentPowerAt(commodity.AppID, cartTryIndex, commodity.CartID)
	if err != nil {
		return power, err
	}

	power.OwnerAction, err = p.ownerActionPower(commodity.AppID, commodity.Owner)
	if err != nil {
		return power, err
	}

	goodsPrice, err := p.commodityGoodsPrice(commodity)
	if err != nil {
		return power, err
	}
	power.Price, err = p.pricePower(goodsPrice)
	return power, err
}

// commodityGoodsPrice is the highest price declared by the identify
// and try documents of the cart.
func (p *Pallet) commodityGoodsPrice(commodity Commodity) (price uint64, err error) {
	for _, index := range []storageIndex{cartIdentifyIndex, cartTryIndex} {
		documentID, found, err := index.TryGet(p.storage, commodity.AppID, commodity.CartID)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}
		doc, err := documents.Get(p.storage, commodity.AppID, documentID)
		if err != nil {
			return 0, err
		}
		if doc.goodsPrice() > price {
			price = doc.goodsPrice()
		}
	}
	return price, nil
}

// refreshCommodity recomputes the power of a commodity, replaces its
// previous power in the totals and forwards it to the leaderboards.
// Blacklisted and unknown commodities are left untouched.
func (p *Pallet) refreshCommodity(appID uint32, cartID []byte) error {
	s := p.storage
	blacklisted, err := commodityBlackList.Contains(s, appID, cartID)
	if err != nil || blacklisted {
		return err
	}
	commodity, found, err := commodities.TryGet(s, appID, cartID)
	if err != nil || !found {
		return err
	}

	power, err := p.computeCommodityPower(commodity)
	if err != nil {
		return fmt.Errorf("computing power of cart 0x%x: %w", cartID, err)
	}
	previous, err := commodityPower.Get(s, appID, cartID)
	if err != nil {
		return err
	}
	err = p.replacePower(commodity.Owner, previous.Total(), power.Total())
	if err != nil {
		return err
	}
	err = commodityPower.Put(s, appID, cartID, power)
	if err != nil {
		return err
	}
	return p.updateBoards(commodity, power.Total())
}

// refreshCommodities refreshes each distinct cart once.
func (p *Pallet) refreshCommodities(appID uint32, cartIDs ...[]byte) error {
	seen := make(map[string]struct{}, len(cartIDs))
	for _, cartID := range cartIDs {
		if _, ok := seen[string(cartID)]; ok {
			continue
		}
		seen[string(cartID)] = struct{}{}
		if err := p.refreshCommodity(appID, cartID); err != nil {
			return err
		}
	}
	return nil
}

// replacePower replaces the previous power of an account by the new one
// in the account and total powers.
func (p *Pallet) replacePower(owner common.AccountID, previous, next uint64) error {
	if previous == next {
		return nil
	}
	s := p.storage

	err := minerPower.Mutate(s, owner, func(power *uint64) error {
		return replaceClamped(power, previous, next, "power of "+owner.Short())
	})
	if err != nil {
		return err
	}

	var total uint64
	err = totalPower.Mutate(s, func(power *uint64) error {
		err := replaceClamped(power, previous, next, "total power")
		total = *power
		return err
	})
	if err != nil {
		return err
	}
	p.metrics.SetTotalPower(total)
	return nil
}

// replaceClamped subtracts previous from value, clamping at zero, then
// adds next.
func replaceClamped(value *uint64, previous, next uint64, name string) error {
	if previous > *value {
		logger.Warnf("%s %d lower than removed power %d, clamping to zero", name, *value, previous)
		*value = 0
	} else {
		*value -= previous
	}
	sum := *value + next
	if sum < *value {
		return fmt.Errorf("%w: %s", ErrOverflow, name)
	}
	*value = sum
	return nil
}

// checkedAdd returns a + b, or ErrOverflow naming the sum.
func checkedAdd(a, b uint64, name string) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, name)
	}
	return sum, nil
}

// clearCommodity zeroes the power of a commodity, removes it from the
// leaderboards and blacklists it. It returns the power it had.
func (p *Pallet) clearCommodity(commodity Commodity) (uint64, error) {
	s := p.storage
	previous, err := commodityPower.Get(s, commodity.AppID, commodity.CartID)
	if err != nil {
		return 0, err
	}
	err = p.replacePower(commodity.Owner, previous.Total(), 0)
	if err != nil {
		return 0, err
	}
	err = commodityPower.Put(s, commodity.AppID, commodity.CartID, CommodityPower{})
	if err != nil {
		return 0, err
	}
	err = commodityBlackList.Put(s, commodity.AppID, commodity.CartID, true)
	if err != nil {
		return 0, err
	}
	for _, modelID := range [][]byte{commodity.ModelID, nil} {
		err = p.removeFromBoard(commodity.AppID, modelID, commodity.CartID)
		if err != nil {
			return 0, err
		}
	}
	return previous.Total(), nil
}
