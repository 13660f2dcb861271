// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/common"
)

// DocumentHead is the part of a document payload shared by all types.
type DocumentHead struct {
	AppID       uint32
	DocumentID  []byte
	ModelID     []byte
	ProductID   []byte
	ContentHash common.Hash
}

type PublishDocument struct {
	Head DocumentHead
	Data PublishData
}

type IdentifyDocument struct {
	Head DocumentHead
	Data IdentifyData
}

type TryDocument struct {
	Head DocumentHead
	Data TryData
}

type ChooseDocument struct {
	Head DocumentHead
	Data ChooseData
}

type ModelCreateDocument struct {
	Head DocumentHead
	Data ModelCreateData
}

// CreateProductPublishDocument stores the publish document of a product.
func (p *Pallet) CreateProductPublishDocument(signed Signed[PublishDocument]) error {
	data := signed.Payload.Data
	return createDocument(p, "create_product_publish_document", signed, signed.Payload.Head,
		ProductPublish, func(doc *Document) { doc.Publish = &data })
}

// CreateProductIdentifyDocument stores the identify document of a cart
// and registers the cart as a commodity.
func (p *Pallet) CreateProductIdentifyDocument(signed Signed[IdentifyDocument]) error {
	data := signed.Payload.Data
	return createDocument(p, "create_product_identify_document", signed, signed.Payload.Head,
		ProductIdentify, func(doc *Document) { doc.Identify = &data })
}

// CreateProductTryDocument stores the try document of a cart and
// registers the cart as a commodity.
func (p *Pallet) CreateProductTryDocument(signed Signed[TryDocument]) error {
	data := signed.Payload.Data
	return createDocument(p, "create_product_try_document", signed, signed.Payload.Head,
		ProductTry, func(doc *Document) { doc.Try = &data })
}

func (p *Pallet) CreateProductChooseDocument(signed Signed[ChooseDocument]) error {
	data := signed.Payload.Data
	return createDocument(p, "create_product_choose_document", signed, signed.Payload.Head,
		ProductChoose, func(doc *Document) { doc.Choose = &data })
}

func (p *Pallet) CreateModelCreateDocument(signed Signed[ModelCreateDocument]) error {
	data := signed.Payload.Data
	return createDocument(p, "create_model_create_document", signed, signed.Payload.Head,
		ModelCreate, func(doc *Document) { doc.ModelCreate = &data })
}

func createDocument[P any](p *Pallet, call string, signed Signed[P], head DocumentHead,
	docType DocumentType, setData func(doc *Document)) error {
	return p.dispatch(call, func() error {
		if err := verifySigned(p, head.AppID, signed); err != nil {
			return err
		}
		if err := p.ensureValidApp(head.AppID); err != nil {
			return err
		}
		if err := p.ensureModelEnabled(head.AppID, head.ModelID); err != nil {
			return err
		}

		doc := Document{
			AppID:         head.AppID,
			DocumentID:    head.DocumentID,
			ModelID:       head.ModelID,
			ProductID:     head.ProductID,
			ContentHash:   head.ContentHash,
			Sender:        signed.AuthServer,
			Owner:         signed.AppUser,
			Type:          docType,
			ExpertTrend:   TrendEmpty,
			PlatformTrend: TrendEmpty,
		}
		setData(&doc)
		if err := p.ensureDocumentIndexable(doc); err != nil {
			return err
		}

		content, err := p.documentContentPower(doc)
		if err != nil {
			return err
		}
		return p.storeDocument(doc, DocumentPower{Content: content})
	})
}

func (p *Pallet) ensureModelEnabled(appID uint32, modelID []byte) error {
	model, found, err := modelData.TryGet(p.storage, appID, modelID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: app %d model 0x%x", ErrModelNotFound, appID, modelID)
	}
	if model.Status != ModelEnabled {
		return fmt.Errorf("%w: app %d model 0x%x", ErrModelDisabled, appID, modelID)
	}
	return nil
}

// ensureDocumentIndexable checks the document id is unused and the
// product and cart indices of the document are free.
func (p *Pallet) ensureDocumentIndexable(doc Document) error {
	s := p.storage
	exists, err := documents.Contains(s, doc.AppID, doc.DocumentID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: 0x%x", ErrDocumentAlreadyExists, doc.DocumentID)
	}

	switch doc.Type {
	case ProductPublish:
		exists, err = productPublishIndex.Contains(s, doc.AppID, doc.ProductID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: product 0x%x already published", ErrDocumentAlreadyExists, doc.ProductID)
		}
	case ProductIdentify, ProductTry:
		published, err := productPublishIndex.Contains(s, doc.AppID, doc.ProductID)
		if err != nil {
			return err
		}
		if !published {
			return fmt.Errorf("%w: 0x%x", ErrProductNotPublished, doc.ProductID)
		}
		index, indexErr := cartIdentifyIndex, ErrCartAlreadyIdentified
		if doc.Type == ProductTry {
			index, indexErr = cartTryIndex, ErrCartAlreadyTried
		}
		exists, err = index.Contains(s, doc.AppID, doc.cartID())
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: 0x%x", indexErr, doc.cartID())
		}
	}
	return nil
}

// storeDocument stores a new document with its power, indexes it and
// forwards its power to the account or commodity it contributes to.
func (p *Pallet) storeDocument(doc Document, power DocumentPower) error {
	s := p.storage
	if err := documents.Put(s, doc.AppID, doc.DocumentID, doc); err != nil {
		return err
	}
	if err := documentPower.Put(s, doc.AppID, doc.DocumentID, power); err != nil {
		return err
	}
	err := accountDocuments.Mutate(s, doc.Owner, doc.AppID, func(ids *[][]byte) error {
		*ids = append(*ids, doc.DocumentID)
		return nil
	})
	if err != nil {
		return err
	}

	switch doc.Type {
	case ProductPublish:
		return productPublishIndex.Put(s, doc.AppID, doc.ProductID, doc.DocumentID)
	case ProductIdentify, ProductTry:
		index := cartIdentifyIndex
		if doc.Type == ProductTry {
			index = cartTryIndex
		}
		if err := index.Put(s, doc.AppID, doc.cartID(), doc.DocumentID); err != nil {
			return err
		}
		if err := p.observeGoodsPrice(doc); err != nil {
			return err
		}
		if err := p.ensureCommodity(doc); err != nil {
			return err
		}
		return p.refreshCommodity(doc.AppID, doc.cartID())
	default:
		return p.replaceAttendPower(doc.Owner, doc.AppID, 0, power.Total())
	}
}

func (p *Pallet) observeGoodsPrice(doc Document) error {
	price := doc.goodsPrice()
	err := maxGoodsPrice.Mutate(p.storage, func(max *uint64) error {
		normalize(price, max)
		return nil
	})
	if err != nil {
		return err
	}
	return accountMaxPurchase.Mutate(p.storage, doc.Owner, doc.AppID, func(max *uint64) error {
		normalize(price, max)
		return nil
	})
}

// replaceAttendPower replaces the power of a choose or model create
// document in the attend power of its owner.
func (p *Pallet) replaceAttendPower(owner common.AccountID, appID uint32, previous, next uint64) error {
	if previous == next {
		return nil
	}
	return accountAttendPower.Mutate(p.storage, owner, appID, func(power *uint64) error {
		return replaceClamped(power, previous, next, "attend power of "+owner.Short())
	})
}
