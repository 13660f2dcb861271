// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/common"
)

// CommentPayload is a comment on a document.
type CommentPayload struct {
	AppID       uint32
	DocumentID  []byte
	CommentID   []byte
	CommentHash common.Hash
	Fee         uint64
	Trend       CommentTrend
}

// CreateComment stores a comment, updates the comment aggregates and
// the verdicts of the document, and refreshes the power of the document
// and of every commodity it affects.
func (p *Pallet) CreateComment(signed Signed[CommentPayload]) error {
	return p.dispatch("create_comment", func() error {
		s := p.storage
		payload := signed.Payload
		app := payload.AppID
		commenter := signed.AppUser

		if err := verifySigned(p, app, signed); err != nil {
			return err
		}
		if err := p.ensureValidApp(app); err != nil {
			return err
		}
		if payload.Trend != TrendPositive && payload.Trend != TrendNegative {
			return fmt.Errorf("%w: %d", ErrInvalidTrend, payload.Trend)
		}
		doc, found, err := documents.TryGet(s, app, payload.DocumentID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: 0x%x", ErrDocumentNotFound, payload.DocumentID)
		}
		exists, err := comments.Contains(s, app, payload.CommentID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: 0x%x", ErrCommentAlreadyExists, payload.CommentID)
		}
		isExpert, err := p.membership.IsModelExpert(commenter, app, doc.ModelID)
		if err != nil {
			return err
		}
		isPlatform, err := p.membership.IsPlatformExpert(commenter, app)
		if err != nil {
			return err
		}

		positive := uint64(0)
		if payload.Trend == TrendPositive {
			positive = 1
		}
		if err := doc.addComment(payload.Fee, positive); err != nil {
			return err
		}
		record, err := accountComments.Get(s, app, commenter)
		if err != nil {
			return err
		}
		if err := record.add(payload.Fee, positive); err != nil {
			return fmt.Errorf("comments of %s: %w", commenter.Short(), err)
		}
		stats, err := accountStatistics.Get(s, commenter)
		if err != nil {
			return err
		}
		stats.CommentNum++
		stats.CommentCostTotal, err = checkedAdd(stats.CommentCostTotal, payload.Fee, "comment cost total")
		if err != nil {
			return err
		}
		stats.CommentCostMax = max(stats.CommentCostMax, payload.Fee)
		if positive == 1 {
			stats.CommentPositiveTrendNum++
		} else {
			stats.CommentNegativeTrendNum++
		}

		err = comments.Put(s, app, payload.CommentID, Comment{
			AppID:       app,
			DocumentID:  payload.DocumentID,
			CommentID:   payload.CommentID,
			CommentHash: payload.CommentHash,
			Fee:         payload.Fee,
			Trend:       payload.Trend,
			Sender:      signed.AuthServer,
			Owner:       commenter,
		})
		if err != nil {
			return err
		}

		// the platform verdict is applied last when the commenter holds both roles
		if isExpert {
			doc.ExpertTrend = payload.Trend
		}
		if isPlatform {
			doc.PlatformTrend = payload.Trend
		}

		err = docCommentMax.Mutate(s, app, func(max *CommentMax) error {
			observeComments(max, doc.CommentCount, doc.CommentTotalFee, doc.CommentPositiveCount)
			return nil
		})
		if err != nil {
			return err
		}
		if err := p.putAccountComments(app, commenter, record); err != nil {
			return err
		}
		err = commentPools.Mutate(s, app, doc.DocumentID, func(pool *[]CommentWeight) error {
			*pool = append(*pool, CommentWeight{
				Account:  commenter,
				Position: doc.CommentCount,
				CashCost: payload.Fee,
			})
			return nil
		})
		if err != nil {
			return err
		}
		if err := accountStatistics.Put(s, commenter, stats); err != nil {
			return err
		}

		if err := p.refreshDocument(doc); err != nil {
			return err
		}
		carts, err := p.affectedCarts(doc, commenter)
		if err != nil {
			return err
		}
		return p.refreshCommodities(app, carts...)
	})
}

// addComment adds a comment to the aggregates of the document.
func (d *Document) addComment(fee, positive uint64) error {
	count, err := checkedAdd(d.CommentCount, 1, "document comment count")
	if err != nil {
		return err
	}
	fees, err := checkedAdd(d.CommentTotalFee, fee, "document comment fees")
	if err != nil {
		return err
	}
	d.CommentCount = count
	d.CommentTotalFee = fees
	d.CommentPositiveCount += positive
	return nil
}

func (r *CommentRecord) add(fee, positive uint64) error {
	count, err := checkedAdd(r.Count, 1, "account comment count")
	if err != nil {
		return err
	}
	fees, err := checkedAdd(r.Fees, fee, "account comment fees")
	if err != nil {
		return err
	}
	r.Count = count
	r.Fees = fees
	r.PositiveCount += positive
	return nil
}

func (p *Pallet) putAccountComments(appID uint32, account common.AccountID, record CommentRecord) error {
	if err := accountComments.Put(p.storage, appID, account, record); err != nil {
		return err
	}
	return accountCommentMax.Mutate(p.storage, appID, func(max *CommentMax) error {
		observeComments(max, record.Count, record.Fees, record.PositiveCount)
		return nil
	})
}

// refreshDocument stores the document and recomputes its attend and
// judge power. Its content power does not depend on comments.
func (p *Pallet) refreshDocument(doc Document) error {
	s := p.storage
	if err := documents.Put(s, doc.AppID, doc.DocumentID, doc); err != nil {
		return err
	}
	previous, err := documentPower.Get(s, doc.AppID, doc.DocumentID)
	if err != nil {
		return err
	}
	power := previous
	power.Attend, err = p.documentAttendPower(doc)
	if err != nil {
		return err
	}
	power.Judge = p.documentJudgePower(doc)
	if err := documentPower.Put(s, doc.AppID, doc.DocumentID, power); err != nil {
		return err
	}
	if doc.Type == ProductChoose || doc.Type == ModelCreate {
		return p.replaceAttendPower(doc.Owner, doc.AppID, previous.Total(), power.Total())
	}
	return nil
}

// affectedCarts returns the carts whose power depends on the document
// or on the comments of the commenter.
func (p *Pallet) affectedCarts(doc Document, commenter common.AccountID) ([][]byte, error) {
	var carts [][]byte
	switch doc.Type {
	case ProductPublish:
		productCartIDs, err := productCarts.Get(p.storage, doc.AppID, doc.ProductID)
		if err != nil {
			return nil, err
		}
		carts = append(carts, productCartIDs...)
	case ProductIdentify, ProductTry:
		carts = append(carts, doc.cartID())
	}
	owned, err := accountCommodities.Get(p.storage, commenter, doc.AppID)
	if err != nil {
		return nil, err
	}
	return append(carts, owned...), nil
}
