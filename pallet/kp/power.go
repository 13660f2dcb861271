// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"github.com/ctt-network/kp/lib/arith"
)

// normalize returns raw as a fraction of the running maximum, raising
// the maximum first when raw exceeds it.
func normalize(raw uint64, max *uint64) arith.Permill {
	if raw > *max {
		*max = raw
	}
	return arith.PermillFromRational(raw, *max)
}

// weighted reduces a fraction of PowerPrecision by each percentage in turn.
func weighted(fraction arith.Permill, weights ...arith.Percent) uint64 {
	power := fraction.Of(PowerPrecision)
	for _, weight := range weights {
		power = weight.Of(power)
	}
	return power
}

// judgeFraction maps the expert and platform verdicts of a document
// to the fraction of its judge power.
func judgeFraction(expert, platform CommentTrend) arith.Permill {
	switch {
	case expert == TrendPositive && platform == TrendPositive:
		return arith.OnePermill
	case expert == TrendPositive && platform == TrendNegative:
		return 500_000
	case expert == TrendNegative && platform == TrendPositive:
		return 375_000
	case expert == TrendPositive && platform == TrendEmpty:
		return 750_000
	case expert == TrendEmpty && platform == TrendPositive:
		return 250_000
	default:
		return 0
	}
}

func unitFee(fees, count uint64) uint64 {
	if count == 0 {
		return 0
	}
	return fees / count
}

// observeComments raises the comment maxima to the given aggregates.
func observeComments(max *CommentMax, count, fees, positive uint64) {
	normalize(count, &max.MaxCount)
	normalize(fees, &max.MaxFee)
	normalize(positive, &max.MaxPositive)
	normalize(unitFee(fees, count), &max.MaxUnitFee)
}

// commentPower is the power of comment aggregates against the maxima,
// scaled by the outer weights.
func commentPower(max CommentMax, count, fees, positive uint64,
	weights CommentWeights, outer ...arith.Percent) (power uint64) {
	terms := []struct {
		fraction arith.Permill
		weight   arith.Percent
	}{
		{arith.PermillFromRational(count, max.MaxCount), weights.Count},
		{arith.PermillFromRational(fees, max.MaxFee), weights.Cost},
		{arith.PermillFromRational(unitFee(fees, count), max.MaxUnitFee), weights.PerCost},
		{arith.PermillFromRational(positive, max.MaxPositive), weights.Positive},
	}
	for _, term := range terms {
		power += weighted(term.fraction, append([]arith.Percent{term.weight}, outer...)...)
	}
	return power
}

// metric is a raw document metric with its weight and running maximum.
type metric struct {
	raw    uint64
	max    *uint64
	weight arith.Percent
}

func contentPower(metrics []metric, content, top arith.Percent) (power uint64) {
	for _, m := range metrics {
		power += weighted(normalize(m.raw, m.max), m.weight, content, top)
	}
	return power
}

// documentWeights returns the document and comment weights and the top
// weight applying to a document type.
func (c Config) documentWeights(docType DocumentType) (DocumentWeights, CommentWeights, arith.Percent) {
	switch docType {
	case ProductPublish:
		return c.Document, c.Comment, c.Top.ProductPublish
	case ProductIdentify:
		return c.Document, c.Comment, c.Top.ProductIdentify
	case ProductTry:
		return c.Document, c.Comment, c.Top.ProductTry
	default:
		return c.DocumentCM, c.CommentCM, c.CMAccountAttend
	}
}

// documentContentPower updates the running maxima of the app with the
// metrics of doc and returns its content power.
func (p *Pallet) documentContentPower(doc Document) (uint64, error) {
	s := p.storage
	docWeights, _, top := p.config.documentWeights(doc.Type)
	app := doc.AppID

	switch {
	case doc.Publish != nil:
		max, err := publishMax.Get(s, app)
		if err != nil {
			return 0, err
		}
		power := contentPower([]metric{
			{doc.Publish.ParaIssueRate, &max.ParaIssueRate, p.config.Publish.ParamRate},
			{doc.Publish.SelfIssueRate, &max.SelfIssueRate, p.config.Publish.SelfRate},
			{doc.Publish.ReferCount, &max.ReferCount, p.config.Publish.AttendRate},
		}, docWeights.Content, top)
		return power, publishMax.Put(s, app, max)
	case doc.Identify != nil:
		max, err := identifyMax.Get(s, app)
		if err != nil {
			return 0, err
		}
		power := contentPower([]metric{
			{doc.Identify.IdentRate, &max.IdentRate, p.config.Identify.ParamRate},
			{doc.Identify.IdentConsistence, &max.IdentConsistence, p.config.Identify.CheckRate},
			{doc.Identify.SellerConsistence, &max.SellerConsistence, p.config.Identify.ConsistentRate},
		}, docWeights.Content, top)
		normalize(doc.Identify.GoodsPrice, &max.GoodsPrice)
		return power, identifyMax.Put(s, app, max)
	case doc.Try != nil:
		max, err := tryMax.Get(s, app)
		if err != nil {
			return 0, err
		}
		power := contentPower([]metric{
			{doc.Try.OffsetRate, &max.OffsetRate, p.config.Try.BiasRate},
			{doc.Try.TrueRate, &max.TrueRate, p.config.Try.TrueRate},
			{doc.Try.SellerConsistence, &max.SellerConsistence, p.config.Try.ConsistentRate},
		}, docWeights.Content, top)
		normalize(doc.Try.GoodsPrice, &max.GoodsPrice)
		return power, tryMax.Put(s, app, max)
	case doc.Choose != nil:
		max, err := chooseMax.Get(s, app)
		if err != nil {
			return 0, err
		}
		power := contentPower([]metric{
			{doc.Choose.SellCount, &max.SellCount, p.config.Choose.SellCount},
			{doc.Choose.TryCount, &max.TryCount, p.config.Choose.TryCount},
		}, docWeights.Content, top)
		return power, chooseMax.Put(s, app, max)
	case doc.ModelCreate != nil:
		max, err := modelCreateMax.Get(s, app)
		if err != nil {
			return 0, err
		}
		power := contentPower([]metric{
			{doc.ModelCreate.ProducerCount, &max.ProducerCount, p.config.ModelCreate.ProducerCount},
			{doc.ModelCreate.ProductCount, &max.ProductCount, p.config.ModelCreate.ProductCount},
		}, docWeights.Content, top)
		return power, modelCreateMax.Put(s, app, max)
	}
	return 0, nil
}

// documentAttendPower is the power of the comments of doc.
func (p *Pallet) documentAttendPower(doc Document) (uint64, error) {
	max, err := docCommentMax.Get(p.storage, doc.AppID)
	if err != nil {
		return 0, err
	}
	docWeights, commentWeights, top := p.config.documentWeights(doc.Type)
	return commentPower(max, doc.CommentCount, doc.CommentTotalFee, doc.CommentPositiveCount,
		commentWeights, docWeights.Attend, top), nil
}

func (p *Pallet) documentJudgePower(doc Document) uint64 {
	docWeights, _, top := p.config.documentWeights(doc.Type)
	return weighted(judgeFraction(doc.ExpertTrend, doc.PlatformTrend), docWeights.Judge, top)
}

// ownerActionPower is the power of the comments an account made in an app.
func (p *Pallet) ownerActionPower(appID uint32, owner accountID) (uint64, error) {
	record, err := accountComments.Get(p.storage, appID, owner)
	if err != nil {
		return 0, err
	}
	max, err := accountCommentMax.Get(p.storage, appID)
	if err != nil {
		return 0, err
	}
	return commentPower(max, record.Count, record.Fees, record.PositiveCount,
		p.config.Comment, p.config.Top.AccountAttend), nil
}

// pricePower is the goods price against the highest price seen.
func (p *Pallet) pricePower(goodsPrice uint64) (uint64, error) {
	max, err := maxGoodsPrice.Get(p.storage)
	if err != nil {
		return 0, err
	}
	return weighted(arith.PermillFromRational(goodsPrice, max), p.config.Top.AccountStake), nil
}

// powerToStakeRatio converts the share of an account in the total power
// to the share of the app stake it may claim. Below the threshold the
// ratio grows linearly to one, above it it decreases as threshold/share.
func powerToStakeRatio(accountPower, total uint64, threshold arith.Permill) arith.Permill {
	share := arith.PermillFromRational(accountPower, total)
	switch {
	case share == 0 || threshold == 0:
		return 0
	case share <= threshold:
		return arith.PermillFromRational(uint64(share), uint64(threshold))
	default:
		return arith.PermillFromRational(uint64(threshold), uint64(share))
	}
}
