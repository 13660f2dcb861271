// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrStagePeriods  = errors.New("cycle stages exceed the cycle period")
	ErrWeightsSum    = errors.New("weights do not sum to 100")
	ErrFinancePeriod = errors.New("finance exchange period is zero")
)

var validate = validator.New()

// Validate checks the field constraints of the configuration and the
// consistency of the kp weights and periods.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return c.KP.check()
}

func (c KPConfig) check() error {
	stages := uint64(c.CollectingPeriod) + uint64(c.RewardingPeriod) + 2*uint64(c.RewardingPeriod/2)
	if stages > uint64(c.CyclePeriod) {
		return fmt.Errorf("%w: %d > %d", ErrStagePeriods, stages, c.CyclePeriod)
	}
	if c.FinanceExchangePeriod == 0 {
		return ErrFinancePeriod
	}

	groups := []struct {
		name    string
		weights []uint8
	}{
		{"top", []uint8{c.TopWeightProductPublish, c.TopWeightProductIdentify, c.TopWeightProductTry,
			c.TopWeightAccountAttend, c.TopWeightAccountStake}},
		{"document", []uint8{c.DocumentPowerWeightAttend, c.DocumentPowerWeightContent, c.DocumentPowerWeightJudge}},
		{"comment", []uint8{c.CommentPowerWeightCount, c.CommentPowerWeightCost, c.CommentPowerWeightPerCost,
			c.CommentPowerWeightPositive}},
		{"document cm", []uint8{c.DocumentCMPowerWeightAttend, c.DocumentCMPowerWeightContent,
			c.DocumentCMPowerWeightJudge}},
		{"comment cm", []uint8{c.CommentCMPowerWeightCount, c.CommentCMPowerWeightCost,
			c.CommentCMPowerWeightPerCost, c.CommentCMPowerWeightPositive}},
		{"publish", []uint8{c.DocumentPublishWeightParamsRate, c.DocumentPublishWeightSelfRate,
			c.DocumentPublishWeightAttendRate}},
		{"identify", []uint8{c.DocumentIdentifyWeightParamsRate, c.DocumentIdentifyWeightCheckRate,
			c.DocumentIdentifyWeightConsistent}},
		{"try", []uint8{c.DocumentTryWeightBiasRate, c.DocumentTryWeightTrueRate,
			c.DocumentTryWeightConsistentRate}},
		{"choose", []uint8{c.DocumentChooseWeightSellCount, c.DocumentChooseWeightTryCount}},
		{"model", []uint8{c.DocumentModelWeightProducerCount, c.DocumentModelWeightProductCount}},
	}
	for _, group := range groups {
		var sum uint
		for _, w := range group.weights {
			sum += uint(w)
		}
		if sum != 100 {
			return fmt.Errorf("%w: %s weights sum to %d", ErrWeightsSum, group.name, sum)
		}
	}
	return nil
}
