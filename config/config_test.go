// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"path/filepath"
	"testing"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/pallet/kp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Default_Validate(t *testing.T) {
	t.Parallel()

	err := Default().Validate()
	require.NoError(t, err)
}

func Test_Default_KPConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Default().KPConfig()
	require.NoError(t, err)
	assert.Equal(t, kp.DefaultConfig(), cfg)
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		mutate   func(c *Config)
		errorIs  error
		errorMsg string
	}{
		"default": {
			mutate: func(*Config) {},
		},
		"unknown database": {
			mutate:   func(c *Config) { c.Global.Database = "postgres" },
			errorMsg: "invalid configuration",
		},
		"chaindb without base path": {
			mutate: func(c *Config) {
				c.Global.Database = "chaindb"
				c.Global.BasePath = ""
			},
			errorMsg: "invalid configuration",
		},
		"weight over 100": {
			mutate:   func(c *Config) { c.KP.RedeemFeeRate = 101 },
			errorMsg: "invalid configuration",
		},
		"same treasury seeds": {
			mutate:   func(c *Config) { c.KP.FinanceTreasurySeed = c.KP.TechTreasurySeed },
			errorMsg: "invalid configuration",
		},
		"bad endowed account": {
			mutate: func(c *Config) {
				c.Genesis.Endowed = []EndowmentConfig{{Account: "zz", Units: 1}}
			},
			errorMsg: "invalid configuration",
		},
		"stages exceed cycle": {
			mutate:  func(c *Config) { c.KP.RewardingPeriod = 900 },
			errorIs: ErrStagePeriods,
		},
		"zero finance period": {
			mutate:  func(c *Config) { c.KP.FinanceExchangePeriod = 0 },
			errorIs: ErrFinancePeriod,
		},
		"document weights": {
			mutate:  func(c *Config) { c.KP.DocumentPowerWeightJudge = 10 },
			errorIs: ErrWeightsSum,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			testCase.mutate(cfg)

			err := cfg.Validate()

			switch {
			case testCase.errorIs != nil:
				assert.ErrorIs(t, err, testCase.errorIs)
			case testCase.errorMsg != "":
				assert.ErrorContains(t, err, testCase.errorMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Export_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Global.Database = "chaindb"
	cfg.Global.Metrics = true
	cfg.KP.AppLeaderBoardMaxPos = 7
	cfg.Genesis = GenesisConfig{
		FinanceRoot: common.AccountID{1}.String(),
		Endowed: []EndowmentConfig{
			{Account: common.AccountID{2}.String(), Units: 5},
		},
	}

	err := Export(cfg, path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func Test_Load_missingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "opening config file")
}

func Test_Config_Endowments(t *testing.T) {
	t.Parallel()

	account := common.AccountID{1}
	cfg := Default()
	cfg.Genesis.Endowed = []EndowmentConfig{
		{Account: account.String(), Units: 2},
		{Account: account.String(), Units: 3},
	}

	endowments, err := cfg.Endowments()
	require.NoError(t, err)

	expected := arith.NewBalance(5 * cfg.KP.CurrencyUnit)
	assert.Equal(t, map[common.AccountID]arith.Balance{account: expected}, endowments)
}

func Test_Config_FinanceRoot(t *testing.T) {
	t.Parallel()

	cfg := Default()
	_, ok, err := cfg.FinanceRoot()
	require.NoError(t, err)
	assert.False(t, ok)

	root := common.AccountID{9}
	cfg.Genesis.FinanceRoot = root.String()
	got, ok, err := cfg.FinanceRoot()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, root, got)

	cfg.Genesis.FinanceRoot = "0x0102"
	_, _, err = cfg.FinanceRoot()
	assert.ErrorContains(t, err, "account id is not 32 bytes")
}

func Test_Config_ApplyLogLevels(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Log.KPLvl = "debug"
	cfg.Log.SystemLvl = ""
	require.NoError(t, cfg.ApplyLogLevels())

	cfg.Log.StorageLvl = "loud"
	assert.ErrorContains(t, cfg.ApplyLogLevels(), "level is not recognised")
}
