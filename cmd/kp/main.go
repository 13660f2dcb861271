// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ctt-network/kp/config"
	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/node"
	"github.com/ctt-network/kp/pallet/kp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var errConfigExists = errors.New("configuration file already exists")

var (
	initCommand = cli.Command{
		Action:    initAction,
		Name:      "init",
		Usage:     "Write the default configuration file",
		ArgsUsage: "",
		Flags:     []cli.Flag{ConfigFlag, ForceFlag},
		Description: "The init command writes the configuration of a development chain.\n" +
			"\tUsage: kp init --config config.toml",
	}
	checkCommand = cli.Command{
		Action:    checkAction,
		Name:      "check",
		Usage:     "Validate the configuration file",
		ArgsUsage: "",
		Flags:     []cli.Flag{ConfigFlag},
	}
	stageCommand = cli.Command{
		Action:    stageAction,
		Name:      "stage",
		Usage:     "Print the cycle stage of a block",
		ArgsUsage: "",
		Flags:     []cli.Flag{ConfigFlag, BlockFlag},
		Description: "The stage command prints the cycle index, the stage and the blocks\n" +
			"\tleft in the stage for the given block number.\n" +
			"\tUsage: kp stage --block 150",
	}
	genesisCommand = cli.Command{
		Action:    genesisAction,
		Name:      "genesis",
		Usage:     "Write the genesis state to the configured database",
		ArgsUsage: "",
		Flags:     []cli.Flag{ConfigFlag, LogFlag},
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "kp"
	app.Usage = "Knowledge power runtime"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		initCommand,
		checkCommand,
		stageCommand,
		genesisCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("failed to start kp: %s", err)
		os.Exit(1)
	}
}

func initAction(ctx *cli.Context) error {
	path := ctx.String(ConfigFlag.Name)
	if _, err := os.Stat(path); err == nil && !ctx.Bool(ForceFlag.Name) {
		return fmt.Errorf("%w: %s", errConfigExists, path)
	}
	if err := config.Export(config.Default(), path); err != nil {
		return err
	}
	logger.Infof("configuration written to %s", path)
	return nil
}

func checkAction(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String(ConfigFlag.Name))
	if err != nil {
		return err
	}
	if _, err = cfg.KPConfig(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "configuration is valid, database %s\n", cfg.Global.Database)
	return err
}

func stageAction(ctx *cli.Context) error {
	cfg, err := loadOrDefault(ctx)
	if err != nil {
		return err
	}

	block := uint32(ctx.Uint(BlockFlag.Name))
	periods := kp.Periods{
		Cycle:      cfg.KP.CyclePeriod,
		Collecting: cfg.KP.CollectingPeriod,
		Rewarding:  cfg.KP.RewardingPeriod,
	}
	stage, remaining := kp.StageAt(block, periods)
	_, err = fmt.Fprintf(ctx.App.Writer, "block %d: cycle %d, stage %s, %d blocks remaining\n",
		block, kp.CycleIndex(block, periods), stage, remaining)
	return err
}

func genesisAction(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String(ConfigFlag.Name))
	if err != nil {
		return err
	}
	if lvl := ctx.String(LogFlag.Name); lvl != "" {
		cfg.Global.LogLvl = lvl
	}

	n, err := node.New(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer n.Close() //nolint:errcheck

	_, err = fmt.Fprintf(ctx.App.Writer, "tech treasury %s\nfinance treasury %s\n",
		n.KP.TechTreasury(), n.KP.FinanceTreasury())
	return err
}

func loadOrDefault(ctx *cli.Context) (*config.Config, error) {
	path := ctx.String(ConfigFlag.Name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(path)
}
