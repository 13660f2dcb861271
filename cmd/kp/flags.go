// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

var (
	// ConfigFlag is the path of the TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
		Value: "config.toml",
	}
	// LogFlag overrides the global log level of the configuration
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// ForceFlag overwrites an existing configuration file
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "Overwrite the configuration file if it exists",
	}
	// BlockFlag is the block number to inspect
	BlockFlag = cli.UintFlag{
		Name:  "block",
		Usage: "Block number",
	}
)
