// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package node assembles the runtime modules on top of a database
// and applies blocks of calls to them.
package node

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctt-network/kp/config"
	"github.com/ctt-network/kp/internal/database"
	"github.com/ctt-network/kp/internal/database/chaindb"
	"github.com/ctt-network/kp/internal/database/memory"
	"github.com/ctt-network/kp/internal/log"
	"github.com/ctt-network/kp/internal/metrics"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/storage"
	"github.com/ctt-network/kp/pallet/balances"
	"github.com/ctt-network/kp/pallet/kp"
	"github.com/ctt-network/kp/pallet/members"
	"github.com/ctt-network/kp/pallet/system"
	"github.com/prometheus/client_golang/prometheus"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "node"))

var ErrBlockNumber = errors.New("block number is not the next one")

// Node holds the runtime modules sharing one storage.
type Node struct {
	db      database.Database
	storage *storage.Storage

	System   *system.Pallet
	Balances *balances.Pallet
	Members  *members.Pallet
	KP       *kp.Pallet
}

// New opens the database configured and builds the runtime modules.
// Metrics are registered on the registerer when enabled in the
// configuration. The genesis state is written to a fresh database.
func New(cfg *config.Config, registerer prometheus.Registerer) (*Node, error) {
	if err := cfg.ApplyLogLevels(); err != nil {
		return nil, err
	}

	kpConfig, err := cfg.KPConfig()
	if err != nil {
		return nil, fmt.Errorf("kp config: %w", err)
	}
	membersConfig, err := cfg.MembersConfig()
	if err != nil {
		return nil, fmt.Errorf("members config: %w", err)
	}
	existentialDeposit, err := cfg.ExistentialDeposit()
	if err != nil {
		return nil, fmt.Errorf("existential deposit: %w", err)
	}

	var kpMetrics kp.Metrics = metrics.Noop{}
	if cfg.Global.Metrics && registerer != nil {
		kpMetrics, err = metrics.New(registerer)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}

	db, err := openDatabase(cfg.Global)
	if err != nil {
		return nil, err
	}

	s := storage.New(db)
	n := &Node{
		db:       db,
		storage:  s,
		System:   system.New(s),
		Balances: balances.New(s, existentialDeposit),
	}
	n.Members = members.New(membersConfig, s, n.Balances)
	n.KP = kp.New(kpConfig, kp.Dependencies{
		Storage:    s,
		System:     n.System,
		Currency:   n.Balances,
		Membership: n.Members,
		Metrics:    kpMetrics,
	})

	if err = n.genesis(cfg); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("genesis: %w", err)
	}
	return n, nil
}

func openDatabase(cfg config.GlobalConfig) (database.Database, error) {
	switch cfg.Database {
	case "chaindb":
		path, err := expandDir(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		logger.Infof("opening chaindb database at %s", path)
		return chaindb.New(chaindb.Settings{Path: path})
	default:
		logger.Info("using in memory database")
		return memory.New(), nil
	}
}

func expandDir(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// genesis initialises block 0 with the configured balances and
// finance root unless the database already holds a state.
func (n *Node) genesis(cfg *config.Config) error {
	initialized, err := n.System.Initialized()
	if err != nil {
		return err
	}
	if initialized {
		number, err := n.System.BlockNumber()
		if err != nil {
			return err
		}
		logger.Infof("resuming from block %d", number)
		return nil
	}

	endowments, err := cfg.Endowments()
	if err != nil {
		return err
	}
	root, hasRoot, err := cfg.FinanceRoot()
	if err != nil {
		return err
	}

	err = n.storage.Transactional(func() error {
		if err := n.System.Initialize(0, common.Hash{}); err != nil {
			return err
		}
		for account, amount := range endowments {
			if err := n.Balances.Deposit(account, amount); err != nil {
				return fmt.Errorf("endowing %s: %w", account.Short(), err)
			}
		}
		if hasRoot {
			return n.Members.Genesis(root)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Infof("genesis written with %d endowed accounts", len(endowments))
	return n.storage.Commit()
}

// Call is a call applied in a block.
type Call func(n *Node) error

// Block is a block of calls and the randomness beacon agreed for it.
type Block struct {
	Number uint32
	Beacon common.Hash
	Calls  []Call
}

// ApplyBlock applies the calls of the block in order, finalizes the
// block and commits the state to the database. A failed call is
// reverted and its error returned at its index, without aborting the
// block.
func (n *Node) ApplyBlock(block Block) (results []error, err error) {
	current, err := n.System.BlockNumber()
	if err != nil {
		return nil, err
	}
	if block.Number != current+1 {
		return nil, fmt.Errorf("%w: %d after %d", ErrBlockNumber, block.Number, current)
	}

	results = make([]error, len(block.Calls))
	err = n.storage.Transactional(func() error {
		if err := n.System.Initialize(block.Number, block.Beacon); err != nil {
			return err
		}
		for i, call := range block.Calls {
			results[i] = n.storage.Transactional(func() error { return call(n) })
		}
		if err := n.KP.OnFinalize(block.Number); err != nil {
			return fmt.Errorf("finalizing block %d: %w", block.Number, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err = n.storage.Commit(); err != nil {
		return nil, fmt.Errorf("committing block %d: %w", block.Number, err)
	}
	logger.Debugf("applied block %d with %d calls", block.Number, len(block.Calls))
	return results, nil
}

// Close closes the database.
func (n *Node) Close() error {
	return n.db.Close()
}
