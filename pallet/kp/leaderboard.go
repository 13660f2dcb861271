// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"sort"
	"strconv"

	"github.com/ctt-network/kp/lib/common"
)

// insertEntry inserts the entry after the entries of greater or equal power.
func insertEntry(board []BoardEntry, entry BoardEntry) []BoardEntry {
	i := sort.Search(len(board), func(i int) bool {
		return board[i].Power < entry.Power
	})
	board = append(board, BoardEntry{})
	copy(board[i+1:], board[i:])
	board[i] = entry
	return board
}

// findEntry returns the index of the entry with the given power and cart
// hash, or -1 if the board holds no such entry.
func findEntry(board []BoardEntry, power uint64, cartHash common.Hash) int {
	first := sort.Search(len(board), func(i int) bool {
		return board[i].Power <= power
	})
	for i := first; i < len(board) && board[i].Power == power; i++ {
		if board[i].CartHash == cartHash {
			return i
		}
	}
	return -1
}

func removeEntry(board []BoardEntry, i int) []BoardEntry {
	return append(board[:i], board[i+1:]...)
}

// updateBoards forwards the power of a commodity to the board of its
// model and to the board of its app. Commodities of a disabled model
// are kept off both boards.
func (p *Pallet) updateBoards(commodity Commodity, power uint64) error {
	model, found, err := modelData.TryGet(p.storage, commodity.AppID, commodity.ModelID)
	if err != nil {
		return err
	}
	if found && model.Status == ModelDisabled {
		power = 0
	}
	for _, modelID := range [][]byte{commodity.ModelID, nil} {
		err = p.updateBoard(commodity.AppID, modelID, BoardEntry{
			CartID: commodity.CartID,
			Power:  power,
			Owner:  commodity.Owner,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// updateBoard places the entry according to its power on the board of the
// app and model. A zero power removes the entry. When the board grows
// over capacity its last entry is dropped.
func (p *Pallet) updateBoard(appID uint32, modelID []byte, entry BoardEntry) error {
	s := p.storage
	hash, err := common.Blake2bHash(entry.CartID)
	if err != nil {
		return err
	}
	entry.CartHash = hash
	key := boardKey{AppID: appID, ModelID: modelID, CartHash: hash}

	previous, present, err := leaderBoardPresence.TryGet(s, key)
	if err != nil {
		return err
	}
	if present && previous == entry.Power {
		return nil
	}

	board, err := leaderBoards.Get(s, appID, modelID)
	if err != nil {
		return err
	}
	if present {
		board = p.dropEntry(board, appID, modelID, previous, hash)
	}

	if entry.Power == 0 {
		if err := leaderBoardPresence.Remove(s, key); err != nil {
			return err
		}
		return p.putBoard(appID, modelID, board)
	}

	board = insertEntry(board, entry)
	if err := leaderBoardPresence.Put(s, key, entry.Power); err != nil {
		return err
	}
	if capacity := int(p.config.LeaderBoardCapacity); len(board) > capacity {
		for _, dropped := range board[capacity:] {
			err := leaderBoardPresence.Remove(s, boardKey{AppID: appID, ModelID: modelID, CartHash: dropped.CartHash})
			if err != nil {
				return err
			}
		}
		board = board[:capacity]
	}
	return p.putBoard(appID, modelID, board)
}

func (p *Pallet) dropEntry(board []BoardEntry, appID uint32, modelID []byte,
	power uint64, hash common.Hash) []BoardEntry {
	i := findEntry(board, power, hash)
	if i < 0 {
		logger.Warnf("cart %s indexed on board %d/0x%x with power %d but not found",
			hash.Short(), appID, modelID, power)
		return board
	}
	return removeEntry(board, i)
}

// removeFromBoard removes a cart from a board without reordering it.
func (p *Pallet) removeFromBoard(appID uint32, modelID, cartID []byte) error {
	s := p.storage
	hash, err := common.Blake2bHash(cartID)
	if err != nil {
		return err
	}
	key := boardKey{AppID: appID, ModelID: modelID, CartHash: hash}
	power, present, err := leaderBoardPresence.TryGet(s, key)
	if err != nil || !present {
		return err
	}

	board, err := leaderBoards.Get(s, appID, modelID)
	if err != nil {
		return err
	}
	board = p.dropEntry(board, appID, modelID, power, hash)
	if err := leaderBoardPresence.Remove(s, key); err != nil {
		return err
	}
	return p.putBoard(appID, modelID, board)
}

// purgeModelBoards empties the board of a model and removes the carts
// of the model from the board of the app.
func (p *Pallet) purgeModelBoards(appID uint32, modelID []byte) error {
	s := p.storage
	board, err := leaderBoards.Get(s, appID, modelID)
	if err != nil {
		return err
	}
	for _, entry := range board {
		err := leaderBoardPresence.Remove(s, boardKey{AppID: appID, ModelID: modelID, CartHash: entry.CartHash})
		if err != nil {
			return err
		}
	}
	if err := leaderBoards.Remove(s, appID, modelID); err != nil {
		return err
	}

	appBoard, err := leaderBoards.Get(s, appID, nil)
	if err != nil {
		return err
	}
	for _, entry := range appBoard {
		commodity, err := commodities.Get(s, appID, entry.CartID)
		if err != nil {
			return err
		}
		if string(commodity.ModelID) != string(modelID) {
			continue
		}
		if err := p.removeFromBoard(appID, nil, entry.CartID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pallet) putBoard(appID uint32, modelID []byte, board []BoardEntry) error {
	if len(modelID) == 0 {
		p.metrics.SetLeaderBoardEntries(strconv.FormatUint(uint64(appID), 10), len(board))
	}
	return leaderBoards.Put(p.storage, appID, modelID, board)
}
