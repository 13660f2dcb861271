// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"
	"sort"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/random"
	"github.com/google/uuid"
)

// recordNamespace is the namespace of the name based ids of lottery
// and dispute records.
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("kp"))

func recordID(key interface{}) (uuid.UUID, error) {
	name, err := scale.Marshal(key)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("encoding record key: %w", err)
	}
	return uuid.NewSHA1(recordNamespace, name), nil
}

// poolWeights weight the cash cost and position of a commenter in a pool.
type poolWeights struct {
	cost     arith.Percent
	position arith.Percent
}

var (
	cartPoolWeights    = poolWeights{cost: 88, position: 8}
	publishPoolWeights = poolWeights{cost: 50, position: 50}
)

const (
	lotterySliceMin     = 5
	lotterySlicePercent = 20
	lotteryDrawPercent  = 30
	lotteryDrawMax      = 100
)

// lotterySliceSize is the number of top board entries the lottery visits.
func lotterySliceSize(total, capacity int) int {
	size := total * lotterySlicePercent / 100
	if floor := min(total, lotterySliceMin); size < floor {
		size = floor
	}
	return min(size, capacity)
}

// drawPool samples commenters of a pool with replacement, weighted by
// their cash cost and position.
func drawPool(rng *random.Rand, pool []CommentWeight, weights poolWeights) []common.AccountID {
	var maxCost, maxPosition uint64
	for _, c := range pool {
		maxCost = max(maxCost, c.CashCost)
		maxPosition = max(maxPosition, c.Position)
	}

	cumulative := make([]uint64, len(pool))
	var total uint64
	for i, c := range pool {
		total += weights.cost.Of(uint64(arith.PermillFromRational(c.CashCost, maxCost))) +
			weights.position.Of(uint64(arith.PermillFromRational(c.Position, maxPosition)))
		cumulative[i] = total
	}
	if total == 0 {
		return nil
	}

	draws := min(len(pool)*lotteryDrawPercent/100, lotteryDrawMax)
	accounts := make([]common.AccountID, 0, draws)
	for d := 0; d < draws; d++ {
		r := rng.Uint64n(total)
		i := sort.Search(len(cumulative), func(i int) bool {
			return cumulative[i] > r
		})
		if i >= len(pool) {
			i = len(pool) - 1
		}
		accounts = append(accounts, pool[i].Account)
	}
	return accounts
}

// LeaderBoardLottery snapshots the board of the app and model and draws
// commenters from the comment pools of its top commodities.
func (p *Pallet) LeaderBoardLottery(who common.AccountID, appID uint32, modelID []byte) error {
	return p.dispatch("leader_board_lottery", func() error {
		s := p.storage
		if err := p.ensureAppAdmin(who, appID); err != nil {
			return err
		}
		now, err := p.blockNumber()
		if err != nil {
			return err
		}
		last, found, err := leaderBoardLastTime.TryGet(s, appID, modelID)
		if err != nil {
			return err
		}
		if found && now < last+p.config.LeaderBoardInterval {
			return fmt.Errorf("%w: last at %d, now %d", ErrLotteryTooFrequent, last, now)
		}
		key := LeaderBoardRecordKey{AppID: appID, Block: now, ModelID: modelID}
		exists, err := leaderBoardRecords.Contains(s, key)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: already drawn at %d", ErrLotteryTooFrequent, now)
		}

		board, err := leaderBoards.Get(s, appID, modelID)
		if err != nil {
			return err
		}
		result, err := p.drawLottery(key, board)
		if err != nil {
			return err
		}

		if err := leaderBoardRecords.Put(s, key, result); err != nil {
			return err
		}
		err = leaderBoardSequenceKeys.Mutate(s, func(keys *[]LeaderBoardRecordKey) error {
			*keys = append(*keys, key)
			return nil
		})
		if err != nil {
			return err
		}
		return leaderBoardLastTime.Put(s, appID, modelID, now)
	})
}

func (p *Pallet) drawLottery(key LeaderBoardRecordKey, board []BoardEntry) (result LeaderBoardResult, err error) {
	s := p.storage
	beacon, err := p.system.Randomness(key.Block)
	if err != nil {
		return result, fmt.Errorf("getting randomness: %w", err)
	}
	subject, err := scale.Marshal(key)
	if err != nil {
		return result, fmt.Errorf("encoding lottery key: %w", err)
	}
	rng := random.NewFromBeacon(beacon, subject)

	result.ID, err = recordID(key)
	if err != nil {
		return result, err
	}
	result.Board = make([]BoardItem, len(board))
	for i, entry := range board {
		result.Board[i] = BoardItem{CartID: entry.CartID, Power: entry.Power, Owner: entry.Owner}
	}

	visitedPublish := make(map[string]struct{})
	for _, entry := range board[:lotterySliceSize(len(board), int(p.config.LeaderBoardCapacity))] {
		commodity, err := commodities.Get(s, key.AppID, entry.CartID)
		if err != nil {
			return result, err
		}

		for _, index := range []storageIndex{cartIdentifyIndex, cartTryIndex} {
			documentID, found, err := index.TryGet(s, key.AppID, entry.CartID)
			if err != nil {
				return result, err
			}
			if !found {
				continue
			}
			pool, err := commentPools.Get(s, key.AppID, documentID)
			if err != nil {
				return result, err
			}
			result.Accounts = append(result.Accounts, drawPool(rng, pool, cartPoolWeights)...)
		}

		publishID, found, err := productPublishIndex.TryGet(s, key.AppID, commodity.ProductID)
		if err != nil {
			return result, err
		}
		if !found {
			continue
		}
		if _, ok := visitedPublish[string(publishID)]; ok {
			continue
		}
		visitedPublish[string(publishID)] = struct{}{}
		pool, err := commentPools.Get(s, key.AppID, publishID)
		if err != nil {
			return result, err
		}
		result.Accounts = append(result.Accounts, drawPool(rng, pool, publishPoolWeights)...)
	}
	return result, nil
}
