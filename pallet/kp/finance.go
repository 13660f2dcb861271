// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ctt-network/kp/lib/arith"
	"github.com/ctt-network/kp/lib/common"
)

// AppFinanceProposal opens a financing proposal: the investor pays the
// amount to the finance treasury and app users may exchange up to the
// exchange quota during the following exchange period.
func (p *Pallet) AppFinanceProposal(who common.AccountID, appID uint32, proposalID []byte,
	amount, exchange arith.Balance) error {
	return p.dispatch("app_finance_proposal", func() error {
		s := p.storage
		ok, err := p.membership.IsInvestor(who)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotInvestor, who.Short())
		}
		if err := p.ensureValidApp(appID); err != nil {
			return err
		}
		if amount.IsZero() || exchange.IsZero() {
			return ErrZeroAmount
		}
		exists, err := financeProposals.Contains(s, appID, proposalID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: app %d proposal 0x%x", ErrProposalExists, appID, proposalID)
		}

		now, err := p.blockNumber()
		if err != nil {
			return err
		}
		last, found, err := financeLast.TryGet(s)
		if err != nil {
			return err
		}
		if found {
			previous, err := financeProposals.Get(s, last.AppID, last.ProposalID)
			if err != nil {
				return err
			}
			if now < previous.ExchangeEndBlock {
				return fmt.Errorf("%w: proposal 0x%x ends at %d", ErrProposalOpen, last.ProposalID, previous.ExchangeEndBlock)
			}
		}

		key := FinanceProposalKey{AppID: appID, ProposalID: proposalID}
		delegate, err := p.chooseDelegate(key)
		if err != nil {
			return err
		}
		if err := p.currency.Transfer(who, p.financeTreasury, amount, false); err != nil {
			return fmt.Errorf("paying financing amount: %w", err)
		}
		treasury, err := p.currency.FreeBalance(p.financeTreasury)
		if err != nil {
			return err
		}

		err = financeProposals.Put(s, appID, proposalID, FinanceProposal{
			AppID:            appID,
			ProposalID:       proposalID,
			Investor:         who,
			Amount:           amount,
			Exchange:         exchange,
			Block:            now,
			TotalBalance:     treasury,
			ExchangeEndBlock: now + 2*p.config.FinanceExchangePeriod,
		})
		if err != nil {
			return err
		}
		if err := financeDelegate.Put(s, appID, proposalID, delegate); err != nil {
			return err
		}
		return financeLast.Put(s, key)
	})
}

// financeWindow returns the proposal if the current block lies in
// [start, end) blocks after the proposal block.
func (p *Pallet) financeWindow(appID uint32, proposalID []byte, start, end uint32) (FinanceProposal, error) {
	proposal, found, err := financeProposals.TryGet(p.storage, appID, proposalID)
	if err != nil {
		return proposal, err
	}
	if !found {
		return proposal, fmt.Errorf("%w: app %d proposal 0x%x", ErrProposalNotFound, appID, proposalID)
	}
	now, err := p.blockNumber()
	if err != nil {
		return proposal, err
	}
	if now < proposal.Block+start || now >= proposal.Block+end {
		return proposal, fmt.Errorf("%w: block %d outside [%d, %d)",
			ErrWrongStage, now, proposal.Block+start, proposal.Block+end)
	}
	return proposal, nil
}

// AppFinanceExchangeRequest reserves an exchange against the quota of
// a financing proposal during its exchange period.
func (p *Pallet) AppFinanceExchangeRequest(who common.AccountID, appID uint32, proposalID []byte,
	amount arith.Balance, payID []byte) error {
	return p.dispatch("app_finance_exchange_request", func() error {
		s := p.storage
		period := p.config.FinanceExchangePeriod
		proposal, err := p.financeWindow(appID, proposalID, 0, period)
		if err != nil {
			return err
		}
		recordKey := appProposalAccount{AppID: appID, ProposalID: proposalID, Account: who}
		exists, err := financeExchanges.Contains(s, recordKey)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrRecordAlreadyExists, who.Short())
		}
		exchanged, err := arith.Add(proposal.Exchanged, amount)
		if err != nil {
			return err
		}
		if exchanged.Gt(&proposal.Exchange) {
			return fmt.Errorf("%w: %s of %s", ErrExchangeOverQuota,
				arith.String(exchanged), arith.String(proposal.Exchange))
		}

		record, err := p.reserveExchange(who, amount, payID)
		if err != nil {
			return err
		}
		if err := financeExchanges.Put(s, recordKey, record); err != nil {
			return err
		}
		proposal.Exchanged = exchanged
		if err := financeProposals.Put(s, appID, proposalID, proposal); err != nil {
			return err
		}
		return financeSet.Mutate(s, appID, proposalID, func(accounts *[]common.AccountID) error {
			*accounts = append(*accounts, who)
			return nil
		})
	})
}

// AppFinanceExchangeConfirm is called by the delegate of the proposal
// once the exchange was paid out, at the latest half a period after the
// exchange period.
func (p *Pallet) AppFinanceExchangeConfirm(who common.AccountID, appID uint32, proposalID []byte,
	account common.AccountID, payID []byte) error {
	return p.dispatch("app_finance_exchange_confirm", func() error {
		s := p.storage
		period := p.config.FinanceExchangePeriod
		if _, err := p.financeWindow(appID, proposalID, 0, period+period/2); err != nil {
			return err
		}
		delegate, err := financeDelegate.Get(s, appID, proposalID)
		if err != nil {
			return err
		}
		if delegate != who {
			return fmt.Errorf("%w: %s", ErrNotDelegate, who.Short())
		}
		recordKey := appProposalAccount{AppID: appID, ProposalID: proposalID, Account: account}
		record, found, err := financeExchanges.TryGet(s, recordKey)
		if err != nil {
			return err
		}
		if err := ensureInitiated(record, found); err != nil {
			return err
		}

		if err := p.confirmExchange(delegate, account, &record, payID); err != nil {
			return err
		}
		if err := financeExchanges.Put(s, recordKey, record); err != nil {
			return err
		}
		total, err := financeBurnTotal.Get(s)
		if err != nil {
			return err
		}
		count, err := financeBurnCount.Get(s)
		if err != nil {
			return err
		}
		if err := addBurnt(&total, &count, record.Amount); err != nil {
			return err
		}
		if err := financeBurnTotal.Put(s, total); err != nil {
			return err
		}
		return financeBurnCount.Put(s, count)
	})
}

// AppFinanceExchangeCompensate compensates an exchange left unconfirmed
// once the proposal exchange window has ended.
func (p *Pallet) AppFinanceExchangeCompensate(who common.AccountID, appID uint32, proposalID []byte) error {
	return p.dispatch("app_finance_exchange_compensate", func() error {
		s := p.storage
		proposal, found, err := financeProposals.TryGet(s, appID, proposalID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: app %d proposal 0x%x", ErrProposalNotFound, appID, proposalID)
		}
		now, err := p.blockNumber()
		if err != nil {
			return err
		}
		if now < proposal.ExchangeEndBlock {
			return fmt.Errorf("%w: block %d before %d", ErrWrongStage, now, proposal.ExchangeEndBlock)
		}
		recordKey := appProposalAccount{AppID: appID, ProposalID: proposalID, Account: who}
		record, found, err := financeExchanges.TryGet(s, recordKey)
		if err != nil {
			return err
		}
		if err := ensureInitiated(record, found); err != nil {
			return err
		}
		delegate, err := financeDelegate.Get(s, appID, proposalID)
		if err != nil {
			return err
		}
		if err := p.compensateExchange(delegate, who, &record); err != nil {
			return err
		}
		return financeExchanges.Put(s, recordKey, record)
	})
}
