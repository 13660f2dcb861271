// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kp

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/ctt-network/kp/lib/common"
	"github.com/ctt-network/kp/lib/crypto"
)

// Signed is a payload signed by the app user submitting it and by the
// app auth server authorizing it.
type Signed[P any] struct {
	Payload             P
	AppUser             common.AccountID
	AppUserSignature    []byte
	AuthServer          common.AccountID
	AuthServerSignature []byte
}

// Message returns the bytes both parties sign.
func (s Signed[P]) Message() ([]byte, error) {
	msg, err := scale.Marshal(s.Payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	return msg, nil
}

// verifySigned checks both signatures of the envelope over the SCALE
// encoded payload, and that the auth server is a key of the app.
func verifySigned[P any](p *Pallet, appID uint32, s Signed[P]) error {
	ok, err := p.membership.IsAppKey(s.AuthServer, appID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s for app %d", ErrNotAppKey, s.AuthServer.Short(), appID)
	}

	msg, err := s.Message()
	if err != nil {
		return err
	}

	verifier := crypto.NewSignatureVerifier()
	verifier.Add(&crypto.Signature{
		PubKey:     s.AppUser.ToBytes(),
		Sign:       s.AppUserSignature,
		Msg:        msg,
		VerifyFunc: p.verify,
	})
	verifier.Add(&crypto.Signature{
		PubKey:     s.AuthServer.ToBytes(),
		Sign:       s.AuthServerSignature,
		Msg:        msg,
		VerifyFunc: p.verify,
	})
	if err := verifier.Finish(); err != nil {
		return fmt.Errorf("%w: %s", ErrBadSignature, err)
	}
	return nil
}
