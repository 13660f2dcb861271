// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
	"fmt"
)

// SigVerifyFunc verify an signature given a pubkey and msg
type SigVerifyFunc func(pubkey, sig, msg []byte) (bool, error)

// Signature is a detached signature of a message by a public key.
type Signature struct {
	PubKey     []byte
	Sign       []byte
	Msg        []byte
	VerifyFunc SigVerifyFunc
}

var ErrBadSignature = errors.New("bad signature")

// SignatureVerifier verifies a batch of signatures in the order they were added.
// The batch is invalid as soon as one signature fails verification.
type SignatureVerifier struct {
	batch []*Signature
}

// NewSignatureVerifier initialises an empty SignatureVerifier.
func NewSignatureVerifier() *SignatureVerifier {
	return &SignatureVerifier{}
}

// Add adds a signature to the batch.
func (sv *SignatureVerifier) Add(s *Signature) {
	sv.batch = append(sv.batch, s)
}

// Finish verifies all the signatures of the batch and resets it.
// It returns an error wrapping ErrBadSignature for the first invalid signature.
func (sv *SignatureVerifier) Finish() error {
	defer sv.Reset()

	for i, sig := range sv.batch {
		ok, err := sig.VerifyFunc(sig.PubKey, sig.Sign, sig.Msg)
		if err != nil {
			return fmt.Errorf("%w: signature %d of 0x%x: %s", ErrBadSignature, i, sig.PubKey, err)
		}
		if !ok {
			return fmt.Errorf("%w: signature %d of 0x%x", ErrBadSignature, i, sig.PubKey)
		}
	}
	return nil
}

// Reset reset the signature verifier for reuse.
func (sv *SignatureVerifier) Reset() {
	sv.batch = nil
}
