// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SignatureVerifier(t *testing.T) {
	t.Parallel()

	valid := func(pubkey, sig, msg []byte) (bool, error) { return true, nil }
	invalid := func(pubkey, sig, msg []byte) (bool, error) { return false, nil }
	failing := func(pubkey, sig, msg []byte) (bool, error) { return false, errors.New("decode") }

	testCases := map[string]struct {
		funcs      []SigVerifyFunc
		errWrapped error
	}{
		"empty batch":    {},
		"all valid":      {funcs: []SigVerifyFunc{valid, valid}},
		"second invalid": {funcs: []SigVerifyFunc{valid, invalid}, errWrapped: ErrBadSignature},
		"first failing":  {funcs: []SigVerifyFunc{failing, valid}, errWrapped: ErrBadSignature},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sv := NewSignatureVerifier()
			for _, f := range testCase.funcs {
				sv.Add(&Signature{PubKey: []byte{1}, VerifyFunc: f})
			}
			err := sv.Finish()
			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Empty(t, sv.batch)
		})
	}
}
