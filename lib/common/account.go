// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var errAccountLength = errors.New("account id is not 32 bytes")

// AccountID is a 32 bytes account identifier, usually an sr25519 public key.
type AccountID [32]byte

// NewAccountID copies the first 32 bytes of the input into an AccountID.
func NewAccountID(in []byte) (id AccountID) {
	copy(id[:], in)
	return id
}

// ToBytes returns the account id as a byte slice.
func (a AccountID) ToBytes() []byte {
	b := [32]byte(a)
	return b[:]
}

// IsEmpty returns true if all the bytes of the account id are zero.
func (a AccountID) IsEmpty() bool {
	return a == AccountID{}
}

func (a AccountID) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// HexToAccountID decodes a 0x prefixed hex string of 32 bytes.
func HexToAccountID(in string) (id AccountID, err error) {
	if !strings.HasPrefix(in, "0x") {
		return id, fmt.Errorf("%w: %s", errNoHexPrefix, in)
	}
	b, err := hex.DecodeString(in[2:])
	if err != nil {
		return id, err
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("%w: %d bytes", errAccountLength, len(b))
	}
	return NewAccountID(b), nil
}

// Short returns a shortened hex string of the account id.
func (a AccountID) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", a[:nBytes], a[len(a)-nBytes:])
}

// Compare returns -1, 0 or 1 comparing a and b byte-wise.
func (a AccountID) Compare(b AccountID) int {
	return bytes.Compare(a[:], b[:])
}

// AccountIDFromSeed derives a deterministic account id from a seed,
// used for module owned accounts such as treasuries.
func AccountIDFromSeed(seed string) AccountID {
	return AccountID(MustBlake2bHash([]byte("modl" + seed)))
}
