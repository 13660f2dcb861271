// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package random implements a deterministic pseudo random number generator
// seeded by a 32 bytes randomness beacon, so that every replica drawing from
// the same beacon gets the same sequence.
package random

import (
	"encoding/binary"

	"github.com/ctt-network/kp/lib/common"
	"golang.org/x/crypto/chacha20"
)

// Rand is a ChaCha20 keystream based generator.
// It is not safe for concurrent use.
type Rand struct {
	cipher *chacha20.Cipher
}

// New returns a generator keyed by the given seed.
func New(seed [32]byte) *Rand {
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		// only returned for bad key or nonce sizes
		panic(err)
	}
	return &Rand{cipher: cipher}
}

// NewFromBeacon returns a generator seeded with blake2b(beacon ++ subject),
// so that different subjects get independent sequences from the same beacon.
func NewFromBeacon(beacon [32]byte, subject []byte) *Rand {
	material := make([]byte, 0, len(beacon)+len(subject))
	material = append(material, beacon[:]...)
	material = append(material, subject...)
	return New(common.MustBlake2bHash(material))
}

// Uint64 returns the next 8 bytes of the keystream as a little endian uint64.
func (r *Rand) Uint64() uint64 {
	var buf [8]byte
	r.cipher.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Uint64n returns a uniformly distributed value in [0, n).
// It panics if n is zero.
func (r *Rand) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("invalid argument to Uint64n")
	}
	// reject the values of the incomplete last range
	threshold := -n % n
	for {
		v := r.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

// Intn returns a uniformly distributed value in [0, n).
// It panics if n is not strictly positive.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	return int(r.Uint64n(uint64(n)))
}
