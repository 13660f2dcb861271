// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return [32]byte{}, err
	}

	return NewHash(h.Sum(nil)), nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	hash, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) []byte {
	return twox(in, 0)
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) []byte {
	return append(twox(msg, 0), twox(msg, 1)...)
}

// Twox64Concat returns the xx64 hash of the input data followed by the data itself,
// as used by the Twox64Concat storage map hasher.
func Twox64Concat(in []byte) []byte {
	hash := Twox64(in)
	out := make([]byte, 0, len(hash)+len(in))
	out = append(out, hash...)
	return append(out, in...)
}

func twox(in []byte, seed uint64) []byte {
	hasher := xxhash.NewS64(seed)
	// the xxhash writer never returns an error
	_, _ = hasher.Write(in)
	hash := make([]byte, 8)
	binary.LittleEndian.PutUint64(hash, hasher.Sum64())
	return hash
}
