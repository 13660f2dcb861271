// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package arith provides fixed point fractions and checked balance
// arithmetic. All operations round down.
package arith

import (
	"math/bits"
)

const (
	percentAccuracy = 100
	permillAccuracy = 1_000_000
	perbillAccuracy = 1_000_000_000
)

// mulDiv returns floor(n * num / den) for num <= den.
func mulDiv(n, num, den uint64) uint64 {
	if den == 0 {
		return 0
	}
	hi, lo := bits.Mul64(n, num)
	quo, _ := bits.Div64(hi, lo, den)
	return quo
}

func fromRational(p, q, accuracy uint64) uint64 {
	switch {
	case q == 0:
		return 0
	case p >= q:
		return accuracy
	default:
		return mulDiv(p, accuracy, q)
	}
}

// Percent is a fraction in parts per hundred.
type Percent uint8

// PercentFromRational returns p/q as a Percent, saturating at one.
// A zero denominator yields zero.
func PercentFromRational(p, q uint64) Percent {
	return Percent(fromRational(p, q, percentAccuracy))
}

// Of returns floor(n * p).
func (p Percent) Of(n uint64) uint64 {
	return mulDiv(n, uint64(p.clamped()), percentAccuracy)
}

// OfBalance returns floor(b * p).
func (p Percent) OfBalance(b Balance) Balance {
	return mulDivBalance(b, uint64(p.clamped()), percentAccuracy)
}

func (p Percent) clamped() Percent {
	if p > percentAccuracy {
		return percentAccuracy
	}
	return p
}

// Permill is a fraction in parts per million.
type Permill uint32

// OnePermill is the Permill equal to one.
const OnePermill Permill = permillAccuracy

// PermillFromRational returns p/q as a Permill, saturating at one.
// A zero denominator yields zero.
func PermillFromRational(p, q uint64) Permill {
	return Permill(fromRational(p, q, permillAccuracy))
}

// PermillFromPercent converts a percentage to a Permill.
func PermillFromPercent(p Percent) Permill {
	return Permill(uint32(p.clamped()) * (permillAccuracy / percentAccuracy))
}

// Of returns floor(n * p).
func (p Permill) Of(n uint64) uint64 {
	return mulDiv(n, uint64(p.clamped()), permillAccuracy)
}

// OfBalance returns floor(b * p).
func (p Permill) OfBalance(b Balance) Balance {
	return mulDivBalance(b, uint64(p.clamped()), permillAccuracy)
}

// Deconstruct returns the parts per million.
func (p Permill) Deconstruct() uint32 {
	return uint32(p.clamped())
}

func (p Permill) clamped() Permill {
	if p > permillAccuracy {
		return permillAccuracy
	}
	return p
}

// Perbill is a fraction in parts per billion.
type Perbill uint32

// PerbillFromRational returns p/q as a Perbill, saturating at one.
func PerbillFromRational(p, q uint64) Perbill {
	return Perbill(fromRational(p, q, perbillAccuracy))
}

// OfBalance returns floor(b * p).
func (p Perbill) OfBalance(b Balance) Balance {
	if p > perbillAccuracy {
		p = perbillAccuracy
	}
	return mulDivBalance(b, uint64(p), perbillAccuracy)
}
