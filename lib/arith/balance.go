// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package arith

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// Balance is an amount of currency. Valid balances fit in 128 bits,
// the remaining bits leave room for intermediate products.
type Balance = uint256.Int

const balanceBits = 128

var (
	ErrOverflow  = errors.New("balance overflow")
	ErrUnderflow = errors.New("balance underflow")
)

// NewBalance returns the balance for the given amount.
func NewBalance(amount uint64) Balance {
	return *uint256.NewInt(amount)
}

// Add returns a + b or ErrOverflow if the sum does not fit in 128 bits.
func Add(a, b Balance) (sum Balance, err error) {
	sum.Add(&a, &b)
	if sum.BitLen() > balanceBits {
		return Balance{}, fmt.Errorf("%w: %s + %s", ErrOverflow, String(a), String(b))
	}
	return sum, nil
}

// Sub returns a - b or ErrUnderflow if b is greater than a.
func Sub(a, b Balance) (difference Balance, err error) {
	if a.Lt(&b) {
		return Balance{}, fmt.Errorf("%w: %s - %s", ErrUnderflow, String(a), String(b))
	}
	difference.Sub(&a, &b)
	return difference, nil
}

// SaturatingSub returns a - b, or zero if b is greater than a.
func SaturatingSub(a, b Balance) (difference Balance) {
	if a.Lt(&b) {
		return Balance{}
	}
	difference.Sub(&a, &b)
	return difference
}

// Mul returns a * b or ErrOverflow if the product does not fit in 128 bits.
func Mul(a, b Balance) (product Balance, err error) {
	if a.BitLen()+b.BitLen() > 2*balanceBits {
		return Balance{}, fmt.Errorf("%w: %s * %s", ErrOverflow, String(a), String(b))
	}
	product.Mul(&a, &b)
	if product.BitLen() > balanceBits {
		return Balance{}, fmt.Errorf("%w: %s * %s", ErrOverflow, String(a), String(b))
	}
	return product, nil
}

// Min returns the smallest of a and b.
func Min(a, b Balance) Balance {
	if a.Lt(&b) {
		return a
	}
	return b
}

// String returns the decimal representation of the balance.
func String(b Balance) string {
	return b.ToBig().String()
}

func mulDivBalance(b Balance, num, den uint64) (result Balance) {
	if den == 0 {
		return Balance{}
	}
	result.Mul(&b, uint256.NewInt(num))
	result.Div(&result, uint256.NewInt(den))
	return result
}
