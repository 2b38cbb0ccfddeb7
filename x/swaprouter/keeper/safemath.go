package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// Overflow-safe arithmetic helpers for amount and bps calculations.

// SafeMulDiv performs floor((a * b) / c) with a big.Int intermediate so the
// product cannot overflow before the division.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a, rejecting underflow.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, fmt.Errorf("underflow: cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// percentOf returns floor(amount * percent / 100).
func percentOf(amount math.Int, percent uint8) (math.Int, error) {
	return SafeMulDiv(amount, math.NewInt(int64(percent)), math.NewInt(100))
}

// bpsOf returns floor(amount * bps / 10000).
func bpsOf(amount math.Int, bps uint64) (math.Int, error) {
	return SafeMulDiv(amount, math.NewIntFromUint64(bps), math.NewInt(10000))
}

// floatAmount converts an amount for metric observation; precision loss is
// acceptable there.
func floatAmount(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
