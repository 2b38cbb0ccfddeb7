package keeper

import (
	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// CalculatePlatformFee returns floor(output * feeBps / 10000).
func CalculatePlatformFee(output math.Int, feeBps uint64) (math.Int, error) {
	if feeBps > types.BpsDenominator {
		return math.Int{}, types.ErrInvalidPlatformFee.Wrapf("%d bps", feeBps)
	}
	return bpsOf(output, feeBps)
}

// CalculateMinAcceptableOutput returns the slippage floor
// floor(quoted * (10000 - slippageBps) / 10000).
func CalculateMinAcceptableOutput(quoted math.Int, slippageBps uint64) (math.Int, error) {
	if slippageBps > types.BpsDenominator {
		return math.Int{}, types.ErrInvalidSlippage.Wrapf("%d bps", slippageBps)
	}
	return bpsOf(quoted, types.BpsDenominator-slippageBps)
}

// settleOutput deducts the platform fee from a realized output and enforces
// the slippage floor on the remainder. The fee comes off first; the floor is
// computed against the caller's quote, so the contract is
// post-fee output >= quoted * (1 - slippage).
func settleOutput(realized, quoted math.Int, feeBps, slippageBps uint64) (net, fee math.Int, err error) {
	fee, err = CalculatePlatformFee(realized, feeBps)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	net, err = SafeSub(realized, fee)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidCalculation.Wrap(err.Error())
	}
	floor, err := CalculateMinAcceptableOutput(quoted, slippageBps)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if net.LT(floor) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("post-fee output %s below floor %s", net, floor)
	}
	return net, fee, nil
}
