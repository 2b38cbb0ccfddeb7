package types

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Params holds the module's routing limits and fee caps.
type Params struct {
	// MaxRouteSteps bounds the length of a route plan.
	MaxRouteSteps uint32 `json:"max_route_steps" yaml:"max_route_steps"`
	// MaxAuxAccounts bounds the flat auxiliary-account list.
	MaxAuxAccounts uint32 `json:"max_aux_accounts" yaml:"max_aux_accounts"`
	// MaxPlatformFeeBps caps the per-call platform fee.
	MaxPlatformFeeBps uint64 `json:"max_platform_fee_bps" yaml:"max_platform_fee_bps"`
	// MaxRouteSlippageBps caps the slippage tolerance of a direct route call.
	MaxRouteSlippageBps uint64 `json:"max_route_slippage_bps" yaml:"max_route_slippage_bps"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		MaxRouteSteps:       8,
		MaxAuxAccounts:      64,
		MaxPlatformFeeBps:   500,    // 5%
		MaxRouteSlippageBps: 10_000, // full range; order paths apply tighter caps
	}
}

// Validate checks the parameter set.
func (p Params) Validate() error {
	if p.MaxRouteSteps == 0 {
		return fmt.Errorf("max route steps must be positive")
	}
	if p.MaxAuxAccounts < MinAuxAccountsPerStep*p.MaxRouteSteps {
		return fmt.Errorf("max aux accounts %d cannot cover %d route steps", p.MaxAuxAccounts, p.MaxRouteSteps)
	}
	if p.MaxPlatformFeeBps > BpsDenominator {
		return fmt.Errorf("max platform fee %d exceeds %d bps", p.MaxPlatformFeeBps, BpsDenominator)
	}
	if p.MaxRouteSlippageBps > BpsDenominator {
		return fmt.Errorf("max route slippage %d exceeds %d bps", p.MaxRouteSlippageBps, BpsDenominator)
	}
	return nil
}

// String implements fmt.Stringer.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
