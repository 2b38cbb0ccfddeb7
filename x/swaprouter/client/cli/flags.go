package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// Flag constants for swaprouter CLI commands
const (
	FlagOperators         = "operators"
	FlagAggregatorProgram = "aggregator-program"
	FlagPoolAllowlist     = "pool-allowlist"

	FlagRoutePlan        = "route-plan"
	FlagAuxAccounts      = "aux-accounts"
	FlagSourceEngine     = "source-engine"
	FlagDestEngine       = "destination-engine"
	FlagUserSource       = "user-source"
	FlagUserDestination  = "user-destination"
	FlagVaultDestination = "vault-destination"
	FlagSlippageBps      = "slippage-bps"
	FlagPlatformFeeBps   = "platform-fee-bps"

	FlagNonce           = "nonce"
	FlagTriggerType     = "trigger-type"
	FlagTriggerBps      = "trigger-bps"
	FlagExpiry          = "expiry"
	FlagInstructionData = "instruction-data"
)

// parseSwapType accepts either a venue name or its numeric tag.
func parseSwapType(arg string) (types.SwapType, error) {
	switch strings.ToLower(arg) {
	case "classic_amm", "classic-amm":
		return types.SwapTypeClassicAMM, nil
	case "concentrated":
		return types.SwapTypeConcentrated, nil
	case "bin_liquidity", "bin-liquidity":
		return types.SwapTypeBinLiquidity, nil
	}
	n, err := cast.ToUint8E(arg)
	if err != nil {
		return types.SwapTypeUnspecified, fmt.Errorf("unknown swap type %q", arg)
	}
	st := types.SwapType(n)
	if !st.Valid() {
		return types.SwapTypeUnspecified, fmt.Errorf("unknown swap type %q", arg)
	}
	return st, nil
}

// parseTriggerType accepts either a trigger name or its numeric tag.
func parseTriggerType(arg string) (types.TriggerType, error) {
	switch strings.ToLower(arg) {
	case "take_profit", "take-profit", "tp":
		return types.TriggerTakeProfit, nil
	case "stop_loss", "stop-loss", "sl":
		return types.TriggerStopLoss, nil
	}
	n, err := cast.ToUint8E(arg)
	if err != nil {
		return types.TriggerTypeUnspecified, fmt.Errorf("unknown trigger type %q", arg)
	}
	tt := types.TriggerType(n)
	if !tt.Valid() {
		return types.TriggerTypeUnspecified, fmt.Errorf("unknown trigger type %q", arg)
	}
	return tt, nil
}

// readRoutePlan reads the route plan from the --route-plan flag value, which
// is either inline JSON or @path pointing at a JSON file.
func readRoutePlan(fs *pflag.FlagSet) ([]types.RoutePlanStep, error) {
	raw, err := fs.GetString(FlagRoutePlan)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, fmt.Errorf("--%s is required", FlagRoutePlan)
	}
	if strings.HasPrefix(raw, "@") {
		bz, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return nil, fmt.Errorf("reading route plan file: %w", err)
		}
		raw = string(bz)
	}
	var plan []types.RoutePlanStep
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("parsing route plan: %w", err)
	}
	return plan, nil
}

// readAuxAccounts reads the comma-separated auxiliary account list.
func readAuxAccounts(fs *pflag.FlagSet) ([]string, error) {
	aux, err := fs.GetStringSlice(FlagAuxAccounts)
	if err != nil {
		return nil, err
	}
	if len(aux) == 0 {
		return nil, fmt.Errorf("--%s is required", FlagAuxAccounts)
	}
	return aux, nil
}
