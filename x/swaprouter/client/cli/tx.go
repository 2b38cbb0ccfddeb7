package cli

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// GetTxCmd returns the transaction commands for the swaprouter module
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Swap router transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		CmdInitializeRegistry(),
		CmdConfigureAdapter(),
		CmdDisableAdapter(),
		CmdAddOperator(),
		CmdRemoveOperator(),
		CmdChangeAuthority(),
		CmdRegisterPool(),
		CmdDisablePool(),
		CmdRoute(),
		CmdRouteAndCreateOrder(),
		CmdCreateLimitOrder(),
		CmdExecuteLimitOrder(),
		CmdExecuteLimitOrderWithAggregator(),
		CmdCancelLimitOrder(),
		CmdCancelExpiredLimitOrder(),
		CmdCloseLimitOrder(),
	)

	return txCmd
}

// CmdInitializeRegistry returns a CLI command handler for creating the
// adapter registry and vault authority singletons.
func CmdInitializeRegistry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize-registry",
		Short: "Initialize the adapter registry and vault authority",
		Long: `Initialize the adapter registry and vault authority singletons.
The signing address becomes the registry authority and vault admin.

Example:
  $ straitd tx swaprouter initialize-registry --operators strait1op1...,strait1op2... --from admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			operators, err := cmd.Flags().GetStringSlice(FlagOperators)
			if err != nil {
				return err
			}
			aggregator, err := cmd.Flags().GetString(FlagAggregatorProgram)
			if err != nil {
				return err
			}

			msg := &types.MsgInitializeRegistry{
				Authority:         clientCtx.GetFromAddress().String(),
				Operators:         operators,
				AggregatorProgram: aggregator,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().StringSlice(FlagOperators, nil, "Initial operator addresses (comma separated)")
	cmd.Flags().String(FlagAggregatorProgram, "", "Allow-listed external aggregator program address")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdConfigureAdapter returns a CLI command handler for registering or
// reconfiguring a venue adapter.
func CmdConfigureAdapter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure-adapter [name] [program-id] [swap-type]",
		Short: "Register or reconfigure a venue adapter",
		Long: `Register or reconfigure the adapter for a swap type. Reconfiguring an
existing swap type overwrites its entry.

Example:
  $ straitd tx swaprouter configure-adapter orca strait1prog... classic_amm --from authority
  $ straitd tx swaprouter configure-adapter meteora strait1prog... bin_liquidity --pool-allowlist strait1pool1...,strait1pool2... --from authority`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapType, err := parseSwapType(args[2])
			if err != nil {
				return err
			}
			allowlist, err := cmd.Flags().GetStringSlice(FlagPoolAllowlist)
			if err != nil {
				return err
			}

			msg := &types.MsgConfigureAdapter{
				Signer:        clientCtx.GetFromAddress().String(),
				Name:          args[0],
				ProgramID:     args[1],
				SwapType:      swapType,
				PoolAllowlist: allowlist,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().StringSlice(FlagPoolAllowlist, nil, "Pool addresses the adapter may route through (empty = any registered pool)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDisableAdapter returns a CLI command handler for removing a swap type
// from the registry.
func CmdDisableAdapter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable-adapter [swap-type]",
		Short: "Remove a swap type from the adapter registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapType, err := parseSwapType(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgDisableAdapter{
				Signer:   clientCtx.GetFromAddress().String(),
				SwapType: swapType,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddOperator returns a CLI command handler for adding an operator.
func CmdAddOperator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-operator [operator]",
		Short: "Add an operator to the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAddOperator{
				Signer:   clientCtx.GetFromAddress().String(),
				Operator: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveOperator returns a CLI command handler for removing an operator.
func CmdRemoveOperator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-operator [operator]",
		Short: "Remove an operator from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveOperator{
				Signer:   clientCtx.GetFromAddress().String(),
				Operator: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdChangeAuthority returns a CLI command handler for transferring the
// registry authority.
func CmdChangeAuthority() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-authority [new-authority]",
		Short: "Transfer the registry authority to a new address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgChangeAuthority{
				Signer:       clientCtx.GetFromAddress().String(),
				NewAuthority: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterPool returns a CLI command handler for enabling a pool.
func CmdRegisterPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-pool [swap-type] [pool-address]",
		Short: "Register a pool for routing",
		Long: `Register a pool so routes may execute against it. The signer must be
the registry authority or a registered operator.

Example:
  $ straitd tx swaprouter register-pool classic_amm strait1pool... --from operator`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapType, err := parseSwapType(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgRegisterPool{
				Signer:      clientCtx.GetFromAddress().String(),
				SwapType:    swapType,
				PoolAddress: args[1],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDisablePool returns a CLI command handler for disabling a pool.
func CmdDisablePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable-pool [swap-type] [pool-address]",
		Short: "Disable a registered pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			swapType, err := parseSwapType(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgDisablePool{
				Signer:      clientCtx.GetFromAddress().String(),
				SwapType:    swapType,
				PoolAddress: args[1],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRoute returns a CLI command handler for executing a swap route.
func CmdRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route [source-mint] [destination-mint] [in-amount] [quoted-out-amount]",
		Short: "Execute a multi-step swap route atomically",
		Long: `Execute a swap route in a single atomic call. The route plan is supplied
as JSON, either inline or as @path to a file:

  [{"swap_type":1,"percent":100,"input_index":4,"output_index":5}]

Example:
  $ straitd tx swaprouter route strait1mintA... strait1mintB... 1000000 995000 \
      --route-plan '[{"swap_type":1,"percent":100,"input_index":4,"output_index":5}]' \
      --aux-accounts strait1pool...,strait1resA...,strait1resB...,strait1auth...,strait1in...,strait1out... \
      --source-engine classic --destination-engine classic \
      --user-source strait1usrc... --user-destination strait1udst... \
      --vault-destination strait1vdst... \
      --slippage-bps 50 --platform-fee-bps 30 --from trader`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			inAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid in-amount: %s (must be integer)", args[2])
			}
			quotedOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid quoted-out-amount: %s (must be integer)", args[3])
			}

			plan, err := readRoutePlan(cmd.Flags())
			if err != nil {
				return err
			}
			aux, err := readAuxAccounts(cmd.Flags())
			if err != nil {
				return err
			}

			srcEngine, _ := cmd.Flags().GetString(FlagSourceEngine)
			dstEngine, _ := cmd.Flags().GetString(FlagDestEngine)
			userSource, _ := cmd.Flags().GetString(FlagUserSource)
			userDest, _ := cmd.Flags().GetString(FlagUserDestination)
			vaultDest, _ := cmd.Flags().GetString(FlagVaultDestination)
			slippageBps, _ := cmd.Flags().GetUint64(FlagSlippageBps)
			feeBps, _ := cmd.Flags().GetUint64(FlagPlatformFeeBps)

			msg := &types.MsgRoute{
				Caller:                  clientCtx.GetFromAddress().String(),
				SourceMint:              args[0],
				DestinationMint:         args[1],
				SourceTokenEngine:       srcEngine,
				DestinationTokenEngine:  dstEngine,
				UserSourceAccount:       userSource,
				UserDestinationAccount:  userDest,
				VaultDestinationAccount: vaultDest,
				RoutePlan:               plan,
				AuxAccounts:             aux,
				InAmount:                inAmount,
				QuotedOutAmount:         quotedOut,
				SlippageBps:             slippageBps,
				PlatformFeeBps:          feeBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addRouteFlags(cmd)
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRouteAndCreateOrder returns a CLI command handler for routing into a
// fresh limit order's escrow.
func CmdRouteAndCreateOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route-and-create-order [source-mint] [destination-mint] [in-amount] [quoted-out-amount] [order-output-mint] [order-min-output] [order-destination-account]",
		Short: "Route a swap and open a limit order with the output",
		Long: `Execute a swap route and escrow its realized output as a new limit
order's input. The route's destination mint becomes the order's input mint.

Example:
  $ straitd tx swaprouter route-and-create-order strait1mintA... strait1mintB... 1000000 995000 \
      strait1mintC... 2000000 strait1odst... \
      --route-plan @plan.json --aux-accounts strait1a...,strait1b... \
      --trigger-type take_profit --trigger-bps 500 --expiry 1767225600 \
      --nonce 7 --from trader`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			inAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid in-amount: %s (must be integer)", args[2])
			}
			quotedOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid quoted-out-amount: %s (must be integer)", args[3])
			}
			orderMinOut, ok := math.NewIntFromString(args[5])
			if !ok {
				return fmt.Errorf("invalid order-min-output: %s (must be integer)", args[5])
			}

			plan, err := readRoutePlan(cmd.Flags())
			if err != nil {
				return err
			}
			aux, err := readAuxAccounts(cmd.Flags())
			if err != nil {
				return err
			}

			triggerTypeArg, _ := cmd.Flags().GetString(FlagTriggerType)
			triggerType, err := parseTriggerType(triggerTypeArg)
			if err != nil {
				return err
			}

			srcEngine, _ := cmd.Flags().GetString(FlagSourceEngine)
			dstEngine, _ := cmd.Flags().GetString(FlagDestEngine)
			userSource, _ := cmd.Flags().GetString(FlagUserSource)
			slippageBps, _ := cmd.Flags().GetUint64(FlagSlippageBps)
			feeBps, _ := cmd.Flags().GetUint64(FlagPlatformFeeBps)
			nonce, _ := cmd.Flags().GetUint64(FlagNonce)
			triggerBps, _ := cmd.Flags().GetUint64(FlagTriggerBps)
			expiry, _ := cmd.Flags().GetInt64(FlagExpiry)
			orderSlippage, _ := cmd.Flags().GetUint64("order-slippage-bps")

			msg := &types.MsgRouteAndCreateOrder{
				Caller:                 clientCtx.GetFromAddress().String(),
				Nonce:                  nonce,
				SourceMint:             args[0],
				DestinationMint:        args[1],
				SourceTokenEngine:      srcEngine,
				DestinationTokenEngine: dstEngine,
				UserSourceAccount:      userSource,
				RoutePlan:              plan,
				AuxAccounts:            aux,
				InAmount:               inAmount,
				QuotedOutAmount:        quotedOut,
				SlippageBps:            slippageBps,
				PlatformFeeBps:         feeBps,

				OrderOutputMint:         args[4],
				OrderDestinationAccount: args[6],
				OrderMinOutputAmount:    orderMinOut,
				OrderTriggerPriceBps:    triggerBps,
				OrderTriggerType:        triggerType,
				OrderExpiry:             expiry,
				OrderSlippageBps:        orderSlippage,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addRouteFlags(cmd)
	addOrderFlags(cmd)
	cmd.Flags().Uint64("order-slippage-bps", 0, "Slippage tolerance for the eventual order execution")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateLimitOrder returns a CLI command handler for opening a limit
// order.
func CmdCreateLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-limit-order [input-mint] [output-mint] [input-amount] [min-output-amount] [user-source] [user-destination]",
		Short: "Escrow funds against a trigger-price condition",
		Long: `Create a limit order. Funds move from the user source account into a
vault-owned escrow and stay there until the order fills, is cancelled, or
expires.

Example:
  $ straitd tx swaprouter create-limit-order strait1mintA... strait1mintB... 1000000 2000000 \
      strait1src... strait1dst... \
      --trigger-type stop_loss --trigger-bps 1000 --expiry 1767225600 --nonce 3 \
      --slippage-bps 50 --from trader`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			inputAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid input-amount: %s (must be integer)", args[2])
			}
			minOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-output-amount: %s (must be integer)", args[3])
			}

			triggerTypeArg, _ := cmd.Flags().GetString(FlagTriggerType)
			triggerType, err := parseTriggerType(triggerTypeArg)
			if err != nil {
				return err
			}

			nonce, _ := cmd.Flags().GetUint64(FlagNonce)
			triggerBps, _ := cmd.Flags().GetUint64(FlagTriggerBps)
			expiry, _ := cmd.Flags().GetInt64(FlagExpiry)
			slippageBps, _ := cmd.Flags().GetUint64(FlagSlippageBps)

			msg := &types.MsgCreateLimitOrder{
				Creator:                clientCtx.GetFromAddress().String(),
				Nonce:                  nonce,
				InputMint:              args[0],
				OutputMint:             args[1],
				UserSourceAccount:      args[4],
				UserDestinationAccount: args[5],
				InputAmount:            inputAmount,
				MinOutputAmount:        minOut,
				TriggerPriceBps:        triggerBps,
				TriggerType:            triggerType,
				Expiry:                 expiry,
				SlippageBps:            slippageBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	addOrderFlags(cmd)
	cmd.Flags().Uint64(FlagSlippageBps, 0, "Slippage tolerance in basis points")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteLimitOrder returns a CLI command handler for executing an open
// order through the adapter route machinery.
func CmdExecuteLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-limit-order [order-address] [quoted-out-amount]",
		Short: "Execute an open limit order whose trigger condition holds",
		Long: `Execute an open limit order through the in-module adapters. Only the
registry authority or a registered operator may execute orders. The first
route step's input index must point at the order's own escrow vault.

Example:
  $ straitd tx swaprouter execute-limit-order strait1order... 2100000 \
      --route-plan @plan.json --aux-accounts strait1a...,strait1b... \
      --vault-destination strait1vdst... --platform-fee-bps 30 --from operator`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quotedOut, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid quoted-out-amount: %s (must be integer)", args[1])
			}

			plan, err := readRoutePlan(cmd.Flags())
			if err != nil {
				return err
			}
			aux, err := readAuxAccounts(cmd.Flags())
			if err != nil {
				return err
			}

			vaultDest, _ := cmd.Flags().GetString(FlagVaultDestination)
			feeBps, _ := cmd.Flags().GetUint64(FlagPlatformFeeBps)

			msg := &types.MsgExecuteLimitOrder{
				Operator:                clientCtx.GetFromAddress().String(),
				OrderAddress:            args[0],
				VaultDestinationAccount: vaultDest,
				RoutePlan:               plan,
				AuxAccounts:             aux,
				QuotedOutAmount:         quotedOut,
				PlatformFeeBps:          feeBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagRoutePlan, "", "Route plan as JSON or @path to a JSON file")
	cmd.Flags().StringSlice(FlagAuxAccounts, nil, "Auxiliary account list (comma separated)")
	cmd.Flags().String(FlagVaultDestination, "", "Vault-owned account the route pays into")
	cmd.Flags().Uint64(FlagPlatformFeeBps, 0, "Platform fee in basis points")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteLimitOrderWithAggregator returns a CLI command handler for the
// delegated aggregator execution path.
func CmdExecuteLimitOrderWithAggregator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-limit-order-aggregator [order-address] [aggregator-program] [quoted-out-amount]",
		Short: "Execute an open limit order through the allow-listed aggregator",
		Long: `Execute an open limit order by delegating the swap leg to the
allow-listed external aggregator. The instruction payload is hex encoded.

Example:
  $ straitd tx swaprouter execute-limit-order-aggregator strait1order... strait1agg... 2100000 \
      --instruction-data deadbeef --aux-accounts strait1vault...,strait1escrow... \
      --platform-fee-bps 30 --from operator`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			quotedOut, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid quoted-out-amount: %s (must be integer)", args[2])
			}

			dataHex, _ := cmd.Flags().GetString(FlagInstructionData)
			data, err := hex.DecodeString(dataHex)
			if err != nil {
				return fmt.Errorf("invalid instruction data: %w", err)
			}

			aux, err := readAuxAccounts(cmd.Flags())
			if err != nil {
				return err
			}
			feeBps, _ := cmd.Flags().GetUint64(FlagPlatformFeeBps)

			msg := &types.MsgExecuteLimitOrderWithAggregator{
				Operator:          clientCtx.GetFromAddress().String(),
				OrderAddress:      args[0],
				AggregatorProgram: args[1],
				InstructionData:   data,
				AuxAccounts:       aux,
				QuotedOutAmount:   quotedOut,
				PlatformFeeBps:    feeBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagInstructionData, "", "Hex-encoded aggregator instruction payload")
	cmd.Flags().StringSlice(FlagAuxAccounts, nil, "Auxiliary account list; the first two must be the order vault and destination escrow")
	cmd.Flags().Uint64(FlagPlatformFeeBps, 0, "Platform fee in basis points")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelLimitOrder returns a CLI command handler for creator cancellation.
func CmdCancelLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-limit-order [order-address]",
		Short: "Cancel your open limit order and reclaim the escrow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCancelLimitOrder{
				Creator:      clientCtx.GetFromAddress().String(),
				OrderAddress: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelExpiredLimitOrder returns a CLI command handler for operator
// cancellation of expired orders.
func CmdCancelExpiredLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-expired-limit-order [order-address]",
		Short: "Cancel an expired limit order on the creator's behalf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCancelExpiredLimitOrder{
				Operator:     clientCtx.GetFromAddress().String(),
				OrderAddress: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCloseLimitOrder returns a CLI command handler for removing a terminal
// order record.
func CmdCloseLimitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close-limit-order [order-address]",
		Short: "Remove a filled or cancelled order record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCloseLimitOrder{
				Operator:     clientCtx.GetFromAddress().String(),
				OrderAddress: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func addRouteFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagRoutePlan, "", "Route plan as JSON or @path to a JSON file")
	cmd.Flags().StringSlice(FlagAuxAccounts, nil, "Auxiliary account list (comma separated)")
	cmd.Flags().String(FlagSourceEngine, "", "Token engine of the source mint (classic or extended)")
	cmd.Flags().String(FlagDestEngine, "", "Token engine of the destination mint (classic or extended)")
	cmd.Flags().String(FlagUserSource, "", "User-owned account funds are pulled from")
	cmd.Flags().String(FlagUserDestination, "", "User-owned account the net output pays into")
	cmd.Flags().String(FlagVaultDestination, "", "Vault-owned account the route pays into")
	cmd.Flags().Uint64(FlagSlippageBps, 0, "Slippage tolerance in basis points")
	cmd.Flags().Uint64(FlagPlatformFeeBps, 0, "Platform fee in basis points")
}

func addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64(FlagNonce, 0, "Creator-chosen nonce distinguishing concurrent orders")
	cmd.Flags().String(FlagTriggerType, "", "Trigger direction: take_profit or stop_loss")
	cmd.Flags().Uint64(FlagTriggerBps, 0, "Trigger deviation from min output in basis points")
	cmd.Flags().Int64(FlagExpiry, 0, "Order expiry as a unix timestamp")
}
