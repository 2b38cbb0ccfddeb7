package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// GetQueryCmd returns the cli query commands for the swaprouter module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the swaprouter module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryRegistry(),
		GetCmdQueryVaultAuthority(),
		GetCmdQueryPoolInfo(),
		GetCmdQueryPools(),
		GetCmdQueryOrder(),
		GetCmdQueryOrdersByCreator(),
		GetCmdQueryOpenOrders(),
		GetCmdQueryTokenAccount(),
		GetCmdQuerySimulateTrigger(),
	)

	return queryCmd
}

// printJSON renders a query response as indented JSON.
func printJSON(clientCtx client.Context, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current swaprouter module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRegistry returns the command to query the adapter registry
func GetCmdQueryRegistry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Query the adapter registry",
		Long: `Query the adapter registry including the authority, operators,
and configured venue adapters.

Example:
  $ straitd query swaprouter registry`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Registry(context.Background(), &types.QueryRegistryRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryVaultAuthority returns the command to query the vault authority
func GetCmdQueryVaultAuthority() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault-authority",
		Short: "Query the vault authority record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.VaultAuthority(context.Background(), &types.QueryVaultAuthorityRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPoolInfo returns the command to query one pool record
func GetCmdQueryPoolInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [swap-type] [pool-address]",
		Short: "Query a registered pool",
		Long: `Query a pool enablement record by swap type and address.

Example:
  $ straitd query swaprouter pool classic_amm strait1pool...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			swapType, err := parseSwapType(args[0])
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.PoolInfo(context.Background(), &types.QueryPoolInfoRequest{
				SwapType:    swapType,
				PoolAddress: args[1],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to query all pool records
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all registered pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pools(context.Background(), &types.QueryPoolsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrder returns the command to query a limit order
func GetCmdQueryOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [order-address]",
		Short: "Query a limit order by its derived address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Order(context.Background(), &types.QueryOrderRequest{
				OrderAddress: args[0],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrdersByCreator returns the command to query a creator's orders
func GetCmdQueryOrdersByCreator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders [creator]",
		Short: "Query all limit orders created by an address",
		Long: `Query every limit order a creator has placed, in any status.

Example:
  $ straitd query swaprouter orders strait1creator...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.OrdersByCreator(context.Background(), &types.QueryOrdersByCreatorRequest{
				Creator: args[0],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOpenOrders returns the command to query all open orders
func GetCmdQueryOpenOrders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open-orders",
		Short: "Query every open limit order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.OpenOrders(context.Background(), &types.QueryOpenOrdersRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTokenAccount returns the command to query a token account
func GetCmdQueryTokenAccount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token-account [address]",
		Short: "Query a module-ledger token account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TokenAccount(context.Background(), &types.QueryTokenAccountRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySimulateTrigger returns the command to dry-run an order trigger
func GetCmdQuerySimulateTrigger() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-trigger [order-address] [current-output-amount]",
		Short: "Check whether an order's trigger would fire at a given output",
		Long: `Evaluate an order's trigger condition against a hypothetical output
amount without executing anything.

Example:
  $ straitd query swaprouter simulate-trigger strait1order... 2100000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid current-output-amount: %s (must be integer)", args[1])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SimulateTrigger(context.Background(), &types.QuerySimulateTriggerRequest{
				OrderAddress:        args[0],
				CurrentOutputAmount: amount,
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
