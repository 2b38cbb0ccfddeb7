package types

import "fmt"

// GenesisState holds the initial state of the swaprouter module.
type GenesisState struct {
	Params         Params          `json:"params"`
	Registry       *Registry       `json:"registry,omitempty"`
	VaultAuthority *VaultAuthority `json:"vault_authority,omitempty"`
	Pools          []PoolInfo      `json:"pools"`
	Mints          []MintInfo      `json:"mints"`
	TokenAccounts  []TokenAccount  `json:"token_accounts"`
	Orders         []LimitOrder    `json:"orders"`
}

// DefaultGenesis returns the default genesis state for the module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.Registry != nil {
		if gs.Registry.Authority == "" {
			return fmt.Errorf("registry authority cannot be empty")
		}
		seen := make(map[SwapType]bool)
		for _, adapter := range gs.Registry.Adapters {
			if !adapter.SwapType.Valid() {
				return fmt.Errorf("adapter %s: unknown swap type %d", adapter.Name, adapter.SwapType)
			}
			if seen[adapter.SwapType] {
				return fmt.Errorf("duplicate adapter for swap type %s", adapter.SwapType)
			}
			seen[adapter.SwapType] = true
		}
	}

	poolKeys := make(map[string]bool)
	for _, pool := range gs.Pools {
		if !pool.SwapType.Valid() {
			return fmt.Errorf("pool %s: unknown swap type %d", pool.PoolAddress, pool.SwapType)
		}
		if poolKeys[pool.PoolAddress] {
			return fmt.Errorf("duplicate pool %s", pool.PoolAddress)
		}
		poolKeys[pool.PoolAddress] = true
	}

	mintAddrs := make(map[string]bool)
	for _, mint := range gs.Mints {
		if !IsRecognizedTokenEngine(mint.TokenEngine) {
			return fmt.Errorf("mint %s: unrecognized token engine %q", mint.Address, mint.TokenEngine)
		}
		if mintAddrs[mint.Address] {
			return fmt.Errorf("duplicate mint %s", mint.Address)
		}
		mintAddrs[mint.Address] = true
	}

	accountAddrs := make(map[string]bool)
	for _, account := range gs.TokenAccounts {
		if !mintAddrs[account.Mint] {
			return fmt.Errorf("token account %s references unknown mint %s", account.Address, account.Mint)
		}
		if account.Balance.IsNegative() {
			return fmt.Errorf("token account %s has negative balance", account.Address)
		}
		if accountAddrs[account.Address] {
			return fmt.Errorf("duplicate token account %s", account.Address)
		}
		accountAddrs[account.Address] = true
	}

	orderAddrs := make(map[string]bool)
	for _, order := range gs.Orders {
		if orderAddrs[order.Address] {
			return fmt.Errorf("duplicate limit order %s", order.Address)
		}
		orderAddrs[order.Address] = true
		if err := ValidateTrigger(order.TriggerType, order.TriggerPriceBps); err != nil {
			return fmt.Errorf("limit order %s: %w", order.Address, err)
		}
		if order.Status != OrderStatusInit && order.Status != OrderStatusOpen &&
			order.Status != OrderStatusFilled && order.Status != OrderStatusCancelled {
			return fmt.Errorf("limit order %s has unknown status %d", order.Address, order.Status)
		}
	}

	return nil
}
