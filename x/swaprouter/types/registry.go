package types

// AdapterEntry describes one supported venue in the registry.
type AdapterEntry struct {
	// Name is the human-readable venue name.
	Name string `json:"name"`
	// ProgramID is the venue program address calls are dispatched to.
	ProgramID string `json:"program_id"`
	// SwapType is the unique tag route steps use to select this venue.
	SwapType SwapType `json:"swap_type"`
	// PoolAllowlist optionally restricts which pool accounts this venue
	// may be used with. Empty means any pool registered via PoolInfo.
	PoolAllowlist []string `json:"pool_allowlist,omitempty"`
}

// Registry is the singleton record mapping swap-type tags to venue programs.
// It is mutated only by the authority or a registered operator and is never
// deleted, only replaced.
type Registry struct {
	Authority string         `json:"authority"`
	Operators []string       `json:"operators"`
	Adapters  []AdapterEntry `json:"adapters"`
}

// IsAuthority reports whether addr is the registry authority.
func (r Registry) IsAuthority(addr string) bool {
	return addr != "" && addr == r.Authority
}

// IsOperator reports whether addr is a registered operator.
func (r Registry) IsOperator(addr string) bool {
	for _, op := range r.Operators {
		if op == addr {
			return true
		}
	}
	return false
}

// AdapterFor returns the entry registered for a swap type.
func (r Registry) AdapterFor(swapType SwapType) (AdapterEntry, bool) {
	for _, a := range r.Adapters {
		if a.SwapType == swapType {
			return a, true
		}
	}
	return AdapterEntry{}, false
}

// IsSupported reports whether a swap type is registered.
func (r Registry) IsSupported(swapType SwapType) bool {
	_, ok := r.AdapterFor(swapType)
	return ok
}

// ProgramIDFor returns the venue program address registered for a swap type.
func (r Registry) ProgramIDFor(swapType SwapType) (string, error) {
	entry, ok := r.AdapterFor(swapType)
	if !ok {
		return "", ErrSwapNotSupported.Wrapf("swap type %s", swapType)
	}
	return entry.ProgramID, nil
}

// PoolAllowed reports whether a pool account may be used with this entry.
func (e AdapterEntry) PoolAllowed(pool string) bool {
	if len(e.PoolAllowlist) == 0 {
		return true
	}
	for _, p := range e.PoolAllowlist {
		if p == pool {
			return true
		}
	}
	return false
}

// Upsert inserts or replaces the entry with the same swap type
// (last-write-wins on reconfiguration).
func (r *Registry) Upsert(entry AdapterEntry) {
	for i, a := range r.Adapters {
		if a.SwapType == entry.SwapType {
			r.Adapters[i] = entry
			return
		}
	}
	r.Adapters = append(r.Adapters, entry)
}

// Remove deletes the entry for a swap type, reporting whether it existed.
func (r *Registry) Remove(swapType SwapType) bool {
	for i, a := range r.Adapters {
		if a.SwapType == swapType {
			r.Adapters = append(r.Adapters[:i], r.Adapters[i+1:]...)
			return true
		}
	}
	return false
}

// PoolInfo is the per-(swap type, pool) enablement record. Pools are created
// once by an operator and disabled rather than deleted.
type PoolInfo struct {
	SwapType    SwapType `json:"swap_type"`
	PoolAddress string   `json:"pool_address"`
	Enabled     bool     `json:"enabled"`
}
