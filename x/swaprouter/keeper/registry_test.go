package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/strait-labs/strait/testutil/keeper"
	"github.com/strait-labs/strait/x/swaprouter/keeper"
	"github.com/strait-labs/strait/x/swaprouter/types"
)

type RegistryTestSuite struct {
	suite.Suite
	keeper    *keeper.Keeper
	ctx       sdk.Context
	authority string
	operator  string
	stranger  string
}

func (s *RegistryTestSuite) SetupTest() {
	s.keeper, s.ctx = keepertest.SwaprouterKeeper(s.T())
	s.authority = sdk.AccAddress([]byte("authority___________")).String()
	s.operator = sdk.AccAddress([]byte("operator____________")).String()
	s.stranger = sdk.AccAddress([]byte("stranger____________")).String()
}

func (s *RegistryTestSuite) classicEntry() types.AdapterEntry {
	return types.AdapterEntry{
		Name:      types.SwapTypeClassicAMM.String(),
		ProgramID: types.VenueProgramAddress(types.SwapTypeClassicAMM.String()).String(),
		SwapType:  types.SwapTypeClassicAMM,
	}
}

// ============================================================
// Initialization
// ============================================================

func (s *RegistryTestSuite) TestInitializeRegistry() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.authority, registry.Authority)
	s.Require().Empty(registry.Operators)
	s.Require().Empty(registry.Adapters)

	// The vault authority record is created alongside, pointing at the
	// module derivation.
	vault, err := s.keeper.GetVaultAuthority(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.authority, vault.Admin)
	s.Require().Equal(types.VaultAuthorityAddress().String(), vault.Authority)
}

func (s *RegistryTestSuite) TestInitializeRegistryOnlyOnce() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	err := s.keeper.InitializeRegistry(s.ctx, s.stranger)
	s.Require().ErrorIs(err, types.ErrInvalidState)

	// The original authority survives the attempt.
	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.authority, registry.Authority)
}

func (s *RegistryTestSuite) TestGetRegistryBeforeInitialize() {
	_, err := s.keeper.GetRegistry(s.ctx)
	s.Require().ErrorIs(err, types.ErrRegistryNotFound)
}

// ============================================================
// Adapter configuration
// ============================================================

func (s *RegistryTestSuite) TestConfigureAdapter() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))

	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().True(registry.IsSupported(types.SwapTypeClassicAMM))
	s.Require().False(registry.IsSupported(types.SwapTypeConcentrated))
}

func (s *RegistryTestSuite) TestConfigureAdapterUpsert() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))

	// Reconfiguring the same swap type replaces the entry rather than
	// appending a duplicate.
	updated := s.classicEntry()
	updated.PoolAllowlist = []string{"pool-1"}
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, updated))

	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(registry.Adapters, 1)
	s.Require().Equal([]string{"pool-1"}, registry.Adapters[0].PoolAllowlist)
}

func (s *RegistryTestSuite) TestConfigureAdapterAuthorityGated() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	err := s.keeper.ConfigureAdapter(s.ctx, s.stranger, s.classicEntry())
	s.Require().ErrorIs(err, types.ErrInvalidAuthority)
}

func (s *RegistryTestSuite) TestConfigureAdapterRejectsUnknownSwapType() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	entry := s.classicEntry()
	entry.SwapType = types.SwapTypeUnspecified
	err := s.keeper.ConfigureAdapter(s.ctx, s.authority, entry)
	s.Require().ErrorIs(err, types.ErrSwapNotSupported)
}

func (s *RegistryTestSuite) TestDisableAdapter() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))

	s.Require().NoError(s.keeper.DisableAdapter(s.ctx, s.authority, types.SwapTypeClassicAMM))
	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().False(registry.IsSupported(types.SwapTypeClassicAMM))

	// Disabling a type that is not registered is an error.
	err = s.keeper.DisableAdapter(s.ctx, s.authority, types.SwapTypeClassicAMM)
	s.Require().ErrorIs(err, types.ErrSwapNotSupported)
}

// ============================================================
// Operators and authority handover
// ============================================================

func (s *RegistryTestSuite) TestOperatorLifecycle() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	s.Require().NoError(s.keeper.AddOperator(s.ctx, s.authority, s.operator))
	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().True(registry.IsOperator(s.operator))

	// Duplicates are rejected.
	err = s.keeper.AddOperator(s.ctx, s.authority, s.operator)
	s.Require().ErrorIs(err, types.ErrInvalidState)

	s.Require().NoError(s.keeper.RemoveOperator(s.ctx, s.authority, s.operator))
	registry, err = s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().False(registry.IsOperator(s.operator))

	err = s.keeper.RemoveOperator(s.ctx, s.authority, s.operator)
	s.Require().ErrorIs(err, types.ErrInvalidOperator)
}

func (s *RegistryTestSuite) TestOperatorChangesAuthorityGated() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.AddOperator(s.ctx, s.authority, s.operator))

	// Operators may not manage the operator set themselves.
	err := s.keeper.AddOperator(s.ctx, s.operator, s.stranger)
	s.Require().ErrorIs(err, types.ErrInvalidAuthority)
	err = s.keeper.RemoveOperator(s.ctx, s.operator, s.operator)
	s.Require().ErrorIs(err, types.ErrInvalidAuthority)
}

func (s *RegistryTestSuite) TestChangeAuthority() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	err := s.keeper.ChangeAuthority(s.ctx, s.stranger, s.stranger)
	s.Require().ErrorIs(err, types.ErrInvalidAuthority)

	s.Require().NoError(s.keeper.ChangeAuthority(s.ctx, s.authority, s.stranger))

	// The old authority is locked out, the new one is in control.
	err = s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry())
	s.Require().ErrorIs(err, types.ErrInvalidAuthority)
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.stranger, s.classicEntry()))
}

func (s *RegistryTestSuite) TestResetRegistry() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))
	s.Require().NoError(s.keeper.AddOperator(s.ctx, s.authority, s.operator))

	s.Require().NoError(s.keeper.ResetRegistry(s.ctx, s.authority))

	registry, err := s.keeper.GetRegistry(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.authority, registry.Authority)
	s.Require().Empty(registry.Operators)
	s.Require().Empty(registry.Adapters)
}

// ============================================================
// Pool registration
// ============================================================

func (s *RegistryTestSuite) TestRegisterPool() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))
	s.Require().NoError(s.keeper.AddOperator(s.ctx, s.authority, s.operator))

	pool := sdk.AccAddress([]byte("pool________________")).String()
	s.Require().NoError(s.keeper.RegisterPool(s.ctx, s.operator, types.SwapTypeClassicAMM, pool))

	info, err := s.keeper.GetPoolInfo(s.ctx, types.SwapTypeClassicAMM, pool)
	s.Require().NoError(err)
	s.Require().True(info.Enabled)

	// Re-registering the same pool is rejected so a disabled pool cannot be
	// revived by overwriting it.
	err = s.keeper.RegisterPool(s.ctx, s.operator, types.SwapTypeClassicAMM, pool)
	s.Require().ErrorIs(err, types.ErrPoolAlreadyExists)
}

func (s *RegistryTestSuite) TestRegisterPoolGating() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))

	pool := sdk.AccAddress([]byte("pool________________")).String()

	err := s.keeper.RegisterPool(s.ctx, s.stranger, types.SwapTypeClassicAMM, pool)
	s.Require().ErrorIs(err, types.ErrInvalidOperator)

	// A pool cannot be registered for an unconfigured swap type.
	err = s.keeper.RegisterPool(s.ctx, s.authority, types.SwapTypeConcentrated, pool)
	s.Require().ErrorIs(err, types.ErrSwapNotSupported)
}

func (s *RegistryTestSuite) TestDisablePool() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))
	s.Require().NoError(s.keeper.ConfigureAdapter(s.ctx, s.authority, s.classicEntry()))

	pool := sdk.AccAddress([]byte("pool________________")).String()
	s.Require().NoError(s.keeper.RegisterPool(s.ctx, s.authority, types.SwapTypeClassicAMM, pool))
	s.Require().NoError(s.keeper.DisablePool(s.ctx, s.authority, types.SwapTypeClassicAMM, pool))

	info, err := s.keeper.GetPoolInfo(s.ctx, types.SwapTypeClassicAMM, pool)
	s.Require().NoError(err)
	s.Require().False(info.Enabled)
}

func (s *RegistryTestSuite) TestAggregatorProgramAdminGated() {
	s.Require().NoError(s.keeper.InitializeRegistry(s.ctx, s.authority))

	program := sdk.AccAddress([]byte("aggregator_program__")).String()
	err := s.keeper.SetAggregatorProgram(s.ctx, s.stranger, program)
	s.Require().ErrorIs(err, types.ErrInvalidAuthority)

	s.Require().NoError(s.keeper.SetAggregatorProgram(s.ctx, s.authority, program))
	vault, err := s.keeper.GetVaultAuthority(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(program, vault.AggregatorProgram)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
