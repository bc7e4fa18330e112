package vm

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/account"
	"github.com/tokenvest/vesting-actors/actors/builtin/system"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/support/ipld"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

//
// Genesis like setup
//

// Creates a new VM and initializes all singleton actors.
func NewVMWithSingletons(ctx context.Context, t testing.TB) *VM {
	vm, err := NewVM(ctx, LookupBuiltinActors(), ipld.NewBlockStoreInMemory())
	require.NoError(t, err)

	initializeActor(t, vm, &system.State{}, builtin.SystemActorCodeID, builtin.SystemActorAddr)

	tokenState, err := token.ConstructState(vm.store)
	require.NoError(t, err)
	initializeActor(t, vm, tokenState, builtin.TokenActorCodeID, builtin.TokenActorAddr)

	vestingState, err := vesting.ConstructState(vm.store)
	require.NoError(t, err)
	initializeActor(t, vm, vestingState, builtin.VestingActorCodeID, builtin.VestingActorAddr)

	_, err = vm.checkpoint()
	require.NoError(t, err)

	return vm
}

// Creates n account actors in the VM, returning their ID addresses.
// Keys are deterministic in seed.
func CreateAccounts(t testing.TB, vm *VM, n int, seed int64) []addr.Address {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	idAddrs := make([]addr.Address, n)
	for i := range idAddrs {
		pubAddr := tutil.NewBLSAddr(t, seed+int64(i))
		idAddr, err := vm.newIDAddress()
		require.NoError(t, err)

		initializeActor(t, vm, &account.State{Address: pubAddr}, builtin.AccountActorCodeID, idAddr)
		idAddrs[i] = idAddr
	}
	_, err := vm.checkpoint()
	require.NoError(t, err)
	return idAddrs
}

func initializeActor(t testing.TB, vm *VM, state cbor.Marshaler, code cid.Cid, a addr.Address) {
	err := vm.createActor(a, code, state)
	require.NoError(t, err)
}
