package testing

import (
	"math/rand"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/crypto"
)

func NewIDAddr(t testing.TB, id uint64) addr.Address {
	a, err := addr.NewIDAddress(id)
	require.NoError(t, err)
	return a
}

// Returns n consecutive ID addresses starting at first.
func NewIDAddrs(t testing.TB, first uint64, n int) []addr.Address {
	out := make([]addr.Address, n)
	for i := range out {
		out[i] = NewIDAddr(t, first+uint64(i))
	}
	return out
}

// Returns a secp256k1 key address for a label. The label is hashed into the address.
func NewSECP256K1Addr(t testing.TB, label string) addr.Address {
	a, err := addr.NewSecp256k1Address([]byte(label))
	require.NoError(t, err)
	return a
}

// Returns a BLS key address with a 48-byte key drawn deterministically from seed.
func NewBLSAddr(t testing.TB, seed int64) addr.Address {
	key := make([]byte, 48)
	rand.New(rand.NewSource(seed)).Read(key)
	a, err := addr.NewBLSAddress(key)
	require.NoError(t, err)
	return a
}

// Returns an actor-protocol address for a label, e.g. a token mint.
func NewActorAddr(t testing.TB, label string) addr.Address {
	a, err := addr.NewActorAddress([]byte(label))
	require.NoError(t, err)
	return a
}

// Derives the address a program key owns for seeds, failing the test if the seeds are invalid.
func NewDerivedAddr(t testing.TB, program crypto.ProgramKey, seeds ...[]byte) (addr.Address, uint8) {
	a, bump, err := crypto.FindProgramAddress(program, seeds...)
	require.NoError(t, err)
	return a, bump
}
