package crypto_test

import (
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/crypto"
)

var program = solana.MustPublicKeyFromBase58("QgV3iN5rSkBU8jaZy8AszQt5eoYwKLmBgXEK5cehAKX")

func TestFindProgramAddress(t *testing.T) {
	t.Run("matches the derived key of the underlying ledger", func(t *testing.T) {
		seeds := [][]byte{[]byte("vesting_treasury"), []byte("acme")}

		found, bump, err := crypto.FindProgramAddress(program, seeds...)
		require.NoError(t, err)

		key, expectedBump, err := solana.FindProgramAddress(seeds, program)
		require.NoError(t, err)
		expected, err := addr.NewActorAddress(key.Bytes())
		require.NoError(t, err)

		assert.Equal(t, expected, found)
		assert.Equal(t, expectedBump, bump)
		assert.Equal(t, addr.Actor, found.Protocol())
	})

	t.Run("recomputes with the found bump", func(t *testing.T) {
		found, bump, err := crypto.FindProgramAddress(program, []byte("acme"))
		require.NoError(t, err)

		recomputed, err := crypto.CreateProgramAddress(program, bump, []byte("acme"))
		require.NoError(t, err)
		assert.Equal(t, found, recomputed)
	})

	t.Run("distinct seeds give distinct addresses", func(t *testing.T) {
		a, _, err := crypto.FindProgramAddress(program, []byte("acme"))
		require.NoError(t, err)
		b, _, err := crypto.FindProgramAddress(program, []byte("vesting_treasury"), []byte("acme"))
		require.NoError(t, err)
		c, _, err := crypto.FindProgramAddress(solana.TokenProgramID, []byte("acme"))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.NotEqual(t, a, c)
	})

	t.Run("seed longer than 32 bytes is rejected", func(t *testing.T) {
		_, _, err := crypto.FindProgramAddress(program, []byte(strings.Repeat("x", 33)))
		assert.Error(t, err)
	})

	t.Run("wrong bump does not reproduce the address", func(t *testing.T) {
		found, bump, err := crypto.FindProgramAddress(program, []byte("acme"))
		require.NoError(t, err)

		other, err := crypto.CreateProgramAddress(program, bump-1, []byte("acme"))
		if err == nil {
			assert.NotEqual(t, found, other)
		}
	})
}
