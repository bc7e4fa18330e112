package builtin

import (
	"testing"

	"github.com/filecoin-project/go-state-types/cbor"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stands in for a real actor; only its code matters for log levels.
type codeOnlyActor struct {
	code cid.Cid
}

func (a codeOnlyActor) Exports() []interface{} { return nil }
func (a codeOnlyActor) Code() cid.Cid          { return a.code }
func (a codeOnlyActor) State() cbor.Er         { return nil }

func TestActorLogLevel(t *testing.T) {
	vesting := codeOnlyActor{VestingActorCodeID}
	token := codeOnlyActor{TokenActorCodeID}
	levels := []rtt.LogLevel{rtt.DEBUG, rtt.INFO, rtt.WARN, rtt.ERROR}

	t.Run("defaults pass through", func(t *testing.T) {
		t.Cleanup(ResetActorsLogLevel)
		for _, def := range levels {
			assert.Equal(t, def, GetActorLogLevel(vesting, def))
		}
	})

	t.Run("override wins over every default", func(t *testing.T) {
		t.Cleanup(ResetActorsLogLevel)
		for _, override := range levels {
			SetActorsLogLevel(override, vesting)
			for _, def := range levels {
				assert.Equal(t, override, GetActorLogLevel(vesting, def))
			}
		}
	})

	t.Run("override is per actor", func(t *testing.T) {
		t.Cleanup(ResetActorsLogLevel)
		SetActorsLogLevel(rtt.ERROR, vesting)
		assert.Equal(t, rtt.ERROR, GetActorLogLevel(vesting, rtt.INFO))
		assert.Equal(t, rtt.INFO, GetActorLogLevel(token, rtt.INFO))
	})

	t.Run("reset drops overrides", func(t *testing.T) {
		SetActorsLogLevel(rtt.WARN, vesting, token)
		ResetActorsLogLevel()
		assert.Equal(t, rtt.DEBUG, GetActorLogLevel(vesting, rtt.DEBUG))
		assert.Equal(t, rtt.DEBUG, GetActorLogLevel(token, rtt.DEBUG))
	})
}

func TestConfigureActorsLogLevel(t *testing.T) {
	vesting := codeOnlyActor{VestingActorCodeID}
	token := codeOnlyActor{TokenActorCodeID}
	account := codeOnlyActor{AccountActorCodeID}

	t.Run("applies each entry", func(t *testing.T) {
		t.Cleanup(ResetActorsLogLevel)
		require.NoError(t, ConfigureActorsLogLevel("vesting=debug, token=WARN,"))
		assert.Equal(t, rtt.DEBUG, GetActorLogLevel(vesting, rtt.INFO))
		assert.Equal(t, rtt.WARN, GetActorLogLevel(token, rtt.DEBUG))
		assert.Equal(t, rtt.INFO, GetActorLogLevel(account, rtt.INFO))
	})

	t.Run("empty config is a no-op", func(t *testing.T) {
		t.Cleanup(ResetActorsLogLevel)
		require.NoError(t, ConfigureActorsLogLevel(""))
		assert.Equal(t, rtt.INFO, GetActorLogLevel(vesting, rtt.INFO))
	})

	t.Run("invalid entries apply nothing", func(t *testing.T) {
		t.Cleanup(ResetActorsLogLevel)
		for _, config := range []string{
			"vesting=debug,miner=info",
			"vesting=debug,token=loud",
			"vesting",
		} {
			assert.Error(t, ConfigureActorsLogLevel(config), config)
			assert.Equal(t, rtt.INFO, GetActorLogLevel(vesting, rtt.INFO), config)
		}
	})
}
