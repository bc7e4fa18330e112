package exported_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/exported"
	"github.com/tokenvest/vesting-actors/support/mock"
)

func TestBuiltinActors(t *testing.T) {
	seen := map[string]bool{}
	for _, actor := range exported.BuiltinActors() {
		assert.True(t, builtin.IsBuiltinActor(actor.Code()))
		name := builtin.ActorNameByCode(actor.Code())
		assert.False(t, seen[name], "duplicate actor %s", name)
		seen[name] = true

		mock.CheckActorExports(t, actor)
	}
	assert.Len(t, seen, 4)
}
