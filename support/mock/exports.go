package mock

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenvest/vesting-actors/actors/runtime"
)

// Checks that every exported method of an actor can be dispatched by the host.
// Slot 0 is the implicit bare send and must stay empty.
func CheckActorExports(t *testing.T, act runtime.VMActor) {
	exports := act.Exports()
	if len(exports) > 0 {
		assert.Nil(t, exports[0], "method 0 is reserved")
	}
	for i, m := range exports {
		if i == 0 || m == nil {
			continue
		}
		assert.NoError(t, methodShapeError(reflect.TypeOf(m)), "method %d", i)
	}
}
