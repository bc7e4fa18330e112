package exported

import (
	"github.com/tokenvest/vesting-actors/actors/builtin/account"
	"github.com/tokenvest/vesting-actors/actors/builtin/system"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/actors/runtime"
)

func BuiltinActors() []runtime.VMActor {
	return []runtime.VMActor{
		account.Actor{},
		system.Actor{},
		token.Actor{},
		vesting.Actor{},
	}
}
