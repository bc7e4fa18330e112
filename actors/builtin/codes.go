package builtin

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs
var SystemActorCodeID cid.Cid
var AccountActorCodeID cid.Cid
var TokenActorCodeID cid.Cid
var VestingActorCodeID cid.Cid

// Set of actor code types that can represent external signing parties.
var CallerTypesSignable []cid.Cid

// Set of actor code types that derive addresses, and so may present derivation proofs.
var CallerTypesProgram []cid.Cid

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	SystemActorCodeID = makeBuiltin("vesting/1/system")
	AccountActorCodeID = makeBuiltin("vesting/1/account")
	TokenActorCodeID = makeBuiltin("vesting/1/token")
	VestingActorCodeID = makeBuiltin("vesting/1/vesting")

	CallerTypesSignable = []cid.Cid{AccountActorCodeID}
	CallerTypesProgram = []cid.Cid{TokenActorCodeID, VestingActorCodeID}

	initProgramKeys()
}

// IsBuiltinActor returns true if the code belongs to an actor defined in this repo.
func IsBuiltinActor(code cid.Cid) bool {
	return code.Equals(SystemActorCodeID) ||
		code.Equals(AccountActorCodeID) ||
		code.Equals(TokenActorCodeID) ||
		code.Equals(VestingActorCodeID)
}

// Tests whether a code CID represents an actor that can be an external principal: i.e. an account.
func IsPrincipal(code cid.Cid) bool {
	return code.Equals(AccountActorCodeID)
}

// Returns a human-readable name for an actor code, for logging.
func ActorNameByCode(code cid.Cid) string {
	if !code.Defined() {
		return "<undefined>"
	}
	switch {
	case code.Equals(SystemActorCodeID):
		return "vesting/1/system"
	case code.Equals(AccountActorCodeID):
		return "vesting/1/account"
	case code.Equals(TokenActorCodeID):
		return "vesting/1/token"
	case code.Equals(VestingActorCodeID):
		return "vesting/1/vesting"
	default:
		return "<unknown>"
	}
}
