package builtin

import (
	"github.com/gagliardetto/solana-go"
	"github.com/ipfs/go-cid"
	sha256 "github.com/minio/sha256-simd"

	"github.com/tokenvest/vesting-actors/actors/crypto"
)

// Program keys under which each program actor derives the addresses it controls.
// A program key is the sha256 digest of the actor's code ID, so every instance of a program
// derives the same addresses for the same seeds.
var TokenProgramKey crypto.ProgramKey
var VestingProgramKey crypto.ProgramKey

var programKeys map[cid.Cid]crypto.ProgramKey

func initProgramKeys() {
	makeProgramKey := func(code cid.Cid) crypto.ProgramKey {
		h := sha256.Sum256(code.Bytes())
		return solana.PublicKeyFromBytes(h[:])
	}
	TokenProgramKey = makeProgramKey(TokenActorCodeID)
	VestingProgramKey = makeProgramKey(VestingActorCodeID)
	programKeys = map[cid.Cid]crypto.ProgramKey{
		TokenActorCodeID:   TokenProgramKey,
		VestingActorCodeID: VestingProgramKey,
	}
}

// IsProgramActor returns true if actors with the given code control derived addresses.
func IsProgramActor(code cid.Cid) bool {
	_, ok := programKeys[code]
	return ok
}

// ProgramKeyForCode returns the derivation key of a program actor.
func ProgramKeyForCode(code cid.Cid) (crypto.ProgramKey, bool) {
	key, ok := programKeys[code]
	return key, ok
}
