package mock

import (
	addr "github.com/filecoin-project/go-address"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/crypto"
)

// Derivation is computed for real: addresses are a pure function of the program key and seeds,
// so there is nothing to mock beyond which code each address carries.
type syscaller struct {
	rt *Runtime
}

func (s syscaller) FindProgramAddress(seeds ...[]byte) (addr.Address, uint8, error) {
	key, ok := builtin.ProgramKeyForCode(s.rt.receiverType)
	if !ok {
		return addr.Undef, 0, xerrors.Errorf("receiver %v with code %v is not a program", s.rt.receiver, s.rt.receiverType)
	}
	return crypto.FindProgramAddress(key, seeds...)
}

func (s syscaller) CreateProgramAddress(program addr.Address, bump uint8, seeds ...[]byte) (addr.Address, error) {
	code, ok := s.rt.codes[program]
	if program == s.rt.receiver {
		code, ok = s.rt.receiverType, true
	}
	if !ok {
		return addr.Undef, xerrors.Errorf("no actor at %v", program)
	}
	key, ok := builtin.ProgramKeyForCode(code)
	if !ok {
		return addr.Undef, xerrors.Errorf("actor %v with code %v is not a program", program, code)
	}
	return crypto.CreateProgramAddress(key, bump, seeds...)
}
