package vesting

import (
	addr "github.com/filecoin-project/go-address"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/crypto"
)

func RegistrySeeds(name string) [][]byte {
	return [][]byte{[]byte(name)}
}

func CustodianSeeds(name string) [][]byte {
	return [][]byte{[]byte(CustodianSeedPrefix), []byte(name)}
}

func ScheduleSeeds(beneficiary, registry addr.Address) [][]byte {
	return [][]byte{[]byte(ScheduleSeedPrefix), beneficiary.Bytes(), registry.Bytes()}
}

// The following compute, off-ledger, the addresses the vesting actor derives for a company and its
// beneficiaries. Clients use them to address records before or after creating them.

func RegistryAddress(name string) (addr.Address, uint8, error) {
	return crypto.FindProgramAddress(builtin.VestingProgramKey, RegistrySeeds(name)...)
}

func CustodianAddress(name string) (addr.Address, uint8, error) {
	return crypto.FindProgramAddress(builtin.VestingProgramKey, CustodianSeeds(name)...)
}

func ScheduleAddress(beneficiary, registry addr.Address) (addr.Address, uint8, error) {
	return crypto.FindProgramAddress(builtin.VestingProgramKey, ScheduleSeeds(beneficiary, registry)...)
}
