package crypto

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/gagliardetto/solana-go"
	"golang.org/x/xerrors"
)

// Program-derived addresses.
//
// An address derived from a program key and a list of seeds has no private key: it is computed
// by hashing the seeds, a bump byte and the program key, and is only valid when the result lies
// off the ed25519 curve. The owning program proves authority over such an address by presenting
// the seeds and bump, from which anyone can recompute it.
//
// The 32-byte derived key is the same one produced by deployed ledgers for the same seeds. It is
// embedded in the host address space as an actor-protocol address.

// ProgramKey identifies a program for the purposes of address derivation.
type ProgramKey = solana.PublicKey

// FindProgramAddress derives the address for seeds under program, searching bumps from 255
// downward for the first that yields a valid address.
func FindProgramAddress(program ProgramKey, seeds ...[]byte) (addr.Address, uint8, error) {
	key, bump, err := solana.FindProgramAddress(seeds, program)
	if err != nil {
		return addr.Undef, 0, xerrors.Errorf("failed to find program address for %d seeds: %w", len(seeds), err)
	}
	a, err := ProgramAddress(key)
	if err != nil {
		return addr.Undef, 0, err
	}
	return a, bump, nil
}

// CreateProgramAddress recomputes the address for seeds and a known bump under program.
// It fails if the seeds are malformed or the bump does not yield a valid address.
func CreateProgramAddress(program ProgramKey, bump uint8, seeds ...[]byte) (addr.Address, error) {
	withBump := make([][]byte, 0, len(seeds)+1)
	withBump = append(withBump, seeds...)
	withBump = append(withBump, []byte{bump})

	key, err := solana.CreateProgramAddress(withBump, program)
	if err != nil {
		return addr.Undef, xerrors.Errorf("failed to create program address with bump %d: %w", bump, err)
	}
	return ProgramAddress(key)
}

// ProgramAddress embeds a derived key in the host address space.
func ProgramAddress(key solana.PublicKey) (addr.Address, error) {
	a, err := addr.NewActorAddress(key.Bytes())
	if err != nil {
		return addr.Undef, xerrors.Errorf("failed to embed program address %s: %w", key, err)
	}
	return a, nil
}
