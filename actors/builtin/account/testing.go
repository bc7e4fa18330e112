package account

import (
	addr "github.com/filecoin-project/go-address"

	"github.com/tokenvest/vesting-actors/actors/builtin"
)

type StateSummary struct {
	// The key that signs for this account.
	PubkeyAddr addr.Address
}

// Checks an account's state against the address the host registered it under.
// Accounts are principals: they hold a signing key and live at ID addresses, never at derived ones.
func CheckStateInvariants(st *State, idAddr addr.Address) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	acc.Require(st.Address.Protocol() == addr.BLS || st.Address.Protocol() == addr.SECP256K1,
		"account %v key %v must be BLS or SECP256K1 protocol", idAddr, st.Address)
	acc.Require(idAddr.Protocol() == addr.ID,
		"account with key %v registered at non-ID address %v", st.Address, idAddr)
	return &StateSummary{PubkeyAddr: st.Address}, acc
}
