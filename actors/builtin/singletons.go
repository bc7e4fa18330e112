package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses for singleton system actors.
var (
	SystemActorAddr  = mustMakeAddress(0)
	TokenActorAddr   = mustMakeAddress(2)
	VestingActorAddr = mustMakeAddress(3)
)

const FirstNonSingletonActorId = 100

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}
