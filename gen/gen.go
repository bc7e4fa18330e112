package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	account "github.com/tokenvest/vesting-actors/actors/builtin/account"
	system "github.com/tokenvest/vesting-actors/actors/builtin/system"
	token "github.com/tokenvest/vesting-actors/actors/builtin/token"
	vesting "github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	vm "github.com/tokenvest/vesting-actors/support/vm"
)

func main() {
	// Actors
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/system/cbor_gen.go", "system",
		// actor state
		system.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/account/cbor_gen.go", "account",
		// actor state
		account.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/token/cbor_gen.go", "token",
		// actor state
		token.State{},
		token.Mint{},
		token.Account{},
		// method params and returns
		token.ProgramSignature{},
		token.CreateMintParams{},
		token.MintToParams{},
		token.CreateAccountParams{},
		token.CreateAccountReturn{},
		token.InitializeAccountParams{},
		token.TransferParams{},
		token.GetAccountReturn{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Registry{},
		vesting.Schedule{},
		// method params and returns
		vesting.CreateVestingAccountParams{},
		vesting.CreateVestingAccountReturn{},
		vesting.CreateEmployeeAccountParams{},
		vesting.CreateEmployeeAccountReturn{},
		vesting.ClaimTokensParams{},
		vesting.ClaimTokensReturn{},
	); err != nil {
		panic(err)
	}

	// Host
	if err := gen.WriteTupleEncodersToFile("./support/vm/cbor_gen.go", "vm",
		vm.TestActor{},
	); err != nil {
		panic(err)
	}
}
