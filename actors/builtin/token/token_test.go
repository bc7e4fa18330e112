package token_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/mock"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, token.Actor{})
}

func TestConstruction(t *testing.T) {
	actor := tokenHarness{t: t}
	builder := mock.NewBuilder(context.Background(), builtin.TokenActorAddr).
		WithReceiverType(builtin.TokenActorCodeID).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

	t.Run("simple construction", func(t *testing.T) {
		rt := builder.Build(t)
		actor.constructAndVerify(rt)

		var st token.State
		rt.GetState(&st)
		_, msgs := token.CheckStateInvariants(&st, adt.AsStore(rt))
		assert.True(t, msgs.IsEmpty(), msgs.Messages())
	})

	t.Run("fails when caller is not the system actor", func(t *testing.T) {
		rt := builder.Build(t)
		rt.SetCaller(tutil.NewIDAddr(t, 100), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(actor.Constructor, nil)
		})
		rt.Verify()
	})
}

func TestMintAndTransfer(t *testing.T) {
	ids := tutil.NewIDAddrs(t, 100, 3)
	authority, alice, bob := ids[0], ids[1], ids[2]
	mintAddr := tutil.NewIDAddr(t, 200)
	otherMint := tutil.NewIDAddr(t, 201)

	setup := func(t *testing.T) (*mock.Runtime, *tokenHarness) {
		actor := &tokenHarness{t: t}
		rt := mock.NewBuilder(context.Background(), builtin.TokenActorAddr).
			WithReceiverType(builtin.TokenActorCodeID).
			WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID).
			Build(t)
		actor.constructAndVerify(rt)
		actor.createMint(rt, authority, mintAddr, token.DefaultDecimals)
		return rt, actor
	}

	t.Run("duplicate mint is rejected", func(t *testing.T) {
		rt, actor := setup(t)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "already exists", func() {
			rt.Call(actor.CreateMint, &token.CreateMintParams{Mint: mintAddr, Decimals: 6})
		})
		rt.Verify()

		var st token.State
		rt.GetState(&st)
		mint, found, err := st.GetMint(adt.AsStore(rt), mintAddr)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, authority, mint.Authority)
		assert.Equal(t, uint8(token.DefaultDecimals), mint.Decimals)
	})

	t.Run("associated account address is derived from owner and mint", func(t *testing.T) {
		rt, actor := setup(t)
		acct := actor.createAccount(rt, alice, alice, mintAddr)

		expected, _ := tutil.NewDerivedAddr(t, builtin.TokenProgramKey, alice.Bytes(), mintAddr.Bytes())
		assert.Equal(t, expected, acct)

		// a second creation collides
		rt.SetCaller(bob, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.CreateAccount, &token.CreateAccountParams{Owner: alice, Mint: mintAddr})
		})
		rt.Verify()
	})

	t.Run("account for unknown mint is rejected", func(t *testing.T) {
		rt, actor := setup(t)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(actor.CreateAccount, &token.CreateAccountParams{Owner: alice, Mint: otherMint})
		})
		rt.Verify()
	})

	t.Run("only the authority may mint", func(t *testing.T) {
		rt, actor := setup(t)
		acct := actor.createAccount(rt, alice, alice, mintAddr)

		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.MintTo, &token.MintToParams{Account: acct, Amount: big.NewInt(1)})
		})
		rt.Verify()

		actor.mintTo(rt, authority, acct, big.NewInt(1000))
		assert.Equal(t, big.NewInt(1000), actor.getAccount(rt, acct).Amount)
		actor.checkState(rt)
	})

	t.Run("owner transfers between accounts of one mint", func(t *testing.T) {
		rt, actor := setup(t)
		from := actor.createAccount(rt, alice, alice, mintAddr)
		to := actor.createAccount(rt, bob, bob, mintAddr)
		actor.mintTo(rt, authority, from, big.NewInt(1000))

		actor.transfer(rt, alice, &token.TransferParams{From: from, To: to, Amount: big.NewInt(400)})

		assert.Equal(t, big.NewInt(600), actor.getAccount(rt, from).Amount)
		ret := actor.getAccount(rt, to)
		assert.Equal(t, big.NewInt(400), ret.Amount)
		assert.Equal(t, bob, ret.Owner)
		assert.Equal(t, mintAddr, ret.Mint)
		actor.checkState(rt)
	})

	t.Run("transfer failures leave balances unchanged", func(t *testing.T) {
		rt, actor := setup(t)
		from := actor.createAccount(rt, alice, alice, mintAddr)
		to := actor.createAccount(rt, bob, bob, mintAddr)
		actor.mintTo(rt, authority, from, big.NewInt(1000))

		rt.SetCaller(authority, builtin.AccountActorCodeID)
		actor.createMint(rt, authority, otherMint, 6)
		foreign := actor.createAccount(rt, bob, bob, otherMint)

		for _, tc := range []struct {
			desc   string
			caller addr.Address
			params token.TransferParams
			code   exitcode.ExitCode
		}{
			{"insufficient funds", alice, token.TransferParams{From: from, To: to, Amount: big.NewInt(1001)}, exitcode.ErrInsufficientFunds},
			{"not the owner", bob, token.TransferParams{From: from, To: to, Amount: big.NewInt(1)}, exitcode.ErrForbidden},
			{"mint mismatch", alice, token.TransferParams{From: from, To: foreign, Amount: big.NewInt(1)}, exitcode.ErrIllegalArgument},
			{"zero amount", alice, token.TransferParams{From: from, To: to, Amount: big.Zero()}, exitcode.ErrIllegalArgument},
			{"unknown destination", alice, token.TransferParams{From: from, To: tutil.NewIDAddr(t, 999), Amount: big.NewInt(1)}, exitcode.ErrNotFound},
		} {
			params := tc.params
			rt.SetCaller(tc.caller, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerAny()
			rt.ExpectAbort(tc.code, func() {
				rt.Call(actor.Transfer, &params)
			})
			rt.Verify()
		}

		assert.Equal(t, big.NewInt(1000), actor.getAccount(rt, from).Amount)
		assert.Equal(t, big.Zero(), actor.getAccount(rt, to).Amount)
		actor.checkState(rt)
	})
}

func TestProgramAccounts(t *testing.T) {
	authority := tutil.NewIDAddr(t, 100)
	mintAddr := tutil.NewIDAddr(t, 200)
	seeds := [][]byte{[]byte("vesting_treasury"), []byte("acme")}
	custodian, bump := tutil.NewDerivedAddr(t, builtin.VestingProgramKey, seeds...)

	setup := func(t *testing.T) (*mock.Runtime, *tokenHarness) {
		actor := &tokenHarness{t: t}
		rt := mock.NewBuilder(context.Background(), builtin.TokenActorAddr).
			WithReceiverType(builtin.TokenActorCodeID).
			WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID).
			Build(t)
		actor.constructAndVerify(rt)
		actor.createMint(rt, authority, mintAddr, token.DefaultDecimals)
		return rt, actor
	}

	initialize := func(rt *mock.Runtime, actor *tokenHarness, sig token.ProgramSignature) {
		rt.SetCaller(builtin.VestingActorAddr, builtin.VestingActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesProgram...)
		rt.Call(actor.InitializeAccount, &token.InitializeAccountParams{
			Account:   custodian,
			Mint:      mintAddr,
			Owner:     custodian,
			Authority: sig,
		})
		rt.Verify()
	}

	t.Run("program initializes and spends its derived account", func(t *testing.T) {
		rt, actor := setup(t)
		initialize(rt, actor, token.ProgramSignature{Seeds: seeds, Bump: bump})
		dest := actor.createAccount(rt, authority, authority, mintAddr)
		actor.mintTo(rt, authority, custodian, big.NewInt(500))

		actor.transfer(rt, builtin.VestingActorAddr, &token.TransferParams{
			From:      custodian,
			To:        dest,
			Amount:    big.NewInt(200),
			Authority: token.ProgramSignature{Seeds: seeds, Bump: bump},
		})
		assert.Equal(t, big.NewInt(300), actor.getAccount(rt, custodian).Amount)
		assert.Equal(t, big.NewInt(200), actor.getAccount(rt, dest).Amount)
		actor.checkState(rt)
	})

	t.Run("initialization requires a valid derivation", func(t *testing.T) {
		rt, actor := setup(t)
		rt.SetCaller(builtin.VestingActorAddr, builtin.VestingActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesProgram...)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.InitializeAccount, &token.InitializeAccountParams{
				Account:   custodian,
				Mint:      mintAddr,
				Owner:     custodian,
				Authority: token.ProgramSignature{Seeds: [][]byte{[]byte("vesting_treasury"), []byte("other")}, Bump: bump},
			})
		})
		rt.Verify()
	})

	t.Run("accounts cannot initialize program accounts", func(t *testing.T) {
		rt, actor := setup(t)
		rt.SetCaller(authority, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesProgram...)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(actor.InitializeAccount, &token.InitializeAccountParams{
				Account:   custodian,
				Mint:      mintAddr,
				Owner:     custodian,
				Authority: token.ProgramSignature{Seeds: seeds, Bump: bump},
			})
		})
		rt.Verify()
	})

	t.Run("spending a derived account requires the proof", func(t *testing.T) {
		rt, actor := setup(t)
		initialize(rt, actor, token.ProgramSignature{Seeds: seeds, Bump: bump})
		dest := actor.createAccount(rt, authority, authority, mintAddr)
		actor.mintTo(rt, authority, custodian, big.NewInt(500))

		for _, sig := range []token.ProgramSignature{
			{},
			{Seeds: [][]byte{[]byte("vesting_treasury"), []byte("other")}, Bump: bump},
			{Seeds: seeds, Bump: bump - 1},
		} {
			rt.SetCaller(builtin.VestingActorAddr, builtin.VestingActorCodeID)
			rt.ExpectValidateCallerAny()
			rt.ExpectAbort(exitcode.ErrForbidden, func() {
				rt.Call(actor.Transfer, &token.TransferParams{From: custodian, To: dest, Amount: big.NewInt(1), Authority: sig})
			})
			rt.Verify()
		}

		// the right seeds presented by a party that is not the deriving program
		rt.SetCaller(authority, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.Transfer, &token.TransferParams{From: custodian, To: dest, Amount: big.NewInt(1), Authority: token.ProgramSignature{Seeds: seeds, Bump: bump}})
		})
		rt.Verify()

		assert.Equal(t, big.NewInt(500), actor.getAccount(rt, custodian).Amount)
	})
}

type tokenHarness struct {
	token.Actor
	t testing.TB
}

func (h *tokenHarness) constructAndVerify(rt *mock.Runtime) {
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Constructor, nil)
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *tokenHarness) createMint(rt *mock.Runtime, authority, mint addr.Address, decimals uint8) {
	rt.SetCaller(authority, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.CreateMint, &token.CreateMintParams{Mint: mint, Decimals: decimals})
	rt.Verify()
}

func (h *tokenHarness) createAccount(rt *mock.Runtime, caller, owner, mint addr.Address) addr.Address {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.CreateAccount, &token.CreateAccountParams{Owner: owner, Mint: mint}).(*token.CreateAccountReturn)
	rt.Verify()
	return ret.Account
}

func (h *tokenHarness) mintTo(rt *mock.Runtime, authority, account addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(authority, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAny()
	rt.Call(h.MintTo, &token.MintToParams{Account: account, Amount: amount})
	rt.Verify()
}

func (h *tokenHarness) transfer(rt *mock.Runtime, caller addr.Address, params *token.TransferParams) {
	code := builtin.AccountActorCodeID
	if caller == builtin.VestingActorAddr {
		code = builtin.VestingActorCodeID
	}
	rt.SetCaller(caller, code)
	rt.ExpectValidateCallerAny()
	rt.Call(h.Transfer, params)
	rt.Verify()
}

func (h *tokenHarness) getAccount(rt *mock.Runtime, account addr.Address) *token.GetAccountReturn {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.GetAccount, &account).(*token.GetAccountReturn)
	rt.Verify()
	return ret
}

func (h *tokenHarness) checkState(rt *mock.Runtime) {
	var st token.State
	rt.GetState(&st)
	_, msgs := token.CheckStateInvariants(&st, adt.AsStore(rt))
	assert.True(h.t, msgs.IsEmpty(), msgs.Messages())
}
