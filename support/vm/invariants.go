package vm

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/pkg/errors"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/account"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
)

// ForEachActor iterates every actor record in the current actor tree.
// fn must not call back into the VM.
func (vm *VM) ForEachActor(fn func(a addr.Address, act *TestActor) error) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.forEachActor(fn)
}

func (vm *VM) forEachActor(fn func(a addr.Address, act *TestActor) error) error {
	var act TestActor
	return vm.actors.ForEach(&act, func(k string) error {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return errors.Wrapf(err, "invalid actor key %x", k)
		}
		record := act
		return fn(a, &record)
	})
}

// CheckStateInvariants checks every actor's state, then the relations between vesting registries
// and the token accounts that hold their custody.
// The returned error is reserved for state that cannot be loaded at all.
func (vm *VM) CheckStateInvariants() (*builtin.MessageAccumulator, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	acc := &builtin.MessageAccumulator{}
	var tokenSt *token.State
	var vestingSummary *vesting.StateSummary

	err := vm.forEachActor(func(a addr.Address, act *TestActor) error {
		switch {
		case act.Code.Equals(builtin.AccountActorCodeID):
			var st account.State
			if err := vm.store.Get(vm.ctx, act.Head, &st); err != nil {
				return errors.Wrapf(err, "failed to load account %v", a)
			}
			_, msgs := account.CheckStateInvariants(&st, a)
			acc.WithPrefix("account %v: ", a).AddAll(msgs)
		case act.Code.Equals(builtin.TokenActorCodeID):
			tokenSt = new(token.State)
			if err := vm.store.Get(vm.ctx, act.Head, tokenSt); err != nil {
				return errors.Wrap(err, "failed to load token state")
			}
			_, msgs := token.CheckStateInvariants(tokenSt, vm.store)
			acc.WithPrefix("token: ").AddAll(msgs)
		case act.Code.Equals(builtin.VestingActorCodeID):
			var st vesting.State
			if err := vm.store.Get(vm.ctx, act.Head, &st); err != nil {
				return errors.Wrap(err, "failed to load vesting state")
			}
			summary, msgs := vesting.CheckStateInvariants(&st, vm.store)
			acc.WithPrefix("vesting: ").AddAll(msgs)
			vestingSummary = summary
		case act.Code.Equals(builtin.SystemActorCodeID):
		default:
			acc.Addf("actor %v has unknown code %v", a, act.Code)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if tokenSt != nil && vestingSummary != nil {
		if err := checkCustody(acc, vm, tokenSt, vestingSummary); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Every registry's custodian is a token account of the registry's mint, owned by itself,
// holding at least what the registry's schedules have yet to release.
func checkCustody(acc *builtin.MessageAccumulator, vm *VM, tokenSt *token.State, vestings *vesting.StateSummary) error {
	for a, r := range vestings.Registries {
		racc := acc.WithPrefix("custody of registry %v: ", a)
		custodian, found, err := tokenSt.GetAccount(vm.store, r.Custodian)
		if err != nil {
			return errors.Wrapf(err, "failed to load custodian %v", r.Custodian)
		}
		if !found {
			racc.Addf("custodian %v has no token account", r.Custodian)
			continue
		}
		racc.Require(custodian.Mint == r.TokenType, "custodian holds %v, registry vests %v", custodian.Mint, r.TokenType)
		racc.Require(custodian.Owner == r.Custodian, "custodian owned by %v, not itself", custodian.Owner)

		balance, err := tokenSt.Balance(vm.store, r.Custodian)
		if err != nil {
			return errors.Wrapf(err, "failed to load balance of custodian %v", r.Custodian)
		}
		if outstanding, ok := vestings.Outstanding[a]; ok {
			racc.Require(balance.GreaterThanEqual(outstanding), "custodian balance %v is below the %v outstanding", balance, outstanding)
		}
	}
	return nil
}
