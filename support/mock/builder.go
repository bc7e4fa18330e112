package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"
)

// Fluent configuration of a mock runtime, shared across the runtimes of a test.
type RuntimeBuilder struct {
	ctx          context.Context
	receiver     addr.Address
	receiverType cid.Cid
	caller       addr.Address
	callerType   cid.Cid
	now          int64
	codes        map[addr.Address]cid.Cid
}

// Starts a builder for a runtime executing as the actor at receiver.
func NewBuilder(ctx context.Context, receiver addr.Address) *RuntimeBuilder {
	return &RuntimeBuilder{
		ctx:      ctx,
		receiver: receiver,
		codes:    map[addr.Address]cid.Cid{},
	}
}

// Builds a runtime with fresh state and no expectations. Each runtime gets its own copy of the configuration.
func (b *RuntimeBuilder) Build(t testing.TB) *Runtime {
	codes := make(map[addr.Address]cid.Cid, len(b.codes))
	for a, c := range b.codes {
		codes[a] = c
	}
	return &Runtime{
		ctx:          b.ctx,
		t:            t,
		now:          b.now,
		receiver:     b.receiver,
		receiverType: b.receiverType,
		caller:       b.caller,
		callerType:   b.callerType,
		codes:        codes,
		state:        cid.Undef,
		blocks:       map[cid.Cid][]byte{},
	}
}

// Sets the ledger time observed by the actor, in unix seconds.
func (b *RuntimeBuilder) WithTime(now int64) *RuntimeBuilder {
	b.now = now
	return b
}

func (b *RuntimeBuilder) WithCaller(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.caller = address
	b.callerType = code
	return b
}

// Sets the code of the receiving actor, which determines the key it derives addresses under.
func (b *RuntimeBuilder) WithReceiverType(code cid.Cid) *RuntimeBuilder {
	b.receiverType = code
	return b
}

// Registers the code of some other actor, for GetActorCodeCID and derivation proofs.
func (b *RuntimeBuilder) WithActorType(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.codes[address] = code
	return b
}
