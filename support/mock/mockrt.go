package mock

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"github.com/tokenvest/vesting-actors/actors/runtime"
)

// A mock runtime for unit testing of actors in isolation.
// Tests set the context an actor observes (time, caller, receiver, the code of other actors),
// declare the caller validations and sends they expect, then Call an exported method and Verify.
// State lives in an in-memory block map; sends never reach another actor.
type Runtime struct {
	ctx context.Context
	t   testing.TB

	now          int64
	receiver     addr.Address
	receiverType cid.Cid
	caller       addr.Address
	callerType   cid.Cid
	codes        map[addr.Address]cid.Cid

	state         cid.Cid
	blocks        map[cid.Cid][]byte
	inCall        bool
	inTransaction bool
	logs          []string

	expect expectations
}

var _ runtime.Runtime = &Runtime{}
var _ runtime.StateHandle = &Runtime{}
var _ runtime.Store = &Runtime{}
var _ runtime.Message = &Runtime{}

var (
	typeOfRuntimeInterface = reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
	typeOfCborUnmarshaler  = reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()
	typeOfCborMarshaler    = reflect.TypeOf((*cbor.Marshaler)(nil)).Elem()
)

var blockCids = cid.V1Builder{Codec: cid.DagCBOR, MhType: mh.SHA2_256}

//
// Runtime
//

func (rt *Runtime) Message() runtime.Message {
	rt.requireInCall()
	return rt
}

func (rt *Runtime) CurrTime() int64 {
	rt.requireInCall()
	return rt.now
}

func (rt *Runtime) GetActorCodeCID(a addr.Address) (cid.Cid, bool) {
	rt.requireInCall()
	code, ok := rt.codes[a]
	return code, ok
}

func (rt *Runtime) State() runtime.StateHandle {
	rt.requireInCall()
	return rt
}

// Usable outside a call, so tests can read collections through adt.AsStore(rt).
func (rt *Runtime) Store() runtime.Store {
	return rt
}

func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

func (rt *Runtime) Syscalls() runtime.Syscalls {
	rt.requireInCall()
	return syscaller{rt}
}

// Send answers from the head of the expected-send queue.
func (rt *Runtime) Send(to addr.Address, method abi.MethodNum, params cbor.Marshaler, out cbor.Er) exitcode.ExitCode {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "send to %v within transaction", to)
	}
	if len(rt.expect.sends) == 0 {
		rt.failNow("unexpected send to %v method %d params %v", to, method, params)
	}
	next := rt.expect.sends[0]
	rt.expect.sends = rt.expect.sends[1:]

	if !next.matches(to, method, params) {
		rt.fail("send does not match expectation\n  got:      to %v method %d params %v\n  expected: %v", to, method, params, next)
	}
	if next.code.IsSuccess() && next.ret != nil && out != nil {
		if err := roundTrip(next.ret, out); err != nil {
			rt.failNow("failed to decode send return into %T: %v", out, err)
		}
	}
	return next.code
}

func (rt *Runtime) Abortf(code exitcode.ExitCode, msg string, args ...interface{}) {
	rt.requireInCall()
	reason := fmt.Sprintf(msg, args...)
	rt.t.Logf("abort %v: %s", code, reason)
	panic(abort{code, reason})
}

func (rt *Runtime) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	line := fmt.Sprintf(msg, args...)
	rt.logs = append(rt.logs, line)
	rt.t.Logf("[%v] %s", level, line)
}

//
// Message
//

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

//
// Store
//

func (rt *Runtime) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	data, found := rt.blocks[c]
	if !found {
		return false
	}
	if err := o.UnmarshalCBOR(bytes.NewReader(data)); err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to decode %v as %T: %v", c, o, err)
	}
	return true
}

func (rt *Runtime) StorePut(o cbor.Marshaler) cid.Cid {
	var buf bytes.Buffer
	if err := o.MarshalCBOR(&buf); err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to encode %T: %v", o, err)
	}
	c, err := blockCids.Sum(buf.Bytes())
	if err != nil {
		rt.Abortf(exitcode.ErrSerialization, "failed to hash %T: %v", o, err)
	}
	rt.blocks[c] = buf.Bytes()
	return c
}

//
// StateHandle
//

func (rt *Runtime) Create(obj cbor.Marshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed at %v", rt.state)
	}
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) Readonly(obj cbor.Unmarshaler) {
	if !rt.StoreGet(rt.state, obj) {
		rt.failNow("actor state not found at %v", rt.state)
	}
}

func (rt *Runtime) Transaction(obj cbor.Er, f func()) {
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "nested transaction")
	}
	rt.Readonly(obj)
	rt.inTransaction = true
	defer func() { rt.inTransaction = false }()
	f()
	rt.state = rt.StorePut(obj)
}

//
// Inspection
//

func (rt *Runtime) GetReceiver() addr.Address {
	return rt.receiver
}

// The root of the actor's state, which is unchanged by an aborted call.
func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

func (rt *Runtime) GetState(o cbor.Unmarshaler) {
	data, found := rt.blocks[rt.state]
	if !found {
		rt.failNow("no state at root %v", rt.state)
	}
	if err := o.UnmarshalCBOR(bytes.NewReader(data)); err != nil {
		rt.failNow("failed to decode state as %T: %v", o, err)
	}
}

// Replaces the actor state, e.g. to stage a scenario directly.
func (rt *Runtime) ReplaceState(o cbor.Marshaler) {
	rt.state = rt.StorePut(o)
}

func (rt *Runtime) GetTime() int64 {
	return rt.now
}

// Lines logged by the actor since the runtime was built. Verify does not clear them.
func (rt *Runtime) Logs() []string {
	return rt.logs
}

//
// Context setters
//

// Sets the immediate caller and records its code, so it can also be looked up as an actor.
func (rt *Runtime) SetCaller(address addr.Address, code cid.Cid) {
	rt.caller = address
	rt.callerType = code
	rt.codes[address] = code
}

func (rt *Runtime) SetTime(now int64) {
	rt.now = now
}

func (rt *Runtime) AdvanceTime(seconds int64) {
	rt.now += seconds
}

func (rt *Runtime) SetAddressActorType(address addr.Address, code cid.Cid) {
	rt.codes[address] = code
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

func roundTrip(from cbor.Marshaler, into cbor.Unmarshaler) error {
	var buf bytes.Buffer
	if err := from.MarshalCBOR(&buf); err != nil {
		return err
	}
	return into.UnmarshalCBOR(&buf)
}
