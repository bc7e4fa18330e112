package vm

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/crypto"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/support/ipld"
)

var typeOfCborUnmarshaler = reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()

// Context for an individual message invocation, including inter-actor sends.
type invocationContext struct {
	rt               *VM
	msg              InternalMessage
	fromActor        *TestActor
	toActor          *TestActor
	invocation       *Invocation
	allowSideEffects bool
	callerValidated  bool
}

func newInvocationContext(rt *VM, msg InternalMessage, fromActor *TestActor, invocation *Invocation) *invocationContext {
	return &invocationContext{
		rt:               rt,
		msg:              msg,
		fromActor:        fromActor,
		invocation:       invocation,
		allowSideEffects: true,
	}
}

var _ runtime.Runtime = (*invocationContext)(nil)
var _ runtime.StateHandle = (*invocationContext)(nil)
var _ runtime.Store = (*invocationContext)(nil)
var _ runtime.Syscalls = (*invocationContext)(nil)

func (ic *invocationContext) invoke() (ret cbor.Marshaler, errcode exitcode.ExitCode) {
	// recover from aborts, which are the actor's way of exiting with a code
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			log.Debugw("invocation aborted", "to", ic.msg.to, "method", ic.msg.method, "exitcode", a.code, "msg", a.msg)
			ret = nil
			errcode = a.code
		}
	}()

	toActor, found, err := ic.rt.getActor(ic.msg.to)
	if err != nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to load receiver: %s", err)
	}
	if !found {
		ic.Abortf(exitcode.SysErrInvalidReceiver, "no actor at %v", ic.msg.to)
	}
	ic.toActor = toActor

	// there is no value to move, so a bare send is a no-op
	if ic.msg.method == builtin.MethodSend {
		return nil, exitcode.Ok
	}

	actorImpl := ic.rt.getActorImpl(toActor.Code)
	exports := actorImpl.Exports()
	if uint64(ic.msg.method) >= uint64(len(exports)) || exports[ic.msg.method] == nil {
		ic.Abortf(exitcode.SysErrInvalidMethod, "no method %d on actor %s", ic.msg.method, builtin.ActorNameByCode(toActor.Code))
	}
	m := reflect.ValueOf(exports[ic.msg.method])
	params := ic.coerceParams(m.Type().In(1))

	out := m.Call([]reflect.Value{reflect.ValueOf(ic), params})
	if !ic.callerValidated {
		ic.Abortf(exitcode.SysErrorIllegalActor, "caller validation not performed by %s method %d",
			builtin.ActorNameByCode(toActor.Code), ic.msg.method)
	}

	if out[0].IsNil() {
		return nil, exitcode.Ok
	}
	marshaler, ok := out[0].Interface().(cbor.Marshaler)
	if !ok {
		ic.Abortf(exitcode.SysErrorIllegalActor, "return value %T is not serializable", out[0].Interface())
	}
	return marshaler, exitcode.Ok
}

// Converts the message parameters to the type the method expects, round-tripping through CBOR where they differ.
func (ic *invocationContext) coerceParams(paramType reflect.Type) reflect.Value {
	if ic.msg.params == nil {
		return reflect.New(paramType.Elem())
	}
	if reflect.TypeOf(ic.msg.params) == paramType {
		return reflect.ValueOf(ic.msg.params)
	}
	marshaler, ok := ic.msg.params.(cbor.Marshaler)
	if !ok {
		ic.Abortf(exitcode.ErrSerialization, "parameters %T are not serializable", ic.msg.params)
	}
	if !paramType.Implements(typeOfCborUnmarshaler) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "method parameter type %v cannot be deserialized", paramType)
	}

	buf := new(bytes.Buffer)
	if err := marshaler.MarshalCBOR(buf); err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to serialize parameters: %s", err)
	}
	params := reflect.New(paramType.Elem())
	if err := params.Interface().(cbor.Unmarshaler).UnmarshalCBOR(buf); err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to deserialize parameters as %v: %s", paramType, err)
	}
	return params
}

///////////////////////////////////////////////////////////////////////////////
// Runtime
///////////////////////////////////////////////////////////////////////////////

func (ic *invocationContext) Message() runtime.Message {
	return ic
}

func (ic *invocationContext) Caller() addr.Address {
	return ic.msg.from
}

func (ic *invocationContext) Receiver() addr.Address {
	return ic.msg.to
}

func (ic *invocationContext) CurrTime() int64 {
	return ic.rt.now
}

func (ic *invocationContext) ValidateImmediateCallerAcceptAny() {
	ic.assertf(!ic.callerValidated, exitcode.SysErrorIllegalActor, "caller has been double validated")
	ic.callerValidated = true
}

func (ic *invocationContext) ValidateImmediateCallerIs(addrs ...addr.Address) {
	ic.assertf(!ic.callerValidated, exitcode.SysErrorIllegalActor, "caller has been double validated")
	ic.callerValidated = true
	for _, a := range addrs {
		if a == ic.msg.from {
			return
		}
	}
	ic.Abortf(exitcode.SysErrForbidden, "caller %v is not one of supported %v", ic.msg.from, addrs)
}

func (ic *invocationContext) ValidateImmediateCallerType(types ...cid.Cid) {
	ic.assertf(!ic.callerValidated, exitcode.SysErrorIllegalActor, "caller has been double validated")
	ic.callerValidated = true
	for _, t := range types {
		if t.Equals(ic.fromActor.Code) {
			return
		}
	}
	ic.Abortf(exitcode.SysErrForbidden, "caller type %v is not one of supported %v", ic.fromActor.Code, types)
}

func (ic *invocationContext) GetActorCodeCID(a addr.Address) (ret cid.Cid, ok bool) {
	act, found, err := ic.rt.getActor(a)
	if err != nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to load actor %v: %s", a, err)
	}
	if !found {
		return cid.Undef, false
	}
	return act.Code, true
}

func (ic *invocationContext) State() runtime.StateHandle {
	return ic
}

func (ic *invocationContext) Store() runtime.Store {
	return ic
}

func (ic *invocationContext) Syscalls() runtime.Syscalls {
	return ic
}

func (ic *invocationContext) Context() context.Context {
	return ic.rt.ctx
}

func (ic *invocationContext) Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, out cbor.Er) exitcode.ExitCode {
	if !ic.allowSideEffects {
		ic.Abortf(exitcode.SysErrorIllegalActor, "calling Send() is not allowed during side-effect lock")
	}

	// refresh the sender, whose state may have been written since this invocation began
	from, found, err := ic.rt.getActor(ic.msg.to)
	if err != nil || !found {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to load sending actor %v: %v", ic.msg.to, err)
	}

	// checkpoint so a failed callee rolls back only its own changes
	priorRoot, err := ic.rt.checkpoint()
	if err != nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to checkpoint: %s", err)
	}

	msg := InternalMessage{from: ic.msg.to, to: toAddr, method: methodNum, params: params}
	invocation := &Invocation{Msg: &msg}
	newCtx := newInvocationContext(ic.rt, msg, from, invocation)
	ret, code := newCtx.invoke()
	invocation.Exitcode = code
	invocation.Ret = ret
	ic.invocation.SubInvocations = append(ic.invocation.SubInvocations, invocation)

	if !code.IsSuccess() {
		if err := ic.rt.rollback(priorRoot); err != nil {
			ic.Abortf(exitcode.SysErrorIllegalActor, "failed to roll back: %s", err)
		}
		return code
	}

	if out != nil {
		if ret == nil {
			ic.Abortf(exitcode.ErrSerialization, "method %d on %v returned no value", methodNum, toAddr)
		}
		buf := new(bytes.Buffer)
		if err := ret.MarshalCBOR(buf); err != nil {
			ic.Abortf(exitcode.ErrSerialization, "failed to serialize return value: %s", err)
		}
		if err := out.UnmarshalCBOR(buf); err != nil {
			ic.Abortf(exitcode.ErrSerialization, "failed to deserialize return value into %T: %s", out, err)
		}
	}
	return code
}

func (ic *invocationContext) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	ic.rt.Abortf(errExitCode, msg, args...)
}

func (ic *invocationContext) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	line := fmt.Sprintf(msg, args...)
	ic.rt.logs = append(ic.rt.logs, line)

	actor := builtin.ActorNameByCode(ic.toActor.Code)
	switch level {
	case rtt.DEBUG:
		log.Debugw(line, "actor", actor)
	case rtt.INFO:
		log.Infow(line, "actor", actor)
	case rtt.WARN:
		log.Warnw(line, "actor", actor)
	case rtt.ERROR:
		log.Errorw(line, "actor", actor)
	}
}

func (ic *invocationContext) assertf(predicate bool, code exitcode.ExitCode, msg string, args ...interface{}) {
	if !predicate {
		ic.Abortf(code, msg, args...)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Syscalls
///////////////////////////////////////////////////////////////////////////////

func (ic *invocationContext) FindProgramAddress(seeds ...[]byte) (addr.Address, uint8, error) {
	key, ok := builtin.ProgramKeyForCode(ic.toActor.Code)
	if !ok {
		return addr.Undef, 0, xerrors.Errorf("actor %s does not derive addresses", builtin.ActorNameByCode(ic.toActor.Code))
	}
	return crypto.FindProgramAddress(key, seeds...)
}

func (ic *invocationContext) CreateProgramAddress(program addr.Address, bump uint8, seeds ...[]byte) (addr.Address, error) {
	code, ok := ic.GetActorCodeCID(program)
	if !ok {
		return addr.Undef, xerrors.Errorf("no program actor at %v", program)
	}
	key, ok := builtin.ProgramKeyForCode(code)
	if !ok {
		return addr.Undef, xerrors.Errorf("actor %v does not derive addresses", program)
	}
	return crypto.CreateProgramAddress(key, bump, seeds...)
}

///////////////////////////////////////////////////////////////////////////////
// Store
///////////////////////////////////////////////////////////////////////////////

func (ic *invocationContext) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	if err := ic.rt.store.Get(ic.rt.ctx, c, o); err != nil {
		if xerrors.Is(err, ipld.ErrNotFound) {
			return false
		}
		ic.Abortf(exitcode.ErrSerialization, "failed to load %s: %s", c, err)
	}
	return true
}

func (ic *invocationContext) StorePut(x cbor.Marshaler) cid.Cid {
	c, err := ic.rt.store.Put(ic.rt.ctx, x)
	if err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to store object: %s", err)
	}
	return c
}

///////////////////////////////////////////////////////////////////////////////
// StateHandle
///////////////////////////////////////////////////////////////////////////////

func (ic *invocationContext) Create(obj cbor.Marshaler) {
	actr := ic.loadActor()
	if actr.Head.Defined() && !actr.Head.Equals(ic.rt.emptyObject) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to construct actor state: already initialized")
	}
	ic.replace(actr, obj)
}

func (ic *invocationContext) Readonly(obj cbor.Unmarshaler) {
	actr := ic.loadActor()
	if !ic.StoreGet(actr.Head, obj) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to get actor state for %v", ic.msg.to)
	}
}

func (ic *invocationContext) Transaction(obj cbor.Er, f func()) {
	if obj == nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "must not pass nil to Transaction()")
	}

	actr := ic.loadActor()
	if !ic.StoreGet(actr.Head, obj) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to get actor state for %v", ic.msg.to)
	}

	ic.allowSideEffects = false
	f()
	ic.allowSideEffects = true

	ic.replace(actr, obj)
}

func (ic *invocationContext) loadActor() *TestActor {
	actr, found, err := ic.rt.getActor(ic.msg.to)
	if err != nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to load actor %v: %s", ic.msg.to, err)
	}
	if !found {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to find actor %v for state", ic.msg.to)
	}
	return actr
}

func (ic *invocationContext) replace(actr *TestActor, obj cbor.Marshaler) {
	actr.Head = ic.StorePut(obj)
	if err := ic.rt.setActor(ic.msg.to, actr); err != nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to write actor %v: %s", ic.msg.to, err)
	}
	ic.toActor = actr
}
