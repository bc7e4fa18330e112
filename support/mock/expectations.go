package mock

import (
	"bytes"
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
)

// What the test expects the next call to do. Verify checks that all of it happened.
type expectations struct {
	validateAny   bool
	validateAddrs []addr.Address
	validateTypes []cid.Cid
	sends         []*expectedSend
}

type expectedSend struct {
	to     addr.Address
	method abi.MethodNum
	params cbor.Marshaler

	ret  cbor.Marshaler
	code exitcode.ExitCode
}

// Params are compared by their serialized form, so equal values built differently still match.
func (s *expectedSend) matches(to addr.Address, method abi.MethodNum, params cbor.Marshaler) bool {
	if s.to != to || s.method != method {
		return false
	}
	if s.params == nil || params == nil {
		return s.params == nil && params == nil
	}
	var expected, actual bytes.Buffer
	if s.params.MarshalCBOR(&expected) != nil || params.MarshalCBOR(&actual) != nil {
		return false
	}
	return bytes.Equal(expected.Bytes(), actual.Bytes())
}

func (s *expectedSend) String() string {
	return fmt.Sprintf("to %v method %d params %v, returning %v with %v", s.to, s.method, s.params, s.ret, s.code)
}

//
// Caller validation
//

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expect.validateAny {
		rt.fail("unexpected validate-caller-any")
	}
	rt.expect.validateAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.require(len(addrs) > 0, "no addresses to validate caller against")
	expected := rt.expect.validateAddrs
	rt.expect.validateAddrs = nil
	if !reflect.DeepEqual(expected, addrs) {
		rt.failNow("unexpected validate caller addrs %v, expected %v", addrs, expected)
	}

	for _, a := range addrs {
		if rt.caller == a {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller %v is not one of %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	rt.requireInCall()
	rt.require(len(types) > 0, "no types to validate caller against")
	expected := rt.expect.validateTypes
	rt.expect.validateTypes = nil
	if !reflect.DeepEqual(expected, types) {
		rt.failNow("unexpected validate caller types %v, expected %v", types, expected)
	}

	for _, t := range types {
		if rt.callerType.Equals(t) {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller type %v is not one of %v", rt.callerType, types)
}

//
// Declaring expectations
//

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expect.validateAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expect.validateAddrs = addrs
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.require(len(types) > 0, "types must be non-empty")
	rt.expect.validateTypes = types
}

// Queues a send the actor must make, in order, and what it will observe in response.
func (rt *Runtime) ExpectSend(to addr.Address, method abi.MethodNum, params cbor.Marshaler, ret cbor.Marshaler, code exitcode.ExitCode) {
	rt.expect.sends = append(rt.expect.sends, &expectedSend{
		to:     to,
		method: method,
		params: params,
		ret:    ret,
		code:   code,
	})
}

// Verifies that every expectation was met, then clears them.
func (rt *Runtime) Verify() {
	if rt.expect.validateAny {
		rt.fail("expected ValidateCallerAny, not received")
	}
	if len(rt.expect.validateAddrs) > 0 {
		rt.fail("expected ValidateCallerAddr %v, not received", rt.expect.validateAddrs)
	}
	if len(rt.expect.validateTypes) > 0 {
		rt.fail("expected ValidateCallerType %v, not received", rt.expect.validateTypes)
	}
	if len(rt.expect.sends) > 0 {
		rt.fail("expected %d more send(s): %v", len(rt.expect.sends), rt.expect.sends)
	}
	rt.Reset()
}

// Clears expectations. Logs and state are kept.
func (rt *Runtime) Reset() {
	rt.expect = expectations{}
}

// Calls f expecting it to abort with a code. State changes made by f are discarded.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.ExpectAbortContainsMessage(expected, "", f)
}

// Calls f expecting it to abort with a code and a message containing substr.
func (rt *Runtime) ExpectAbortContainsMessage(expected exitcode.ExitCode, substr string, f func()) {
	prior := rt.state
	defer func() {
		r := recover()
		if r == nil {
			rt.fail("expected abort with %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.fail("expected abort with %v, got %v: %s", expected, a.code, a.msg)
		}
		if substr != "" && !strings.Contains(a.msg, substr) {
			rt.fail("expected abort message %q to contain %q", a.msg, substr)
		}
		// the host discards the writes of an aborted call
		rt.state = prior
		rt.inTransaction = false
	}()
	f()
}

func (rt *Runtime) ExpectLogsContain(substr string) {
	for _, line := range rt.logs {
		if strings.Contains(line, substr) {
			return
		}
	}
	rt.fail("none of %d log line(s) contain %q", len(rt.logs), substr)
}

// Invokes an exported method as the host would. Aborts escape as panics unless inside ExpectAbort.
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	meth := reflect.ValueOf(method)
	if err := methodShapeError(meth.Type()); err != nil {
		rt.failNow("%v is not an exported method: %v", meth, err)
	}

	rt.inCall = true
	defer func() { rt.inCall = false }()

	arg := reflect.Zero(meth.Type().In(1))
	if params != nil {
		arg = reflect.ValueOf(params)
	}
	return meth.Call([]reflect.Value{reflect.ValueOf(rt), arg})[0].Interface()
}

// Reports why a function cannot be dispatched by the host, or nil if it can:
// the runtime and a pointer to CBOR params in, a single CBOR value out.
func methodShapeError(mt reflect.Type) error {
	switch {
	case mt.Kind() != reflect.Func:
		return fmt.Errorf("not a function")
	case mt.NumIn() != 2:
		return fmt.Errorf("takes %d parameters, not 2", mt.NumIn())
	case mt.In(0) != typeOfRuntimeInterface:
		return fmt.Errorf("first parameter is %v, not the runtime", mt.In(0))
	case mt.In(1).Kind() != reflect.Ptr:
		return fmt.Errorf("params %v are not a pointer", mt.In(1))
	case !mt.In(1).Implements(typeOfCborUnmarshaler):
		return fmt.Errorf("params %v are not CBOR-unmarshalable", mt.In(1))
	case mt.NumOut() != 1:
		return fmt.Errorf("returns %d values, not 1", mt.NumOut())
	case !mt.Out(0).Implements(typeOfCborMarshaler):
		return fmt.Errorf("return %v is not CBOR-marshalable", mt.Out(0))
	}
	return nil
}

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "runtime used outside of a method call")
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failNow(msg, args...)
	}
}

func (rt *Runtime) fail(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Logf(msg, args...)
	rt.t.Logf("%s", debug.Stack())
	rt.t.Fail()
}

func (rt *Runtime) failNow(msg string, args ...interface{}) {
	rt.t.Helper()
	rt.t.Logf(msg, args...)
	rt.t.Logf("%s", debug.Stack())
	rt.t.FailNow()
}
