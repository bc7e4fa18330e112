package vm

import (
	"bytes"
	"fmt"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// Invocation expectations
//

// ExpectInvocation describes a call, and the calls it made in turn, that a message should have produced.
// To, Method and Exitcode are always checked. The pointer fields are checked only when set.
type ExpectInvocation struct {
	To       addr.Address
	Method   abi.MethodNum
	Exitcode exitcode.ExitCode

	From   *addr.Address
	Params *objectExpectation
	Ret    *objectExpectation
	// When non-nil, the exact sequence of nested calls. An empty slice expects none.
	SubInvocations []ExpectInvocation
}

// Wraps an expected value, which is compared with the actual one by CBOR encoding.
// A nil value expects a nil object.
func ExpectObject(v cbor.Marshaler) *objectExpectation {
	return &objectExpectation{v}
}

func ExpectAddress(a addr.Address) *addr.Address { return &a }

type objectExpectation struct {
	val cbor.Marshaler
}

func (oe *objectExpectation) matches(actual interface{}) bool {
	if oe.val == nil || actual == nil {
		return oe.val == nil && actual == nil
	}
	m, ok := actual.(cbor.Marshaler)
	if !ok {
		return false
	}
	expected, err := encode(oe.val)
	if err != nil {
		return false
	}
	got, err := encode(m)
	if err != nil {
		return false
	}
	return bytes.Equal(expected, got)
}

func (oe *objectExpectation) String() string {
	return fmt.Sprintf("%v", oe.val)
}

func encode(m cbor.Marshaler) ([]byte, error) {
	var buf bytes.Buffer
	err := m.MarshalCBOR(&buf)
	return buf.Bytes(), err
}

func (ei ExpectInvocation) Matches(t *testing.T, invocation *Invocation) {
	require.NotNil(t, invocation, "no invocation to match")
	ei.matches(t, "", invocation)
}

func (ei ExpectInvocation) matches(t *testing.T, path string, inv *Invocation) {
	here := fmt.Sprintf("%s[%v:%d]", path, inv.Msg.to, inv.Msg.method)

	// a wrong receiver or method means the trees have diverged, so nothing below is comparable
	require.Equal(t, ei.To, inv.Msg.to, "%s receiver", here)
	require.Equal(t, ei.Method, inv.Msg.method, "%s method", here)

	if ei.From != nil {
		assert.Equal(t, *ei.From, inv.Msg.from, "%s sender", here)
	}
	if ei.Params != nil {
		assert.True(t, ei.Params.matches(inv.Msg.params), "%s params: expected %v, got %v", here, ei.Params, inv.Msg.params)
	}
	if ei.SubInvocations != nil {
		require.Len(t, inv.SubInvocations, len(ei.SubInvocations), "%s nested call count: %s", here, describe(inv.SubInvocations))
		for i, sub := range inv.SubInvocations {
			ei.SubInvocations[i].matches(t, fmt.Sprintf("%s%d:", here, i), sub)
		}
	}

	assert.Equal(t, ei.Exitcode, inv.Exitcode, "%s exit code", here)
	if ei.Ret != nil {
		assert.True(t, ei.Ret.matches(inv.Ret), "%s return: expected %v, got %v", here, ei.Ret, inv.Ret)
	}
}

func describe(invs []*Invocation) string {
	var buf bytes.Buffer
	for i, inv := range invs {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "[%v:%d]", inv.Msg.to, inv.Msg.method)
	}
	return buf.String()
}

//
// Message helpers
//

// Applies a message and requires that it succeeds, returning its result.
func ApplyOk(t *testing.T, v *VM, from, to addr.Address, method abi.MethodNum, params interface{}) cbor.Marshaler {
	return ApplyCode(t, v, from, to, method, params, exitcode.Ok)
}

// Applies a message and requires that it exits with the given code.
func ApplyCode(t *testing.T, v *VM, from, to addr.Address, method abi.MethodNum, params interface{}, code exitcode.ExitCode) cbor.Marshaler {
	result, err := v.ApplyMessage(from, to, method, params)
	require.NoError(t, err)
	require.Equal(t, code, result.Code, "unexpected exit code from method %d on %v", method, to)
	return result.Ret
}
