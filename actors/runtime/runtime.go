package runtime

import (
	"context"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
)

// Runtime is the host's interface to an executing actor method.
// This is everything that is accessible to actors, beyond parameters.
type Runtime interface {
	// Information related to the current message being executed.
	Message() Message

	// The current ledger time, in seconds since the unix epoch.
	// Supplied by the host, never by the caller.
	CurrTime() int64

	// Validates the caller against some predicate.
	// Exported actor methods must invoke at least one caller validation before returning.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)
	ValidateImmediateCallerType(types ...cid.Cid)

	// Look up the code ID at an actor address.
	GetActorCodeCID(addr addr.Address) (ret cid.Cid, ok bool)

	// Provides a handle for the actor's state object.
	State() StateHandle

	Store() Store

	// Sends a message to another actor, returning the exit code. The return value, if any, is decoded into out.
	// If the invoked method does not return successfully, its state changes (and that of any messages it sent in turn)
	// will be rolled back.
	Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, out cbor.Er) exitcode.ExitCode

	// Halts execution upon an error from which the receiver cannot recover. The caller will receive the exitcode and
	// an empty return value. State changes made within this call will be rolled back.
	// This method does not return.
	// The message and args are for diagnostic purposes and should be suitable for passing to fmt.Errorf(msg, args...).
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	// Provides the system call interface.
	Syscalls() Syscalls

	// Provides a Go context for use by HAMT, etc.
	// The host is intended to provide an idealised machine abstraction, so this context
	// should not be used by actor code directly.
	Context() context.Context

	// Log writes a diagnostic line at the given level. Logs are not persisted.
	Log(level rt.LogLevel, msg string, args ...interface{})
}

// Store defines the storage module exposed to actors.
type Store interface {
	// Retrieves and deserializes an object from the store into `o`. Returns whether successful.
	StoreGet(c cid.Cid, o cbor.Unmarshaler) bool
	// Serializes and stores an object, returning its CID.
	StorePut(x cbor.Marshaler) cid.Cid
}

// Message contains information available to the actor about the executing message.
type Message interface {
	// The address of the immediate calling actor.
	Caller() addr.Address

	// The address of the actor receiving the message.
	Receiver() addr.Address
}

// Pure functions implemented as primitives by the runtime.
type Syscalls interface {
	// Finds the address owned by the executing actor for the given seeds, along with the
	// bump that places it off the signing curve. Fails if a seed is too long or too many seeds are given.
	FindProgramAddress(seeds ...[]byte) (addr.Address, uint8, error)

	// Recomputes an address owned by the program actor at `program` from seeds and a bump.
	// This is the authority proof for accounts that have no signing key.
	CreateProgramAddress(program addr.Address, bump uint8, seeds ...[]byte) (addr.Address, error)
}

// StateHandle provides mutable, exclusive access to actor state.
type StateHandle interface {
	// Create initializes the state object.
	// This is only valid in a constructor function and when the state has not yet been initialized.
	Create(obj cbor.Marshaler)

	// Readonly loads a readonly copy of the state into the argument.
	//
	// Any modification to the state is illegal and will result in an abort.
	Readonly(obj cbor.Unmarshaler)

	// Transaction loads a mutable version of the state into the `obj` argument and protects
	// the execution from side effects (including message send).
	//
	// The second argument is a function which allows the caller to mutate the state.
	//
	// If the state is modified after this function returns, execution will abort.
	//
	// # Usage
	// ```go
	// var st SomeState
	// rt.State().Transaction(&st, func() {
	//   // make some changes
	//   st.ImLoaded = true
	// })
	// // st.ImLoaded = false // BAD!! state is readonly outside the lambda
	// ```
	Transaction(obj cbor.Er, f func())
}

// VMActor is the interface every actor implementation presents to the host.
type VMActor interface {
	// Exports returns a slice of methods exported by this actor, indexed by method number.
	Exports() []interface{}
	// Code returns the code ID for this actor.
	Code() cid.Cid
	// State returns a new State object for this actor.
	State() cbor.Er
}
