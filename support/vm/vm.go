package vm

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/minio/blake2b-simd"
	"github.com/pkg/errors"

	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/exported"
	"github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/ipld"
)

var log = logging.Logger("vm")

// VM is a simplified message execution framework for the purposes of testing inter-actor communication.
// The VM maintains actor state and can be used to simulate message validation for a single ledger.
// Messages are applied one at a time: concurrent callers of ApplyMessage are serialized,
// and the exported readers observe the tree between messages, never during one.
type VM struct {
	ctx         context.Context
	mu          sync.Mutex
	actorImpls  ActorImplLookup
	blocks      ipld.IterableBlockstore
	store       adt.Store
	currentRoot cid.Cid
	actors      *adt.Map
	emptyObject cid.Cid
	now         int64
	nextID      uint64

	logs        []string
	invocations []*Invocation
}

// ActorImplLookup maps actor code IDs to their implementations.
type ActorImplLookup map[cid.Cid]runtime.VMActor

// TestActor is the host's record of an actor: its code and the root of its state.
type TestActor struct {
	Head       cid.Cid
	Code       cid.Cid
	CallSeqNum uint64
}

// MessageResult is the outcome of a top-level message.
type MessageResult struct {
	Ret  cbor.Marshaler
	Code exitcode.ExitCode
	// Digest committing to the sender, receiver, method, sequence number, exit code and return value.
	Receipt [32]byte
}

// InternalMessage is a message as seen by the receiving actor.
type InternalMessage struct {
	from   addr.Address
	to     addr.Address
	method abi.MethodNum
	params interface{}
}

// Invocation records one (possibly nested) method call and its result.
type Invocation struct {
	Msg            *InternalMessage
	Exitcode       exitcode.ExitCode
	Ret            cbor.Marshaler
	SubInvocations []*Invocation
}

// LookupBuiltinActors indexes the exported actor set by code.
func LookupBuiltinActors() ActorImplLookup {
	lookup := ActorImplLookup{}
	for _, ba := range exported.BuiltinActors() {
		lookup[ba.Code()] = ba
	}
	return lookup
}

// NewVM creates a VM with an empty actor tree over the given blockstore.
func NewVM(ctx context.Context, actorImpls ActorImplLookup, bs ipld.IterableBlockstore) (*VM, error) {
	store := adt.WrapBlockStore(ctx, bs)
	actors, err := adt.MakeEmptyMap(store, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor tree")
	}
	root, err := actors.Root()
	if err != nil {
		return nil, errors.Wrap(err, "failed to flush actor tree")
	}
	return newVMAtRoot(ctx, actorImpls, bs, root)
}

func newVMAtRoot(ctx context.Context, actorImpls ActorImplLookup, bs ipld.IterableBlockstore, root cid.Cid) (*VM, error) {
	store := adt.WrapBlockStore(ctx, bs)
	actors, err := adt.AsMap(store, root, adt.DefaultHamtBitwidth)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load actor tree at %s", root)
	}
	emptyObject, err := store.Put(ctx, runtime.CBORBytes([]byte{0x80}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store empty object")
	}
	return &VM{
		ctx:         ctx,
		actorImpls:  actorImpls,
		blocks:      bs,
		store:       store,
		currentRoot: root,
		actors:      actors,
		emptyObject: emptyObject,
		nextID:      builtin.FirstNonSingletonActorId,
	}, nil
}

// ApplyMessage executes a top-level message from an account actor.
// A message that exits with a non-zero code leaves the actor tree as it was before the message.
// The returned error is reserved for failures of the VM itself.
func (vm *VM) ApplyMessage(from, to addr.Address, method abi.MethodNum, params interface{}) (MessageResult, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	log.Debugw("applying message", "from", from, "to", to, "method", method)

	fromActor, found, err := vm.getActor(from)
	if err != nil {
		return MessageResult{}, err
	}
	if !found || !builtin.IsPrincipal(fromActor.Code) {
		return MessageResult{Code: exitcode.SysErrSenderInvalid}, nil
	}

	// checkpoint state for rollback
	priorRoot, err := vm.checkpoint()
	if err != nil {
		return MessageResult{}, err
	}

	msg := InternalMessage{from: from, to: to, method: method, params: params}
	invocation := &Invocation{Msg: &msg}
	ctx := newInvocationContext(vm, msg, fromActor, invocation)
	ret, code := ctx.invoke()
	invocation.Exitcode = code
	invocation.Ret = ret
	vm.invocations = append(vm.invocations, invocation)

	if code.IsSuccess() {
		if _, err := vm.checkpoint(); err != nil {
			return MessageResult{}, err
		}
	} else {
		log.Infow("message failed, rolling back", "from", from, "to", to, "method", method, "exitcode", code)
		if err := vm.rollback(priorRoot); err != nil {
			return MessageResult{}, err
		}
	}

	// the sequence number advances whether or not the message succeeded
	fromActor, _, err = vm.getActor(from)
	if err != nil {
		return MessageResult{}, err
	}
	seq := fromActor.CallSeqNum
	fromActor.CallSeqNum++
	if err := vm.setActor(from, fromActor); err != nil {
		return MessageResult{}, err
	}
	if _, err := vm.checkpoint(); err != nil {
		return MessageResult{}, err
	}

	receipt, err := makeReceipt(msg, seq, code, ret)
	if err != nil {
		return MessageResult{}, err
	}
	return MessageResult{Ret: ret, Code: code, Receipt: receipt}, nil
}

func makeReceipt(msg InternalMessage, seq uint64, code exitcode.ExitCode, ret cbor.Marshaler) ([32]byte, error) {
	var out [32]byte
	h := blake2b.New256()
	var word [8]byte
	h.Write(msg.from.Bytes())
	h.Write(msg.to.Bytes())
	binary.BigEndian.PutUint64(word[:], uint64(msg.method))
	h.Write(word[:])
	binary.BigEndian.PutUint64(word[:], seq)
	h.Write(word[:])
	binary.BigEndian.PutUint64(word[:], uint64(code))
	h.Write(word[:])
	if ret != nil {
		buf := new(bytes.Buffer)
		if err := ret.MarshalCBOR(buf); err != nil {
			return out, errors.Wrap(err, "failed to serialize return value")
		}
		h.Write(buf.Bytes())
	}
	copy(out[:], h.Sum(nil))
	return out, nil
}

// GetActor loads an actor's record from the current actor tree.
func (vm *VM) GetActor(a addr.Address) (*TestActor, bool, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.getActor(a)
}

// Reads the current (possibly uncommitted) actor tree. Callers hold vm.mu.
func (vm *VM) getActor(a addr.Address) (*TestActor, bool, error) {
	var act TestActor
	found, err := vm.actors.Get(abi.AddrKey(a), &act)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to load actor %v", a)
	}
	return &act, found, nil
}

func (vm *VM) setActor(a addr.Address, act *TestActor) error {
	if err := vm.actors.Put(abi.AddrKey(a), act); err != nil {
		return errors.Wrapf(err, "failed to store actor %v", a)
	}
	return nil
}

// GetState loads the state of the actor at `a` into `out`.
func (vm *VM) GetState(a addr.Address, out cbor.Unmarshaler) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	act, found, err := vm.getActor(a)
	if err != nil {
		return err
	}
	if !found {
		return errors.Errorf("actor %v not found", a)
	}
	return vm.store.Get(vm.ctx, act.Head, out)
}

// SetActorState replaces the state of an existing actor, outside of any message.
func (vm *VM) SetActorState(a addr.Address, state cbor.Marshaler) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	act, found, err := vm.getActor(a)
	if err != nil {
		return err
	}
	if !found {
		return errors.Errorf("actor %v not found", a)
	}
	head, err := vm.store.Put(vm.ctx, state)
	if err != nil {
		return errors.Wrapf(err, "failed to store state of %v", a)
	}
	act.Head = head
	if err := vm.setActor(a, act); err != nil {
		return err
	}
	_, err = vm.checkpoint()
	return err
}

// Installs an actor with pre-constructed state.
func (vm *VM) createActor(a addr.Address, code cid.Cid, state cbor.Marshaler) error {
	if _, ok := vm.actorImpls[code]; !ok {
		return errors.Errorf("no implementation for actor code %s", builtin.ActorNameByCode(code))
	}
	head, err := vm.store.Put(vm.ctx, state)
	if err != nil {
		return errors.Wrapf(err, "failed to store state of %v", a)
	}
	return vm.setActor(a, &TestActor{Head: head, Code: code})
}

// Allocates the next free ID address.
func (vm *VM) newIDAddress() (addr.Address, error) {
	a, err := addr.NewIDAddress(vm.nextID)
	if err != nil {
		return addr.Undef, errors.Wrap(err, "failed to allocate address")
	}
	vm.nextID++
	return a, nil
}

func (vm *VM) checkpoint() (cid.Cid, error) {
	root, err := vm.actors.Root()
	if err != nil {
		return cid.Undef, errors.Wrap(err, "failed to flush actor tree")
	}
	vm.currentRoot = root
	return root, nil
}

func (vm *VM) rollback(root cid.Cid) error {
	actors, err := adt.AsMap(vm.store, root, adt.DefaultHamtBitwidth)
	if err != nil {
		return errors.Wrapf(err, "failed to roll back to %s", root)
	}
	vm.actors = actors
	vm.currentRoot = root
	return nil
}

// StateRoot returns the root of the actor tree as of the last completed message.
func (vm *VM) StateRoot() cid.Cid {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.currentRoot
}

// Store exposes the VM's state store, e.g. for reading actor state collections.
func (vm *VM) Store() adt.Store {
	return vm.store
}

func (vm *VM) GetTime() int64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.now
}

// SetTime sets the ledger clock, in unix seconds, observed by subsequent messages.
func (vm *VM) SetTime(now int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.now = now
}

func (vm *VM) AdvanceTime(seconds int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.now += seconds
}

// Invocations returns the trace of every top-level message applied so far.
func (vm *VM) Invocations() []*Invocation {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.invocations
}

func (vm *VM) LastInvocation() *Invocation {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if len(vm.invocations) == 0 {
		return nil
	}
	return vm.invocations[len(vm.invocations)-1]
}

// Logs returns the formatted log lines emitted by actors.
func (vm *VM) Logs() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.logs
}

func (vm *VM) getActorImpl(code cid.Cid) runtime.VMActor {
	actorImpl, ok := vm.actorImpls[code]
	if !ok {
		vm.Abortf(exitcode.SysErrInvalidReceiver, "actor implementation not found for code %v", code)
	}
	return actorImpl
}

func (vm *VM) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}
