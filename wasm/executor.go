// Package wasm runs module code compiled to WebAssembly. A module executes
// inside the gateway's context: host imports give it the gateway's storage,
// the original caller and the call value, so swapping the module never moves
// the state it operates on.
package wasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/nmxmxh/conduit_v1/internal/core"
	"github.com/nmxmxh/conduit_v1/kernel/gateway"
	"github.com/nmxmxh/conduit_v1/kernel/state"
	"github.com/nmxmxh/conduit_v1/kernel/utils"
)

// Module ABI: exports "memory", "alloc(len) -> ptr" and
// "execute(ptr, len) -> i64" where the result packs the return data as
// (ptr << 32) | len. A trap aborts the call; the gateway rolls back.
const (
	exportMemory  = "memory"
	exportAlloc   = "alloc"
	exportExecute = "execute"

	hostModule = "conduit"
)

// Executor implements gateway.Runtime on top of wasmer.
type Executor struct {
	engine *wasmer.Engine
	log    *utils.Logger
}

// NewExecutor creates a wasm-backed module runtime.
func NewExecutor() *Executor {
	return &Executor{
		engine: wasmer.NewEngine(),
		log:    utils.DefaultLogger("wasm"),
	}
}

// hostEnv is the per-call view the host functions close over. Memory is nil
// until instantiation completes; wasmer only calls imports afterwards.
type hostEnv struct {
	call   core.Call
	store  gateway.Store
	memory *wasmer.Memory
}

func (e *hostEnv) readWord(ptr int32) (core.Word, error) {
	data := e.memory.Data()
	if ptr < 0 || int(ptr)+core.WordLength > len(data) {
		return core.Word{}, fmt.Errorf("wasm: word read out of bounds at %d", ptr)
	}
	return core.BytesToWord(data[ptr : ptr+core.WordLength]), nil
}

func (e *hostEnv) write(ptr int32, b []byte) error {
	data := e.memory.Data()
	if ptr < 0 || int(ptr)+len(b) > len(data) {
		return fmt.Errorf("wasm: write out of bounds at %d", ptr)
	}
	copy(data[ptr:], b)
	return nil
}

// Execute compiles and runs the module code for one forwarded call.
func (e *Executor) Execute(ctx context.Context, code state.Code, call core.Call, store gateway.Store) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wstore := wasmer.NewStore(e.engine)
	module, err := wasmer.NewModule(wstore, code)
	if err != nil {
		return nil, utils.WrapError(err, "wasm: compile module")
	}

	env := &hostEnv{call: call, store: store}
	imports := wasmer.NewImportObject()
	imports.Register(hostModule, map[string]wasmer.IntoExtern{
		"storage_load":  e.storageLoadFn(wstore, env),
		"storage_store": e.storageStoreFn(wstore, env),
		"caller":        e.callerFn(wstore, env),
		"value":         e.valueFn(wstore, env),
	})

	instance, err := wasmer.NewInstance(module, imports)
	if err != nil {
		return nil, utils.WrapError(err, "wasm: instantiate module")
	}

	env.memory, err = instance.Exports.GetMemory(exportMemory)
	if err != nil {
		return nil, utils.WrapError(err, "wasm: module exports no memory")
	}

	payloadPtr, err := e.copyPayload(instance, env, call.Payload)
	if err != nil {
		return nil, err
	}

	execute, err := instance.Exports.GetFunction(exportExecute)
	if err != nil {
		return nil, utils.WrapError(err, "wasm: module exports no entry point")
	}

	result, err := execute(payloadPtr, int32(len(call.Payload)))
	if err != nil {
		// Traps surface here; the gateway treats this as call failure.
		return nil, err
	}

	packed, ok := result.(int64)
	if !ok {
		return nil, errors.New("wasm: entry point returned no result word")
	}
	ret, err := e.unpackReturn(env, packed)
	if err != nil {
		return nil, err
	}
	e.log.Debug("module executed",
		utils.Int("payload_bytes", len(call.Payload)),
		utils.Int("return_bytes", len(ret)),
	)
	return ret, nil
}

// copyPayload places the call payload into module memory via its allocator.
func (e *Executor) copyPayload(instance *wasmer.Instance, env *hostEnv, payload []byte) (int32, error) {
	if len(payload) == 0 {
		return 0, nil
	}

	alloc, err := instance.Exports.GetFunction(exportAlloc)
	if err != nil {
		return 0, utils.WrapError(err, "wasm: module exports no allocator")
	}
	raw, err := alloc(int32(len(payload)))
	if err != nil {
		return 0, utils.WrapError(err, "wasm: payload allocation failed")
	}
	ptr, ok := raw.(int32)
	if !ok {
		return 0, errors.New("wasm: allocator returned no pointer")
	}
	if err := env.write(ptr, payload); err != nil {
		return 0, err
	}
	return ptr, nil
}

func (e *Executor) unpackReturn(env *hostEnv, packed int64) ([]byte, error) {
	ptr := int32(packed >> 32)
	length := int32(packed)
	if length == 0 {
		return nil, nil
	}

	data := env.memory.Data()
	if ptr < 0 || length < 0 || int(ptr)+int(length) > len(data) {
		return nil, fmt.Errorf("wasm: return data out of bounds (ptr=%d len=%d)", ptr, length)
	}
	out := make([]byte, length)
	copy(out, data[ptr:])
	return out, nil
}

// storage_load(key_ptr, dst_ptr): reads the word at the 32-byte key from
// the gateway's storage into module memory.
func (e *Executor) storageLoadFn(wstore *wasmer.Store, env *hostEnv) wasmer.IntoExtern {
	return wasmer.NewFunction(wstore,
		wasmer.NewFunctionType(wasmer.NewValueTypes(wasmer.I32, wasmer.I32), wasmer.NewValueTypes()),
		func(args []wasmer.Value) ([]wasmer.Value, error) {
			key, err := env.readWord(args[0].I32())
			if err != nil {
				return nil, err
			}
			val := env.store.Load(key)
			if err := env.write(args[1].I32(), val.Bytes()); err != nil {
				return nil, err
			}
			return []wasmer.Value{}, nil
		})
}

// storage_store(key_ptr, val_ptr): writes a word into the gateway's storage.
func (e *Executor) storageStoreFn(wstore *wasmer.Store, env *hostEnv) wasmer.IntoExtern {
	return wasmer.NewFunction(wstore,
		wasmer.NewFunctionType(wasmer.NewValueTypes(wasmer.I32, wasmer.I32), wasmer.NewValueTypes()),
		func(args []wasmer.Value) ([]wasmer.Value, error) {
			key, err := env.readWord(args[0].I32())
			if err != nil {
				return nil, err
			}
			val, err := env.readWord(args[1].I32())
			if err != nil {
				return nil, err
			}
			env.store.Store(key, val)
			return []wasmer.Value{}, nil
		})
}

// caller(dst_ptr): writes the ORIGINAL caller's 20-byte address.
func (e *Executor) callerFn(wstore *wasmer.Store, env *hostEnv) wasmer.IntoExtern {
	return wasmer.NewFunction(wstore,
		wasmer.NewFunctionType(wasmer.NewValueTypes(wasmer.I32), wasmer.NewValueTypes()),
		func(args []wasmer.Value) ([]wasmer.Value, error) {
			if err := env.write(args[0].I32(), env.call.Caller.Bytes()); err != nil {
				return nil, err
			}
			return []wasmer.Value{}, nil
		})
}

// value() -> i64: the credits transferred with the call.
func (e *Executor) valueFn(wstore *wasmer.Store, env *hostEnv) wasmer.IntoExtern {
	return wasmer.NewFunction(wstore,
		wasmer.NewFunctionType(wasmer.NewValueTypes(), wasmer.NewValueTypes(wasmer.I64)),
		func(args []wasmer.Value) ([]wasmer.Value, error) {
			return []wasmer.Value{wasmer.NewI64(int64(env.call.Value))}, nil
		})
}
