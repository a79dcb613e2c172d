// Package testutil provides an in-process module runtime for tests. Modules
// are plain Go functions bound to code blobs by hash, so the gateway's full
// forwarding and upgrade surface can be exercised without a wasm toolchain.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/nmxmxh/conduit_v1/internal/core"
	"github.com/nmxmxh/conduit_v1/kernel/gateway"
	"github.com/nmxmxh/conduit_v1/kernel/state"
)

// ModuleFunc is a module entry point: it receives the forwarded call (with
// the original caller's identity) and the gateway's own storage.
type ModuleFunc func(call core.Call, store gateway.Store) ([]byte, error)

// Runtime executes bound module functions in place of compiled code.
type Runtime struct {
	mu     sync.RWMutex
	byHash map[core.Word]ModuleFunc
}

// NewRuntime creates an empty test runtime.
func NewRuntime() *Runtime {
	return &Runtime{byHash: make(map[core.Word]ModuleFunc)}
}

// Bind associates a code blob with a module function and returns the blob,
// ready to hand to CodeStore.Deploy.
func (r *Runtime) Bind(code state.Code, fn ModuleFunc) state.Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHash[code.Hash()] = fn
	return code
}

// Execute runs the function bound to the code blob. Unknown code fails the
// call, mirroring a module with no routable entry point.
func (r *Runtime) Execute(ctx context.Context, code state.Code, call core.Call, store gateway.Store) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	fn := r.byHash[code.Hash()]
	r.mu.RUnlock()

	if fn == nil {
		return nil, fmt.Errorf("testutil: no entry point bound for code %s", code.Hash())
	}
	return fn(call, store)
}
