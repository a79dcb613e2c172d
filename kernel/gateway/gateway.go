// Package gateway implements the permanently-addressed forwarding gateway.
//
// A Gateway sits between callers and the active logic module. Its only
// persistent bookkeeping is the active module address and the administrator
// address, kept in the two reserved slots of the storage space it shares
// with the module. Every call it does not recognize is forwarded into the
// active module's code, which runs against the gateway's own storage with
// the original caller's identity.
package gateway

import (
	"context"
	"fmt"
	"sync"

	"github.com/nmxmxh/conduit_v1/internal/core"
	"github.com/nmxmxh/conduit_v1/kernel/slots"
	"github.com/nmxmxh/conduit_v1/kernel/state"
	"github.com/nmxmxh/conduit_v1/kernel/utils"
)

// Store is the storage surface a module sees during a forwarded call: the
// gateway's own space, not a space of the module's.
type Store interface {
	Load(slot core.Word) core.Word
	Store(slot, value core.Word)
}

// Runtime executes module code in the gateway's context. An execution error
// means the forwarded call failed; the gateway rolls back every storage
// effect the module made.
type Runtime interface {
	Execute(ctx context.Context, code state.Code, call core.Call, store Store) ([]byte, error)
}

// Gateway is the dispatcher. All mutation of the reserved slots funnels
// through it; operations serialize on one mutex, standing in for the
// one-call-at-a-time execution environment the design assumes.
type Gateway struct {
	mu       sync.Mutex
	storage  *state.StorageSpace
	code     *state.CodeStore
	runtime  Runtime
	credits  *core.Credits
	notifier *Notifier
	log      *utils.Logger
}

// New constructs a gateway, validating and storing the initial module and
// administrator in their reserved slots. A zero administrator or an invalid
// module aborts construction.
func New(storage *state.StorageSpace, code *state.CodeStore, runtime Runtime, initialModule, administrator core.Address) (*Gateway, error) {
	g := &Gateway{
		storage:  storage,
		code:     code,
		runtime:  runtime,
		credits:  core.NewCredits(0),
		notifier: NewNotifier(),
		log:      utils.DefaultLogger("gateway"),
	}

	if administrator.IsZero() {
		return nil, ErrInvalidAdministrator
	}
	if err := g.validateTarget(initialModule); err != nil {
		return nil, err
	}

	storage.Store(slots.ModuleSlot, initialModule.Word())
	storage.Store(slots.AdminSlot, administrator.Word())
	storage.DiscardJournal()

	g.log.Info("gateway constructed",
		utils.String("module", initialModule.String()),
		utils.String("administrator", administrator.String()),
	)
	return g, nil
}

// Notifier exposes the upgrade event stream.
func (g *Gateway) Notifier() *Notifier {
	return g.notifier
}

// Credits exposes the gateway account's balance.
func (g *Gateway) Credits() *core.Credits {
	return g.credits
}

// CurrentModule returns the active module address.
func (g *Gateway) CurrentModule() core.Address {
	return g.storage.Load(slots.ModuleSlot).Address()
}

// CurrentAdministrator returns the administrator address.
func (g *Gateway) CurrentAdministrator() core.Address {
	return g.storage.Load(slots.AdminSlot).Address()
}

// Upgrade swaps the active module. Only the administrator may call it; the
// new module must be a non-zero address holding executable code. On success
// the module slot is overwritten and one UpgradeEvent is published.
func (g *Gateway) Upgrade(caller, newModule core.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if caller != g.CurrentAdministrator() {
		g.log.Warn("upgrade rejected",
			utils.String("caller", caller.String()),
			utils.Err(ErrNotAuthorized),
		)
		return ErrNotAuthorized
	}
	if err := g.validateTarget(newModule); err != nil {
		return err
	}

	g.storage.Store(slots.ModuleSlot, newModule.Word())
	g.storage.DiscardJournal()

	ev := g.notifier.publish(newModule)
	g.log.Info("module upgraded",
		utils.String("module", newModule.String()),
		utils.Uint64("sequence", ev.Sequence),
	)
	return nil
}

// Forward routes an unrecognized call into the active module. The module's
// code runs with the original caller's identity against the gateway's own
// storage; its result or failure is relayed verbatim. On failure every
// storage effect of the call is rolled back and no value is credited.
func (g *Gateway) Forward(ctx context.Context, call core.Call) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.forward(ctx, call)
}

func (g *Gateway) forward(ctx context.Context, call core.Call) ([]byte, error) {
	module := g.CurrentModule()
	code := g.code.CodeAt(module)
	if len(code) == 0 {
		return nil, ErrTargetNotExecutable
	}

	snap := g.storage.Snapshot()
	ret, err := g.runtime.Execute(ctx, code, call, g.storage)
	if err != nil {
		g.storage.RevertTo(snap)
		g.log.Debug("forwarded call reverted",
			utils.String("caller", call.Caller.String()),
			utils.Int("payload_bytes", len(call.Payload)),
			utils.Err(err),
		)
		return nil, err
	}

	g.storage.DiscardJournal()
	if call.Value > 0 {
		g.credits.Add(call.Value)
	}
	return ret, nil
}

// ReceiveValue accepts a bare transfer with no payload. It is never routed
// into module logic, so plain transfers cannot trip an entry point that
// does not expect them.
func (g *Gateway) ReceiveValue(caller core.Address, amount uint64) {
	g.credits.Add(amount)
	g.log.Debug("value received",
		utils.String("caller", caller.String()),
		utils.Uint64("amount", amount),
	)
}

// validateTarget applies the shared module validation rule: a target must
// be a non-zero address holding executable code.
func (g *Gateway) validateTarget(target core.Address) error {
	if target.IsZero() {
		return ErrInvalidTarget
	}
	if !g.code.HasCode(target) {
		return fmt.Errorf("%w: %s", ErrNotAContract, target)
	}
	return nil
}
