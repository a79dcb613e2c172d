package gateway

import (
	"context"
	"fmt"

	"github.com/nmxmxh/conduit_v1/internal/core"
	"github.com/nmxmxh/conduit_v1/kernel/slots"
)

// Selectors of the gateway's own operations. Anything else in a payload's
// leading 4 bytes belongs to the active module.
var (
	selUpgrade       = slots.Selector("upgrade(address)")
	selModule        = slots.Selector("currentModule()")
	selAdministrator = slots.Selector("currentAdministrator()")
)

// Dispatch is the gateway's single entry point for raw calls. An empty
// payload is a bare value transfer; a payload whose selector names one of
// the gateway's own operations is handled here; everything else is
// forwarded opaquely into the active module.
func (g *Gateway) Dispatch(ctx context.Context, call core.Call) ([]byte, error) {
	sel, ok := call.Selector()
	if !ok {
		if len(call.Payload) > 0 {
			// Shorter than a selector: nothing of the gateway's can
			// match, and the module gets the payload verbatim.
			return g.Forward(ctx, call)
		}
		g.ReceiveValue(call.Caller, call.Value)
		return nil, nil
	}

	switch sel {
	case selUpgrade:
		target, err := decodeAddressArg(call.Args())
		if err != nil {
			return nil, err
		}
		return nil, g.Upgrade(call.Caller, target)
	case selModule:
		return g.CurrentModule().Word().Bytes(), nil
	case selAdministrator:
		return g.CurrentAdministrator().Word().Bytes(), nil
	default:
		return g.Forward(ctx, call)
	}
}

// decodeAddressArg reads a single address argument encoded as one left-
// padded storage word.
func decodeAddressArg(args []byte) (core.Address, error) {
	if len(args) != core.WordLength {
		return core.ZeroAddress, fmt.Errorf("gateway: malformed address argument (%d bytes)", len(args))
	}
	return core.BytesToWord(args).Address(), nil
}

// EncodeAddressArg builds the argument encoding decodeAddressArg accepts;
// clients use it to form upgrade payloads.
func EncodeAddressArg(sel [4]byte, addr core.Address) []byte {
	payload := make([]byte, 0, 4+core.WordLength)
	payload = append(payload, sel[:]...)
	payload = append(payload, addr.Word().Bytes()...)
	return payload
}

// UpgradeSelector returns the selector routed to Upgrade.
func UpgradeSelector() [4]byte { return selUpgrade }

// ModuleSelector returns the selector routed to CurrentModule.
func ModuleSelector() [4]byte { return selModule }

// AdministratorSelector returns the selector routed to CurrentAdministrator.
func AdministratorSelector() [4]byte { return selAdministrator }
