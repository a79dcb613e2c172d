// Package slots derives the gateway's reserved storage slots.
//
// The gateway shares one flat storage space with whatever module is active,
// so its own bookkeeping lives at two fixed slots derived from namespace
// strings rather than at the small sequential offsets a module's variable
// layout would claim. Each slot is keccak256 of the namespace minus one; the
// subtraction keeps the slot from being the image of any known preimage, so
// a module cannot reach it through an innocent hash-derived key.
package slots

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/nmxmxh/conduit_v1/internal/core"
)

// Reserved slot namespaces. The derived values are stable published
// constants; external tooling reads these slots directly.
const (
	ModuleNamespace = "eip1967.proxy.implementation"
	AdminNamespace  = "eip1967.proxy.admin"
)

var (
	// ModuleSlot holds the active module address.
	// 0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc
	ModuleSlot = DeriveSlot(ModuleNamespace)

	// AdminSlot holds the administrator address.
	// 0xb53127684a568b3173ae13b9f8a6016e243e63b6e8ee1178d6a717850b5d6103
	AdminSlot = DeriveSlot(AdminNamespace)
)

// DeriveSlot computes keccak256(namespace) - 1 as a storage word. Pure; the
// result must match the published constants bit for bit.
func DeriveSlot(namespace string) core.Word {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(namespace))

	n := new(big.Int).SetBytes(h.Sum(nil))
	n.Sub(n, big.NewInt(1))

	return core.BytesToWord(n.Bytes())
}

// Selector returns the leading 4 bytes of keccak256(signature), used to
// route calls to the gateway's own operations.
func Selector(signature string) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))

	var sel [4]byte
	copy(sel[:], h.Sum(nil)[:4])
	return sel
}
