package state

import (
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/nmxmxh/conduit_v1/internal/core"
)

// Code is a deployed module's executable bytes.
type Code []byte

// Hash returns the keccak256 hash of the code, the identity by which
// runtimes may cache or look up compiled modules.
func (c Code) Hash() core.Word {
	h := sha3.NewLegacyKeccak256()
	h.Write(c)
	return core.BytesToWord(h.Sum(nil))
}

// CodeStore maps addresses to deployed executable code. An address "holds
// executable code" iff its entry is non-empty; plain accounts have none.
type CodeStore struct {
	mu   sync.RWMutex
	code map[core.Address]Code
}

// NewCodeStore creates an empty code store.
func NewCodeStore() *CodeStore {
	return &CodeStore{code: make(map[core.Address]Code)}
}

// Deploy records code at an address. Deploying empty code is a no-op; code
// at an address is immutable once set, mirroring deployed-code semantics.
func (cs *CodeStore) Deploy(addr core.Address, code Code) {
	if len(code) == 0 {
		return
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.code[addr]; ok {
		return
	}
	stored := make(Code, len(code))
	copy(stored, code)
	cs.code[addr] = stored
}

// CodeAt returns the code deployed at addr, or nil.
func (cs *CodeStore) CodeAt(addr core.Address) Code {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.code[addr]
}

// HasCode reports whether addr holds executable code.
func (cs *CodeStore) HasCode(addr core.Address) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.code[addr]) > 0
}
