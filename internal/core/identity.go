package core

import (
	"crypto/rand"
	"encoding/hex"
)

// Identity represents a node identity: a random ID plus the account address
// the node acts under when it calls into the gateway.
type Identity struct {
	ID   string
	Addr Address
}

// NewIdentity generates a fresh random identity.
func NewIdentity() *Identity {
	b := make([]byte, 16)
	_, _ = rand.Read(b)

	var addr [AddressLength]byte
	_, _ = rand.Read(addr[:])

	return &Identity{
		ID:   hex.EncodeToString(b),
		Addr: Address(addr),
	}
}
