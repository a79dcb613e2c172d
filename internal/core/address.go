package core

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of an account address.
const AddressLength = 20

// WordLength is the byte length of a storage word.
const WordLength = 32

// Address identifies an account that may hold executable code.
type Address [AddressLength]byte

// Word is a single 32-byte storage value or key.
type Word [WordLength]byte

// ZeroAddress is the empty address.
var ZeroAddress Address

// BytesToAddress converts b to an Address, keeping the rightmost 20 bytes.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// ParseAddress decodes a hex address, with or without a 0x prefix.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("parse address %q: %w", s, err)
	}
	if len(raw) != AddressLength {
		return ZeroAddress, fmt.Errorf("parse address %q: need %d bytes, got %d", s, AddressLength, len(raw))
	}
	return BytesToAddress(raw), nil
}

// IsZero reports whether the address is the empty address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// Word returns the address left-padded to a full storage word.
func (a Address) Word() Word {
	var w Word
	copy(w[WordLength-AddressLength:], a[:])
	return w
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// BytesToWord converts b to a Word, keeping the rightmost 32 bytes.
func BytesToWord(b []byte) Word {
	var w Word
	if len(b) > WordLength {
		b = b[len(b)-WordLength:]
	}
	copy(w[WordLength-len(b):], b)
	return w
}

// Address extracts the address packed into the low 20 bytes of the word.
func (w Word) Address() Address {
	return BytesToAddress(w[WordLength-AddressLength:])
}

// IsZero reports whether every byte of the word is zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Bytes returns the word as a byte slice.
func (w Word) Bytes() []byte {
	return w[:]
}

func (w Word) String() string {
	return "0x" + hex.EncodeToString(w[:])
}
