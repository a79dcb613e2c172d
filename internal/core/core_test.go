package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)
	assert.Equal(t, BytesToAddress([]byte{0xAA}), addr)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", addr.String())

	_, err = ParseAddress("0xzz")
	assert.Error(t, err)

	_, err = ParseAddress("0xaabb")
	assert.Error(t, err, "short addresses are rejected, not padded")
}

func TestAddressWordRoundTrip(t *testing.T) {
	addr := BytesToAddress([]byte{1, 2, 3})
	assert.Equal(t, addr, addr.Word().Address())
	assert.False(t, addr.IsZero())
	assert.True(t, ZeroAddress.IsZero())
}

func TestBytesToWordTruncatesLeft(t *testing.T) {
	long := make([]byte, 40)
	long[39] = 0x7F
	w := BytesToWord(long)
	assert.Equal(t, byte(0x7F), w[WordLength-1])
}

func TestCallSelector(t *testing.T) {
	c := Call{Payload: []byte{1, 2, 3, 4, 5, 6}}
	sel, ok := c.Selector()
	require.True(t, ok)
	assert.Equal(t, [4]byte{1, 2, 3, 4}, sel)
	assert.Equal(t, []byte{5, 6}, c.Args())

	short := Call{Payload: []byte{1, 2}}
	_, ok = short.Selector()
	assert.False(t, ok)
	assert.Nil(t, short.Args())
}

func TestCredits(t *testing.T) {
	c := NewCredits(10)
	c.Add(5)
	assert.Equal(t, uint64(15), c.Balance())

	assert.False(t, c.Spend(16))
	assert.True(t, c.Spend(15))
	assert.Equal(t, uint64(0), c.Balance())
}

func TestIdentity(t *testing.T) {
	a := NewIdentity()
	b := NewIdentity()
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Addr, b.Addr)
}
