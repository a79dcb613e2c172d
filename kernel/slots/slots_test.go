package slots

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The derived slots are published constants; external tools locate the
// gateway's bookkeeping by these exact values, so they are pinned here.
func TestDeriveSlotPublishedConstants(t *testing.T) {
	cases := []struct {
		namespace string
		want      string
	}{
		{ModuleNamespace, "360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc"},
		{AdminNamespace, "b53127684a568b3173ae13b9f8a6016e243e63b6e8ee1178d6a717850b5d6103"},
	}

	for _, tc := range cases {
		want, err := hex.DecodeString(tc.want)
		require.NoError(t, err)
		got := DeriveSlot(tc.namespace)
		assert.Equal(t, want, got.Bytes(), "slot for %q", tc.namespace)
	}
}

func TestDeriveSlotDeterministic(t *testing.T) {
	a := DeriveSlot("conduit.test.namespace")
	b := DeriveSlot("conduit.test.namespace")
	assert.Equal(t, a, b)
}

func TestReservedSlotsDistinct(t *testing.T) {
	assert.NotEqual(t, ModuleSlot, AdminSlot)
}

func TestSelectorLength(t *testing.T) {
	sel := Selector("upgrade(address)")
	assert.NotEqual(t, [4]byte{}, sel)

	// Distinct signatures must yield distinct selectors for the gateway's
	// own small operation set.
	assert.NotEqual(t, Selector("currentModule()"), Selector("currentAdministrator()"))
}
