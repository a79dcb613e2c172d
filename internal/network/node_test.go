package network

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	libp2p "github.com/libp2p/go-libp2p"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/conduit_v1/internal/core"
	gatewayv1 "github.com/nmxmxh/conduit_v1/proto/gateway/v1"
)

// echoDispatcher returns the payload back, or rejects when told to.
type echoDispatcher struct {
	rejectWith error
	lastCall   core.Call
}

func (d *echoDispatcher) Dispatch(_ context.Context, call core.Call) ([]byte, error) {
	d.lastCall = call
	if d.rejectWith != nil {
		return nil, d.rejectWith
	}
	return call.Payload, nil
}

func startTestNode(t *testing.T, d Dispatcher) *Node {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	idFile := filepath.Join(t.TempDir(), "identity.json")
	node, err := StartNode(ctx, idFile, []string{"/ip4/127.0.0.1/tcp/0"}, d)
	require.NoError(t, err)
	t.Cleanup(func() { _ = node.Close() })
	return node
}

func TestCallRoundTrip(t *testing.T) {
	d := &echoDispatcher{}
	node := startTestNode(t, d)
	require.NotEmpty(t, node.Addrs())

	client, err := libp2p.New()
	require.NoError(t, err)
	defer client.Close()

	caller := core.BytesToAddress([]byte{0x42})
	resp, err := SendCall(context.Background(), client, node.Addrs()[0], &gatewayv1.CallRequest{
		Caller:  caller.Bytes(),
		Payload: []byte("ping"),
		Value:   7,
	})
	require.NoError(t, err)

	assert.True(t, resp.Ok)
	assert.Equal(t, []byte("ping"), resp.ReturnData)
	assert.NotEmpty(t, resp.CallId)

	// The dispatcher saw the caller's identity, not the peer's.
	assert.Equal(t, caller, d.lastCall.Caller)
	assert.Equal(t, uint64(7), d.lastCall.Value)
}

func TestCallRejectionRelayedVerbatim(t *testing.T) {
	d := &echoDispatcher{rejectWith: errors.New("gateway: caller is not the administrator")}
	node := startTestNode(t, d)

	client, err := libp2p.New()
	require.NoError(t, err)
	defer client.Close()

	resp, err := SendCall(context.Background(), client, node.Addrs()[0], &gatewayv1.CallRequest{
		Payload: []byte{1, 2, 3, 4},
	})
	require.NoError(t, err)

	assert.False(t, resp.Ok)
	assert.Equal(t, "gateway: caller is not the administrator", resp.Error)
	assert.Empty(t, resp.ReturnData)
}

func TestIdentityPersistence(t *testing.T) {
	idFile := filepath.Join(t.TempDir(), "identity.json")

	k1, err := loadOrCreateKey(idFile)
	require.NoError(t, err)
	k2, err := loadOrCreateKey(idFile)
	require.NoError(t, err)

	assert.True(t, k1.Equals(k2), "second load must restore the same key")
}
