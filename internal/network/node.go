// Package network fronts a gateway with a libp2p stream protocol. Remote
// callers send protobuf-framed calls; the node relays the gateway's result
// or rejection verbatim.
package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	libp2p "github.com/libp2p/go-libp2p"
	crypto "github.com/libp2p/go-libp2p/core/crypto"
	libp2p_host "github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	peer "github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
	"google.golang.org/protobuf/proto"

	"github.com/nmxmxh/conduit_v1/internal/core"
	"github.com/nmxmxh/conduit_v1/kernel/utils"
	gatewayv1 "github.com/nmxmxh/conduit_v1/proto/gateway/v1"
)

// CallProtocol is the stream protocol callers use to reach the gateway.
const CallProtocol = "/conduit/call/1.0.0"

// Dispatcher is the surface the node forwards decoded calls into.
type Dispatcher interface {
	Dispatch(ctx context.Context, call core.Call) ([]byte, error)
}

// PersistentIdentity holds the private key and peer ID.
type PersistentIdentity struct {
	PrivKey []byte `json:"priv_key"`
	PeerID  string `json:"peer_id"`
}

// SaveIdentity saves identity to disk.
func SaveIdentity(path string, id *PersistentIdentity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadIdentity loads identity from disk.
func LoadIdentity(path string) (*PersistentIdentity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var id PersistentIdentity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// loadOrCreateKey restores the node key from the identity file, generating
// and persisting a fresh ed25519 key on first run.
func loadOrCreateKey(path string) (crypto.PrivKey, error) {
	if id, err := LoadIdentity(path); err == nil {
		return crypto.UnmarshalPrivateKey(id.PrivKey)
	}

	priv, _, err := crypto.GenerateEd25519Key(nil)
	if err != nil {
		return nil, err
	}
	pid, err := peer.IDFromPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	privBytes, err := crypto.MarshalPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	if err := SaveIdentity(path, &PersistentIdentity{PrivKey: privBytes, PeerID: pid.String()}); err != nil {
		return nil, err
	}
	return priv, nil
}

// Node is a libp2p host serving the call protocol for one gateway.
type Node struct {
	host libp2p_host.Host
	gw   Dispatcher
	log  *utils.Logger
}

// StartNode starts a libp2p host with a persistent identity and wires the
// call protocol to the dispatcher.
func StartNode(ctx context.Context, identityFile string, listenAddrs []string, gw Dispatcher) (*Node, error) {
	priv, err := loadOrCreateKey(identityFile)
	if err != nil {
		return nil, utils.WrapError(err, "network: node identity")
	}

	opts := []libp2p.Option{libp2p.Identity(priv)}
	if len(listenAddrs) > 0 {
		opts = append(opts, libp2p.ListenAddrStrings(listenAddrs...))
	}
	host, err := libp2p.New(opts...)
	if err != nil {
		return nil, utils.WrapError(err, "network: start host")
	}

	n := &Node{
		host: host,
		gw:   gw,
		log:  utils.DefaultLogger("network"),
	}
	host.SetStreamHandler(CallProtocol, n.handleStream)

	n.log.Info("node started", utils.String("peer_id", host.ID().String()))
	return n, nil
}

// Host exposes the underlying libp2p host.
func (n *Node) Host() libp2p_host.Host {
	return n.host
}

// Addrs returns the node's dialable multiaddrs, p2p suffix included.
func (n *Node) Addrs() []string {
	var out []string
	for _, a := range n.host.Addrs() {
		out = append(out, fmt.Sprintf("%s/p2p/%s", a, n.host.ID()))
	}
	return out
}

// Close shuts the host down.
func (n *Node) Close() error {
	return n.host.Close()
}

// handleStream decodes one CallRequest, dispatches it, and writes one
// CallResponse. A gateway rejection travels back as ok=false plus the
// reason; it is not a stream error.
func (n *Node) handleStream(s network.Stream) {
	defer s.Close()

	data, err := io.ReadAll(s)
	if err != nil {
		n.log.Warn("stream read failed", utils.Err(err))
		return
	}

	var req gatewayv1.CallRequest
	if err := proto.Unmarshal(data, &req); err != nil {
		n.log.Warn("malformed call request", utils.Err(err))
		return
	}
	if req.CallId == "" {
		req.CallId = uuid.NewString()
	}

	resp := &gatewayv1.CallResponse{CallId: req.CallId}
	call := core.Call{
		Caller:  core.BytesToAddress(req.Caller),
		Payload: req.Payload,
		Value:   req.Value,
	}

	ret, err := n.gw.Dispatch(context.Background(), call)
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Ok = true
		resp.ReturnData = ret
	}

	out, err := proto.Marshal(resp)
	if err != nil {
		n.log.Error("marshal response", utils.String("call_id", req.CallId), utils.Err(err))
		return
	}
	if _, err := s.Write(out); err != nil {
		n.log.Warn("stream write failed", utils.String("call_id", req.CallId), utils.Err(err))
	}
}

// SendCall connects to a remote node and performs one call round trip.
func SendCall(ctx context.Context, host libp2p_host.Host, peerAddr string, req *gatewayv1.CallRequest) (*gatewayv1.CallResponse, error) {
	maddr, err := ma.NewMultiaddr(peerAddr)
	if err != nil {
		return nil, err
	}
	info, err := peer.AddrInfoFromP2pAddr(maddr)
	if err != nil {
		return nil, err
	}
	if err := host.Connect(ctx, *info); err != nil {
		return nil, err
	}

	stream, err := host.NewStream(ctx, info.ID, CallProtocol)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if req.CallId == "" {
		req.CallId = uuid.NewString()
	}
	out, err := proto.Marshal(req)
	if err != nil {
		return nil, err
	}
	if _, err := stream.Write(out); err != nil {
		return nil, err
	}
	if err := stream.CloseWrite(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}
	var resp gatewayv1.CallResponse
	if err := proto.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
