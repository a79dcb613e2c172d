package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds node-level settings for a conduit gateway.
type Config struct {
	// ListenAddrs are libp2p multiaddrs the node listens on.
	ListenAddrs []string `json:"listen_addrs"`
	// IdentityFile is where the libp2p identity is persisted.
	IdentityFile string `json:"identity_file"`
	// Administrator is the hex address authorized to upgrade the gateway.
	Administrator string `json:"administrator"`
	// InitialModule is the hex address of the module activated at startup.
	InitialModule string `json:"initial_module"`
	// InitialModuleCode is an optional path to wasm bytes deployed at
	// InitialModule before the gateway is constructed.
	InitialModuleCode string `json:"initial_module_code"`
}

// DefaultConfig returns a config suitable for local runs.
func DefaultConfig() Config {
	return Config{
		ListenAddrs:  []string{"/ip4/0.0.0.0/tcp/0"},
		IdentityFile: "node_identity.json",
	}
}

// LoadConfig reads a JSON config file, applying defaults for absent fields.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
