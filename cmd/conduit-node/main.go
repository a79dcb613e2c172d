package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nmxmxh/conduit_v1/internal/core"
	"github.com/nmxmxh/conduit_v1/internal/network"
	"github.com/nmxmxh/conduit_v1/kernel/gateway"
	"github.com/nmxmxh/conduit_v1/kernel/state"
	"github.com/nmxmxh/conduit_v1/kernel/utils"
	"github.com/nmxmxh/conduit_v1/wasm"
)

func main() {
	configPath := flag.String("config", "conduit.json", "path to node config")
	flag.Parse()

	log := utils.DefaultLogger("conduit-node")

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("config unavailable", utils.String("path", *configPath), utils.Err(err))
	}

	admin, err := core.ParseAddress(cfg.Administrator)
	if err != nil {
		log.Fatal("bad administrator address", utils.Err(err))
	}
	module, err := core.ParseAddress(cfg.InitialModule)
	if err != nil {
		log.Fatal("bad initial module address", utils.Err(err))
	}

	storage := state.NewStorageSpace()
	codeStore := state.NewCodeStore()

	if cfg.InitialModuleCode != "" {
		code, err := os.ReadFile(cfg.InitialModuleCode)
		if err != nil {
			log.Fatal("initial module code unavailable", utils.String("path", cfg.InitialModuleCode), utils.Err(err))
		}
		codeStore.Deploy(module, code)
	}

	gw, err := gateway.New(storage, codeStore, wasm.NewExecutor(), module, admin)
	if err != nil {
		log.Fatal("gateway construction failed", utils.Err(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	node, err := network.StartNode(ctx, cfg.IdentityFile, cfg.ListenAddrs, gw)
	if err != nil {
		log.Fatal("node start failed", utils.Err(err))
	}
	for _, addr := range node.Addrs() {
		log.Info("listening", utils.String("addr", addr))
	}

	// Log upgrade history as it happens.
	subID, events := gw.Notifier().Subscribe(16)
	go func() {
		for ev := range events {
			log.Info("upgrade observed",
				utils.String("module", ev.Module.String()),
				utils.Uint64("sequence", ev.Sequence),
			)
		}
	}()

	shutdown := utils.NewGracefulShutdown(10*time.Second, log)
	shutdown.Register(func() error {
		gw.Notifier().Unsubscribe(subID)
		return nil
	})
	shutdown.Register(node.Close)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if err := shutdown.Shutdown(context.Background()); err != nil {
		log.Error("shutdown incomplete", utils.Err(err))
		os.Exit(1)
	}
}
