package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gagliardetto/solana-go"

	"github.com/pulkyeet/sol-arb-router/internal/config"
	"github.com/pulkyeet/sol-arb-router/internal/sol"
	"github.com/pulkyeet/sol-arb-router/internal/state"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	keypairPath, err := cfg.Keypair()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(keypairPath)
	if err != nil {
		log.Fatalf("failed to load keypair: %v", err)
	}

	store, err := state.Open(cfg.StateDB)
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}
	defer store.Close()

	if err := store.Initialize(context.Background(), key.PublicKey()); err != nil {
		log.Fatalf("initialize: %v", err)
	}

	addr, bump, _ := sol.RouterStateAddress()
	fmt.Printf("router initialized\n")
	fmt.Printf("  owner: %s\n", key.PublicKey())
	fmt.Printf("  state: %s (bump %d)\n", addr, bump)
}
