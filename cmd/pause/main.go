package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gagliardetto/solana-go"

	"github.com/pulkyeet/sol-arb-router/internal/config"
	"github.com/pulkyeet/sol-arb-router/internal/state"
)

// emergency stop: only the owner keypair can flip the pause flag

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

	paused, err := store.TogglePause(context.Background(), key.PublicKey())
	if err != nil {
		log.Fatalf("toggle pause: %v", err)
	}

	if paused {
		fmt.Println("router PAUSED — batches will be rejected")
	} else {
		fmt.Println("router resumed")
	}
}
