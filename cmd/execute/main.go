package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
	"github.com/pulkyeet/sol-arb-router/internal/config"
	"github.com/pulkyeet/sol-arb-router/internal/sol"
	"github.com/pulkyeet/sol-arb-router/internal/state"
	"github.com/pulkyeet/sol-arb-router/internal/storage"
	"github.com/pulkyeet/sol-arb-router/internal/venue/pumpfun"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config")
	planPath := flag.String("plan", "", "path to the planner's batch file (json)")
	dryRun := flag.Bool("dry-run", false, "stage and validate the batch without submitting")
	flag.Parse()

	if *planPath == "" {
		log.Fatal("usage: --plan <plan.json> [--config <config.yaml>] [--dry-run]")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	keypairPath, err := cfg.Keypair()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(keypairPath)
	if err != nil {
		log.Fatalf("failed to load keypair: %v", err)
	}

	plan, err := arbitrage.LoadPlan(*planPath)
	if err != nil {
		log.Fatalf("plan: %v", err)
	}
	if !plan.Trader.Equals(key.PublicKey()) {
		log.Fatalf("plan trader %s does not match keypair %s", plan.Trader, key.PublicKey())
	}

	store, err := state.Open(cfg.StateDB)
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}
	defer store.Close()

	journal, err := storage.OpenJournal(cfg.JournalDB)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer journal.Close()

	handler, err := buildPumpFun(cfg)
	if err != nil {
		log.Fatalf("pumpfun handler: %v", err)
	}

	exec := arbitrage.NewExecutor(store, logger)
	exec.RegisterVenue(arbitrage.VenuePumpFun, handler)

	ctx := context.Background()
	client := sol.NewClient(cfg.RPCURL)
	defer client.Close()

	pool, err := client.FetchPool(ctx, plan.Pool)
	if err != nil {
		log.Fatalf("hydrate pool: %v", err)
	}

	bundle := sol.NewBundle(logger)
	batch := plan.Batch()
	submitted := time.Now().UTC()

	execErr := exec.ExecuteBatch(ctx, batch, pool, bundle)

	rec := storage.BatchRecord{
		SubmittedAt: submitted,
		Trader:      batch.Trader.String(),
		Legs:        arbitrage.BatchLegs,
		Calls:       bundle.Len(),
	}

	if execErr != nil {
		rec.Status = "failed"
		rec.ErrCode = arbitrage.Code(execErr)
		rec.ErrMsg = execErr.Error()
		if _, jerr := journal.Record(ctx, rec); jerr != nil {
			logger.Warn("journal write failed", zap.Error(jerr))
		}
		logger.Error("batch aborted",
			zap.Uint32("code", rec.ErrCode), zap.Error(execErr))
		os.Exit(int(rec.ErrCode))
	}

	if *dryRun {
		fmt.Printf("dry run: %d calls staged, nothing submitted\n", bundle.Len())
		return
	}

	sig, err := bundle.Flush(ctx, client, key)
	if err != nil {
		rec.Status = "failed"
		rec.ErrCode = arbitrage.Code(err)
		rec.ErrMsg = err.Error()
		if _, jerr := journal.Record(ctx, rec); jerr != nil {
			logger.Warn("journal write failed", zap.Error(jerr))
		}
		logger.Error("bundle rejected", zap.Error(err))
		os.Exit(int(rec.ErrCode))
	}

	rec.Status = "ok"
	rec.Signature = sig.String()
	if _, jerr := journal.Record(ctx, rec); jerr != nil {
		logger.Warn("journal write failed", zap.Error(jerr))
	}

	fmt.Printf("batch submitted: %s\n", sig)
}

func buildPumpFun(cfg *config.Config) (*pumpfun.Handler, error) {
	vc := cfg.Venues.PumpFun
	if vc.Program == "" && vc.FeeRecipient == "" {
		return pumpfun.NewHandler()
	}

	program := pumpfun.ProgramID
	feeRecipient := pumpfun.FeeRecipient
	var err error
	if vc.Program != "" {
		if program, err = solana.PublicKeyFromBase58(vc.Program); err != nil {
			return nil, fmt.Errorf("venue program: %w", err)
		}
	}
	if vc.FeeRecipient != "" {
		if feeRecipient, err = solana.PublicKeyFromBase58(vc.FeeRecipient); err != nil {
			return nil, fmt.Errorf("venue fee recipient: %w", err)
		}
	}
	return pumpfun.NewHandlerFor(program, feeRecipient)
}
