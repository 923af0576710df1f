package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pulkyeet/sol-arb-router/internal/config"
	"github.com/pulkyeet/sol-arb-router/internal/storage"
)

// dumps the execution journal to parquet for the planner's analysis jobs

func main() {
	cfgPath := flag.String("config", "", "path to yaml config")
	out := flag.String("out", "data/batches.parquet", "output parquet file")
	limit := flag.Int("limit", 10000, "max rows to export, newest first")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	journal, err := storage.OpenJournal(cfg.JournalDB)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	defer journal.Close()

	n, err := storage.ExportParquet(context.Background(), journal, *out, *limit)
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	fmt.Printf("exported %d batches to %s\n", n, *out)
}
