package arbitrage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

// Plan is the hand-off file the off-system planner writes: one batch plus
// the pubkeys of every pool account, in the order they should be consumed.
type Plan struct {
	Trader     solana.PublicKey   `json:"trader"`
	Settlement solana.PublicKey   `json:"settlement_account"`
	Legs       []Leg              `json:"legs"`
	Pool       []solana.PublicKey `json:"pool"`
}

// LoadPlan reads and validates a plan file. Shape errors are caught here;
// pool sufficiency is the executor's job (it owns the partition check).
func LoadPlan(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}

	if p.Trader.IsZero() {
		return nil, fmt.Errorf("plan: trader is required")
	}
	if p.Settlement.IsZero() {
		return nil, fmt.Errorf("plan: settlement account is required")
	}
	if len(p.Legs) != BatchLegs {
		return nil, fmt.Errorf("plan: expected exactly %d legs, got %d", BatchLegs, len(p.Legs))
	}
	for i, leg := range p.Legs {
		if leg.TokenMint.IsZero() {
			return nil, fmt.Errorf("plan: leg %d has no token mint", i)
		}
		if leg.AccountsCount == 0 {
			return nil, fmt.Errorf("plan: leg %d declares zero accounts", i)
		}
	}

	return &p, nil
}

// Batch converts the plan into the executor's fixed-size batch.
func (p *Plan) Batch() *Batch {
	b := &Batch{Trader: p.Trader, Settlement: p.Settlement}
	copy(b.Legs[:], p.Legs)
	return b
}
