package arbitrage

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// number of legs in every batch — the router's submission contract is fixed-size
const BatchLegs = 4

// VenueKind tags the closed set of supported DEX programs.
// Declaration order matches the on-wire enum and must not change.
type VenueKind uint8

const (
	VenueMeteora VenueKind = iota
	VenuePumpFun
)

func (k VenueKind) String() string {
	switch k {
	case VenueMeteora:
		return "meteora"
	case VenuePumpFun:
		return "pumpfun"
	default:
		return fmt.Sprintf("venue(%d)", uint8(k))
	}
}

func (k VenueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *VenueKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "meteora":
		*k = VenueMeteora
	case "pumpfun":
		*k = VenuePumpFun
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedVenue, string(b))
	}
	return nil
}

// Leg is one arbitrage unit: buy TokensToBuy on BuyVenue spending at most
// MaxSolCost, then sell TokensToSell on SellVenue for at least MinSolOut.
// All quantities come pre-computed from the planner and are trusted as-is;
// the venue program enforces its own bounds.
type Leg struct {
	TokenMint     solana.PublicKey `json:"token_mint"`
	AmountIn      uint64           `json:"amount_in"` // informational only
	MinSolOut     uint64           `json:"min_sol_out"`
	BuyVenue      VenueKind        `json:"buy_venue"`
	SellVenue     VenueKind        `json:"sell_venue"`
	AccountsCount uint8            `json:"accounts_count"`
	TokensToBuy   uint64           `json:"tokens_to_buy"`
	MaxSolCost    uint64           `json:"max_sol_cost"`
	TokensToSell  uint64           `json:"tokens_to_sell"`
}

// Batch is one submission: the signing trader, the trader's wSOL
// settlement account, and exactly four legs.
type Batch struct {
	Trader     solana.PublicKey `json:"trader"`
	Settlement solana.PublicKey `json:"settlement_account"`
	Legs       [BatchLegs]Leg   `json:"legs"`
}

// PoolAccount is one opaque entry of the caller-supplied account pool.
// Owner and Data are only consulted for structural matching (SPL token
// accounts); everything else is matched by Key.
type PoolAccount struct {
	Key   solana.PublicKey
	Owner solana.PublicKey
	Data  []byte
}

// EncodedCall is one fully built venue invocation: target program, account
// metas in the venue's required order, and the binary payload. It satisfies
// solana.Instruction so a bundle can drop it straight into a transaction.
type EncodedCall struct {
	Program solana.PublicKey
	Metas   solana.AccountMetaSlice
	Payload []byte
}

func (c *EncodedCall) ProgramID() solana.PublicKey { return c.Program }

func (c *EncodedCall) Accounts() []*solana.AccountMeta { return c.Metas }

func (c *EncodedCall) Data() ([]byte, error) { return c.Payload, nil }

// VenueAccounts is a venue-specific resolved account bundle, opaque to the
// executor. Built fresh per leg and discarded after both calls are encoded.
type VenueAccounts interface {
	Venue() VenueKind
}

// VenueHandler is one resolver/encoder pair. Adding a venue means adding a
// VenueKind value and one implementation of this.
type VenueHandler interface {
	// Resolve scans a leg's sub-range and identifies every required account,
	// or returns a slot-specific not-found error.
	Resolve(sub []PoolAccount, mint, trader solana.PublicKey) (VenueAccounts, error)

	BuildBuy(va VenueAccounts, trader solana.PublicKey, tokens, maxCost uint64) (*EncodedCall, error)
	BuildSell(va VenueAccounts, trader solana.PublicKey, tokens, minOut uint64) (*EncodedCall, error)
}

// PauseGate is the router-state collaborator, consulted once per batch.
type PauseGate interface {
	IsPaused(ctx context.Context) (bool, error)
}

// Invoker is the external-call primitive. Invoke is synchronous from the
// executor's point of view; the production implementation stages calls into
// a single transaction so the runtime voids everything on any failure.
type Invoker interface {
	Invoke(ctx context.Context, call *EncodedCall) error
}
