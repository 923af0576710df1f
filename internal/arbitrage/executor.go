package arbitrage

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Executor runs one batch at a time: pause gate first, then each leg in
// submission order (resolve, encode buy, invoke, encode sell, invoke).
// The first failure anywhere aborts the whole batch; nothing is retried
// and nothing is compensated, since all staged calls live inside one
// unit of work that the chain runtime voids on failure.
type Executor struct {
	handlers map[VenueKind]VenueHandler
	gate     PauseGate
	log      *zap.Logger
}

func NewExecutor(gate PauseGate, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		handlers: make(map[VenueKind]VenueHandler),
		gate:     gate,
		log:      log,
	}
}

// RegisterVenue wires one resolver/encoder pair. Venues without a handler
// fail legs naming them with ErrUnsupportedVenue.
func (e *Executor) RegisterVenue(kind VenueKind, h VenueHandler) {
	e.handlers[kind] = h
}

func (e *Executor) handler(kind VenueKind) (VenueHandler, error) {
	h, ok := e.handlers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVenue, kind)
	}
	return h, nil
}

// ExecuteBatch stages all eight venue calls for a four-leg batch through
// the invoker, strictly in leg order, buy before sell within each leg.
func (e *Executor) ExecuteBatch(ctx context.Context, batch *Batch, pool []PoolAccount, inv Invoker) error {
	paused, err := e.gate.IsPaused(ctx)
	if err != nil {
		return fmt.Errorf("pause gate: %w", err)
	}
	if paused {
		return ErrContractPaused
	}

	subs, err := Partition(pool, batch.Legs[:])
	if err != nil {
		return err
	}

	e.log.Info("executing arbitrage batch",
		zap.Stringer("trader", batch.Trader),
		zap.Stringer("settlement", batch.Settlement),
		zap.Int("legs", len(batch.Legs)),
		zap.Int("pool_accounts", len(pool)))

	for i, leg := range batch.Legs {
		if err := e.executeLeg(ctx, i, leg, subs[i], batch.Trader, inv); err != nil {
			return fmt.Errorf("leg %d: %w", i, err)
		}
	}

	e.log.Info("batch staged", zap.Int("calls", BatchLegs*2))
	return nil
}

func (e *Executor) executeLeg(ctx context.Context, idx int, leg Leg, sub []PoolAccount, trader solana.PublicKey, inv Invoker) error {
	e.log.Debug("processing leg",
		zap.Int("index", idx),
		zap.Stringer("mint", leg.TokenMint),
		zap.Stringer("buy_venue", leg.BuyVenue),
		zap.Stringer("sell_venue", leg.SellVenue),
		zap.Uint8("accounts", leg.AccountsCount))

	buyHandler, err := e.handler(leg.BuyVenue)
	if err != nil {
		return err
	}
	sellHandler, err := e.handler(leg.SellVenue)
	if err != nil {
		return err
	}

	resolved, err := buyHandler.Resolve(sub, leg.TokenMint, trader)
	if err != nil {
		return err
	}

	buy, err := buyHandler.BuildBuy(resolved, trader, leg.TokensToBuy, leg.MaxSolCost)
	if err != nil {
		return err
	}
	if err := inv.Invoke(ctx, buy); err != nil {
		return fmt.Errorf("%w: buy: %v", ErrInvokeFailed, err)
	}

	// the buy-side resolution is only valid for the sell call when both
	// point at the same venue; a cross-venue leg resolves its sell side
	// independently over the same sub-range
	sellResolved := resolved
	if leg.SellVenue != leg.BuyVenue {
		sellResolved, err = sellHandler.Resolve(sub, leg.TokenMint, trader)
		if err != nil {
			return err
		}
	}

	sell, err := sellHandler.BuildSell(sellResolved, trader, leg.TokensToSell, leg.MinSolOut)
	if err != nil {
		return err
	}
	if err := inv.Invoke(ctx, sell); err != nil {
		return fmt.Errorf("%w: sell: %v", ErrInvokeFailed, err)
	}

	return nil
}
