package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
)

// Bundle collects the executor's staged calls and lands them as a single
// signed transaction. That transaction is the unit of work the router
// relies on: if any instruction fails, the runtime discards every effect
// of the ones before it.
type Bundle struct {
	calls []*arbitrage.EncodedCall
	log   *zap.Logger
}

func NewBundle(log *zap.Logger) *Bundle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bundle{log: log}
}

// Invoke stages one call. It never talks to the network; venue-level
// rejection surfaces at Flush, still before any state change is final.
func (b *Bundle) Invoke(_ context.Context, call *arbitrage.EncodedCall) error {
	if call == nil || len(call.Payload) == 0 {
		return fmt.Errorf("%w: empty call", arbitrage.ErrInvokeFailed)
	}
	b.calls = append(b.calls, call)
	b.log.Debug("staged call",
		zap.Stringer("program", call.Program),
		zap.Int("accounts", len(call.Metas)),
		zap.Int("payload_bytes", len(call.Payload)))
	return nil
}

func (b *Bundle) Len() int { return len(b.calls) }

func (b *Bundle) Reset() { b.calls = nil }

// Flush signs and submits the staged calls as one transaction.
func (b *Bundle) Flush(ctx context.Context, c *Client, signer solana.PrivateKey) (solana.Signature, error) {
	if len(b.calls) == 0 {
		return solana.Signature{}, fmt.Errorf("flush: no staged calls")
	}

	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	instructions := make([]solana.Instruction, len(b.calls))
	for i, call := range b.calls {
		instructions[i] = call
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash,
		solana.TransactionPayer(signer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build transaction: %w", err)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(signer.PublicKey()) {
			return &signer
		}
		return nil
	}); err != nil {
		return solana.Signature{}, fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := c.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %v", arbitrage.ErrInvokeFailed, err)
	}

	b.log.Info("bundle submitted",
		zap.Int("calls", len(b.calls)),
		zap.Stringer("signature", sig))
	return sig, nil
}
