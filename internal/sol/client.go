package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
)

// getMultipleAccounts caps the key list per request
const fetchChunk = 100

type Client struct {
	rpc *rpc.Client
}

func NewClient(url string) *Client {
	return &Client{rpc: rpc.New(url)}
}

func (c *Client) Close() error {
	return c.rpc.Close()
}

// FetchPool hydrates the plan's pool pubkeys into PoolAccounts, preserving
// order. Every key must exist on chain — the resolver needs owner and data
// for structural matching, so a hole is a hard error here.
func (c *Client) FetchPool(ctx context.Context, keys []solana.PublicKey) ([]arbitrage.PoolAccount, error) {
	pool := make([]arbitrage.PoolAccount, 0, len(keys))

	for start := 0; start < len(keys); start += fetchChunk {
		end := start + fetchChunk
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[start:end]

		res, err := c.rpc.GetMultipleAccounts(ctx, chunk...)
		if err != nil {
			return nil, fmt.Errorf("fetch pool accounts: %w", err)
		}
		if len(res.Value) != len(chunk) {
			return nil, fmt.Errorf("fetch pool accounts: got %d of %d", len(res.Value), len(chunk))
		}

		for i, acc := range res.Value {
			if acc == nil {
				return nil, fmt.Errorf("pool account %s does not exist", chunk[i])
			}
			var data []byte
			if acc.Data != nil {
				data = acc.Data.GetBinary()
			}
			pool = append(pool, arbitrage.PoolAccount{
				Key:   chunk[i],
				Owner: acc.Owner,
				Data:  data,
			})
		}
	}

	return pool, nil
}

func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("latest blockhash: %w", err)
	}
	return out.Value.Blockhash, nil
}

func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	return c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false, // preflight simulation is the last gate before effects land
		PreflightCommitment: rpc.CommitmentProcessed,
	})
}
