package sol

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
)

func TestBundleStagesCallsInOrder(t *testing.T) {
	b := NewBundle(nil)
	ctx := context.Background()

	first := &arbitrage.EncodedCall{
		Program: solana.NewWallet().PublicKey(),
		Payload: []byte{1},
	}
	second := &arbitrage.EncodedCall{
		Program: solana.NewWallet().PublicKey(),
		Payload: []byte{2},
	}

	require.NoError(t, b.Invoke(ctx, first))
	require.NoError(t, b.Invoke(ctx, second))
	require.Equal(t, 2, b.Len())
	require.Equal(t, first, b.calls[0])
	require.Equal(t, second, b.calls[1])

	b.Reset()
	require.Zero(t, b.Len())
}

func TestBundleRejectsEmptyCalls(t *testing.T) {
	b := NewBundle(nil)
	ctx := context.Background()

	require.ErrorIs(t, b.Invoke(ctx, nil), arbitrage.ErrInvokeFailed)
	require.ErrorIs(t, b.Invoke(ctx, &arbitrage.EncodedCall{}), arbitrage.ErrInvokeFailed)
	require.Zero(t, b.Len())
}

func TestFlushWithoutCallsFails(t *testing.T) {
	b := NewBundle(nil)
	_, err := b.Flush(context.Background(), NewClient("http://localhost:0"), solana.NewWallet().PrivateKey)
	require.Error(t, err)
}
