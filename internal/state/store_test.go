package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInitializeIsOneTime(t *testing.T) {
	s := openTestStore(t)
	owner := solana.NewWallet().PublicKey()
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx, owner))

	got, err := s.Owner(ctx)
	require.NoError(t, err)
	require.Equal(t, owner, got)

	paused, err := s.IsPaused(ctx)
	require.NoError(t, err)
	require.False(t, paused, "fresh router must start unpaused")

	// second init must not replace the owner
	err = s.Initialize(ctx, solana.NewWallet().PublicKey())
	require.ErrorIs(t, err, arbitrage.ErrAlreadyInitialized)

	got, err = s.Owner(ctx)
	require.NoError(t, err)
	require.Equal(t, owner, got)
}

func TestUninitializedStoreReportsNotInitialized(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.IsPaused(ctx)
	require.ErrorIs(t, err, arbitrage.ErrNotInitialized)

	_, err = s.TogglePause(ctx, solana.NewWallet().PublicKey())
	require.ErrorIs(t, err, arbitrage.ErrNotInitialized)
}

func TestTogglePauseFlipsTheFlag(t *testing.T) {
	s := openTestStore(t)
	owner := solana.NewWallet().PublicKey()
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx, owner))

	paused, err := s.TogglePause(ctx, owner)
	require.NoError(t, err)
	require.True(t, paused)

	paused, err = s.TogglePause(ctx, owner)
	require.NoError(t, err)
	require.False(t, paused)
}

func TestTogglePauseRejectsNonOwner(t *testing.T) {
	s := openTestStore(t)
	owner := solana.NewWallet().PublicKey()
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx, owner))

	_, err := s.TogglePause(ctx, solana.NewWallet().PublicKey())
	require.ErrorIs(t, err, arbitrage.ErrUnauthorized)

	paused, err := s.IsPaused(ctx)
	require.NoError(t, err)
	require.False(t, paused, "rejected toggle must leave state unchanged")
}
