package arbitrage

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func makePool(n int) []PoolAccount {
	pool := make([]PoolAccount, n)
	for i := range pool {
		pool[i] = PoolAccount{Key: solana.NewWallet().PublicKey()}
	}
	return pool
}

func legsWithCounts(counts ...uint8) []Leg {
	legs := make([]Leg, len(counts))
	for i, c := range counts {
		legs[i] = Leg{AccountsCount: c}
	}
	return legs
}

func TestPartitionIsContiguousAndOrderPreserving(t *testing.T) {
	pool := makePool(10)
	legs := legsWithCounts(2, 3, 1, 4)

	subs, err := Partition(pool, legs)
	require.NoError(t, err)
	require.Len(t, subs, 4)

	// leg k's sub-range is [sum(c0..c_{k-1}), sum(c0..c_k))
	offset := 0
	for i, leg := range legs {
		require.Len(t, subs[i], int(leg.AccountsCount))
		for j := range subs[i] {
			require.Equal(t, pool[offset+j].Key, subs[i][j].Key,
				"leg %d slot %d must come from pool position %d", i, j, offset+j)
		}
		offset += int(leg.AccountsCount)
	}
	require.Equal(t, 10, offset)
}

func TestPartitionAllowsUnconsumedTail(t *testing.T) {
	pool := makePool(12)
	subs, err := Partition(pool, legsWithCounts(2, 2, 2, 2))
	require.NoError(t, err)
	require.Len(t, subs, 4)
}

func TestPartitionFailsOnOverrun(t *testing.T) {
	pool := makePool(9)

	subs, err := Partition(pool, legsWithCounts(2, 3, 1, 4))
	require.ErrorIs(t, err, ErrInsufficientAccounts)
	require.Nil(t, subs)
}

func TestPartitionFailsEvenWhenOnlyLastLegOverruns(t *testing.T) {
	pool := makePool(6)

	// first three legs fit, fourth does not — nothing may be handed out
	subs, err := Partition(pool, legsWithCounts(1, 1, 1, 10))
	require.ErrorIs(t, err, ErrInsufficientAccounts)
	require.Nil(t, subs)
}
