package sol

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestTokenAccountRoundTrip(t *testing.T) {
	want := TokenAccount{
		Mint:   solana.NewWallet().PublicKey(),
		Owner:  solana.NewWallet().PublicKey(),
		Amount: 987_654_321,
	}

	data := EncodeTokenAccount(want)
	require.Len(t, data, TokenAccountSize)

	got, err := DecodeTokenAccount(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeTokenAccountRejectsWrongSize(t *testing.T) {
	_, err := DecodeTokenAccount(make([]byte, 164))
	require.Error(t, err)

	_, err = DecodeTokenAccount(make([]byte, 166))
	require.Error(t, err)
}

func TestRouterStateAddressIsDeterministic(t *testing.T) {
	addr1, bump1, err := RouterStateAddress()
	require.NoError(t, err)
	addr2, bump2, err := RouterStateAddress()
	require.NoError(t, err)

	require.Equal(t, addr1, addr2)
	require.Equal(t, bump1, bump2)
	require.False(t, addr1.IsZero())
}
