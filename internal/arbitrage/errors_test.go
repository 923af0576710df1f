package arbitrage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeIsStablePerSentinel(t *testing.T) {
	require.Equal(t, CodeOK, Code(nil))
	require.Equal(t, CodeContractPaused, Code(ErrContractPaused))
	require.Equal(t, CodeUnauthorized, Code(ErrUnauthorized))
	require.Equal(t, CodeInsufficientAccounts, Code(ErrInsufficientAccounts))
	require.Equal(t, CodeUnsupportedVenue, Code(ErrUnsupportedVenue))
	require.Equal(t, CodeInvokeFailed, Code(ErrInvokeFailed))
}

func TestCodeSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("leg 2: %w", fmt.Errorf("%w: fee recipient", ErrAccountNotFound))
	require.Equal(t, CodeAccountNotFound, Code(err))
}

func TestCodeDistinguishesSlotCategories(t *testing.T) {
	codes := map[error]uint32{
		ErrAccountNotFound:           CodeAccountNotFound,
		ErrDerivedAccountNotFound:    CodeDerivedAccountNotFound,
		ErrMintAccountNotFound:       CodeMintAccountNotFound,
		ErrTokenAccountNotFound:      CodeTokenAccountNotFound,
		ErrAssociatedAccountNotFound: CodeAssociatedAccountNotFound,
	}
	seen := make(map[uint32]bool)
	for err, want := range codes {
		got := Code(err)
		require.Equal(t, want, got)
		require.False(t, seen[got], "codes must be distinct")
		seen[got] = true
	}
}

func TestUnknownErrorsGetTheUnknownCode(t *testing.T) {
	require.Equal(t, CodeUnknown, Code(errors.New("something else")))
}
