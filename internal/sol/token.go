package sol

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// byte size of an SPL token account; structural matching keys off this
const TokenAccountSize = 165

// TokenAccount is the decoded head of the SPL token-account layout. Only
// the fields the resolver needs: mint [0:32], owner [32:64], amount [64:72].
type TokenAccount struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

func DecodeTokenAccount(data []byte) (TokenAccount, error) {
	if len(data) != TokenAccountSize {
		return TokenAccount{}, fmt.Errorf("token account: want %d bytes, got %d", TokenAccountSize, len(data))
	}
	var ta TokenAccount
	copy(ta.Mint[:], data[0:32])
	copy(ta.Owner[:], data[32:64])
	ta.Amount = binary.LittleEndian.Uint64(data[64:72])
	return ta, nil
}

// EncodeTokenAccount builds a minimal 165-byte token account image. Used by
// tests and local tooling; fields beyond the head are zero.
func EncodeTokenAccount(ta TokenAccount) []byte {
	data := make([]byte, TokenAccountSize)
	copy(data[0:32], ta.Mint[:])
	copy(data[32:64], ta.Owner[:])
	binary.LittleEndian.PutUint64(data[64:72], ta.Amount)
	data[108] = 1 // state = initialized
	return data
}
