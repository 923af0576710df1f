package sol

import "github.com/gagliardetto/solana-go"

// Program addresses — Solana mainnet
var (
	RouterProgramID = solana.MustPublicKeyFromBase58("4xVUrp3J6t6FKrS61uWN6UZRCrvfMU97qa8uJJxncaP1")

	WSOLMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	// platform services every batch names
	TokenProgramID  = solana.TokenProgramID
	SystemProgramID = solana.SystemProgramID
	RentSysvarID    = solana.SysVarRentPubkey
)

// seed for the router-state singleton PDA
const RouterStateSeed = "router_state"

// RouterStateAddress derives the canonical router-state address and its
// bump from the fixed seed. Pure function of the router program id.
func RouterStateAddress() (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{[]byte(RouterStateSeed)}, RouterProgramID)
}
