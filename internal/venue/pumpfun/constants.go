package pumpfun

import "github.com/gagliardetto/solana-go"

// Pump.fun bonding-curve AMM — Solana mainnet
var (
	ProgramID    = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	FeeRecipient = solana.MustPublicKeyFromBase58("CebN5WGQ4jvEPvsVU4EoHEpgzq1VV7AbicfhtW4xC9iM")
)

// anchor instruction discriminators; must stay bit-for-bit identical to the
// venue's IDL or every call gets rejected
var (
	buyDiscriminator  = [8]byte{0x66, 0x06, 0x3d, 0x12, 0x01, 0xda, 0xeb, 0xea}
	sellDiscriminator = [8]byte{0x33, 0xe6, 0x85, 0xa4, 0x01, 0x7f, 0x83, 0xad}
)

// PDA seeds
const (
	globalSeed         = "global"
	bondingCurveSeed   = "bonding-curve"
	eventAuthoritySeed = "__event_authority"
)

// per-mint derivations kept hot across legs and batches
const derivedCacheSize = 512
