package pumpfun

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
	"github.com/pulkyeet/sol-arb-router/internal/sol"
)

// payload layout: [8-byte discriminator][u64 LE quantity][u64 LE bound]
func encodePayload(disc [8]byte, quantity, bound uint64) []byte {
	data := make([]byte, 24)
	copy(data[0:8], disc[:])
	binary.LittleEndian.PutUint64(data[8:16], quantity)
	binary.LittleEndian.PutUint64(data[16:24], bound)
	return data
}

// the venue's required account order; position, writability and signer
// flags are part of its contract. Buy and sell share this list — a
// Pump.fun-specific fact, not a rule for other venues.
func (h *Handler) metas(acc *Accounts, trader solana.PublicKey) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(acc.Global, false, false),
		solana.NewAccountMeta(acc.FeeRecipient, true, false),
		solana.NewAccountMeta(acc.Mint, false, false),
		solana.NewAccountMeta(acc.BondingCurve, true, false),
		solana.NewAccountMeta(acc.AssociatedBondingCurve, true, false),
		solana.NewAccountMeta(acc.UserToken, true, false),
		solana.NewAccountMeta(trader, true, true),
		solana.NewAccountMeta(sol.SystemProgramID, false, false),
		solana.NewAccountMeta(sol.TokenProgramID, false, false),
		solana.NewAccountMeta(sol.RentSysvarID, false, false),
		solana.NewAccountMeta(acc.EventAuthority, false, false),
		solana.NewAccountMeta(acc.Program, false, false),
	}
}

func (h *Handler) accounts(va arbitrage.VenueAccounts) (*Accounts, error) {
	acc, ok := va.(*Accounts)
	if !ok {
		return nil, fmt.Errorf("%w: resolved accounts are for %s, not pumpfun",
			arbitrage.ErrUnsupportedVenue, va.Venue())
	}
	return acc, nil
}

// BuildBuy encodes buy(tokens, maxCost): acquire `tokens` spending at most
// `maxCost` lamports.
func (h *Handler) BuildBuy(va arbitrage.VenueAccounts, trader solana.PublicKey, tokens, maxCost uint64) (*arbitrage.EncodedCall, error) {
	acc, err := h.accounts(va)
	if err != nil {
		return nil, err
	}
	return &arbitrage.EncodedCall{
		Program: h.program,
		Metas:   h.metas(acc, trader),
		Payload: encodePayload(buyDiscriminator, tokens, maxCost),
	}, nil
}

// BuildSell encodes sell(tokens, minOut): dispose `tokens` for at least
// `minOut` lamports, over the same account list as the buy.
func (h *Handler) BuildSell(va arbitrage.VenueAccounts, trader solana.PublicKey, tokens, minOut uint64) (*arbitrage.EncodedCall, error) {
	acc, err := h.accounts(va)
	if err != nil {
		return nil, err
	}
	return &arbitrage.EncodedCall{
		Program: h.program,
		Metas:   h.metas(acc, trader),
		Payload: encodePayload(sellDiscriminator, tokens, minOut),
	}, nil
}
