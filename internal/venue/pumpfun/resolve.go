package pumpfun

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
	"github.com/pulkyeet/sol-arb-router/internal/sol"
)

// Accounts is the fully resolved account set for one Pump.fun leg: the
// seven scanned slots plus the bonding curve's associated token account.
type Accounts struct {
	Program                solana.PublicKey
	Global                 solana.PublicKey
	FeeRecipient           solana.PublicKey
	Mint                   solana.PublicKey
	BondingCurve           solana.PublicKey
	AssociatedBondingCurve solana.PublicKey
	UserToken              solana.PublicKey
	EventAuthority         solana.PublicKey
}

func (*Accounts) Venue() arbitrage.VenueKind { return arbitrage.VenuePumpFun }

type derivedAddrs struct {
	bondingCurve solana.PublicKey
	associated   solana.PublicKey
}

// Handler resolves and encodes Pump.fun calls. Program-wide PDAs (global,
// event authority) are derived once at construction; per-mint derivations
// (bonding curve, its ATA) go through an LRU so repeated legs on the same
// mint never re-run the curve math.
type Handler struct {
	program        solana.PublicKey
	feeRecipient   solana.PublicKey
	global         solana.PublicKey
	eventAuthority solana.PublicKey
	derived        *lru.Cache[solana.PublicKey, derivedAddrs]
}

func NewHandler() (*Handler, error) {
	return NewHandlerFor(ProgramID, FeeRecipient)
}

// NewHandlerFor builds a handler against a non-default program deployment
// (devnet forks, config overrides).
func NewHandlerFor(program, feeRecipient solana.PublicKey) (*Handler, error) {
	global, _, err := solana.FindProgramAddress([][]byte{[]byte(globalSeed)}, program)
	if err != nil {
		return nil, fmt.Errorf("derive global: %w", err)
	}
	eventAuthority, _, err := solana.FindProgramAddress([][]byte{[]byte(eventAuthoritySeed)}, program)
	if err != nil {
		return nil, fmt.Errorf("derive event authority: %w", err)
	}
	derived, err := lru.New[solana.PublicKey, derivedAddrs](derivedCacheSize)
	if err != nil {
		return nil, err
	}
	return &Handler{
		program:        program,
		feeRecipient:   feeRecipient,
		global:         global,
		eventAuthority: eventAuthority,
		derived:        derived,
	}, nil
}

func (h *Handler) deriveForMint(mint solana.PublicKey) (derivedAddrs, error) {
	if d, ok := h.derived.Get(mint); ok {
		return d, nil
	}
	bondingCurve, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(bondingCurveSeed), mint[:]}, h.program)
	if err != nil {
		return derivedAddrs{}, fmt.Errorf("derive bonding curve: %w", err)
	}
	associated, _, err := solana.FindAssociatedTokenAddress(bondingCurve, mint)
	if err != nil {
		return derivedAddrs{}, fmt.Errorf("derive curve ata: %w", err)
	}
	d := derivedAddrs{bondingCurve: bondingCurve, associated: associated}
	h.derived.Add(mint, d)
	return d, nil
}

// Resolve scans the leg's sub-range once and matches every required slot.
// Canonical addresses are matched by key equality; the trader's token
// account is matched structurally (SPL-owned, exact layout size, decoded
// owner and mint). Order inside the sub-range is irrelevant and unrelated
// accounts are skipped.
func (h *Handler) Resolve(sub []arbitrage.PoolAccount, mint, trader solana.PublicKey) (arbitrage.VenueAccounts, error) {
	d, err := h.deriveForMint(mint)
	if err != nil {
		return nil, err
	}

	var (
		foundProgram        bool
		foundGlobal         bool
		foundFee            bool
		foundMint           bool
		foundCurve          bool
		foundAssociated     bool
		foundEventAuthority bool
		userToken           solana.PublicKey
		foundUserToken      bool
	)

	for _, acc := range sub {
		switch acc.Key {
		case h.program:
			foundProgram = true
			continue
		case h.global:
			foundGlobal = true
			continue
		case h.feeRecipient:
			foundFee = true
			continue
		case mint:
			foundMint = true
			continue
		case d.bondingCurve:
			foundCurve = true
			continue
		case d.associated:
			foundAssociated = true
			continue
		case h.eventAuthority:
			foundEventAuthority = true
			continue
		}

		if acc.Owner == sol.TokenProgramID && len(acc.Data) == sol.TokenAccountSize {
			ta, err := sol.DecodeTokenAccount(acc.Data)
			if err != nil {
				continue
			}
			if ta.Owner == trader && ta.Mint == mint {
				userToken = acc.Key
				foundUserToken = true
			}
		}
	}

	switch {
	case !foundProgram:
		return nil, fmt.Errorf("%w: venue program", arbitrage.ErrAccountNotFound)
	case !foundGlobal:
		return nil, fmt.Errorf("%w: global config", arbitrage.ErrDerivedAccountNotFound)
	case !foundFee:
		return nil, fmt.Errorf("%w: fee recipient", arbitrage.ErrAccountNotFound)
	case !foundMint:
		return nil, fmt.Errorf("%w: %s", arbitrage.ErrMintAccountNotFound, mint)
	case !foundCurve:
		return nil, fmt.Errorf("%w: bonding curve", arbitrage.ErrDerivedAccountNotFound)
	case !foundAssociated:
		return nil, fmt.Errorf("%w: bonding curve ata", arbitrage.ErrAssociatedAccountNotFound)
	case !foundUserToken:
		return nil, fmt.Errorf("%w: trader %s mint %s", arbitrage.ErrTokenAccountNotFound, trader, mint)
	case !foundEventAuthority:
		return nil, fmt.Errorf("%w: event authority", arbitrage.ErrDerivedAccountNotFound)
	}

	return &Accounts{
		Program:                h.program,
		Global:                 h.global,
		FeeRecipient:           h.feeRecipient,
		Mint:                   mint,
		BondingCurve:           d.bondingCurve,
		AssociatedBondingCurve: d.associated,
		UserToken:              userToken,
		EventAuthority:         h.eventAuthority,
	}, nil
}
