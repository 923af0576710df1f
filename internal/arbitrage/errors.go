package arbitrage

import "errors"

// Every failure the router can produce maps to exactly one of these
// sentinels. Resolution errors are wrapped with the missing slot's name,
// so errors.Is still matches the category while the message pins the slot.
var (
	// gate failures
	ErrContractPaused = errors.New("router is paused")
	ErrUnauthorized   = errors.New("unauthorized: owner signature required")

	// input-shape failures
	ErrInsufficientAccounts = errors.New("not enough pool accounts for declared leg counts")

	// resolution failures, one per slot category
	ErrAccountNotFound           = errors.New("required account not found in pool")
	ErrDerivedAccountNotFound    = errors.New("derived-address account not found in pool")
	ErrMintAccountNotFound       = errors.New("mint account not found in pool")
	ErrTokenAccountNotFound      = errors.New("trader token account not found in pool")
	ErrAssociatedAccountNotFound = errors.New("associated token account not found in pool")

	// unsupported-feature failures
	ErrUnsupportedVenue = errors.New("venue not implemented")

	// external-call failures
	ErrInvokeFailed = errors.New("venue invocation failed")

	// state-store guards
	ErrAlreadyInitialized = errors.New("router state already initialized")
	ErrNotInitialized     = errors.New("router state not initialized")
)

// stable caller-facing codes; 0 means success, 1 an unclassified fault
const (
	CodeOK uint32 = iota
	CodeUnknown
	CodeContractPaused
	CodeUnauthorized
	CodeInsufficientAccounts
	CodeAccountNotFound
	CodeDerivedAccountNotFound
	CodeMintAccountNotFound
	CodeTokenAccountNotFound
	CodeAssociatedAccountNotFound
	CodeUnsupportedVenue
	CodeInvokeFailed
	CodeAlreadyInitialized
	CodeNotInitialized
)

var errCodes = []struct {
	err  error
	code uint32
}{
	{ErrContractPaused, CodeContractPaused},
	{ErrUnauthorized, CodeUnauthorized},
	{ErrInsufficientAccounts, CodeInsufficientAccounts},
	{ErrAccountNotFound, CodeAccountNotFound},
	{ErrDerivedAccountNotFound, CodeDerivedAccountNotFound},
	{ErrMintAccountNotFound, CodeMintAccountNotFound},
	{ErrTokenAccountNotFound, CodeTokenAccountNotFound},
	{ErrAssociatedAccountNotFound, CodeAssociatedAccountNotFound},
	{ErrUnsupportedVenue, CodeUnsupportedVenue},
	{ErrInvokeFailed, CodeInvokeFailed},
	{ErrAlreadyInitialized, CodeAlreadyInitialized},
	{ErrNotInitialized, CodeNotInitialized},
}

// Code collapses any error from the router into its stable numeric code.
func Code(err error) uint32 {
	if err == nil {
		return CodeOK
	}
	for _, ec := range errCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeUnknown
}
