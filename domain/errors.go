package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrSigner is the single message every signer acquisition failure maps to,
	// regardless of the underlying cause
	ErrSigner = errors.New("Error getting eth wallet signer.")
	// ErrMatchingOrder will throw if the buy/sell pair can not be resolved
	// from the marketplace
	ErrMatchingOrder = errors.New("failed to resolve matching orders")
	// ErrFeeEstimation will throw if the chain provider can not quote fees
	ErrFeeEstimation = errors.New("failed to estimate fees")
	// ErrNoAssetFound will throw if neither an asset reference nor a
	// (contract, tokenId) pair resolves
	ErrNoAssetFound = errors.New("No asset found")
	// ErrSubmission will throw if the marketplace rejects a posted order
	ErrSubmission = errors.New("failed to submit order")
	// ErrInsufficientFunds is derived from the underlying error text, the
	// node reports no distinct type for it
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrOrderNotSigned      = errors.New("order is not signed")
)

const insufficientFundsText = "insufficient funds"

// IsInsufficientFunds pattern matches the node error text. Fragile by
// nature, the upstream provider exposes no typed error for this.
func IsInsufficientFunds(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrInsufficientFunds) {
		return true
	}
	return strings.Contains(err.Error(), insufficientFundsText)
}
