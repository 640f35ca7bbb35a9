package token

import "github.com/florachain/flora/errors"

// Error codes: flora extensions take 1000-1100, token claims 1020-1029.
var (
	// ErrInsufficientFunds is returned when the source account does not
	// hold enough value to cover a transfer.
	ErrInsufficientFunds = errors.Register(1020, "insufficient funds")

	// ErrInsufficientAllowance is returned when a delegated transfer
	// exceeds what the owner approved for the spender.
	ErrInsufficientAllowance = errors.Register(1021, "insufficient allowance")
)
