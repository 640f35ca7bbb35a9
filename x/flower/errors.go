package flower

import "github.com/florachain/flora/errors"

// Error codes: flora extensions take 1000-1100, flower claims 1010-1019.
var (
	// ErrPaymentRejected is returned when the ledger refused or failed
	// the value transfer during a buy. No registry state changed.
	ErrPaymentRejected = errors.Register(1010, "payment rejected")

	// ErrOutOfRange is returned when addressing an index that was never
	// assigned.
	ErrOutOfRange = errors.Register(1011, "index out of range")
)
