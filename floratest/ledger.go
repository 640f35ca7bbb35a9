package floratest

import (
	"github.com/florachain/flora"
	"github.com/florachain/flora/coin"
)

// Move records a single transfer request observed by the Ledger stub.
type Move struct {
	From   flora.Address
	To     flora.Address
	Amount coin.Coin
}

// Ledger is a payment capability stub. It records every transfer request
// and succeeds unless Err is set.
type Ledger struct {
	// Err is returned by every TransferFrom call. Transfers are recorded
	// regardless, so a test can assert that the call was attempted.
	Err error

	// Moves collects all requested transfers in order.
	Moves []Move
}

// TransferFrom implements the ledger capability consumed by the registry.
func (l *Ledger) TransferFrom(db flora.KVStore, from, to flora.Address, amount coin.Coin) error {
	l.Moves = append(l.Moves, Move{
		From:   from.Clone(),
		To:     to.Clone(),
		Amount: amount,
	})
	return l.Err
}

// CallCount returns the number of transfers requested so far.
func (l *Ledger) CallCount() int {
	return len(l.Moves)
}
