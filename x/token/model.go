package token

import (
	"encoding/json"

	"github.com/florachain/flora"
	"github.com/florachain/flora/coin"
	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/orm"
)

var _ orm.Model = (*Account)(nil)

// Account is the value stored per address: the balance it holds.
type Account struct {
	Balance coin.Coin `json:"balance"`
}

func (a *Account) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

func (a *Account) Unmarshal(data []byte) error {
	return json.Unmarshal(data, a)
}

// Validate ensures the account never persists a malformed or negative
// balance.
func (a *Account) Validate() error {
	if err := a.Balance.Validate(); err != nil {
		return errors.Wrap(err, "balance")
	}
	if !a.Balance.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}
	return nil
}

var _ orm.Model = (*Allowance)(nil)

// Allowance is the value stored per (owner, spender) pair: how much the
// spender may still move out of the owner's account.
type Allowance struct {
	Amount coin.Coin `json:"amount"`
}

func (a *Allowance) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

func (a *Allowance) Unmarshal(data []byte) error {
	return json.Unmarshal(data, a)
}

func (a *Allowance) Validate() error {
	if err := a.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !a.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative allowance")
	}
	return nil
}

// allowanceKey identifies an (owner, spender) pair. Addresses have a fixed
// length, so plain concatenation cannot be ambiguous.
func allowanceKey(owner, spender flora.Address) []byte {
	key := make([]byte, 0, len(owner)+len(spender))
	key = append(key, owner...)
	return append(key, spender...)
}
