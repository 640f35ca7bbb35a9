package token

import (
	"fmt"

	"github.com/florachain/flora"
	"github.com/florachain/flora/coin"
	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/orm"
)

// supplyKey addresses the single record tracking the total issued value.
// It is shorter than any address, so it cannot collide with an account.
var supplyKey = []byte("_supply")

// Controller moves value between accounts. All mutating methods either
// fully apply or leave the store untouched, provided the given KVStore is
// a cache-wrap that the caller writes after a successful call.
type Controller struct {
	ticker     string
	accounts   orm.ModelBucket
	allowances orm.ModelBucket
}

// NewController returns a controller for a single-currency ledger.
// Panics on an invalid ticker, as that is a configuration error.
func NewController(ticker string) Controller {
	if !coin.IsCC(ticker) {
		panic(fmt.Sprintf("invalid ticker: %q", ticker))
	}
	return Controller{
		ticker:     ticker,
		accounts:   orm.NewModelBucket("tokenacc"),
		allowances: orm.NewModelBucket("tokenallw"),
	}
}

// Ticker returns the currency this ledger operates in.
func (c Controller) Ticker() string {
	return c.ticker
}

// Balance returns the value held by the address. Accounts that were never
// credited hold zero.
func (c Controller) Balance(db flora.ReadOnlyKVStore, addr flora.Address) (coin.Coin, error) {
	if err := addr.Validate(); err != nil {
		return coin.Coin{}, errors.Wrap(err, "address")
	}
	return c.load(db, addr)
}

// TotalSupply returns the sum of all issued value.
func (c Controller) TotalSupply(db flora.ReadOnlyKVStore) (coin.Coin, error) {
	return c.load(db, supplyKey)
}

// Issue mints the given amount into the destination account.
func (c Controller) Issue(db flora.KVStore, dest flora.Address, amount coin.Coin) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if err := c.checkAmount(amount); err != nil {
		return err
	}

	if err := c.credit(db, dest, amount); err != nil {
		return err
	}

	supply, err := c.load(db, supplyKey)
	if err != nil {
		return err
	}
	supply, err = supply.Add(amount)
	if err != nil {
		return err
	}
	return c.accounts.Put(db, supplyKey, &Account{Balance: supply})
}

// Transfer moves the given amount from src to dest. It fails when src does
// not hold sufficient value. A transfer to oneself is allowed and leaves
// the balance unchanged.
func (c Controller) Transfer(db flora.KVStore, src, dest flora.Address, amount coin.Coin) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if err := c.checkAmount(amount); err != nil {
		return err
	}

	balance, err := c.load(db, src)
	if err != nil {
		return err
	}
	if !balance.IsGTE(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "balance %s", balance)
	}

	// moving value to oneself is a noop, but only after the above checks
	if src.Equals(dest) {
		return nil
	}

	balance, err = balance.Subtract(amount)
	if err != nil {
		return err
	}
	if err := c.accounts.Put(db, src, &Account{Balance: balance}); err != nil {
		return err
	}
	return c.credit(db, dest, amount)
}

// Approve lets the spender move up to the given amount out of the owner's
// account via TransferFrom. Approving zero revokes the allowance.
func (c Controller) Approve(db flora.KVStore, owner, spender flora.Address, amount coin.Coin) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative allowance")
	}
	if !amount.SameType(coin.Coin{Ticker: c.ticker}) {
		return errors.Wrapf(errors.ErrCurrency, "expected %s", c.ticker)
	}

	key := allowanceKey(owner, spender)
	if amount.IsZero() {
		has, err := c.allowances.Has(db, key)
		if err != nil {
			return err
		}
		if !has {
			return nil
		}
		return c.allowances.Delete(db, key)
	}
	return c.allowances.Put(db, key, &Allowance{Amount: amount})
}

// Allowance returns how much the spender may still move out of the owner's
// account. Defaults to zero.
func (c Controller) Allowance(db flora.ReadOnlyKVStore, owner, spender flora.Address) (coin.Coin, error) {
	var a Allowance
	switch err := c.allowances.One(db, allowanceKey(owner, spender), &a); {
	case err == nil:
		return a.Amount, nil
	case errors.ErrNotFound.Is(err):
		return coin.NewCoin(0, 0, c.ticker), nil
	default:
		return coin.Coin{}, err
	}
}

// TransferFrom moves the given amount from the from account to the to
// account, authorized by a prior allowance from from to the spender. The
// allowance shrinks by the transferred amount.
func (c Controller) TransferFrom(db flora.KVStore, spender, from, to flora.Address, amount coin.Coin) error {
	if err := spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	if err := c.checkAmount(amount); err != nil {
		return err
	}
	allowed, err := c.Allowance(db, from, spender)
	if err != nil {
		return err
	}
	if !allowed.IsGTE(amount) {
		return errors.Wrapf(ErrInsufficientAllowance, "allowance %s", allowed)
	}

	if err := c.Transfer(db, from, to, amount); err != nil {
		return err
	}

	remaining, err := allowed.Subtract(amount)
	if err != nil {
		return err
	}
	return c.Approve(db, from, spender, remaining)
}

// AsSpender binds the controller to a fixed spender identity, producing
// the narrow transfer capability the flower registry consumes.
func (c Controller) AsSpender(spender flora.Address) SpenderLedger {
	return SpenderLedger{ctrl: c, spender: spender}
}

// SpenderLedger is a Controller acting on behalf of one spender.
type SpenderLedger struct {
	ctrl    Controller
	spender flora.Address
}

// TransferFrom moves value from from to to, within the allowance granted
// by from to the bound spender.
func (l SpenderLedger) TransferFrom(db flora.KVStore, from, to flora.Address, amount coin.Coin) error {
	return l.ctrl.TransferFrom(db, l.spender, from, to, amount)
}

func (c Controller) load(db flora.ReadOnlyKVStore, key []byte) (coin.Coin, error) {
	var acc Account
	switch err := c.accounts.One(db, key, &acc); {
	case err == nil:
		return acc.Balance, nil
	case errors.ErrNotFound.Is(err):
		return coin.NewCoin(0, 0, c.ticker), nil
	default:
		return coin.Coin{}, err
	}
}

func (c Controller) credit(db flora.KVStore, dest flora.Address, amount coin.Coin) error {
	balance, err := c.load(db, dest)
	if err != nil {
		return err
	}
	balance, err = balance.Add(amount)
	if err != nil {
		return err
	}
	return c.accounts.Put(db, dest, &Account{Balance: balance})
}

func (c Controller) checkAmount(amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if amount.Ticker != c.ticker {
		return errors.Wrapf(errors.ErrCurrency, "expected %s", c.ticker)
	}
	return nil
}
