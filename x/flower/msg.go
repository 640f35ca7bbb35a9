package flower

import (
	"github.com/florachain/flora"
	"github.com/florachain/flora/coin"
	"github.com/florachain/flora/errors"
)

// Msg is a request to mutate the registry. Validate checks the message in
// isolation, before any store access happens.
type Msg interface {
	Path() string
	Validate() error
}

// CreateFlowerMsg registers a new flower owned by the caller.
type CreateFlowerMsg struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       coin.Coin `json:"price"`
	ForSale     bool      `json:"for_sale"`
}

var _ Msg = (*CreateFlowerMsg)(nil)

func (CreateFlowerMsg) Path() string {
	return "flower/create"
}

func (m CreateFlowerMsg) Validate() error {
	if err := m.Price.Validate(); err != nil {
		return errors.Wrap(err, "price")
	}
	if !m.Price.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative price")
	}
	return nil
}

// BuyFlowerMsg transfers the flower to the caller against a ledger payment
// of the asking price.
type BuyFlowerMsg struct {
	Index int64 `json:"index"`
}

var _ Msg = (*BuyFlowerMsg)(nil)

func (BuyFlowerMsg) Path() string {
	return "flower/buy"
}

func (m BuyFlowerMsg) Validate() error {
	if m.Index < 0 {
		return errors.Wrapf(errors.ErrInput, "negative index %d", m.Index)
	}
	return nil
}

// GiftFlowerMsg transfers the flower to the recipient without payment. Only
// the current owner can gift.
type GiftFlowerMsg struct {
	Index     int64         `json:"index"`
	Recipient flora.Address `json:"recipient"`
}

var _ Msg = (*GiftFlowerMsg)(nil)

func (GiftFlowerMsg) Path() string {
	return "flower/gift"
}

func (m GiftFlowerMsg) Validate() error {
	if m.Index < 0 {
		return errors.Wrapf(errors.ErrInput, "negative index %d", m.Index)
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}

// ToggleSaleMsg flips the for sale flag. Only the current owner can toggle.
type ToggleSaleMsg struct {
	Index int64 `json:"index"`
}

var _ Msg = (*ToggleSaleMsg)(nil)

func (ToggleSaleMsg) Path() string {
	return "flower/toggle_sale"
}

func (m ToggleSaleMsg) Validate() error {
	if m.Index < 0 {
		return errors.Wrapf(errors.ErrInput, "negative index %d", m.Index)
	}
	return nil
}
