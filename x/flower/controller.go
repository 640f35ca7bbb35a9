package flower

import (
	"github.com/florachain/flora"
	"github.com/florachain/flora/coin"
	"github.com/florachain/flora/errors"
)

// Ledger moves funds between accounts on behalf of the registry. The
// registry is the spender: it must be granted an allowance by the buyer
// before a purchase can settle.
type Ledger interface {
	TransferFrom(db flora.KVStore, from, to flora.Address, amount coin.Coin) error
}

// Controller implements the registry operations. It does not serialize
// access and it does not isolate writes. Callers that need all-or-nothing
// semantics must run each operation inside a cache wrap (see Service).
type Controller struct {
	bucket Bucket
	ledger Ledger
}

// NewController returns a controller that settles purchases through the
// given ledger.
func NewController(ledger Ledger) Controller {
	return Controller{
		bucket: NewBucket(),
		ledger: ledger,
	}
}

// Create registers a new flower owned by the caller and returns its index.
func (c Controller) Create(db flora.KVStore, owner flora.Address, msg CreateFlowerMsg) (int64, error) {
	if err := msg.Validate(); err != nil {
		return 0, err
	}
	if err := owner.Validate(); err != nil {
		return 0, errors.Wrap(err, "owner")
	}
	f := Flower{
		Owner:       owner,
		Name:        msg.Name,
		Description: msg.Description,
		Image:       msg.Image,
		Price:       msg.Price,
		ForSale:     msg.ForSale,
	}
	return c.bucket.Create(db, &f)
}

// Read returns a copy of the flower at the index. Reading an index that
// was never assigned fails with ErrOutOfRange.
func (c Controller) Read(db flora.ReadOnlyKVStore, index int64) (*Flower, error) {
	return c.bucket.Get(db, index)
}

// Count returns how many flowers exist in the registry.
func (c Controller) Count(db flora.ReadOnlyKVStore) (int64, error) {
	return c.bucket.Count(db)
}

// Buy transfers the flower at the index to the buyer after collecting the
// asking price through the ledger. The payment moves from the buyer to the
// current owner. A rejected payment fails the whole operation with
// ErrPaymentRejected and no registry state may be persisted; the flower is
// only updated after the ledger accepted the transfer.
//
// Any caller with sufficient funds can buy at the recorded price,
// regardless of the for sale flag. The flag is advisory, toggled by the
// owner to signal intent. Buying your own flower is a paid noop that
// clears the flag.
func (c Controller) Buy(db flora.KVStore, buyer flora.Address, msg BuyFlowerMsg) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	f, err := c.bucket.Get(db, msg.Index)
	if err != nil {
		return err
	}
	if err := c.ledger.TransferFrom(db, buyer, f.Owner, f.Price); err != nil {
		return errors.Wrapf(ErrPaymentRejected, "ledger: %s", err)
	}
	f.Owner = buyer
	f.ForSale = false
	return c.bucket.Save(db, msg.Index, f)
}

// Gift transfers the flower at the index to the recipient without payment.
// Only the current owner is authorized.
func (c Controller) Gift(db flora.KVStore, caller flora.Address, msg GiftFlowerMsg) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	f, err := c.bucket.Get(db, msg.Index)
	if err != nil {
		return err
	}
	if !f.Owner.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "not the owner")
	}
	f.Owner = msg.Recipient
	return c.bucket.Save(db, msg.Index, f)
}

// ToggleSale flips the for sale flag of the flower at the index. Only the
// current owner is authorized.
func (c Controller) ToggleSale(db flora.KVStore, caller flora.Address, msg ToggleSaleMsg) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	f, err := c.bucket.Get(db, msg.Index)
	if err != nil {
		return err
	}
	if !f.Owner.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "not the owner")
	}
	f.ForSale = !f.ForSale
	return c.bucket.Save(db, msg.Index, f)
}
