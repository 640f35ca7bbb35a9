package flower

import (
	"encoding/json"

	"github.com/florachain/flora"
	"github.com/florachain/flora/coin"
	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/orm"
)

var _ orm.Model = (*Flower)(nil)

// Flower is a single registered record. Name, Description and Image are
// opaque blobs fixed at creation, as is Price. Owner and ForSale mutate
// over the lifetime of the record; the record itself is never destroyed.
type Flower struct {
	Owner       flora.Address `json:"owner"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Price       coin.Coin     `json:"price"`
	ForSale     bool          `json:"for_sale"`
}

func (f *Flower) Marshal() ([]byte, error) {
	return json.Marshal(f)
}

func (f *Flower) Unmarshal(data []byte) error {
	return json.Unmarshal(data, f)
}

// Validate ensures the record can be persisted. The descriptive strings
// are accepted as they are, but an owner must always be present and the
// price must be a well-formed, non-negative value.
func (f *Flower) Validate() error {
	if err := f.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := f.Price.Validate(); err != nil {
		return errors.Wrap(err, "price")
	}
	if !f.Price.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative price")
	}
	return nil
}

// Copy returns an independent copy of the record.
func (f *Flower) Copy() *Flower {
	return &Flower{
		Owner:       f.Owner.Clone(),
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
		Price:       f.Price,
		ForSale:     f.ForSale,
	}
}
