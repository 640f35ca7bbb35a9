package flower

import (
	"testing"

	"github.com/florachain/flora/coin"
	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/floratest"
	"github.com/florachain/flora/floratest/assert"
)

func TestFlowerValidate(t *testing.T) {
	cases := map[string]struct {
		model   Flower
		wantErr *errors.Error
	}{
		"valid": {
			model: Flower{
				Owner:   floratest.NewAddress(),
				Name:    "Rose",
				Price:   coin.NewCoin(10, 0, "PTL"),
				ForSale: true,
			},
		},
		"free flower is valid": {
			model: Flower{
				Owner: floratest.NewAddress(),
				Price: coin.NewCoin(0, 0, "PTL"),
			},
		},
		"empty strings are valid": {
			model: Flower{
				Owner: floratest.NewAddress(),
				Price: coin.NewCoin(1, 0, "PTL"),
			},
		},
		"missing owner": {
			model: Flower{
				Price: coin.NewCoin(1, 0, "PTL"),
			},
			wantErr: errors.ErrInput,
		},
		"negative price": {
			model: Flower{
				Owner: floratest.NewAddress(),
				Price: coin.NewCoin(-1, 0, "PTL"),
			},
			wantErr: errors.ErrAmount,
		},
		"malformed ticker": {
			model: Flower{
				Owner: floratest.NewAddress(),
				Price: coin.Coin{Whole: 1, Ticker: "x"},
			},
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestFlowerSerialization(t *testing.T) {
	f := Flower{
		Owner:       floratest.NewAddress(),
		Name:        "Rose",
		Description: "red",
		Image:       "url",
		Price:       coin.NewCoin(10, 5, "PTL"),
		ForSale:     true,
	}
	raw, err := f.Marshal()
	assert.Nil(t, err)

	var got Flower
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, f, got)
}

func TestFlowerCopyIsIndependent(t *testing.T) {
	f := Flower{
		Owner: floratest.NewAddress(),
		Name:  "Rose",
		Price: coin.NewCoin(10, 0, "PTL"),
	}
	cpy := f.Copy()
	cpy.Owner[0]++
	cpy.Name = "Tulip"

	assert.Equal(t, "Rose", f.Name)
	if f.Owner.Equals(cpy.Owner) {
		t.Fatal("copy shares the owner address")
	}
}
