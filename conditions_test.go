package flora

import (
	"testing"

	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/floratest/assert"
)

func TestConditionParse(t *testing.T) {
	data := []byte{0, 1, 2, 3}
	cond := NewCondition("flora", "seq", data)
	assert.Nil(t, cond.Validate())

	ext, typ, rest, err := cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, "flora", ext)
	assert.Equal(t, "seq", typ)
	assert.Equal(t, data, rest)

	// data containing a slash still parses, extra slashes belong to the
	// data section
	cond = NewCondition("flora", "seq", []byte("a/b"))
	_, _, rest, err = cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, []byte("a/b"), rest)
}

func TestConditionParseInvalid(t *testing.T) {
	cases := map[string]Condition{
		"empty":          {},
		"no separators":  Condition("foobar"),
		"short ext":      NewCondition("ab", "seq", []byte{1}),
		"long type":      NewCondition("flora", "waytoolongtype", []byte{1}),
		"no data":        NewCondition("flora", "seq", nil),
		"bad characters": NewCondition("fl*ra", "seq", []byte{1}),
	}
	for testName, cond := range cases {
		t.Run(testName, func(t *testing.T) {
			_, _, _, err := cond.Parse()
			if !errors.ErrInput.Is(err) {
				t.Fatalf("want input error, got %+v", err)
			}
			if cond.Validate() == nil {
				t.Fatal("validate must reject what parse rejects")
			}
		})
	}
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("flora", "seq", []byte{1}).Address()
	b := NewCondition("flora", "seq", []byte{2}).Address()

	assert.Nil(t, a.Validate())
	assert.Equal(t, AddressLength, len(a))
	if a.Equals(b) {
		t.Fatal("different conditions must produce different addresses")
	}

	// stable: the same condition always hashes to the same address
	again := NewCondition("flora", "seq", []byte{1}).Address()
	assert.Equal(t, a, again)
}

func TestAddressClone(t *testing.T) {
	a := NewCondition("flora", "seq", []byte{7}).Address()
	cpy := a.Clone()
	cpy[0]++
	if a.Equals(cpy) {
		t.Fatal("clone shares memory with the original")
	}

	var nilAddr Address
	assert.Nil(t, []byte(nilAddr.Clone()))
}

func TestAddressValidate(t *testing.T) {
	assert.Nil(t, NewAddress([]byte("anything")).Validate())

	short := Address{1, 2, 3}
	if short.Validate() == nil {
		t.Fatal("short address must not validate")
	}
	var empty Address
	if empty.Validate() == nil {
		t.Fatal("empty address must not validate")
	}
}
