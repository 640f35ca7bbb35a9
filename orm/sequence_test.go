package orm

import (
	"bytes"
	"testing"

	"github.com/florachain/flora/floratest/assert"
	"github.com/florachain/flora/store"
)

func TestSequenceMonotonic(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("flowers", "id")

	var lastVal []byte
	for i := int64(1); i <= 10; i++ {
		n, err := seq.NextInt(db)
		assert.Nil(t, err)
		assert.Equal(t, i, n)

		val := EncodeSequence(n)
		if lastVal != nil && bytes.Compare(lastVal, val) >= 0 {
			t.Fatalf("sequence bytes are not increasing: %X >= %X", lastVal, val)
		}
		lastVal = val
	}
}

func TestSequenceLatest(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("flowers", "id")

	// a fresh sequence reports zero
	n, _, err := seq.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), n)

	_, err = seq.NextVal(db)
	assert.Nil(t, err)
	_, err = seq.NextVal(db)
	assert.Nil(t, err)

	// Latest does not modify the counter
	for i := 0; i < 3; i++ {
		n, _, err = seq.Latest(db)
		assert.Nil(t, err)
		assert.Equal(t, int64(2), n)
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("flowers", "id")
	b := NewSequence("tokens", "id")

	_, err := a.NextVal(db)
	assert.Nil(t, err)

	n, err := b.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)
}
