package orm

import (
	"encoding/json"
	"testing"

	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/floratest/assert"
	"github.com/florachain/flora/store"
)

// counterModel is a tiny model used to test bucket behavior.
type counterModel struct {
	Count int64 `json:"count"`
}

func (c *counterModel) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *counterModel) Unmarshal(data []byte) error {
	return json.Unmarshal(data, c)
}

func (c *counterModel) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counts")

	assert.Nil(t, b.Put(db, []byte("any"), &counterModel{Count: 7}))

	var got counterModel
	assert.Nil(t, b.One(db, []byte("any"), &got))
	assert.Equal(t, int64(7), got.Count)
}

func TestModelBucketOneMissing(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counts")

	var got counterModel
	err := b.One(db, []byte("unknown"), &got)
	if !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPutRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counts")

	err := b.Put(db, []byte("any"), &counterModel{Count: -1})
	if !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}

func TestModelBucketsDoNotCollide(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("alpha")
	b := NewModelBucket("beta")

	assert.Nil(t, a.Put(db, []byte("one"), &counterModel{Count: 1}))
	assert.Nil(t, b.Put(db, []byte("one"), &counterModel{Count: 2}))

	var got counterModel
	assert.Nil(t, a.One(db, []byte("one"), &got))
	assert.Equal(t, int64(1), got.Count)
	assert.Nil(t, b.One(db, []byte("one"), &got))
	assert.Equal(t, int64(2), got.Count)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counts")

	err := b.Delete(db, []byte("any"))
	if !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}

	assert.Nil(t, b.Put(db, []byte("any"), &counterModel{Count: 1}))
	assert.Nil(t, b.Delete(db, []byte("any")))

	has, err := b.Has(db, []byte("any"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

func TestNewModelBucketRejectsBadName(t *testing.T) {
	assert.Panics(t, func() {
		NewModelBucket("Bad Name")
	})
}
