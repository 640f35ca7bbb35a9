package flower

import (
	"github.com/florachain/flora"
	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/orm"
)

const bucketName = "flowers"

// Bucket stores flowers under dense integer indices. Index zero is the
// first record ever created; the sequence only grows and indices are never
// reused or compacted.
type Bucket struct {
	bucket orm.ModelBucket
	idx    orm.Sequence
}

// NewBucket creates a bucket for flower records.
func NewBucket() Bucket {
	b := orm.NewModelBucket(bucketName)
	return Bucket{
		bucket: b,
		idx:    b.Sequence("id"),
	}
}

// Create appends the flower at the next free index and returns that index.
func (b Bucket) Create(db flora.KVStore, f *Flower) (int64, error) {
	n, err := b.idx.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire index")
	}
	// the sequence starts at one, indices at zero
	index := n - 1
	if err := b.bucket.Put(db, orm.EncodeSequence(index), f); err != nil {
		return 0, err
	}
	return index, nil
}

// Get loads the flower stored under the index. Returns ErrOutOfRange for
// an index that was never assigned.
func (b Bucket) Get(db flora.ReadOnlyKVStore, index int64) (*Flower, error) {
	count, err := b.Count(db)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= count {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, count %d", index, count)
	}
	var f Flower
	if err := b.bucket.One(db, orm.EncodeSequence(index), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save overwrites the flower stored under an already assigned index.
func (b Bucket) Save(db flora.KVStore, index int64, f *Flower) error {
	count, err := b.Count(db)
	if err != nil {
		return err
	}
	if index < 0 || index >= count {
		return errors.Wrapf(ErrOutOfRange, "index %d, count %d", index, count)
	}
	return b.bucket.Put(db, orm.EncodeSequence(index), f)
}

// Count returns how many flowers were ever created.
func (b Bucket) Count(db flora.ReadOnlyKVStore) (int64, error) {
	n, _, err := b.idx.Latest(db)
	return n, err
}
