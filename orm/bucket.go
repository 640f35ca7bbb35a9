package orm

import (
	"fmt"
	"regexp"

	"github.com/florachain/flora"
	"github.com/florachain/flora/errors"
)

// Model is implemented by any entity that can be stored in a ModelBucket.
// The model controls its own byte representation through the Persistent
// contract and must be able to reject invalid state before it is written.
type Model interface {
	flora.Persistent
	Validate() error
}

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket stores models under a dedicated key prefix, so several
// buckets can share one KVStore without collisions.
type ModelBucket struct {
	name   string
	prefix []byte
}

// NewModelBucket creates a bucket for the given name. The name must be
// a valid bucket name, or this panics (configure buckets on startup).
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	return ModelBucket{
		name:   name,
		prefix: []byte(name + ":"),
	}
}

// Name returns the name of the bucket.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the bucket prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	return append(append([]byte(nil), b.prefix...), key...)
}

// One loads a single model by its key into dest. It returns ErrNotFound
// when there is no entity under the key.
func (b ModelBucket) One(db flora.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %T", dest)
	}
	return nil
}

// Has checks for existence without loading the model.
func (b ModelBucket) Has(db flora.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Put saves given model in the database. The model is validated before
// it is written.
func (b ModelBucket) Put(db flora.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db flora.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	has, err := db.Has(dbkey)
	if err != nil {
		return err
	}
	if !has {
		return errors.ErrNotFound
	}
	return db.Delete(dbkey)
}

// Sequence returns a sequence scoped to this bucket.
func (b ModelBucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
