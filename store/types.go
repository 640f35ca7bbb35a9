package store

import "github.com/florachain/flora"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = flora.ReadOnlyKVStore
type KVStore = flora.KVStore
type SetDeleter = flora.SetDeleter
type Batch = flora.Batch
type Iterator = flora.Iterator
type CacheableKVStore = flora.CacheableKVStore
type KVCacheWrap = flora.KVCacheWrap
type CommitKVStore = flora.CommitKVStore

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}
