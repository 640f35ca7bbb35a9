package store

import (
	"testing"

	"github.com/florachain/flora/floratest/assert"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// nothing there yet
	got, err := base.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)

	// set and read it back
	assert.Nil(t, base.Set(k, v))
	got, err = base.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	has, err := base.Has(k)
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	// delete and it is gone
	assert.Nil(t, base.Delete(k))
	got, err = base.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestBTreeCacheWrapWrite(t *testing.T) {
	base := MemStore()
	assert.Nil(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()

	// the cache sees the parent data
	got, err := cache.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)

	// writes are not visible in the parent until Write
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	got, err = base.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, cache.Write())
	got, err = base.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestBTreeCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	assert.Nil(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	assert.Nil(t, cache.Delete([]byte("a")))
	cache.Discard()

	// parent still holds the old state
	got, err := base.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)
	got, err = base.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestBTreeCacheWrapIterator(t *testing.T) {
	base := MemStore()
	assert.Nil(t, base.Set([]byte("a"), []byte("1")))
	assert.Nil(t, base.Set([]byte("c"), []byte("3")))

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	// overwrite and delete in cache are honored
	assert.Nil(t, cache.Set([]byte("c"), []byte("33")))
	assert.Nil(t, cache.Delete([]byte("a")))

	iter, err := cache.Iterator(nil, nil)
	assert.Nil(t, err)
	defer iter.Close()

	var keys, values []string
	for ; iter.Valid(); assertNext(t, iter) {
		keys = append(keys, string(iter.Key()))
		values = append(values, string(iter.Value()))
	}
	assert.Equal(t, []string{"b", "c"}, keys)
	assert.Equal(t, []string{"2", "33"}, values)
}

func assertNext(t *testing.T, iter Iterator) {
	t.Helper()
	if err := iter.Next(); err != nil {
		t.Fatalf("cannot advance iterator: %+v", err)
	}
}
