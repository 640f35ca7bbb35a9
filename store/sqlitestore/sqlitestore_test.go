package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/florachain/flora/floratest/assert"
)

func TestSetGetDelete(t *testing.T) {
	st, err := Open(":memory:")
	assert.Nil(t, err)
	defer st.Close()

	got, err := st.Get([]byte("tulip"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, st.Set([]byte("tulip"), []byte("red")))
	got, err = st.Get([]byte("tulip"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("red"), got)

	has, err := st.Has([]byte("tulip"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	// overwrite
	assert.Nil(t, st.Set([]byte("tulip"), []byte("yellow")))
	got, err = st.Get([]byte("tulip"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("yellow"), got)

	assert.Nil(t, st.Delete([]byte("tulip")))
	has, err = st.Has([]byte("tulip"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	st, err := Open(path)
	assert.Nil(t, err)
	assert.Nil(t, st.Set([]byte("rose"), []byte("10")))
	assert.Nil(t, st.Close())

	st, err = Open(path)
	assert.Nil(t, err)
	defer st.Close()

	got, err := st.Get([]byte("rose"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("10"), got)
}

func TestCacheWrapCommitsAtomically(t *testing.T) {
	st, err := Open(":memory:")
	assert.Nil(t, err)
	defer st.Close()

	cache := st.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))

	// nothing hits the database before Write
	got, err := st.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, cache.Write())

	got, err = st.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)
	got, err = st.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestCacheWrapDiscard(t *testing.T) {
	st, err := Open(":memory:")
	assert.Nil(t, err)
	defer st.Close()

	assert.Nil(t, st.Set([]byte("a"), []byte("1")))

	cache := st.CacheWrap()
	assert.Nil(t, cache.Delete([]byte("a")))
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	cache.Discard()

	got, err := st.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)
	got, err = st.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestIteratorRange(t *testing.T) {
	st, err := Open(":memory:")
	assert.Nil(t, err)
	defer st.Close()

	assert.Nil(t, st.Set([]byte("a"), []byte("1")))
	assert.Nil(t, st.Set([]byte("b"), []byte("2")))
	assert.Nil(t, st.Set([]byte("c"), []byte("3")))

	iter, err := st.Iterator([]byte("a"), []byte("c"))
	assert.Nil(t, err)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
