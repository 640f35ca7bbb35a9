/*
Package sqlitestore provides a durable CommitKVStore backed by a sqlite
database. It is the persistence layer below the btree cache: wrap it with a
CacheWrap to group writes, then Write commits them in a single sqlite
transaction, or Discard drops them with no effect on disk.
*/
package sqlitestore

import (
	"database/sql"

	_ "modernc.org/sqlite" // database/sql driver

	"github.com/florachain/flora"
	"github.com/florachain/flora/errors"
	"github.com/florachain/flora/store"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key BLOB PRIMARY KEY,
	value BLOB NOT NULL
)`

// Store is a KVStore persisted in a single sqlite table.
type Store struct {
	db *sql.DB
}

var _ flora.CommitKVStore = (*Store)(nil)

// Open creates or reopens a sqlite database under the given path.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open database")
	}
	// sqlite allows a single writer; the serialized execution model
	// never needs more
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot ensure schema")
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns nil if the key does not exist.
func (s *Store) Get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "cannot select")
	}
	return value, nil
}

// Has checks for existence without loading the value.
func (s *Store) Has(key []byte) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM kv WHERE key = ?`, key).Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, errors.Wrap(err, "cannot select")
	}
	return true, nil
}

// Set upserts the key. Writes are durable immediately; use a CacheWrap
// and batch for grouped all-or-nothing writes.
func (s *Store) Set(key, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	return errors.Wrap(err, "cannot upsert")
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key []byte) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return errors.Wrap(err, "cannot delete")
}

// Iterator loads the requested range eagerly, in ascending key order.
// End is exclusive, nil means unbounded.
func (s *Store) Iterator(start, end []byte) (flora.Iterator, error) {
	return s.queryRange(start, end, false)
}

// ReverseIterator loads the requested range eagerly, in descending key order.
func (s *Store) ReverseIterator(start, end []byte) (flora.Iterator, error) {
	return s.queryRange(start, end, true)
}

func (s *Store) queryRange(start, end []byte, reverse bool) (flora.Iterator, error) {
	query := `SELECT key, value FROM kv`
	var args []interface{}
	switch {
	case start != nil && end != nil:
		query += ` WHERE key >= ? AND key < ?`
		args = append(args, start, end)
	case start != nil:
		query += ` WHERE key >= ?`
		args = append(args, start)
	case end != nil:
		query += ` WHERE key < ?`
		args = append(args, end)
	}
	if reverse {
		query += ` ORDER BY key DESC`
	} else {
		query += ` ORDER BY key ASC`
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot select range")
	}
	defer rows.Close()

	var models []store.Model
	for rows.Next() {
		var key, value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "cannot scan row")
		}
		models = append(models, store.Pair(key, value))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read rows")
	}
	return store.NewSliceIterator(models), nil
}

// NewBatch returns a batch whose Write applies all operations inside a
// single sqlite transaction.
func (s *Store) NewBatch() flora.Batch {
	return &txBatch{store: s}
}

// CacheWrap wraps this store with an in-memory btree overlay, so a group
// of writes can be committed or discarded together.
func (s *Store) CacheWrap() flora.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, s.NewBatch(), nil)
}

// txBatch piles up operations and writes them in one transaction.
type txBatch struct {
	store *Store
	ops   []store.Op
}

var _ flora.Batch = (*txBatch)(nil)

func (b *txBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, store.SetOp(key, value))
	return nil
}

func (b *txBatch) Delete(key []byte) error {
	b.ops = append(b.ops, store.DelOp(key))
	return nil
}

func (b *txBatch) Write() error {
	tx, err := b.store.db.Begin()
	if err != nil {
		return errors.Wrap(err, "cannot begin transaction")
	}
	w := txWriter{tx: tx}
	for _, op := range b.ops {
		if err := op.Apply(w); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "cannot commit transaction")
	}
	b.ops = nil
	return nil
}

// txWriter applies set/delete statements inside a transaction.
type txWriter struct {
	tx *sql.Tx
}

var _ flora.SetDeleter = txWriter{}

func (w txWriter) Set(key, value []byte) error {
	_, err := w.tx.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	return errors.Wrap(err, "cannot upsert")
}

func (w txWriter) Delete(key []byte) error {
	_, err := w.tx.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return errors.Wrap(err, "cannot delete")
}
