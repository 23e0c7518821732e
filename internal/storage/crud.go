package storage

import (
	"context"
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Get retrieves a value by key and unmarshals it into v.
func (d *DB) Get(_ context.Context, key string, v any) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// Set marshals v and stores it at key.
func (d *DB) Set(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Delete removes a key from the database. Absent keys are a no-op.
func (d *DB) Delete(_ context.Context, key string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// ListByPrefix retrieves the raw values of all keys with the given prefix.
func (d *DB) ListByPrefix(_ context.Context, prefix string) ([][]byte, error) {
	var results [][]byte
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				data := make([]byte, len(val))
				copy(data, val)
				results = append(results, data)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return results, err
}
