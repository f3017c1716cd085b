package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const collectionsBucket = "collections"

// DB wraps BoltDB as a named-document store. Every collection is persisted as
// one JSON document keyed by its name, written whole on each mutation.
type DB struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the Bolt file and ensures the collections bucket exists.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(collectionsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db:     db,
		bucket: []byte(collectionsBucket),
	}, nil
}

// Put serializes the document and writes it under the collection name.
func (d *DB) Put(name string, doc any) error {
	if d == nil || d.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(d.bucket).Put([]byte(name), payload)
	})
}

// Get loads the document stored under name into out. The boolean reports
// whether a document existed.
func (d *DB) Get(name string, out any) (bool, error) {
	if d == nil || d.db == nil {
		return false, bolt.ErrDatabaseNotOpen
	}
	var found bool
	err := d.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(d.bucket).Get([]byte(name))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, out)
	})
	return found, err
}

// Delete removes the document stored under name, if any.
func (d *DB) Delete(name string) error {
	if d == nil || d.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(d.bucket).Delete([]byte(name))
	})
}

// Ping verifies the database is readable.
func (d *DB) Ping() error {
	if d == nil || d.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return d.db.View(func(tx *bolt.Tx) error {
		tx.Bucket(d.bucket)
		return nil
	})
}

// Close closes the Bolt database.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (d *DB) Stats() bolt.Stats {
	if d == nil || d.db == nil {
		return bolt.Stats{}
	}
	return d.db.Stats()
}
