// Package boltaccess presents the contents of a bolt bucket through the
// deserialization protocol: a bucket is a map of byte string keys to byte
// string values, or a sequence of values, pulled lazily straight off the
// bucket cursor without loading the bucket into memory.
package boltaccess

import (
	"github.com/boltdb/bolt"
)

// Store is a bolt database whose buckets can be read through Deserializers.
type Store struct {
	DB *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Put stores a key value pair, creating the bucket when needed.
func (s *Store) Put(bucket, key string, value []byte) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// View runs fn with a Deserializer over the named bucket inside a read
// transaction. The Deserializer and everything pulled through it is only
// valid until fn returns; values retained longer must be copied, which the
// builtin visitors already do.
//
// A missing bucket is presented as empty.
func (s *Store) View(bucket string, fn func(d *BucketDeserializer) error) error {
	return s.DB.View(func(tx *bolt.Tx) error {
		return fn(NewBucket(tx.Bucket([]byte(bucket))))
	})
}
