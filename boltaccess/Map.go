package boltaccess

import (
	"github.com/boltdb/bolt"

	"github.com/ofersa/serde/de"
)

// Map is a MapAccess cursor over the entries of a bucket, in key order.
// Key and value bytes handed to the seeds are bolt owned and only valid
// until the next pull; seeds that retain them must copy.
type Map struct {
	cursor     *bolt.Cursor
	remaining  int
	started    bool
	done       bool
	value      []byte
	valueReady bool
}

// NewMap positions a cursor before the first entry of the bucket.
// A nil bucket yields an exhausted cursor.
func NewMap(b *bolt.Bucket) *Map {
	if b == nil {
		return &Map{done: true}
	}
	return &Map{cursor: b.Cursor(), remaining: b.Stats().KeyN}
}

func (ma *Map) NextKeySeed(seed de.Seed) (any, bool, error) {
	if ma.done {
		return nil, false, nil
	}
	var k, v []byte
	if !ma.started {
		k, v = ma.cursor.First()
		ma.started = true
	} else {
		k, v = ma.cursor.Next()
	}
	if k == nil {
		ma.done = true
		return nil, false, nil
	}
	if 0 < ma.remaining {
		ma.remaining--
	}
	ma.value = v
	ma.valueReady = true
	out, err := seed.DeserializeFrom(de.ValueOf(k))
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (ma *Map) NextValueSeed(seed de.Seed) (any, error) {
	if !ma.valueReady {
		return nil, de.ErrValueWithoutKey
	}
	ma.valueReady = false
	return seed.DeserializeFrom(de.ValueOf(ma.value))
}

func (ma *Map) SizeHint() (int, bool) {
	if ma.done {
		return 0, true
	}
	return ma.remaining, true
}
