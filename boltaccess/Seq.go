package boltaccess

import (
	"github.com/boltdb/bolt"

	"github.com/ofersa/serde/de"
)

// Seq is a SeqAccess cursor over the values of a bucket, in key order.
// The value bytes handed to the seed are bolt owned and only valid until
// the next pull; seeds that retain them must copy.
type Seq struct {
	cursor    *bolt.Cursor
	remaining int
	started   bool
	done      bool
}

// NewSeq positions a cursor before the first value of the bucket.
// A nil bucket yields an exhausted cursor.
func NewSeq(b *bolt.Bucket) *Seq {
	if b == nil {
		return &Seq{done: true}
	}
	return &Seq{cursor: b.Cursor(), remaining: b.Stats().KeyN}
}

func (sa *Seq) NextElementSeed(seed de.Seed) (any, bool, error) {
	if sa.done {
		return nil, false, nil
	}
	var k, v []byte
	if !sa.started {
		k, v = sa.cursor.First()
		sa.started = true
	} else {
		k, v = sa.cursor.Next()
	}
	if k == nil {
		sa.done = true
		return nil, false, nil
	}
	if 0 < sa.remaining {
		sa.remaining--
	}
	out, err := seed.DeserializeFrom(de.ValueOf(v))
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (sa *Seq) SizeHint() (int, bool) {
	if sa.done {
		return 0, true
	}
	return sa.remaining, true
}
