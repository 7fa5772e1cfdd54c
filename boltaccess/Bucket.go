package boltaccess

import (
	"github.com/boltdb/bolt"

	"github.com/ofersa/serde/de"
)

// BucketDeserializer deserializes the contents of one bolt bucket.
// Its natural shape is a map of keys to values; requested as a sequence it
// yields the values alone. Everything else forwards to DeserializeAny.
//
// The deserializer is bound to the read transaction the bucket came from.
type BucketDeserializer struct {
	de.ForwardToAny
	bucket *bolt.Bucket
}

// NewBucket wraps the given bucket. A nil bucket is presented as empty.
func NewBucket(b *bolt.Bucket) *BucketDeserializer {
	d := &BucketDeserializer{bucket: b}
	d.ForwardToAny = de.ForwardTo(d)
	return d
}

func (d *BucketDeserializer) IsHumanReadable() bool { return false }

func (d *BucketDeserializer) DeserializeAny(v de.Visitor) (any, error) {
	return v.VisitMap(NewMap(d.bucket))
}

func (d *BucketDeserializer) DeserializeMap(v de.Visitor) (any, error) {
	return v.VisitMap(NewMap(d.bucket))
}

func (d *BucketDeserializer) DeserializeSeq(v de.Visitor) (any, error) {
	return v.VisitSeq(NewSeq(d.bucket))
}

// DeserializeIter shadows the forwarded fail-on-pull cursor with the real
// one: bolt buckets are exactly the kind of source lazy iteration is for.
func (d *BucketDeserializer) DeserializeIter() (de.SeqAccess, error) {
	return NewSeq(d.bucket), nil
}
