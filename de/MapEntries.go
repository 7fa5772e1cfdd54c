package de

import (
	"sort"
)

// Entry is one key value pair of an in-memory map cursor.
type Entry struct {
	Key   any
	Value any
}

// MapEntries is a MapAccess cursor over an in-memory entry list.
// Keys and values are replayed through a ValueDeserializer when pulled.
type MapEntries struct {
	entries    []Entry
	index      int
	valueReady bool
}

func NewMapEntries(entries []Entry) *MapEntries {
	return &MapEntries{entries: entries}
}

// EntriesOf builds a MapEntries over a string keyed map,
// in ascending key order so replay is deterministic.
func EntriesOf(m map[string]any) *MapEntries {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: m[k]})
	}
	return NewMapEntries(entries)
}

func (ma *MapEntries) NextKeySeed(seed Seed) (any, bool, error) {
	if ma.index >= len(ma.entries) {
		return nil, false, nil
	}
	k, err := seed.DeserializeFrom(ValueOf(ma.entries[ma.index].Key))
	if err != nil {
		return nil, false, err
	}
	ma.valueReady = true
	return k, true, nil
}

func (ma *MapEntries) NextValueSeed(seed Seed) (any, error) {
	if !ma.valueReady {
		return nil, ErrValueWithoutKey
	}
	ma.valueReady = false
	v := ma.entries[ma.index].Value
	ma.index++
	return seed.DeserializeFrom(ValueOf(v))
}

func (ma *MapEntries) SizeHint() (int, bool) {
	return len(ma.entries) - ma.index, true
}
