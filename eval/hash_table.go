package eval

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/segmentio/fasthash/fnv1a"
)

// This file implements a hash table for values.
// Only Integers and Strings are hashable; two keys are equal when they
// have the same type and the same underlying value.

type Hashable interface {
	Value
	Hash() uint64
}

func getNewHashTableSeed() uint64 {
	var b [8]byte
	rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (v String) Hash() uint64 {
	h := fnv1a.AddString64(fnv1a.Init64, "S")
	return fnv1a.AddString64(h, string(v))
}

func (v Integer) Hash() uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	h := fnv1a.AddString64(fnv1a.Init64, "I")
	return fnv1a.AddBytes64(h, b[:])
}

// asHashable returns v as a hash key, or an UnhashableKey error.
func asHashable(v Value) (Hashable, *Error) {
	if k, ok := v.(Hashable); ok {
		return k, nil
	}
	return nil, newError(UnhashableKey, "%s cannot be used as a hash key", v.Type())
}

// =================
// Actual hash table
// =================
//
// The actual hash table is uses linear-probing. This is chosen primarily
// because it is easy to implement -- performance be damned. Hashes are
// never deleted from, so there are no tombstones.

const (
	ht_SIZE_HI  = 0.75 // When should we upsize?
	ht_MIN_SIZE = 8
)

type htEntry struct {
	hash  uint64
	key   Hashable
	value Value
}

func (he htEntry) isEmpty() bool { return he.key == nil }

type hashTable struct {
	seed    uint64
	entries []htEntry
	sz      int // number of non-empty entries in the hash table
}

func newHashTable(seed uint64) *hashTable {
	return &hashTable{
		seed:    seed,
		entries: make([]htEntry, ht_MIN_SIZE),
		sz:      0,
	}
}

func (ht *hashTable) maybeResize() {
	if float64(ht.sz)/float64(len(ht.entries)) >= ht_SIZE_HI {
		ht.resize()
	}
}

func (ht *hashTable) resize() {
	oldEntries := ht.entries
	ht.entries = make([]htEntry, len(oldEntries)*2)
	mask := uint64(len(ht.entries) - 1)
	for _, he := range oldEntries {
		if he.isEmpty() {
			continue
		}
		// fast reinsert using .hash
		idx := (he.hash ^ ht.seed) & mask
		for !ht.entries[idx].isEmpty() {
			idx = (idx + 1) & mask
		}
		ht.entries[idx] = he
	}
}

// getEntry returns the htEntry (NOT the value) associated with k in
// the hash table: either the matching entry or the empty entry that
// ends its probe chain. The load factor guarantees an empty entry.
func (ht *hashTable) getEntry(k Hashable, hash uint64) *htEntry {
	mask := uint64(len(ht.entries) - 1)
	idx := (hash ^ ht.seed) & mask
	for {
		ref := &ht.entries[idx]
		if ref.isEmpty() {
			// empty entry ==> we can break the search chain
			return ref
		}
		if ref.hash == hash && ref.key == k {
			return ref
		}
		idx = (idx + 1) & mask
	}
}

// get finds the value associated with the given key in the hash table, if any.
func (ht *hashTable) get(k Hashable) (Value, bool) {
	entry := ht.getEntry(k, k.Hash())
	if entry.isEmpty() {
		return nil, false
	}
	return entry.value, true
}

// insert inserts the given pair into the hash table, replacing the
// value of an existing equal key.
func (ht *hashTable) insert(k Hashable, v Value) {
	hash := k.Hash()
	entry := ht.getEntry(k, hash)
	if entry.isEmpty() {
		ht.sz++
	}
	entry.hash = hash
	entry.key = k
	entry.value = v
	ht.maybeResize()
}

func (ht *hashTable) size() int {
	return ht.sz
}

// each calls f for every entry, in table order.
func (ht *hashTable) each(f func(k Hashable, v Value)) {
	for _, he := range ht.entries {
		if !he.isEmpty() {
			f(he.key, he.value)
		}
	}
}
