// Package runtime is the data-structure support layer linked into code
// emitted by the wadescript compiler: a string-keyed int64 dictionary and a
// growable int64 list. Generated code reaches these through a thin shim, so
// the API preserves the exact semantics emitted code relies on, sentinel
// returns included.
package runtime

import (
	"github.com/philpearl/stringbank"
)

const initialBuckets = 16

// Rehash when count/buckets reaches 3/4, checked on entry to Set before the
// existing-key probe
const (
	loadFactorNum = 3
	loadFactorDen = 4
)

// Dict maps string keys to int64 values with separate chaining. Entries live
// in a slab arena and chains are linked by arena index, so the only pointers
// the GC sees are the slabs themselves. Allocate it via NewDict. Not safe for
// concurrent use.
type Dict struct {
	sb      stringbank.Stringbank
	buckets []int32 // chain heads as entrybank indexes, 0 = empty bucket
	bank    entrybank
	count   int
}

// NewDict creates a new, empty dictionary. It holds 12 entries before the
// first rehash.
func NewDict() *Dict {
	return &Dict{
		buckets: make([]int32, initialBuckets),
	}
}

// Len returns the number of live keys.
func (d *Dict) Len() int {
	return d.count
}

// Cap returns the current bucket count.
func (d *Dict) Cap() int {
	return len(d.buckets)
}

// KeySize contains the approximate size of key storage in the dictionary.
// This is an over-estimate and includes as yet unused and wasted space.
func (d *Dict) KeySize() int {
	return d.sb.Size()
}

// Set binds key to value. If key is already present its value is overwritten
// in place. The dictionary keeps its own copy of the key, independent of the
// caller's string.
func (d *Dict) Set(key string, value int64) {
	if d.buckets == nil {
		// Makes zero value of Dict useful
		d.buckets = make([]int32, initialBuckets)
	}

	if d.count*loadFactorDen >= len(d.buckets)*loadFactorNum {
		d.rehash()
	}

	hash := hashString(key)
	bucket := int(hash % uint32(len(d.buckets)))

	for ix := d.buckets[bucket]; ix != 0; {
		e := d.bank.at(ix)
		if e.hash == hash && d.sb.Get(int(e.key)) == key {
			e.value = value
			return
		}
		ix = e.next
	}

	// Key not present, new entry becomes the chain head
	ix := d.bank.alloc(entry{
		key:   int32(d.sb.Save(key)),
		hash:  hash,
		value: value,
		next:  d.buckets[bucket],
	})
	d.buckets[bucket] = ix
	d.count++
}

// Lookup returns the value bound to key, and whether key is present at all.
func (d *Dict) Lookup(key string) (value int64, found bool) {
	if len(d.buckets) == 0 {
		return 0, false
	}

	hash := hashString(key)
	bucket := int(hash % uint32(len(d.buckets)))

	for ix := d.buckets[bucket]; ix != 0; {
		e := d.bank.at(ix)
		if e.hash == hash && d.sb.Get(int(e.key)) == key {
			return e.value, true
		}
		ix = e.next
	}
	return 0, false
}

// Get returns the value bound to key, or 0 if key is absent. A key bound to
// 0 is indistinguishable from a missing key here; generated code tracks
// presence with Has when it matters, other callers should prefer Lookup.
func (d *Dict) Get(key string) int64 {
	value, _ := d.Lookup(key)
	return value
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, found := d.Lookup(key)
	return found
}

// rehash doubles the bucket count and relinks every entry under the new
// capacity, old bucket index ascending, old chain head first. Entries are
// moved, not copied: the arena slot and the stored key are reused, only the
// chain links change.
func (d *Dict) rehash() {
	old := d.buckets
	d.buckets = make([]int32, len(old)*2)
	d.count = 0

	for _, ix := range old {
		for ix != 0 {
			e := d.bank.at(ix)
			next := e.next

			bucket := int(e.hash % uint32(len(d.buckets)))
			e.next = d.buckets[bucket]
			d.buckets[bucket] = ix
			d.count++

			ix = next
		}
	}
}

// Close releases the bucket array, the entry slabs and the key storage. The
// Dict must not be used afterwards.
func (d *Dict) Close() {
	d.buckets = nil
	d.bank = entrybank{}
	d.sb = stringbank.Stringbank{}
	d.count = 0
}
