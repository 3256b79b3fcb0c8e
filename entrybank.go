package runtime

const entrybankSize = 1 << 9

// entry is a single key binding. The key itself lives in the dictionary's
// stringbank; the entry holds its offset and cached hash so chain walks and
// rehashes never re-read the key bytes.
type entry struct {
	key   int32 // stringbank offset of the dictionary's copy of the key
	next  int32 // entrybank index of the next entry in the chain, 0 = none
	hash  uint32
	value int64
}

// entrybank is a slab allocator for entries, addressed by int32 index.
// Indexes start at 1 so that 0 can mean an empty bucket or the end of a
// chain. Entries are never freed individually; the whole bank is dropped
// with its dictionary.
type entrybank struct {
	slabs [][]entry
	n     int32
}

func (eb *entrybank) alloc(e entry) int32 {
	ix := eb.n // externally indexes start at 1
	slabNo := int(ix / entrybankSize)
	slabOffset := int(ix % entrybankSize)

	for len(eb.slabs) <= slabNo {
		eb.slabs = append(eb.slabs, make([]entry, entrybankSize))
	}

	eb.slabs[slabNo][slabOffset] = e
	eb.n++
	return ix + 1
}

func (eb *entrybank) at(ix int32) *entry {
	ix-- // externally, indexes start at 1
	return &eb.slabs[ix/entrybankSize][ix%entrybankSize]
}
