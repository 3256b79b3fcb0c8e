package runtime

// Naive implementation of the same function over the built-in map. Really
// just intended to compare against
type Naive struct {
	m map[string]int64
}

// NewNaive creates a new, basic implementation of the dictionary function
func NewNaive(cap int) *Naive {
	return &Naive{
		m: make(map[string]int64, cap),
	}
}

// Set binds key to value
func (n *Naive) Set(key string, value int64) {
	n.m[key] = value
}

// Get returns the value bound to key, or 0 when absent
func (n *Naive) Get(key string) int64 {
	return n.m[key]
}

// Has reports whether key is present
func (n *Naive) Has(key string) bool {
	_, ok := n.m[key]
	return ok
}

// Len returns the number of keys
func (n *Naive) Len() int {
	return len(n.m)
}
