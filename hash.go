package runtime

// hashString is djb2: seed 5381, then hash*33 + c for each key byte. uint32
// arithmetic wraps at 32 bits, which keeps bucket placement deterministic
// across platforms and checkable against fixed vectors.
func hashString(key string) uint32 {
	hash := uint32(5381)
	for i := 0; i < len(key); i++ {
		hash = (hash << 5) + hash + uint32(key[i])
	}
	return hash
}
