package engine

// HashSlot computes the djb2-family hash of word and reduces it modulo
// MaxSlots. Grounded on the original C implementation's hash1 (5381,
// "hash*33 + c"): http://www.cse.yorku.ca/~oz/hash.html.
func HashSlot(word string) int {
	var hash uint64 = 5381
	for _, c := range []byte(word) {
		hash = hash*33 + uint64(c)
	}
	return int(hash % uint64(MaxSlots))
}
