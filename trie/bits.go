package trie

// getBit returns the bit at index i of k, counting the least significant bit
// of each byte first.
func getBit(k []byte, i int) uint8 {
	byteIndex := i / 8 // the byte index in the array where the bit is located
	if byteIndex >= len(k) {
		return 0
	}
	bitIndex := i % 8 // the bit position within the byte
	if k[byteIndex]&(1<<bitIndex) != 0 {
		return 1
	}
	return 0
}

// setBit sets the bit at index i of k to v, with the same bit order as getBit.
func setBit(k []byte, i int, v uint8) {
	byteIndex := i / 8
	if byteIndex >= len(k) {
		return
	}
	mask := byte(1 << (i % 8))
	if v == 0 {
		k[byteIndex] &^= mask
	} else {
		k[byteIndex] |= mask
	}
}
