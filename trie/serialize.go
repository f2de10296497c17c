package trie

import (
	"fmt"

	log "github.com/aleksuss/exonum-client/log"
)

// Serialize appends the wire form of the path to buf and returns the
// extended slice: a length prefix followed by the minimal whole-byte prefix
// of the key covering all significant bits.
//
// The length prefix is a truncated LEB128 variant bounded to [0, KeyBits]:
// lengths below 128 take a single byte, anything larger sets the
// continuation bit and carries the remaining bits in a second byte, which is
// therefore always 1 or 2. Decoders must mirror exactly this two-byte-max
// scheme, not general LEB128.
func (p ProofPath) Serialize(buf []byte) []byte {
	if p.bitLength < 0x80 {
		buf = append(buf, byte(p.bitLength))
	} else {
		buf = append(buf, byte(0x80|p.bitLength%0x80), byte(p.bitLength>>7))
	}
	return append(buf, p.key[:(p.bitLength+7)/8]...)
}

// DeserializeProofPath decodes a path from the front of data and reports how
// many bytes it consumed, so callers can embed paths inside larger proof
// payloads. Nonzero bits past the declared length are rejected, as are
// lengths beyond KeyBits and length prefixes using two bytes where one
// suffices.
func DeserializeProofPath(data []byte) (ProofPath, int, error) {
	if len(data) == 0 {
		return ProofPath{}, 0, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	bitLength := int(data[0])
	n := 1
	if data[0]&0x80 != 0 {
		if len(data) < 2 {
			return ProofPath{}, 0, fmt.Errorf("%w: truncated length prefix", ErrInvalidInput)
		}
		bitLength = int(data[0]&0x7f) | int(data[1])<<7
		n = 2
		if bitLength < 0x80 {
			return ProofPath{}, 0, fmt.Errorf("%w: length %d must use a single-byte prefix", ErrInvalidInput, bitLength)
		}
	}
	if bitLength > KeyBits {
		return ProofPath{}, 0, fmt.Errorf("%w: length %d exceeds the %d-bit key width", ErrInvalidInput, bitLength, KeyBits)
	}
	payload := (bitLength + 7) / 8
	if len(data) < n+payload {
		return ProofPath{}, 0, fmt.Errorf("%w: want %d payload bytes, have %d", ErrInvalidInput, payload, len(data)-n)
	}
	p := ProofPath{bitLength: bitLength}
	copy(p.key[:], data[n:n+payload])
	normalized := p
	normalized.normalize()
	if normalized.key != p.key {
		return ProofPath{}, 0, fmt.Errorf("%w: nonzero bits past the %d-bit length", ErrInvalidInput, bitLength)
	}
	n += payload
	log.Trace(debug, "deserialized proof path", "bits", bitLength, "consumed", n)
	return p, n, nil
}
