package trie

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aleksuss/exonum-client/common"
)

const (
	debug = "trie_mod"

	// KeyBytes is the fixed byte width of trie keys.
	KeyBytes = 32
	// KeyBits is the number of addressable bits in a full key.
	KeyBits = KeyBytes * 8
)

var (
	// ErrInvalidInput is returned when path construction is given neither a
	// '0'/'1' bit string of at most KeyBits characters nor a KeyBytes-sized
	// key, or when decoding meets bytes that cannot encode a path.
	ErrInvalidInput = errors.New("trie: invalid proof path input")
	// ErrInvalidOperation is returned when a path transformation would have
	// to invent bits, such as truncating to a length beyond the current one.
	ErrInvalidOperation = errors.New("trie: invalid proof path operation")
)

// ProofPath addresses a position in the binary Merkle Patricia trie: up to
// 256 traversal bits together with the count of bits that are significant.
// A full-length path addresses a leaf, anything shorter an internal branch.
//
// The backing key always holds all 32 bytes and every bit at or beyond the
// logical length is zero; construction and every transforming method
// re-establish that invariant. Values are immutable, so transforming methods
// return fresh paths and concurrent reads need no synchronization.
type ProofPath struct {
	key       [KeyBytes]byte
	bitLength int
}

// NewProofPath builds a path from a string of '0'/'1' characters. The string
// length, at most KeyBits, becomes the logical bit length of the path.
func NewProofPath(bits string) (ProofPath, error) {
	if len(bits) > KeyBits {
		return ProofPath{}, fmt.Errorf("%w: bit string of %d bits exceeds %d", ErrInvalidInput, len(bits), KeyBits)
	}
	packed, err := common.BinaryStringToBytes(common.PadWithZeros(bits, KeyBits))
	if err != nil {
		return ProofPath{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	var p ProofPath
	copy(p.key[:], packed)
	p.bitLength = len(bits)
	return p, nil
}

// NewProofPathFromBytes builds a terminal path from a full 32-byte key. The
// key is copied, never aliased.
func NewProofPathFromBytes(key []byte) (ProofPath, error) {
	if len(key) != KeyBytes {
		return ProofPath{}, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidInput, KeyBytes, len(key))
	}
	var p ProofPath
	copy(p.key[:], key)
	p.bitLength = KeyBits
	return p, nil
}

// NewProofPathFromHash returns the terminal path addressing the leaf keyed by h.
func NewProofPathFromHash(h common.Hash) ProofPath {
	var p ProofPath
	copy(p.key[:], h.Bytes())
	p.bitLength = KeyBits
	return p
}

// normalize zeroes every bit at index >= bitLength. Bits inside the partial
// trailing byte are cleared one at a time, whole bytes past it wholesale.
func (p *ProofPath) normalize() {
	for i := p.bitLength; i < KeyBits && i%8 != 0; i++ {
		setBit(p.key[:], i, 0)
	}
	for i := (p.bitLength + 7) / 8; i < KeyBytes; i++ {
		p.key[i] = 0
	}
}

// BitLength returns the number of significant bits in the path.
func (p ProofPath) BitLength() int {
	return p.bitLength
}

// IsTerminal reports whether the path addresses a leaf, i.e. has full length.
func (p ProofPath) IsTerminal() bool {
	return p.bitLength == KeyBits
}

// Bit returns the bit at position pos and whether pos falls inside the path.
func (p ProofPath) Bit(pos int) (uint8, bool) {
	if pos < 0 || pos >= p.bitLength {
		return 0, false
	}
	return getBit(p.key[:], pos), true
}

// CommonPrefixLength returns the number of leading bits p and other share,
// bounded by the shorter of the two lengths.
func (p ProofPath) CommonPrefixLength(other ProofPath) int {
	intersecting := min(p.bitLength, other.bitLength)
	pos := 0
	// Skip whole bytes while they agree inside the shared range, then finish
	// bit by bit.
	for pos+8 <= intersecting && p.key[pos/8] == other.key[pos/8] {
		pos += 8
	}
	for pos < intersecting && getBit(p.key[:], pos) == getBit(other.key[:], pos) {
		pos++
	}
	return pos
}

// CommonPrefix returns the longest path that is a prefix of both p and other.
func (p ProofPath) CommonPrefix(other ProofPath) ProofPath {
	prefix, _ := p.Truncate(p.CommonPrefixLength(other)) // never longer than p
	return prefix
}

// StartsWith reports whether other is a prefix of p. The prefix may equal p;
// a longer path never starts with a shorter one it diverges from.
func (p ProofPath) StartsWith(other ProofPath) bool {
	return p.CommonPrefixLength(other) == other.bitLength
}

// Compare orders paths for deterministic trie child placement. A path that
// is a strict prefix of another sorts before it; paths diverging within
// their shared range are ordered by the first differing bit. The result is
// -1, 0 or 1.
func (p ProofPath) Compare(other ProofPath) int {
	pos := p.CommonPrefixLength(other)
	if pos == min(p.bitLength, other.bitLength) {
		switch {
		case p.bitLength < other.bitLength:
			return -1
		case p.bitLength > other.bitLength:
			return 1
		default:
			return 0
		}
	}
	if getBit(p.key[:], pos) == 0 {
		return -1
	}
	return 1
}

// Equal reports whether p and other have the same length and bit content.
func (p ProofPath) Equal(other ProofPath) bool {
	return p.Compare(other) == 0
}

// Truncate returns a new path holding exactly the first newLength bits of p.
// A path cannot be extended this way, so newLength must not exceed the
// current length.
func (p ProofPath) Truncate(newLength int) (ProofPath, error) {
	if newLength < 0 || newLength > p.bitLength {
		return ProofPath{}, fmt.Errorf("%w: cannot truncate %d-bit path to %d bits", ErrInvalidOperation, p.bitLength, newLength)
	}
	out := ProofPath{key: p.key, bitLength: newLength}
	out.normalize()
	return out, nil
}

// BinaryString returns the path as a '0'/'1' string of exactly BitLength
// characters, the canonical interchange text form.
func (p ProofPath) BinaryString() string {
	return common.BytesToBinaryString(p.key[:])[:p.bitLength]
}

// String renders a short debug form, eliding everything past the first eight bits.
func (p ProofPath) String() string {
	bits := p.BinaryString()
	if p.bitLength > 8 {
		bits = bits[:8] + "..."
	}
	return fmt.Sprintf("ProofPath(%s)", bits)
}

// MarshalJSON encodes the path as its interchange bit string.
func (p ProofPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.BinaryString())
}

// UnmarshalJSON decodes a path from its interchange bit string.
func (p *ProofPath) UnmarshalJSON(data []byte) error {
	var bits string
	if err := json.Unmarshal(data, &bits); err != nil {
		return err
	}
	path, err := NewProofPath(bits)
	if err != nil {
		return err
	}
	*p = path
	return nil
}
