package common

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// BytesToBinaryString expands b into a '0'/'1' string, eight characters per
// byte, least significant bit of each byte first. This is the traversal bit
// order of the trie, so character i is the direction taken at depth i.
func BytesToBinaryString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, c := range b {
		for i := 0; i < 8; i++ {
			sb.WriteByte('0' + ((c >> i) & 1))
		}
	}
	return sb.String()
}

// BinaryStringToBytes packs a '0'/'1' string into bytes, least significant
// bit of each byte first. The string length must be a whole number of bytes.
func BinaryStringToBytes(bits string) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("binary string length %d is not a whole number of bytes", len(bits))
	}
	out := make([]byte, len(bits)/8)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			out[i/8] |= 1 << (i % 8)
		case '0':
		default:
			return nil, fmt.Errorf("binary string has invalid character %q at offset %d", bits[i], i)
		}
	}
	return out, nil
}

// HexToBinaryString expands a hexadecimal string into a '0'/'1' string, four
// characters per nibble, most significant bit of each nibble first.
func HexToBinaryString(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) * 4)
	for i := 0; i < len(s); i++ {
		v, err := hexNibble(s[i])
		if err != nil {
			return "", fmt.Errorf("%v at offset %d", err, i)
		}
		for j := 3; j >= 0; j-- {
			sb.WriteByte('0' + ((v >> j) & 1))
		}
	}
	return sb.String(), nil
}

// BinaryStringToHex is the inverse of HexToBinaryString. The input length
// must be a multiple of 4.
func BinaryStringToHex(bits string) (string, error) {
	if len(bits)%4 != 0 {
		return "", fmt.Errorf("binary string length %d is not a whole number of nibbles", len(bits))
	}
	var sb strings.Builder
	sb.Grow(len(bits) / 4)
	for i := 0; i < len(bits); i += 4 {
		var v byte
		for j := 0; j < 4; j++ {
			switch bits[i+j] {
			case '1':
				v |= 1 << (3 - j)
			case '0':
			default:
				return "", fmt.Errorf("binary string has invalid character %q at offset %d", bits[i+j], i+j)
			}
		}
		sb.WriteByte(hexDigits[v])
	}
	return sb.String(), nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hexadecimal character %q", c)
}

// PadWithZeros right-pads str with '0' characters up to length n. Strings
// already n long or longer are returned unchanged.
func PadWithZeros(str string, n int) string {
	if len(str) >= n {
		return str
	}
	return str + strings.Repeat("0", n-len(str))
}
