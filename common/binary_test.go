package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBinaryString(t *testing.T) {
	cases := []struct {
		hex  string
		bits string
	}{
		{"", ""},
		{"0", "0000"},
		{"f", "1111"},
		{"af", "10101111"},
		{"0102", "0000000100000010"},
		{"AF", "10101111"},
	}
	for _, tc := range cases {
		got, err := HexToBinaryString(tc.hex)
		require.NoError(t, err, tc.hex)
		assert.Equal(t, tc.bits, got, tc.hex)
	}

	if _, err := HexToBinaryString("0g"); err == nil {
		t.Fatalf("invalid hex character must fail")
	}
}

func TestBinaryStringToHex(t *testing.T) {
	got, err := BinaryStringToHex("10101111")
	require.NoError(t, err)
	assert.Equal(t, "af", got)

	if _, err := BinaryStringToHex("101"); err == nil {
		t.Fatalf("length not a multiple of 4 must fail")
	}
	if _, err := BinaryStringToHex("1012"); err == nil {
		t.Fatalf("invalid character must fail")
	}

	// Inverse of HexToBinaryString over whole bytes.
	const hex = "00ff13a7"
	bits, err := HexToBinaryString(hex)
	require.NoError(t, err)
	back, err := BinaryStringToHex(bits)
	require.NoError(t, err)
	assert.Equal(t, hex, back)
}

func TestBytesToBinaryString(t *testing.T) {
	// Least significant bit of each byte comes first.
	assert.Equal(t, "10000000", BytesToBinaryString([]byte{0x01}))
	assert.Equal(t, "1100000000000001", BytesToBinaryString([]byte{0x03, 0x80}))
	assert.Equal(t, "", BytesToBinaryString(nil))
}

func TestBinaryStringToBytes(t *testing.T) {
	got, err := BinaryStringToBytes("1100000000000001")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x80}, got)

	if _, err := BinaryStringToBytes("110"); err == nil {
		t.Fatalf("length not a multiple of 8 must fail")
	}
	if _, err := BinaryStringToBytes("1100000x"); err == nil {
		t.Fatalf("invalid character must fail")
	}
}

func TestBinaryStringBytesRoundTrip(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	out, err := BinaryStringToBytes(BytesToBinaryString(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPadWithZeros(t *testing.T) {
	assert.Equal(t, "110000", PadWithZeros("11", 6))
	assert.Equal(t, "11", PadWithZeros("11", 2))
	assert.Equal(t, "11", PadWithZeros("11", 1))
	assert.Equal(t, "000", PadWithZeros("", 3))
}
