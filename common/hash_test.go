package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	// SHA-256 of the empty input.
	h := ComputeHash(nil)
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", h.Hex())
	if IsNilHash(h) {
		t.Fatalf("digest of empty input is not the nil hash")
	}
	if !IsNilHash(Hash{}) {
		t.Fatalf("zero value must be the nil hash")
	}
}

func TestHashHexRoundTrip(t *testing.T) {
	const hex = "0xf2a9fcaf8ae0ff770b0908ebdee1daf8457c0ef5e1106c89ad364236333c5fb3"
	h := HexToHash(hex)
	assert.Equal(t, hex, h.Hex())
	assert.Equal(t, h, BytesToHash(h.Bytes()))
	assert.Equal(t, hex[2:], Bytes2Hex(h.Bytes()))
	assert.Equal(t, h.Bytes(), Hex2Bytes(hex))
}

func TestHashJSON(t *testing.T) {
	h := ComputeHash([]byte("value"))
	data, err := json.Marshal(h)
	require.NoError(t, err)

	var back Hash
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, h, back)
}
