package trie

import "testing"

func TestGetBit(t *testing.T) {
	k := []byte{0b00000101, 0b10000000}
	wantSet := map[int]bool{0: true, 2: true, 15: true}
	for i := 0; i < 16; i++ {
		want := uint8(0)
		if wantSet[i] {
			want = 1
		}
		if got := getBit(k, i); got != want {
			t.Fatalf("getBit(%d) = %d, want %d", i, got, want)
		}
	}
	if getBit(k, 16) != 0 {
		t.Fatalf("out-of-range getBit must be 0")
	}
}

func TestSetBit(t *testing.T) {
	k := make([]byte, 2)
	setBit(k, 3, 1)
	setBit(k, 9, 1)
	if k[0] != 0b00001000 || k[1] != 0b00000010 {
		t.Fatalf("unexpected buffer %08b %08b", k[0], k[1])
	}
	setBit(k, 3, 0)
	if k[0] != 0 {
		t.Fatalf("bit 3 not cleared: %08b", k[0])
	}
	setBit(k, 100, 1) // past the buffer, must be a no-op
	if k[1] != 0b00000010 {
		t.Fatalf("out-of-range setBit mutated the buffer")
	}
}
