package edm

import "testing"

func TestVerifyChecksumXOR(t *testing.T) {
	data := []byte{0x01, 0x02, 0x04}
	want := data[0] ^ data[1] ^ data[2]
	if err := verifyChecksum(ChecksumXOR, data, int(want)); err != nil {
		t.Errorf("verifyChecksum: %v", err)
	}
	if err := verifyChecksum(ChecksumXOR, data, int(want)^0xFF); err != ErrChecksumMismatch {
		t.Errorf("verifyChecksum = %v, want ErrChecksumMismatch", err)
	}
}

func TestVerifyChecksumSumMod256(t *testing.T) {
	data := []byte{0xF0, 0x20}
	want := (0xF0 + 0x20) & 0xFF
	if err := verifyChecksum(ChecksumSumMod256, data, want); err != nil {
		t.Errorf("verifyChecksum: %v", err)
	}
}
