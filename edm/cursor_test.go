package edm

import "testing"

func TestCursorByte(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02})

	if v := c.byte(); v != 1 {
		t.Fatalf("byte() = %d, want 1", v)
	}
	if v := c.byte(); v != 2 {
		t.Fatalf("byte() = %d, want 2", v)
	}
	if v := c.byte(); v != -1 {
		t.Fatalf("byte() past end = %d, want -1", v)
	}
}

func TestCursorWord(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x03})

	if v := c.word(); v != 0x0102 {
		t.Fatalf("word() = %#x, want 0x0102", v)
	}
	if v := c.word(); v != -1 {
		t.Fatalf("word() with one byte left = %d, want -1", v)
	}
}

func TestCursorLongPositive(t *testing.T) {
	c := newCursor([]byte{0x00, 0x00, 0x01, 0x00})
	v, ok := c.long()
	if !ok {
		t.Fatal("long() ok = false, want true")
	}
	if v != 256 {
		t.Fatalf("long() = %d, want 256", v)
	}
}

func TestCursorLongNegative(t *testing.T) {
	// -1 as a 32-bit two's complement value.
	c := newCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, ok := c.long()
	if !ok {
		t.Fatal("long() ok = false, want true")
	}
	if v != -1 {
		t.Fatalf("long() = %d, want -1", v)
	}
}

func TestCursorLongUnderflow(t *testing.T) {
	c := newCursor([]byte{0x00, 0x00})
	_, ok := c.long()
	if ok {
		t.Fatal("long() ok = true on truncated input, want false")
	}
	if !c.atEnd() {
		t.Fatal("cursor should clamp to end on underflow")
	}
}

func TestFlightCursorBounds(t *testing.T) {
	data := make([]byte, 20)
	c := newFlightCursor(data, 5, 4)
	if c.offset() != 5 {
		t.Fatalf("offset() = %d, want 5", c.offset())
	}
	c.skip(4)
	if !c.atEnd() {
		t.Fatal("expected cursor to be at end after skipping its full size")
	}
	if v := c.byte(); v != -1 {
		t.Fatalf("byte() past flight bound = %d, want -1", v)
	}
}

func TestPeekWordAtIgnoresEndBound(t *testing.T) {
	data := []byte{0x00, 0x00, 0x12, 0x34, 0x00}
	c := newFlightCursor(data, 0, 2)
	if v := c.peekWordAt(2); v != 0x1234 {
		t.Fatalf("peekWordAt(2) = %#x, want 0x1234", v)
	}
	if v := c.peekWordAt(4); v != -1 {
		t.Fatalf("peekWordAt near buffer end = %d, want -1", v)
	}
}
