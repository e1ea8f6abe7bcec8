package gps

import "testing"

func TestRingBufferWriteRead(t *testing.T) {
	rb := NewRingBuffer(8)

	n, err := rb.Write([]byte{1, 2, 3, 4})
	if err != nil || n != 4 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if got := rb.ReadAvailable(); got != 4 {
		t.Errorf("ReadAvailable() = %d, want 4", got)
	}

	dst := make([]byte, 4)
	n, _ = rb.Read(dst)
	if n != 4 {
		t.Fatalf("Read returned %d, want 4", n)
	}
	if rb.ReadAvailable() != 0 {
		t.Errorf("expected buffer drained after Read")
	}
}

func TestRingBufferWriteFullReturnsWouldBlock(t *testing.T) {
	rb := NewRingBuffer(4)
	rb.Write([]byte{1, 2, 3, 4})

	_, err := rb.Write([]byte{5})
	if err != ErrWouldBlock {
		t.Errorf("expected ErrWouldBlock on full buffer, got %v", err)
	}
}

func TestRingBufferWritePartialWhenRoomLimited(t *testing.T) {
	rb := NewRingBuffer(4)
	n, err := rb.Write([]byte{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if n != 4 {
		t.Errorf("Write truncated to %d, want 4", n)
	}
}

func TestRingBufferDiscardBytes(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{1, 2, 3, 4, 5})
	rb.DiscardBytes(2)

	dst := make([]byte, 8)
	n, _ := rb.Read(dst)
	if n != 3 || dst[0] != 3 {
		t.Errorf("after discarding 2 bytes, got %v (n=%d)", dst[:n], n)
	}
}

func TestRingBufferDiscardBitsByteAligned(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{0xAA, 0xBB, 0xCC})
	rb.DiscardBits(8)

	dst := make([]byte, 8)
	n, _ := rb.Read(dst)
	if n != 2 || dst[0] != 0xBB || dst[1] != 0xCC {
		t.Errorf("got %v (n=%d), want [0xBB 0xCC]", dst[:n], n)
	}
}

func TestRingBufferDiscardBitsSubByteShiftsRemainder(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{0b10110100, 0b11001010})
	rb.DiscardBits(4)

	// Shifting left by 4 bits drops the surplus trailing byte per the
	// documented off-by-one, leaving one fewer byte than a naive bit-shift
	// would produce.
	dst := make([]byte, 8)
	n, _ := rb.Read(dst)
	if n != 1 {
		t.Fatalf("expected 1 byte remaining after sub-byte discard, got %d", n)
	}
	want := byte(0b01001100)
	if dst[0] != want {
		t.Errorf("got 0b%08b, want 0b%08b", dst[0], want)
	}
}

func TestRingBufferViewDoesNotMutate(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{0x8B, 0x00})

	v := rb.View()
	b, ok := v.NextByte()
	if !ok || b != 0x8B {
		t.Fatalf("View.NextByte() = 0x%x, %v", b, ok)
	}

	if rb.ReadAvailable() != 2 {
		t.Errorf("View consumption leaked into RingBuffer: ReadAvailable() = %d, want 2", rb.ReadAvailable())
	}
}

func TestViewPeekBitsAllAlignments(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{0x00, 0x8B, 0x00})
	v := rb.View()

	found := false
	for offset := uint(0); offset <= 16; offset++ {
		val, ok := v.PeekBits(offset, 8)
		if ok && val == Preamble {
			found = true
			if offset != 8 {
				t.Errorf("found preamble at offset %d, want 8", offset)
			}
		}
	}
	if !found {
		t.Errorf("PeekBits never found the preamble byte")
	}
}

func TestViewNextDataWordAdvancesCursorOnly(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	v := rb.View()

	w, ok := v.NextDataWord()
	if !ok {
		t.Fatalf("expected a word")
	}
	if w.Value() != wordMask {
		t.Errorf("word = 0x%x, want 0x%x", w.Value(), wordMask)
	}
	if rb.ReadAvailable() != 5 {
		t.Errorf("NextDataWord must not mutate the underlying RingBuffer")
	}
}

func TestViewNextDataWordInsufficientBits(t *testing.T) {
	rb := NewRingBuffer(8)
	rb.Write([]byte{0x01, 0x02})
	v := rb.View()

	if _, ok := v.NextDataWord(); ok {
		t.Errorf("expected false with only 16 buffered bits")
	}
}
