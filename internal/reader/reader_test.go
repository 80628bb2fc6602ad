package reader

import "testing"

func TestStringReaderByte(t *testing.T) {
	r := NewString("abc")
	b, err := r.Byte(1)
	if err != nil || b != 'a' {
		t.Fatalf("Byte(1) = %q, %v; want 'a', nil", b, err)
	}
	b, err = r.Byte(3)
	if err != nil || b != 'c' {
		t.Fatalf("Byte(3) = %q, %v; want 'c', nil", b, err)
	}
	if _, err := r.Byte(4); err == nil {
		t.Fatalf("Byte(4) should fail past end of input")
	}
}

func TestSub(t *testing.T) {
	r := NewString("hello world")
	s, err := r.Sub(1, 5)
	if err != nil || s != "hello" {
		t.Fatalf("Sub(1,5) = %q, %v; want hello, nil", s, err)
	}
}

func TestFreeIsMonotoneAndIdempotent(t *testing.T) {
	r := NewString("hello world")
	r.Free(5)
	if r.Offset() != 5 {
		t.Fatalf("offset = %d, want 5", r.Offset())
	}
	r.Free(2) // below current offset: no-op
	if r.Offset() != 5 {
		t.Fatalf("offset after backwards free = %d, want still 5", r.Offset())
	}
	if _, err := r.Byte(5); err == nil {
		t.Fatalf("Byte(5) should fail: already freed")
	}
	b, err := r.Byte(6)
	if err != nil || b != ' ' {
		t.Fatalf("Byte(6) = %q, %v; want ' ', nil", b, err)
	}
}

func TestStreamingReaderPullsLazily(t *testing.T) {
	chunks := [][]byte{[]byte("ab"), []byte("cd"), nil}
	idx := 0
	r := NewStreaming(func() ([]byte, bool) {
		c := chunks[idx]
		idx++
		return c, idx < len(chunks)
	})
	b, err := r.Byte(3)
	if err != nil || b != 'c' {
		t.Fatalf("Byte(3) = %q, %v; want 'c', nil", b, err)
	}
	if r.AtEnd(4) != false {
		t.Fatalf("AtEnd(4) should be false, byte 4 ('d') still available")
	}
	if _, err := r.Byte(5); err == nil {
		t.Fatalf("Byte(5) should fail: input exhausted after 4 bytes")
	}
}
