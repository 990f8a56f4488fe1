package stream_test

import (
	"testing"

	"github.com/cortexm/thumb2/stream"
)

func TestPeek16Nop(t *testing.T) {
	s := stream.New([]byte{0x00, 0xBF})
	got, ok := s.Peek16(1)
	if !ok || got != 0xBF00 {
		t.Fatalf("Peek16(1) = %#x, %v, want 0xbf00, true", got, ok)
	}
	if got, ok := s.Peek8(1); !ok || got != 0x00 {
		t.Errorf("Peek8(1) = %#x, %v, want 0x00, true", got, ok)
	}
}

func TestConsumeAdvancesCursor(t *testing.T) {
	s := stream.New([]byte{0x00, 0xBF, 0x4A, 0x10})
	if _, ok := s.Consume16(); !ok {
		t.Fatal("Consume16 failed on full buffer")
	}
	if s.Position() != 2 {
		t.Fatalf("Position = %d, want 2", s.Position())
	}
	got, ok := s.Peek16(1)
	if !ok || got != 0x104A {
		t.Fatalf("Peek16(1) after consume = %#x, %v, want 0x104a, true", got, ok)
	}
}

func TestConsumeFailureLeavesCursorUnchanged(t *testing.T) {
	s := stream.New([]byte{0x00})
	before := s.Position()
	if _, ok := s.Consume16(); ok {
		t.Fatal("Consume16 succeeded past EOF")
	}
	if s.Position() != before {
		t.Fatalf("Position changed after failed consume: %d != %d", s.Position(), before)
	}
}

func TestPeek32HighHalfFirst(t *testing.T) {
	s := stream.New([]byte{0x04, 0xF0, 0x88, 0x12})
	got, ok := s.Peek32()
	if !ok || got != 0xF0041288 {
		t.Fatalf("Peek32() = %#x, %v, want 0xf0041288, true", got, ok)
	}
}

func TestPeekPastEOF(t *testing.T) {
	s := stream.New([]byte{0x01})
	if _, ok := s.Peek16(1); ok {
		t.Error("Peek16(1) succeeded with only one byte available")
	}
	if _, ok := s.Peek32(); ok {
		t.Error("Peek32() succeeded with only one byte available")
	}
}
