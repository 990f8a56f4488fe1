package bitfield_test

import (
	"testing"

	"github.com/cortexm/thumb2/bitfield"
)

func TestMaskU16(t *testing.T) {
	num := uint16(0b10011)
	if got := bitfield.Mask(num, 0, 1); got != 0b11 {
		t.Errorf("Mask(0,1) = %b, want %b", got, 0b11)
	}
	if got := bitfield.Mask(num, 1, 2); got != 0b01 {
		t.Errorf("Mask(1,2) = %b, want %b", got, 0b01)
	}
}

func TestMaskU32TopBit(t *testing.T) {
	// AndImmediate{Rn=R4, Rd=R2, S=false, imm3=1, imm8=0x88, i=0}: the
	// i/bcdefgh=001/xyz=0x88 thumb-expand case from the end-to-end fixtures.
	num := uint32(0xF0041288)
	if got := bitfield.Mask(num, 26, 26); got != 0 {
		t.Errorf("bit 26 of %#x = %d, want 0", num, got)
	}
	if got := bitfield.Mask(num, 16, 19); got != 4 {
		t.Errorf("Rn field = %d, want 4", got)
	}
}

func TestCombine(t *testing.T) {
	i := uint32(1)
	imm3 := uint32(2)
	imm8 := uint32(4)
	got := bitfield.Combine(bitfield.F(i, 1), bitfield.F(imm3, 3), bitfield.F(imm8, 8))
	want := uint32(0b1_010_00000100)
	if got != want {
		t.Errorf("Combine = %b, want %b", got, want)
	}
}

func TestCombineSingleField(t *testing.T) {
	got := bitfield.Combine(bitfield.F(3, 2))
	if got != 3 {
		t.Errorf("Combine single field = %d, want 3", got)
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		sign uint
		want int32
	}{
		{"positive imm3", 0b011, 2, 3},
		{"negative imm3", 0b100, 2, -4},
		{"positive imm12", 0x7FF, 11, 0x7FF},
		{"negative imm12", 0xFFF, 11, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bitfield.SignExtend(tt.v, tt.sign); got != tt.want {
				t.Errorf("SignExtend(%#x, %d) = %d, want %d", tt.v, tt.sign, got, tt.want)
			}
		})
	}
}
