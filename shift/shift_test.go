package shift_test

import (
	"testing"

	"github.com/cortexm/thumb2/shift"
)

func TestFromBits(t *testing.T) {
	tests := []struct {
		name      string
		typ, imm5 uint32
		want      shift.Shift
	}{
		{"lsl#5", 0b00, 5, shift.Shift{Kind: shift.LSL, Amount: 5}},
		{"lsr#0->32", 0b01, 0, shift.Shift{Kind: shift.LSR, Amount: 32}},
		{"asr#10", 0b10, 10, shift.Shift{Kind: shift.ASR, Amount: 10}},
		{"ror#3", 0b11, 3, shift.Shift{Kind: shift.ROR, Amount: 3}},
		{"ror#0->rrx", 0b11, 0, shift.Shift{Kind: shift.RRX, Amount: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shift.FromBits(tt.typ, tt.imm5); got != tt.want {
				t.Errorf("FromBits(%b, %d) = %+v, want %+v", tt.typ, tt.imm5, got, tt.want)
			}
		})
	}
}
