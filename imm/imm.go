// Package imm implements the bounded immediate types used throughout
// the decode tables, plus the Thumb-expand modified-immediate
// expansion (ARM ARM A5.3.2 / A7.4.3) used by the data-processing
// modified-immediate encodings.
package imm

import (
	"fmt"
	"math/bits"

	"github.com/cortexm/thumb2/bitfield"
)

// Imm2 is a 2-bit immediate (e.g. Table A5.12 SSAT shift-amount low bits).
type Imm2 uint8

// NewImm2 validates v fits in 2 bits.
func NewImm2(v uint32) (Imm2, error) {
	if v > 0x3 {
		return 0, fmt.Errorf("imm: Imm2 value %#x out of range", v)
	}
	return Imm2(v), nil
}

// SignExtend treats bit 1 as the sign bit.
func (i Imm2) SignExtend() int32 { return bitfield.SignExtend(uint32(i), 1) }

// Imm3 is a 3-bit immediate (register-offset immediates, Thumb-expand
// imm3 field).
type Imm3 uint8

func NewImm3(v uint32) (Imm3, error) {
	if v > 0x7 {
		return 0, fmt.Errorf("imm: Imm3 value %#x out of range", v)
	}
	return Imm3(v), nil
}

func (i Imm3) SignExtend() int32 { return bitfield.SignExtend(uint32(i), 2) }

// Imm4 is a 4-bit immediate (e.g. CPS immediate mode number).
type Imm4 uint8

func NewImm4(v uint32) (Imm4, error) {
	if v > 0xF {
		return 0, fmt.Errorf("imm: Imm4 value %#x out of range", v)
	}
	return Imm4(v), nil
}

func (i Imm4) SignExtend() int32 { return bitfield.SignExtend(uint32(i), 3) }

// Imm12 is the 12-bit field that either a plain offset (A5.12) or a
// Thumb-expand-encoded modified immediate (A5.10).
type Imm12 uint16

func NewImm12(v uint32) (Imm12, error) {
	if v > 0xFFF {
		return 0, fmt.Errorf("imm: Imm12 value %#x out of range", v)
	}
	return Imm12(v), nil
}

func (i Imm12) SignExtend() int32 { return bitfield.SignExtend(uint32(i), 11) }

// ThumbExpandImm expands a 12-bit modified immediate into its 32-bit
// value and, where the encoding defines one, the carry-out it produces.
// A nil carry means the encoding leaves APSR.C unaffected (the
// zero-extend branches), matching the "carry=None" scenarios in the
// architecture's own worked examples.
func (i Imm12) ThumbExpandImm() (value uint32, carryOut *bool) {
	v := uint32(i)
	top2 := (v >> 10) & 0x3
	byte0 := v & 0xFF
	if top2 == 0 {
		switch (v >> 8) & 0x3 {
		case 0b00:
			value = byte0
		case 0b01:
			value = byte0<<16 | byte0
		case 0b10:
			value = byte0<<24 | byte0<<8
		case 0b11:
			value = byte0<<24 | byte0<<16 | byte0<<8 | byte0
		}
		return value, nil
	}
	unrotated := uint32(0x80) | (v & 0x7F)
	rot := (v >> 7) & 0x1F
	value = bits.RotateLeft32(unrotated, -int(rot))
	carry := value>>31 == 1
	return value, &carry
}

// Imm21 is the sign-extended conditional-branch (T3) immediate,
// spliced S:J2:J1:imm6:imm11:'0'.
type Imm21 uint32

func NewImm21(v uint32) (Imm21, error) {
	if v > 0x1FFFFF {
		return 0, fmt.Errorf("imm: Imm21 value %#x out of range", v)
	}
	return Imm21(v), nil
}

func (i Imm21) SignExtend() int32 { return bitfield.SignExtend(uint32(i), 20) }

// Imm25 is the sign-extended unconditional-branch (T4) / BL immediate,
// spliced S:I1:I2:imm10:imm11:'0' with I1 = NOT(J1 XOR S) and
// I2 = NOT(J2 XOR S).
type Imm25 uint32

func NewImm25(v uint32) (Imm25, error) {
	if v > 0x1FFFFFF {
		return 0, fmt.Errorf("imm: Imm25 value %#x out of range", v)
	}
	return Imm25(v), nil
}

func (i Imm25) SignExtend() int32 { return bitfield.SignExtend(uint32(i), 24) }
