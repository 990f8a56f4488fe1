package wholeword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/condition"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/imm"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_13 implements Table A5.13: branches and miscellaneous
// control. The hint and miscellaneous-control rows (op 011101x:
// NOP.W-style hints, CLREX/DSB/DMB/ISB) report IncompleteParser.
func decodeA5_13(word uint32) (operation.Operation, error) {
	op1 := bitfield.Mask(word, 12, 14)
	op := bitfield.Mask(word, 20, 26)

	if op1&0b010 == 0 {
		if (op>>3)&0b111 != 0b111 {
			return decodeBT3(word), nil
		}
		if op>>1 == 0b11100 {
			return decodeMsr(word), nil
		}
		if op>>1 == 0b011111 {
			return decodeMrs(word), nil
		}
		if op == 0b0111010 || op == 0b0111011 {
			return nil, decerr.IncompleteParser()
		}
	}
	if op1 == 0b10 {
		return decodeUdf(word), nil
	}
	if op1&0b101 == 0b001 {
		return decodeBT4(word), nil
	}
	if op1&0b101 == 0b101 {
		return decodeBl(word), nil
	}
	return nil, decerr.Invalid32Bit("A5.13")
}

// decodeBT3 implements the conditional branch (T3): imm32 is the
// straightforward splice S:J2:J1:imm6:imm11:'0', with no I1/I2
// transform (that correction only applies to the unconditional forms
// below).
func decodeBT3(word uint32) operation.Operation {
	s := bitfield.Mask(word, 26, 26)
	cond := bitfield.Mask(word, 22, 25)
	imm6 := bitfield.Mask(word, 16, 21)
	j1 := bitfield.Mask(word, 13, 13)
	j2 := bitfield.Mask(word, 11, 11)
	imm11 := bitfield.Mask(word, 0, 10)

	v := bitfield.Combine(bitfield.F(s, 1), bitfield.F(j2, 1), bitfield.F(j1, 1), bitfield.F(imm6, 6), bitfield.F(imm11, 11), bitfield.F(0, 1))
	i21, _ := imm.NewImm21(v)
	c := condition.FromBits(cond)
	return operation.B{Condition: &c, Imm: i21.SignExtend()}
}

// decodeBT4 and decodeBl implement the unconditional branch (T4) and
// BL. Both apply the standard I1 = NOT(J1 XOR S), I2 = NOT(J2 XOR S)
// correction before splicing the 25-bit immediate.
func branchImm25(word uint32) int32 {
	s := bitfield.Mask(word, 26, 26)
	j1 := bitfield.Mask(word, 13, 13)
	j2 := bitfield.Mask(word, 11, 11)
	imm10 := bitfield.Mask(word, 16, 25)
	imm11 := bitfield.Mask(word, 0, 10)

	i1 := 1 - (j1 ^ s)
	i2 := 1 - (j2 ^ s)

	v := bitfield.Combine(bitfield.F(s, 1), bitfield.F(i1, 1), bitfield.F(i2, 1), bitfield.F(imm10, 10), bitfield.F(imm11, 11), bitfield.F(0, 1))
	i25, _ := imm.NewImm25(v)
	return i25.SignExtend()
}

func decodeBT4(word uint32) operation.Operation {
	return operation.B{Condition: nil, Imm: branchImm25(word)}
}

func decodeBl(word uint32) operation.Operation {
	return operation.Bl{Imm: branchImm25(word)}
}

func decodeMsr(word uint32) operation.Operation {
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	mask := uint8(bitfield.Mask(word, 10, 11))
	sysM := uint8(bitfield.Mask(word, 0, 7))
	return operation.Msr{Rn: rn, Mask: mask, SysM: sysM}
}

func decodeMrs(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	sysM := uint8(bitfield.Mask(word, 0, 7))
	return operation.Mrs{Rd: rd, SysM: sysM}
}

// decodeUdf implements the permanently-undefined T2 encoding. imm4
// lives at bits 16-19 (not bits 0-3, where it overlaps imm12).
func decodeUdf(word uint32) operation.Operation {
	imm4 := bitfield.Mask(word, 16, 19)
	imm12 := bitfield.Mask(word, 0, 11)
	return operation.Udf{Imm: imm4<<12 | imm12}
}
