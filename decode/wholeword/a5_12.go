package wholeword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
	"github.com/cortexm/thumb2/shift"
)

// decodeA5_12 implements Table A5.12: data-processing (plain binary
// immediate). op (bits 20-24) and rn (bits 16-19) together select the
// row; ADR shares its opcode slots with ADD/SUB and is picked out by
// Rn==1111.
func decodeA5_12(word uint32) (operation.Operation, error) {
	op := bitfield.Mask(word, 20, 24)
	rn := bitfield.Mask(word, 16, 19)

	switch {
	case op == 0 && rn == 0b1111:
		return decodeAdr(word), nil
	case op == 0:
		return decodeAddImmediatePlain(word), nil
	case op == 0b00100:
		return decodeMovWImmediate(word), nil
	case op == 0b01010 && rn == 0b1111:
		return decodeAdr(word), nil
	case op == 0b01010:
		return decodeSubImmediatePlain(word), nil
	case op == 0b01100:
		return decodeMovt(word), nil
	case op == 0b10000:
		return decodeSat(word, false), nil
	case op == 0b10010:
		return decodeSat16(word, false), nil
	case op == 0b10100:
		return decodeSbfx(word), nil
	case op == 0b10110 && bitfield.Mask(word, 16, 19) == 0b1111:
		return decodeBfc(word), nil
	case op == 0b10110:
		return decodeBfi(word), nil
	case op == 0b11000:
		return decodeSat(word, true), nil
	case op == 0b11010:
		return decodeSat16(word, true), nil
	case op == 0b11100:
		return decodeUbfx(word), nil
	default:
		return nil, decerr.Invalid32Bit("A5.12")
	}
}

func plainImm12(word uint32) uint32 {
	i := bitfield.Mask(word, 26, 26)
	imm3 := bitfield.Mask(word, 12, 14)
	imm8 := bitfield.Mask(word, 0, 7)
	return bitfield.Combine(bitfield.F(i, 1), bitfield.F(imm3, 3), bitfield.F(imm8, 8))
}

func decodeAdr(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	add := bitfield.Mask(word, 21, 21) == 0 // op 00000 is the ADD slot, 01010 the SUB slot
	return operation.Adr{Rd: rd, Imm: plainImm12(word), Add: add}
}

func decodeAddImmediatePlain(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	return operation.AddImmediate{Rd: rd, Rn: rn, Imm: plainImm12(word), S: false}
}

func decodeSubImmediatePlain(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	return operation.SubImmediate{Rd: rd, Rn: rn, Imm: plainImm12(word), S: false}
}

func decodeMovWImmediate(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	i := bitfield.Mask(word, 26, 26)
	imm4 := bitfield.Mask(word, 16, 19)
	imm3 := bitfield.Mask(word, 12, 14)
	imm8 := bitfield.Mask(word, 0, 7)
	imm := bitfield.Combine(bitfield.F(imm4, 4), bitfield.F(i, 1), bitfield.F(imm3, 3), bitfield.F(imm8, 8))
	return operation.MovWImmediate{Rd: rd, Imm: uint16(imm)}
}

func decodeMovt(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	i := bitfield.Mask(word, 26, 26)
	imm4 := bitfield.Mask(word, 16, 19)
	imm3 := bitfield.Mask(word, 12, 14)
	imm8 := bitfield.Mask(word, 0, 7)
	imm := bitfield.Combine(bitfield.F(imm4, 4), bitfield.F(i, 1), bitfield.F(imm3, 3), bitfield.F(imm8, 8))
	return operation.MovtImmediate{Rd: rd, Imm: imm}
}

// decodeSat implements SSAT/USAT. The saturate-to bound is sat_imm+1,
// a detail easy to drop since the neighboring SSAT16/USAT16 rows
// already apply it.
func decodeSat(word uint32, unsigned bool) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	satImm := uint8(bitfield.Mask(word, 0, 4)) + 1
	imm3 := bitfield.Mask(word, 12, 14)
	imm2 := bitfield.Mask(word, 6, 7)
	sh := bitfield.Mask(word, 21, 21)
	shiftAmount := bitfield.Combine(bitfield.F(imm3, 3), bitfield.F(imm2, 2))
	s := shift.FromBits(sh<<1, shiftAmount)
	if unsigned {
		return operation.UsatImmediate{Rd: rd, Rn: rn, SatImm: satImm, Shift: s}
	}
	return operation.SsatImmediate{Rd: rd, Rn: rn, SatImm: satImm, Shift: s}
}

func decodeSat16(word uint32, unsigned bool) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	satImm := uint8(bitfield.Mask(word, 0, 4)) + 1
	if unsigned {
		return operation.Usat16{Rd: rd, Rn: rn, SatImm: satImm}
	}
	return operation.Ssat16{Rd: rd, Rn: rn, SatImm: satImm}
}

func bitfieldLsb(word uint32) uint8 {
	imm3 := bitfield.Mask(word, 12, 14)
	imm2 := bitfield.Mask(word, 6, 7)
	return uint8(bitfield.Combine(bitfield.F(imm3, 3), bitfield.F(imm2, 2)))
}

func decodeSbfx(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	widthm1 := uint8(bitfield.Mask(word, 0, 4))
	return operation.Sbfx{Rd: rd, Rn: rn, Lsb: bitfieldLsb(word), Width: widthm1 + 1}
}

func decodeUbfx(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	widthm1 := uint8(bitfield.Mask(word, 0, 4))
	return operation.Ubfx{Rd: rd, Rn: rn, Lsb: bitfieldLsb(word), Width: widthm1 + 1}
}

func decodeBfi(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	msb := uint8(bitfield.Mask(word, 0, 4))
	lsb := bitfieldLsb(word)
	return operation.Bfi{Rd: rd, Rn: rn, Lsb: lsb, Width: msb + 1 - lsb}
}

func decodeBfc(word uint32) operation.Operation {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	msb := uint8(bitfield.Mask(word, 0, 4))
	return operation.Bfc{Rd: rd, Lsb: bitfieldLsb(word), Msb: msb}
}
