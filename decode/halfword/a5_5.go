package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_5 implements Table A5.5: load/store single data item, both
// the register-offset forms (top4 bits15-12 == 0101) and the
// immediate-offset forms (STR/LDR/STRB/LDRB word/byte, STRH/LDRH, and
// the SP-relative STR/LDR).
func decodeA5_5(word uint16) (operation.Operation, error) {
	top4 := bitfield.Mask(word, 12, 15)

	if top4 == 0b0101 {
		op2 := bitfield.Mask(word, 9, 11)
		rm := register.FromBits(uint32(bitfield.Mask(word, 6, 8)))
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		switch op2 {
		case 0b000:
			return operation.StrRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		case 0b001:
			return operation.StrhRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		case 0b010:
			return operation.StrbRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		case 0b011:
			return operation.LdrsbRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		case 0b100:
			return operation.LdrRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		case 0b101:
			return operation.LdrhRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		case 0b110:
			return operation.LdrbRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		default:
			return operation.LdrshRegister{Rt: rt, Rn: rn, Rm: rm}, nil
		}
	}

	top5 := bitfield.Mask(word, 11, 15)
	switch top5 {
	case 0b01100: // STR (immediate), word-scaled
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		imm5 := uint32(bitfield.Mask(word, 6, 10))
		return operation.StrImmediate{Rt: rt, Rn: rn, Imm: imm5 * 4, Index: true, Add: true}, nil
	case 0b01101: // LDR (immediate), word-scaled
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		imm5 := uint32(bitfield.Mask(word, 6, 10))
		return operation.LdrImmediate{Rt: rt, Rn: rn, Imm: imm5 * 4, Index: true, Add: true}, nil
	case 0b01110: // STRB (immediate), byte-scaled
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		imm5 := uint32(bitfield.Mask(word, 6, 10))
		return operation.StrbImmediate{Rt: rt, Rn: rn, Imm: imm5, Index: true, Add: true}, nil
	case 0b01111: // LDRB (immediate), byte-scaled
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		imm5 := uint32(bitfield.Mask(word, 6, 10))
		return operation.LdrbImmediate{Rt: rt, Rn: rn, Imm: imm5, Index: true, Add: true}, nil
	case 0b10000: // STRH (immediate), halfword-scaled
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		imm5 := uint32(bitfield.Mask(word, 6, 10))
		return operation.StrhImmediate{Rt: rt, Rn: rn, Imm: imm5 * 2, Index: true, Add: true}, nil
	case 0b10001: // LDRH (immediate), halfword-scaled
		rn := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rt := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
		imm5 := uint32(bitfield.Mask(word, 6, 10))
		return operation.LdrhImmediate{Rt: rt, Rn: rn, Imm: imm5 * 2, Index: true, Add: true}, nil
	case 0b10010: // STR (immediate), SP-relative
		rt := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
		imm8 := uint32(bitfield.Mask(word, 0, 7))
		return operation.StrImmediate{Rt: rt, Rn: register.SP, Imm: imm8 * 4, Index: true, Add: true}, nil
	case 0b10011: // LDR (immediate), SP-relative
		rt := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
		imm8 := uint32(bitfield.Mask(word, 0, 7))
		return operation.LdrImmediate{Rt: rt, Rn: register.SP, Imm: imm8 * 4, Index: true, Add: true}, nil
	default:
		return nil, decerr.Invalid16Bit("A5.5")
	}
}
