package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/condition"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_6 implements Table A5.6: miscellaneous 16-bit instructions,
// dispatching on bits [11:5] (the 7 bits right after the fixed 1011
// top nibble). Falls through to Table A5.7 (decodeA5_7) for the IT/
// hint-space slot.
func decodeA5_6(word uint16) (operation.Operation, error) {
	opcode := bitfield.Mask(word, 5, 11)

	switch {
	case opcode == 0b0110011:
		return decodeCps(word), nil
	case opcode>>2 == 0:
		return decodeAddSubSP(word, false), nil
	case opcode&0b1111100 == 0b0000100:
		return decodeAddSubSP(word, true), nil
	case opcode&0b1111000 == 0b0001000, opcode&0b1111000 == 0b0011000:
		return decodeCbNz(word, false), nil
	case opcode&0b1111110 == 0b0010000:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Sxth{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1111110 == 0b0010010:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Sxtb{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1111110 == 0b0010100:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Uxth{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1111110 == 0b0010110:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Uxtb{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1110000 == 0b0100000:
		return decodePush(word), nil
	case opcode&0b1111000 == 0b1001000, opcode&0b1111000 == 0b1011000:
		return decodeCbNz(word, true), nil
	case opcode&0b1111110 == 0b1010000:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Rev{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1111110 == 0b1010010:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Rev16{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1111110 == 0b1010110:
		return decodeSxtUxt(word, func(rd, rm register.Register) operation.Operation {
			return operation.Revsh{Rd: rd, Rm: rm}
		}), nil
	case opcode&0b1110000 == 0b1100000:
		return decodePop(word), nil
	case opcode&0b1111000 == 0b1110000:
		imm8 := bitfield.Mask(word, 0, 7)
		return operation.Bkpt{Imm: uint8(imm8)}, nil
	case opcode&0b1111000 == 0b1111000:
		return decodeA5_7(word)
	default:
		return nil, decerr.Invalid16Bit("A5.6")
	}
}

func decodeCps(word uint16) operation.Operation {
	im := bitfield.Mask(word, 4, 4)
	i := bitfield.Mask(word, 1, 1)
	f := bitfield.Mask(word, 0, 0)
	op := operation.Cps{Enable: im == 0}
	op.Affect.I = i == 1
	op.Affect.F = f == 1
	return op
}

// decodeAddSubSP implements the SP +/- 7-bit-immediate forms that live
// in A5.6's opcode slots 0-3 (ADD) and 4-7 (SUB).
func decodeAddSubSP(word uint16, sub bool) operation.Operation {
	imm7 := bitfield.Mask(word, 0, 6)
	if sub {
		return operation.SubSPImmediate{Rd: register.SP, Imm: uint32(imm7) << 2, S: false}
	}
	return operation.AddSPImmediate{Rd: register.SP, Imm: uint32(imm7) << 2, S: false}
}

// decodeCbNz extracts CBZ/CBNZ's 6-bit zero-extended immediate. Bit 9
// ("i") is the immediate's bit 6; it is a genuinely separate field
// from the 5-bit imm5 at bits 3-7, not folded into either dispatch
// branch above.
func decodeCbNz(word uint16, nonzero bool) operation.Operation {
	rn := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
	imm5 := bitfield.Mask(word, 3, 7)
	i := bitfield.Mask(word, 9, 9)
	imm := uint32(i)<<6 | uint32(imm5)<<1
	if nonzero {
		return operation.Cbnz{Rn: rn, Imm: imm}
	}
	return operation.Cbz{Rn: rn, Imm: imm}
}

func decodeSxtUxt(word uint16, build func(rd, rm register.Register) operation.Operation) operation.Operation {
	rd := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
	rm := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
	return build(rd, rm)
}

func decodePush(word uint16) operation.Operation {
	regList := uint32(bitfield.Mask(word, 0, 7))
	m := bitfield.Mask(word, 8, 8)
	list := register.RegisterListFromBits(regList | uint32(m)<<14)
	return operation.Push{Registers: list}
}

func decodePop(word uint16) operation.Operation {
	regList := uint32(bitfield.Mask(word, 0, 7))
	p := bitfield.Mask(word, 8, 8)
	list := register.RegisterListFromBits(regList | uint32(p)<<15)
	return operation.Pop{Registers: list}
}

// decodeA5_7 implements Table A5.7: the IT instruction and hint space,
// reached when A5.6's opcode is 1111xxx (full word top byte 0b10111111
// = 0xBF).
func decodeA5_7(word uint16) (operation.Operation, error) {
	opA := bitfield.Mask(word, 4, 7)
	opB := bitfield.Mask(word, 0, 3)
	if opB != 0 {
		return operation.It{FirstCond: condition.FromBits(uint32(opA)), Mask: uint8(opB)}, nil
	}
	switch opA {
	case 0b0000:
		return operation.Nop{}, nil
	case 0b0001:
		return operation.Yield{}, nil
	case 0b0010:
		return operation.Wfe{}, nil
	case 0b0011:
		return operation.Wfi{}, nil
	case 0b0100:
		return operation.Sev{}, nil
	default:
		// Reserved hint opcodes are architecturally NOP-compatible.
		return operation.Nop{}, nil
	}
}
