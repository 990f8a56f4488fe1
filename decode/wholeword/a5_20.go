package wholeword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
	"github.com/cortexm/thumb2/shift"
)

// decodeA5_20 implements the byte/signed-byte half of Table A5.20
// (load/store single data item): LDRB/LDRSB's literal, immediate, and
// register forms. PLD/PLI and the unprivileged LDRBT/LDRSBT rows share
// this table's op1/op2 slots but carry no architectural operands this
// decoder models, so they report IncompleteParser rather than being
// silently misrouted into an LDRB/LDRSB variant.
//
// op1 (bits 23:24) splits unsigned from signed and register/T3 from
// the 12-bit T2/T1 immediate form: 00=LDRB register/T3/unpriv,
// 01=LDRB immediate T2, 10=LDRSB register/T2/unpriv, 11=LDRSB
// immediate T1 — mirroring the equivalent, correctly-wired op1 split
// in the halfword table's LDRH/LDRSH family.
func decodeA5_20(word uint32) (operation.Operation, error) {
	op2 := bitfield.Mask(word, 6, 11)
	rt := bitfield.Mask(word, 12, 15)
	rn := bitfield.Mask(word, 16, 19)
	op1 := bitfield.Mask(word, 23, 24)

	if rt == 0b1111 {
		// PLD/PLI family: hint instructions with no Operation type.
		return nil, decerr.IncompleteParser()
	}
	if rn == 0b1111 {
		if op1>>1 == 0 {
			return decodeLdrbLiteral(word), nil
		}
		return decodeLdrsbLiteral(word), nil
	}
	if op1 == 0 {
		switch {
		case op2 == 0:
			return decodeLdrbRegister(word), nil
		case op2>>2 == 0b1110:
			return nil, decerr.IncompleteParser() // LDRBT
		case op2>>2 == 0b1100, op2&0b100100 == 0b100100:
			return decodeLdrbImmediateT3(word), nil
		default:
			return nil, decerr.Invalid32Bit("A5.20")
		}
	}
	if op1 == 1 {
		return decodeLdrbImmediateT2(word), nil
	}
	if op1 == 3 {
		return decodeLdrsbImmediateT1(word), nil
	}
	// op1 == 2
	switch {
	case op2 == 0:
		return decodeLdrsbRegister(word), nil
	case op2>>2 == 0b1110:
		return nil, decerr.IncompleteParser() // LDRSBT
	case op2>>2 == 0b1100, op2&0b100100 == 0b100100:
		return decodeLdrsbImmediateT2(word), nil
	default:
		return nil, decerr.Invalid32Bit("A5.20")
	}
}

func plainImm12At0(word uint32) uint32 {
	return bitfield.Mask(word, 0, 11)
}

func decodeLdrbLiteral(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	add := bitfield.Mask(word, 23, 23) == 1
	return operation.LdrbLiteral{Rt: rt, Imm: plainImm12At0(word), Add: add}
}

func decodeLdrsbLiteral(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	add := bitfield.Mask(word, 23, 23) == 1
	return operation.LdrsbLiteral{Rt: rt, Imm: plainImm12At0(word), Add: add}
}

// decodeLdrbImmediateT2 is the 12-bit-offset form: W=false, add=true,
// index=true are implied by the encoding, not stored bits.
func decodeLdrbImmediateT2(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	return operation.LdrbImmediate{Rt: rt, Rn: rn, Imm: plainImm12At0(word), Index: true, Add: true, Wback: false}
}

// decodeLdrbImmediateT3 is the 8-bit-offset form with explicit P/U/W bits.
func decodeLdrbImmediateT3(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	imm8 := bitfield.Mask(word, 0, 7)
	w := bitfield.Mask(word, 8, 8) == 1
	u := bitfield.Mask(word, 9, 9) == 1
	p := bitfield.Mask(word, 10, 10) == 1
	return operation.LdrbImmediate{Rt: rt, Rn: rn, Imm: imm8, Index: p, Add: u, Wback: w}
}

// decodeLdrsbImmediateT1 is the signed-byte 12-bit-offset form: W=false,
// add=true, index=true are implied by the encoding, not stored bits.
func decodeLdrsbImmediateT1(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	return operation.LdrsbImmediate{Rt: rt, Rn: rn, Imm: plainImm12At0(word), Index: true, Add: true, Wback: false}
}

func decodeLdrsbImmediateT2(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	imm8 := bitfield.Mask(word, 0, 7)
	w := bitfield.Mask(word, 8, 8) == 1
	u := bitfield.Mask(word, 9, 9) == 1
	p := bitfield.Mask(word, 10, 10) == 1
	return operation.LdrsbImmediate{Rt: rt, Rn: rn, Imm: imm8, Index: p, Add: u, Wback: w}
}

func decodeLdrbRegister(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	rm := register.FromBits(bitfield.Mask(word, 0, 3))
	imm2 := uint8(bitfield.Mask(word, 4, 5))
	return operation.LdrbRegister{Rt: rt, Rn: rn, Rm: rm, Shift: shift.Shift{Kind: shift.LSL, Amount: imm2}}
}

func decodeLdrsbRegister(word uint32) operation.Operation {
	rt := register.FromBits(bitfield.Mask(word, 12, 15))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	rm := register.FromBits(bitfield.Mask(word, 0, 3))
	imm2 := uint8(bitfield.Mask(word, 4, 5))
	return operation.LdrsbRegister{Rt: rt, Rn: rn, Rm: rm, Shift: shift.Shift{Kind: shift.LSL, Amount: imm2}}
}
