package wholeword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/imm"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_10 implements Table A5.10: data-processing (modified
// immediate). op (bits 21-24, bit 20 discarded since it's S and
// appears in every row) selects the mnemonic; for the rows that share
// an opcode with a compare/test variant, Rd==1111 (And/Eor/Add/Sub)
// or Rn==1111 (Orr/Orn) picks the no-destination form.
func decodeA5_10(word uint32) (operation.Operation, error) {
	rd := register.FromBits(bitfield.Mask(word, 8, 11))
	rn := register.FromBits(bitfield.Mask(word, 16, 19))
	op := bitfield.Mask(word, 21, 24)
	s := bitfield.Mask(word, 20, 20) == 1

	imm12 := thumbExpandField(word)
	value, carry := imm12.ThumbExpandImm()

	switch {
	case op == 0 && rd != 0b1111:
		return operation.AndImmediate{Rd: rd, Rn: rn, Imm: value, Carry: carry, S: s}, nil
	case op == 0:
		return operation.TstImmediate{Rn: rn, Imm: value, Carry: carry}, nil
	case op == 0b10 && rn != 0b1111:
		return operation.OrrImmediate{Rd: rd, Rn: rn, Imm: value, Carry: carry, S: s}, nil
	case op == 0b10:
		return operation.MovImmediate{Rd: rd, Imm: value, Carry: carry, S: s}, nil
	case op == 0b11 && rn != 0b1111:
		return operation.OrnImmediate{Rd: rd, Rn: rn, Imm: value, Carry: carry, S: s}, nil
	case op == 0b11:
		return operation.MvnImmediate{Rd: rd, Imm: value, Carry: carry, S: s}, nil
	case op == 0b100 && rd != 0b1111:
		return operation.EorImmediate{Rd: rd, Rn: rn, Imm: value, Carry: carry, S: s}, nil
	case op == 0b100:
		return operation.TeqImmediate{Rn: rn, Imm: value, Carry: carry}, nil
	case op == 0b1000 && rd != 0b1111:
		return operation.AddImmediate{Rd: rd, Rn: rn, Imm: imm32(word), S: s}, nil
	case op == 0b1000:
		return operation.CmnImmediate{Rn: rn, Imm: imm32(word)}, nil
	case op == 0b1:
		return operation.BicImmediate{Rd: rd, Rn: rn, Imm: value, Carry: carry, S: s}, nil
	case op == 0b1010:
		return operation.AdcImmediate{Rd: rd, Rn: rn, Imm: imm32(word), S: s}, nil
	case op == 0b1011:
		return operation.SbcImmediate{Rd: rd, Rn: rn, Imm: imm32(word), S: s}, nil
	case op == 0b1101 && rd != 0b1111:
		return operation.SubImmediate{Rd: rd, Rn: rn, Imm: imm32(word), S: s}, nil
	case op == 0b1101:
		return operation.CmpImmediate{Rn: rn, Imm: imm32(word)}, nil
	case op == 0b1110:
		return operation.RsbImmediate{Rd: rd, Rn: rn, Imm: imm32(word), S: s}, nil
	default:
		return nil, decerr.Invalid32Bit("A5.10")
	}
}

// thumbExpandField splices the 12-bit modified-immediate field (i:imm3:imm8)
// out of the combined word.
func thumbExpandField(word uint32) imm.Imm12 {
	i := bitfield.Mask(word, 26, 26)
	imm3 := bitfield.Mask(word, 12, 14)
	imm8 := bitfield.Mask(word, 0, 7)
	v := bitfield.Combine(bitfield.F(i, 1), bitfield.F(imm3, 3), bitfield.F(imm8, 8))
	i12, _ := imm.NewImm12(v)
	return i12
}

// imm32 expands the modified immediate and discards the carry-out, for
// the arithmetic (non flag-preserving-carry) rows of A5.10.
func imm32(word uint32) uint32 {
	v, _ := thumbExpandField(word).ThumbExpandImm()
	return v
}
