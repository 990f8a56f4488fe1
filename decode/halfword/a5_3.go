package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_3 implements Table A5.3: data-processing (two low
// registers, one of which doubles as the destination).
func decodeA5_3(word uint16) (operation.Operation, error) {
	op := bitfield.Mask(word, 6, 9)
	rm := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
	rdn := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))

	switch op {
	case 0b0000:
		return operation.AndRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0001:
		return operation.EorRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0010:
		return operation.LslRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0011:
		return operation.LsrRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0100:
		return operation.AsrRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0101:
		return operation.AdcRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0110:
		return operation.SbcRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b0111:
		return operation.RorRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b1000:
		return operation.TstRegister{Rn: rdn, Rm: rm}, nil
	case 0b1001:
		// RSB Rdn, Rm, #0 (historically "NEG"): no true register operand
		// for the subtrahend, it's architecturally immediate #0.
		return operation.RsbImmediate{Rd: rdn, Rn: rm, Imm: 0, S: true}, nil
	case 0b1010:
		return operation.CmpRegister{Rn: rdn, Rm: rm}, nil
	case 0b1011:
		return operation.CmnRegister{Rn: rdn, Rm: rm}, nil
	case 0b1100:
		return operation.OrrRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b1101:
		return operation.Mul{Rd: rdn, Rn: rm, Rm: rdn}, nil
	case 0b1110:
		return operation.BicRegister{Rd: rdn, Rn: rdn, Rm: rm, S: true}, nil
	case 0b1111:
		return operation.MvnRegister{Rd: rdn, Rm: rm, S: true}, nil
	default:
		return nil, decerr.Invalid16Bit("A5.3")
	}
}
