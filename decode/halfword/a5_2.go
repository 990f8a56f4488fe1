package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_2 implements Table A5.2: shift (immediate), add, subtract,
// move, and compare.
func decodeA5_2(word uint16) (operation.Operation, error) {
	top5 := bitfield.Mask(word, 11, 15)
	rd3 := register.FromBits(uint32(bitfield.Mask(word, 0, 2)))
	rm3 := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
	imm5 := uint8(bitfield.Mask(word, 6, 10))

	switch top5 {
	case 0b00000:
		return operation.LslImmediate{Rd: rd3, Rm: rm3, Imm: imm5, S: true}, nil
	case 0b00001:
		return operation.LsrImmediate{Rd: rd3, Rm: rm3, Imm: imm5, S: true}, nil
	case 0b00010:
		return operation.AsrImmediate{Rd: rd3, Rm: rm3, Imm: imm5, S: true}, nil
	case 0b00011:
		rn3 := register.FromBits(uint32(bitfield.Mask(word, 3, 5)))
		rm2or3 := register.FromBits(uint32(bitfield.Mask(word, 6, 8)))
		sel := bitfield.Mask(word, 9, 10)
		switch sel {
		case 0b00:
			return operation.AddRegister{Rd: rd3, Rn: rn3, Rm: rm2or3, S: true}, nil
		case 0b01:
			return operation.SubRegister{Rd: rd3, Rn: rn3, Rm: rm2or3, S: true}, nil
		case 0b10:
			return operation.AddImmediate{Rd: rd3, Rn: rn3, Imm: uint32(bitfield.Mask(word, 6, 8)), S: true}, nil
		default:
			return operation.SubImmediate{Rd: rd3, Rn: rn3, Imm: uint32(bitfield.Mask(word, 6, 8)), S: true}, nil
		}
	case 0b00100:
		rdn := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
		return operation.MovImmediate{Rd: rdn, Imm: uint32(bitfield.Mask(word, 0, 7)), S: true}, nil
	case 0b00101:
		rn := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
		return operation.CmpImmediate{Rn: rn, Imm: uint32(bitfield.Mask(word, 0, 7))}, nil
	case 0b00110:
		rdn := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
		return operation.AddImmediate{Rd: rdn, Rn: rdn, Imm: uint32(bitfield.Mask(word, 0, 7)), S: true}, nil
	case 0b00111:
		rdn := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
		return operation.SubImmediate{Rd: rdn, Rn: rdn, Imm: uint32(bitfield.Mask(word, 0, 7)), S: true}, nil
	default:
		return nil, decerr.Invalid16Bit("A5.2")
	}
}
