package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/condition"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
)

// decodeA5_8 implements Table A5.8: 16-bit conditional branch and
// supervisor call. cond==1110 is the permanently-undefined slot;
// cond==1111 is SVC. The branch immediate is a 9-bit signed halfword
// offset (imm8 with an implicit trailing zero), not the bare 8-bit
// sign-extension a naive port of imm8 alone would give.
func decodeA5_8(word uint16) (operation.Operation, error) {
	cond := bitfield.Mask(word, 8, 11)
	imm8 := bitfield.Mask(word, 0, 7)

	switch cond {
	case 0b1111:
		return operation.Svc{Imm: uint8(imm8)}, nil
	case 0b1110:
		return nil, decerr.Undefined()
	default:
		c := condition.FromBits(uint32(cond))
		imm := bitfield.SignExtend(uint32(imm8)<<1, 8)
		return operation.B{Condition: &c, Imm: imm}, nil
	}
}
