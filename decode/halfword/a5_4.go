package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_4 implements Table A5.4: special data processing and
// branch-exchange, the only 16-bit forms that can name a high register
// (R8-R15).
func decodeA5_4(word uint16) (operation.Operation, error) {
	op := bitfield.Mask(word, 8, 9)
	dn := bitfield.Mask(word, 7, 7)
	rm := register.FromBits(uint32(bitfield.Mask(word, 3, 6)))
	rdn := register.FromBits(uint32(dn)<<3 | uint32(bitfield.Mask(word, 0, 2)))

	switch op {
	case 0b00:
		return operation.AddRegister{Rd: rdn, Rn: rdn, Rm: rm, S: false}, nil
	case 0b01:
		return operation.CmpRegisterSpecial{Rn: rdn, Rm: rm}, nil
	case 0b10:
		return operation.MovRegisterSpecial{Rd: rdn, Rm: rm}, nil
	default: // 0b11: BX / BLX
		if bitfield.Mask(word, 0, 2) != 0 {
			return nil, decerr.Unpredictable()
		}
		if dn == 0 {
			return operation.Bx{Rm: rm}, nil
		}
		return operation.Blx{Rm: rm}, nil
	}
}
