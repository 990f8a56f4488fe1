// Package halfword implements the 16-bit Thumb instruction dispatch
// root and tables A5.2-A5.8.
package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
)

// Decode dispatches a 16-bit half-word already known not to carry the
// 32-bit width prefix to the matching root-level table.
func Decode(word uint16) (operation.Operation, error) {
	opcode := bitfield.Mask(word, 10, 15)
	switch {
	case opcode>>4 == 0b00:
		return decodeA5_2(word)
	case opcode == 0b010000:
		return decodeA5_3(word)
	case opcode == 0b010001:
		return decodeA5_4(word)
	case opcode>>1 == 0b01001:
		return decodeLdrLiteral(word)
	case opcode>>2 == 0b0101:
		return decodeA5_5(word) // load/store, register offset
	case opcode>>3 == 0b011:
		return decodeA5_5(word) // STR/LDR/STRB/LDRB, immediate offset
	case opcode>>2 == 0b1000:
		return decodeA5_5(word) // STRH/LDRH, immediate offset
	case opcode>>2 == 0b1001:
		return decodeA5_5(word) // STR/LDR, SP-relative
	case opcode>>1 == 0b10100:
		return decodeAdr(word)
	case opcode>>1 == 0b10101:
		return decodeAddSPImmediate(word)
	case opcode>>2 == 0b1011:
		return decodeA5_6(word)
	case opcode>>1 == 0b11000:
		return decodeStm(word)
	case opcode>>1 == 0b11001:
		return decodeLdm(word)
	case opcode>>2 == 0b1101:
		return decodeA5_8(word)
	case opcode>>1 == 0b11100:
		return decodeBUnconditional(word)
	default:
		return nil, decerr.Invalid16Bit("root")
	}
}
