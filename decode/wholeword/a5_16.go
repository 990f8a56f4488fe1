package wholeword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeA5_16 implements Table A5.16: load/store multiple. op (bits
// 23-24) picks the increment-after (STM/LDM/POP) or decrement-before
// (STMDB/LDMDB/PUSH) pair; W:Rn == 11101 (SP with write-back) within
// each pair picks out the dedicated POP/PUSH mnemonic.
func decodeA5_16(word uint32) (operation.Operation, error) {
	op := bitfield.Mask(word, 23, 24)
	l := bitfield.Mask(word, 20, 20) == 1
	w := bitfield.Mask(word, 21, 21)
	rn := bitfield.Mask(word, 16, 19)
	wrn := w<<4 | rn

	regList := regList1412(word)

	switch op {
	case 1:
		if !l {
			return operation.Stm{Rn: register.FromBits(rn), Registers: regList, Wback: w == 1}, nil
		}
		if wrn == 0b11101 {
			return operation.Pop{Registers: regList}, nil
		}
		return operation.Ldm{Rn: register.FromBits(rn), Registers: regList, Wback: w == 1}, nil
	case 2:
		if l {
			return operation.Ldmdb{Rn: register.FromBits(rn), Registers: regList, Wback: w == 1}, nil
		}
		if wrn == 0b11101 {
			return operation.Push{Registers: regList}, nil
		}
		return operation.Stmdb{Rn: register.FromBits(rn), Registers: regList, Wback: w == 1}, nil
	default:
		return nil, decerr.Invalid32Bit("A5.16")
	}
}

// regList1412 assembles the 16-bit register bitmap out of the 13-bit
// R0-R12 field plus the separate M (bit 14, LR) and P (bit 15, PC)
// flags.
func regList1412(word uint32) register.RegisterList {
	base := bitfield.Mask(word, 0, 12)
	m := bitfield.Mask(word, 14, 14)
	p := bitfield.Mask(word, 15, 15)
	return register.RegisterListFromBits(base | m<<14 | p<<15)
}
