package halfword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
)

// decodeLdrLiteral implements the 16-bit LDR (literal), PC-relative
// with a word-aligned, always-positive 8-bit immediate.
func decodeLdrLiteral(word uint16) (operation.Operation, error) {
	rt := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
	imm8 := bitfield.Mask(word, 0, 7)
	return operation.LdrLiteral{Rt: rt, Imm: uint32(imm8) << 2, Add: true}, nil
}

// decodeAdr implements the 16-bit ADR (PC-relative address), always
// adding its word-aligned immediate.
func decodeAdr(word uint16) (operation.Operation, error) {
	rd := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
	imm8 := bitfield.Mask(word, 0, 7)
	return operation.Adr{Rd: rd, Imm: uint32(imm8) << 2, Add: true}, nil
}

// decodeAddSPImmediate implements the 16-bit ADD Rd, SP, #imm form,
// which never sets flags.
func decodeAddSPImmediate(word uint16) (operation.Operation, error) {
	rd := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
	imm8 := bitfield.Mask(word, 0, 7)
	return operation.AddSPImmediate{Rd: rd, Imm: uint32(imm8) << 2, S: false}, nil
}

// decodeStm implements the 16-bit STM, which always writes back.
func decodeStm(word uint16) (operation.Operation, error) {
	rn := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
	regList := uint32(bitfield.Mask(word, 0, 7))
	list := register.RegisterListFromBits(regList)
	return operation.Stm{Rn: rn, Registers: list, Wback: true}, nil
}

// decodeLdm implements the 16-bit LDM. Write-back is suppressed when
// the register list includes the base register, since the loaded
// value would otherwise overwrite the just-computed base.
func decodeLdm(word uint16) (operation.Operation, error) {
	rn := register.FromBits(uint32(bitfield.Mask(word, 8, 10)))
	regList := uint32(bitfield.Mask(word, 0, 7))
	list := register.RegisterListFromBits(regList)
	return operation.Ldm{Rn: rn, Registers: list, Wback: !list.Contains(rn)}, nil
}

// decodeBUnconditional implements the 16-bit unconditional B (T2),
// with an 11-bit signed halfword offset.
func decodeBUnconditional(word uint16) (operation.Operation, error) {
	imm11 := bitfield.Mask(word, 0, 10)
	imm := bitfield.SignExtend(uint32(imm11)<<1, 11)
	return operation.B{Condition: nil, Imm: imm}, nil
}
