// Package shift implements the Armv7-M shift/rotate operand: a 2-bit
// type field plus a 5-bit amount, with the RRX special case the
// encoding overloads onto "ROR #0".
package shift

import "fmt"

// Kind is the shift/rotate operation applied to a shifted-register
// operand.
type Kind uint8

const (
	LSL Kind = iota
	LSR
	ASR
	ROR
	RRX // synthesized: encoded as type=ROR, amount=0
)

func (k Kind) String() string {
	switch k {
	case LSL:
		return "LSL"
	case LSR:
		return "LSR"
	case ASR:
		return "ASR"
	case ROR:
		return "ROR"
	case RRX:
		return "RRX"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shift is a fully decoded shift operand.
type Shift struct {
	Kind   Kind
	Amount uint8
}

// FromBits decodes the 2-bit type field and 5-bit immediate amount of a
// DecodeImmShift operand (ARM ARM A7.4.2), disambiguating ROR #0 into
// RRX.
func FromBits(typ uint32, imm5 uint32) Shift {
	k := Kind(typ)
	amt := uint8(imm5)
	switch k {
	case LSL:
		return Shift{Kind: LSL, Amount: amt}
	case LSR:
		if amt == 0 {
			amt = 32
		}
		return Shift{Kind: LSR, Amount: amt}
	case ASR:
		if amt == 0 {
			amt = 32
		}
		return Shift{Kind: ASR, Amount: amt}
	case ROR:
		if amt == 0 {
			return Shift{Kind: RRX, Amount: 1}
		}
		return Shift{Kind: ROR, Amount: amt}
	default:
		panic(fmt.Sprintf("shift: type field out of range: %d", typ))
	}
}
