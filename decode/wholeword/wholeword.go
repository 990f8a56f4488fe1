// Package wholeword implements the 32-bit Thumb instruction dispatch
// root and tables A5.10, A5.12, A5.13, A5.16, and the load-byte row of
// A5.20. The remaining 32-bit tables (load/store dual and exclusive,
// load-halfword/word and memory hints, data-processing (register),
// multiply and long multiply/divide, coprocessor, and Advanced SIMD
// and floating-point) are out of scope; words routed there decode as
// decerr.KindIncompleteParser.
package wholeword

import (
	"github.com/cortexm/thumb2/bitfield"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/operation"
)

// Decode dispatches a 32-bit instruction word, already assembled as
// (first_halfword<<16 | second_halfword), to the matching table. The
// op1 selector lives in bits [28:27] of the word (equivalently, the
// two bits right after the fixed 111 width prefix).
func Decode(word uint32) (operation.Operation, error) {
	op1 := bitfield.Mask(word, 27, 28)
	switch op1 {
	case 0b01:
		// A5.16 load/store multiple and push/pop occupy op2 == 00xx0xx;
		// everything else in this op1 group (dual/exclusive loads and
		// stores, table branches) is out of scope.
		if bitfield.Mask(word, 26, 26) == 0 && bitfield.Mask(word, 25, 25) == 0 && bitfield.Mask(word, 22, 22) == 0 {
			return decodeA5_16(word)
		}
		return nil, decerr.IncompleteParser()
	case 0b10:
		if bitfield.Mask(word, 15, 15) == 1 {
			return decodeA5_13(word)
		}
		if bitfield.Mask(word, 25, 25) == 0 {
			return decodeA5_10(word)
		}
		return decodeA5_12(word)
	default:
		// op1 == 11: store single data item, load byte/halfword/word
		// plus memory hints, data-processing (register), multiply and
		// long multiply/divide, and coprocessor/Advanced SIMD/
		// floating-point. Bits 26:25 clear select the load/store group;
		// within it, L (bit 20) picks load over store and size
		// (bits 22:21) picks byte/halfword/word. Only the load-byte
		// row (A5.20) is implemented; everything else in this op1
		// group reports IncompleteParser.
		if bitfield.Mask(word, 25, 26) == 0 {
			l := bitfield.Mask(word, 20, 20)
			size := bitfield.Mask(word, 21, 22)
			if l == 1 && size == 0b00 {
				return decodeA5_20(word)
			}
		}
		return nil, decerr.IncompleteParser()
	}
}
