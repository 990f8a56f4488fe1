// Package decerr is the error taxonomy shared by the top-level parser
// and the halfword/wholeword dispatch tables. It is a separate package
// from decode so the tables can report errors without importing back
// into the package that imports them.
package decerr

import (
	"fmt"

	"github.com/cortexm/thumb2/operation"
)

// Kind classifies why decoding stopped.
type Kind int

const (
	// KindIncompleteProgram means the stream ended before a first
	// half-word could be read at all.
	KindIncompleteProgram Kind = iota
	// KindInvalid16Bit means a 16-bit word matched no entry in Table.
	KindInvalid16Bit
	// KindInvalid32Bit means a 32-bit word matched no entry in Table.
	KindInvalid32Bit
	// KindIncomplete32Bit means only the first half-word of a 32-bit
	// instruction was present.
	KindIncomplete32Bit
	// KindInvalidField means a field failed its bounds check; Field
	// describes which one.
	KindInvalidField
	// KindInvalidRegister means a register field named a register the
	// encoding forbids; Reg is the raw field value.
	KindInvalidRegister
	// KindUnpredictable means the ARM ARM marks this bit pattern
	// UNPREDICTABLE.
	KindUnpredictable
	// KindUndefined means the ARM ARM marks this bit pattern UNDEFINED.
	KindUndefined
	// KindIncompleteParser means the bit pattern names a real encoding
	// (e.g. VFP/NEON, coprocessor) this decoder does not implement.
	KindIncompleteParser
	// KindPartiallyParsed wraps an inner error together with the
	// operations successfully decoded before it.
	KindPartiallyParsed
)

func (k Kind) String() string {
	switch k {
	case KindIncompleteProgram:
		return "incomplete program"
	case KindInvalid16Bit:
		return "invalid 16-bit instruction"
	case KindInvalid32Bit:
		return "invalid 32-bit instruction"
	case KindIncomplete32Bit:
		return "incomplete 32-bit instruction"
	case KindInvalidField:
		return "invalid field"
	case KindInvalidRegister:
		return "invalid register"
	case KindUnpredictable:
		return "unpredictable"
	case KindUndefined:
		return "undefined"
	case KindIncompleteParser:
		return "incomplete parser"
	case KindPartiallyParsed:
		return "partially parsed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type every decode failure in this module
// takes the shape of.
type Error struct {
	Kind  Kind
	Table string // Invalid16Bit / Invalid32Bit: which table rejected the word
	Field string // InvalidField: which field and why
	Reg   uint32 // InvalidRegister: the raw field value
	Inner error  // PartiallyParsed: the error that stopped the parse
	Done  []operation.Operation
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalid16Bit, KindInvalid32Bit:
		return fmt.Sprintf("%s: %s", e.Kind, e.Table)
	case KindInvalidField:
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	case KindInvalidRegister:
		return fmt.Sprintf("%s: %d", e.Kind, e.Reg)
	case KindPartiallyParsed:
		return fmt.Sprintf("%s after %d operations: %v", e.Kind, len(e.Done), e.Inner)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Inner }

// IncompleteProgram reports that the stream ended before a first
// half-word could be read.
func IncompleteProgram() error { return &Error{Kind: KindIncompleteProgram} }

// Incomplete32Bit reports that only the first half-word of a 32-bit
// instruction was present.
func Incomplete32Bit() error { return &Error{Kind: KindIncomplete32Bit} }

// Invalid16Bit reports a 16-bit word with no matching table entry.
func Invalid16Bit(table string) error { return &Error{Kind: KindInvalid16Bit, Table: table} }

// Invalid32Bit reports a 32-bit word with no matching table entry.
func Invalid32Bit(table string) error { return &Error{Kind: KindInvalid32Bit, Table: table} }

// InvalidField reports a field that failed validation.
func InvalidField(desc string) error { return &Error{Kind: KindInvalidField, Field: desc} }

// InvalidRegister reports a register field the encoding forbids.
func InvalidRegister(n uint32) error { return &Error{Kind: KindInvalidRegister, Reg: n} }

// Unpredictable reports an ARM-ARM-UNPREDICTABLE bit pattern.
func Unpredictable() error { return &Error{Kind: KindUnpredictable} }

// Undefined reports an ARM-ARM-UNDEFINED bit pattern.
func Undefined() error { return &Error{Kind: KindUndefined} }

// IncompleteParser reports a real but unimplemented encoding.
func IncompleteParser() error { return &Error{Kind: KindIncompleteParser} }

// PartiallyParsed wraps the operations decoded so far together with the
// error that stopped the parse.
func PartiallyParsed(inner error, done []operation.Operation) error {
	return &Error{Kind: KindPartiallyParsed, Inner: inner, Done: done}
}
