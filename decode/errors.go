package decode

import "github.com/cortexm/thumb2/decerr"

// Kind and Error are re-exported from decerr so callers of this package
// don't also need to import it directly. decerr exists as a separate
// package so decode/halfword and decode/wholeword can report these
// errors without importing back into decode.
type Kind = decerr.Kind
type Error = decerr.Error

const (
	KindIncompleteProgram = decerr.KindIncompleteProgram
	KindInvalid16Bit       = decerr.KindInvalid16Bit
	KindInvalid32Bit       = decerr.KindInvalid32Bit
	KindIncomplete32Bit    = decerr.KindIncomplete32Bit
	KindInvalidField       = decerr.KindInvalidField
	KindInvalidRegister    = decerr.KindInvalidRegister
	KindUnpredictable      = decerr.KindUnpredictable
	KindUndefined          = decerr.KindUndefined
	KindIncompleteParser   = decerr.KindIncompleteParser
	KindPartiallyParsed    = decerr.KindPartiallyParsed
)
