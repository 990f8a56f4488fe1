package halfword_test

import (
	"testing"

	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/decode/halfword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_UnmappedRootOpcode(t *testing.T) {
	// opcode (bits 15-10) = 0b111010 falls in the gap past the
	// unconditional-branch row and isn't claimed by any root entry.
	word := uint16(0b111010 << 10)
	_, err := halfword.Decode(word)
	require.Error(t, err)
	derr, ok := err.(*decerr.Error)
	require.True(t, ok, "expected *decerr.Error, got %T", err)
	assert.Equal(t, decerr.KindInvalid16Bit, derr.Kind)
}
