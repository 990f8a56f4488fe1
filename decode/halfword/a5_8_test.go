package halfword_test

import (
	"testing"

	"github.com/cortexm/thumb2/condition"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/decode/halfword"
	"github.com/cortexm/thumb2/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeCondBranch(cond uint16, imm8 uint16) uint16 {
	return 0b1101_0000_0000_0000 | cond<<8 | imm8
}

func TestDecodeA5_8_SVC(t *testing.T) {
	word := encodeCondBranch(0b1111, 0x7f)
	op, err := halfword.Decode(word)
	require.NoError(t, err)
	assert.Equal(t, operation.Svc{Imm: 0x7f}, op)
}

func TestDecodeA5_8_PermanentlyUndefined(t *testing.T) {
	word := encodeCondBranch(0b1110, 0)
	_, err := halfword.Decode(word)
	require.Error(t, err)
	derr, ok := err.(*decerr.Error)
	require.True(t, ok, "expected *decerr.Error, got %T", err)
	assert.Equal(t, decerr.KindUndefined, derr.Kind)
}

func TestDecodeA5_8_ConditionalBranch_ImmediateShiftedAndSignExtended(t *testing.T) {
	// imm8 = 0x01 encodes a branch target offset of 2 (imm8:'0').
	word := encodeCondBranch(uint16(condition.EQ), 0x01)
	op, err := halfword.Decode(word)
	require.NoError(t, err)
	b, ok := op.(operation.B)
	require.True(t, ok, "expected B, got %T", op)
	require.NotNil(t, b.Condition)
	assert.Equal(t, condition.EQ, *b.Condition)
	assert.Equal(t, int32(2), b.Imm)
}

func TestDecodeA5_8_ConditionalBranch_NegativeOffset(t *testing.T) {
	// imm8 = 0xff (-1 as int8) -> imm8:'0' sign-extended over 9 bits = -2.
	word := encodeCondBranch(uint16(condition.NE), 0xff)
	op, err := halfword.Decode(word)
	require.NoError(t, err)
	b, ok := op.(operation.B)
	require.True(t, ok, "expected B, got %T", op)
	assert.Equal(t, int32(-2), b.Imm)
}
