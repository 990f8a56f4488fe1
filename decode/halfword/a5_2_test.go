package halfword_test

import (
	"testing"

	"github.com/cortexm/thumb2/decode/halfword"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeA5_2_LslImmediate(t *testing.T) {
	// top5=00000, imm5=6 (bits 6-10), Rm=R3 (bits 3-5), Rd=R1 (bits 0-2).
	word := uint16(6<<6 | 3<<3 | 1)
	op, err := halfword.Decode(word)
	require.NoError(t, err)
	lsl, ok := op.(operation.LslImmediate)
	require.True(t, ok, "expected LslImmediate, got %T", op)
	assert.Equal(t, register.R1, lsl.Rd)
	assert.Equal(t, register.R3, lsl.Rm)
	assert.Equal(t, uint8(6), lsl.Imm)
	assert.True(t, lsl.S)
}

func TestDecodeA5_2_LsrAndAsrImmediate(t *testing.T) {
	lsrWord := uint16(0b00001<<11 | 1<<6 | 2<<3 | 0)
	op, err := halfword.Decode(lsrWord)
	require.NoError(t, err)
	lsr, ok := op.(operation.LsrImmediate)
	require.True(t, ok, "expected LsrImmediate, got %T", op)
	assert.Equal(t, uint8(1), lsr.Imm)

	asrWord := uint16(0b00010<<11 | 5<<6 | 2<<3 | 0)
	op, err = halfword.Decode(asrWord)
	require.NoError(t, err)
	asr, ok := op.(operation.AsrImmediate)
	require.True(t, ok, "expected AsrImmediate, got %T", op)
	assert.Equal(t, uint8(5), asr.Imm)
}

func TestDecodeA5_2_AddSubRegisterAndImmediate3(t *testing.T) {
	// top5 = 0b00011, sel (bits 9-10) picks among ADD/SUB register or
	// immediate-3; Rn at bits 3-5, Rm/imm3 at bits 6-8, Rd at bits 0-2.
	base := uint16(0b00011 << 11)

	addReg := base | 0b00<<9 | 2<<6 | 1<<3 | 0
	op, err := halfword.Decode(addReg)
	require.NoError(t, err)
	add, ok := op.(operation.AddRegister)
	require.True(t, ok, "expected AddRegister, got %T", op)
	assert.Equal(t, register.R1, add.Rn)
	assert.Equal(t, register.R2, add.Rm)

	subReg := base | 0b01<<9 | 2<<6 | 1<<3 | 0
	op, err = halfword.Decode(subReg)
	require.NoError(t, err)
	sub, ok := op.(operation.SubRegister)
	require.True(t, ok, "expected SubRegister, got %T", op)
	assert.Equal(t, register.R1, sub.Rn)
	assert.Equal(t, register.R2, sub.Rm)

	addImm := base | 0b10<<9 | 5<<6 | 1<<3 | 0
	op, err = halfword.Decode(addImm)
	require.NoError(t, err)
	addi, ok := op.(operation.AddImmediate)
	require.True(t, ok, "expected AddImmediate, got %T", op)
	assert.Equal(t, uint32(5), addi.Imm)

	subImm := base | 0b11<<9 | 5<<6 | 1<<3 | 0
	op, err = halfword.Decode(subImm)
	require.NoError(t, err)
	subi, ok := op.(operation.SubImmediate)
	require.True(t, ok, "expected SubImmediate, got %T", op)
	assert.Equal(t, uint32(5), subi.Imm)
}

func TestDecodeA5_2_MovCmpAddSubImmediate8(t *testing.T) {
	tests := []struct {
		name  string
		top5  uint16
		check func(t *testing.T, op operation.Operation)
	}{
		{"MOV", 0b00100, func(t *testing.T, op operation.Operation) {
			mov, ok := op.(operation.MovImmediate)
			require.True(t, ok, "expected MovImmediate, got %T", op)
			assert.Equal(t, register.R3, mov.Rd)
			assert.Equal(t, uint32(0x55), mov.Imm)
		}},
		{"CMP", 0b00101, func(t *testing.T, op operation.Operation) {
			cmp, ok := op.(operation.CmpImmediate)
			require.True(t, ok, "expected CmpImmediate, got %T", op)
			assert.Equal(t, register.R3, cmp.Rn)
			assert.Equal(t, uint32(0x55), cmp.Imm)
		}},
		{"ADD", 0b00110, func(t *testing.T, op operation.Operation) {
			add, ok := op.(operation.AddImmediate)
			require.True(t, ok, "expected AddImmediate, got %T", op)
			assert.Equal(t, register.R3, add.Rd)
			assert.Equal(t, register.R3, add.Rn)
		}},
		{"SUB", 0b00111, func(t *testing.T, op operation.Operation) {
			sub, ok := op.(operation.SubImmediate)
			require.True(t, ok, "expected SubImmediate, got %T", op)
			assert.Equal(t, register.R3, sub.Rd)
			assert.Equal(t, register.R3, sub.Rn)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := tt.top5<<11 | uint16(register.R3)<<8 | 0x55
			op, err := halfword.Decode(word)
			require.NoError(t, err)
			tt.check(t, op)
		})
	}
}
