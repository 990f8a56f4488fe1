// Package operation defines the canonical Operation IR the decoder
// lowers every encoding into. Each type here is one architectural
// mnemonic; encoding variants that differ only in bit layout (e.g. the
// 16-bit and 32-bit immediate forms of ADD) collapse onto the same
// type once their fields are extracted.
package operation

import (
	"github.com/cortexm/thumb2/condition"
	"github.com/cortexm/thumb2/register"
	"github.com/cortexm/thumb2/shift"
)

// Operation is implemented by every decoded instruction. It carries no
// behavior of its own — semantics live downstream of this module.
type Operation interface {
	isOperation()
}

type base struct{}

func (base) isOperation() {}

// --- data processing: immediate ---

type AndImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	Carry  *bool
	S      bool
}

type EorImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	Carry  *bool
	S      bool
}

type OrrImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	Carry  *bool
	S      bool
}

type OrnImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	Carry  *bool
	S      bool
}

type BicImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	Carry  *bool
	S      bool
}

type MvnImmediate struct {
	base
	Rd   Register
	Imm  uint32
	Carry *bool
	S    bool
}

type MovImmediate struct {
	base
	Rd    Register
	Imm   uint32
	Carry *bool
	S     bool
}

type TstImmediate struct {
	base
	Rn    Register
	Imm   uint32
	Carry *bool
}

type TeqImmediate struct {
	base
	Rn    Register
	Imm   uint32
	Carry *bool
}

type AddImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	S      bool
}

type AdcImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	S      bool
}

type SbcImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	S      bool
}

type SubImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	S      bool
}

type RsbImmediate struct {
	base
	Rd, Rn Register
	Imm    uint32
	S      bool
}

type CmpImmediate struct {
	base
	Rn  Register
	Imm uint32
}

type CmnImmediate struct {
	base
	Rn  Register
	Imm uint32
}

type AddSPImmediate struct {
	base
	Rd  Register
	Imm uint32
	S   bool
}

type SubSPImmediate struct {
	base
	Rd  Register
	Imm uint32
	S   bool
}

// --- data processing: plain binary immediate (A5.12) ---

type Adr struct {
	base
	Rd  Register
	Imm uint32
	Add bool
}

type MovtImmediate struct {
	base
	Rd  Register
	Imm uint32
}

type SsatImmediate struct {
	base
	Rd, Rn  Register
	SatImm  uint8
	Shift   shift.Shift
}

type Ssat16 struct {
	base
	Rd, Rn Register
	SatImm uint8
}

type Sbfx struct {
	base
	Rd, Rn   Register
	Lsb, Width uint8
}

type Bfi struct {
	base
	Rd, Rn   Register
	Lsb, Width uint8
}

type Bfc struct {
	base
	Rd       Register
	Lsb, Msb uint8
}

type UsatImmediate struct {
	base
	Rd, Rn Register
	SatImm uint8
	Shift  shift.Shift
}

type Usat16 struct {
	base
	Rd, Rn Register
	SatImm uint8
}

type Ubfx struct {
	base
	Rd, Rn     Register
	Lsb, Width uint8
}

// MovWImmediate is the plain 16-bit-immediate MOVW (A5.12), distinct
// from the modified-immediate MOV of A5.10: it never sets flags and
// never produces a carry-out.
type MovWImmediate struct {
	base
	Rd  Register
	Imm uint16
}

// --- data processing: register ---

type AndRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type EorRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type LslRegister struct {
	base
	Rd, Rn, Rm Register
	S          bool
}

type LsrRegister struct {
	base
	Rd, Rn, Rm Register
	S          bool
}

type AsrRegister struct {
	base
	Rd, Rn, Rm Register
	S          bool
}

type AdcRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type SbcRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type RorRegister struct {
	base
	Rd, Rn, Rm Register
	S          bool
}

type TstRegister struct {
	base
	Rn, Rm Register
	Shift  shift.Shift
}

type RsbRegister struct {
	base
	Rd, Rn, Rm Register
	S          bool
}

type CmpRegister struct {
	base
	Rn, Rm Register
	Shift  shift.Shift
}

type CmnRegister struct {
	base
	Rn, Rm Register
	Shift  shift.Shift
}

type OrrRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type Mul struct {
	base
	Rd, Rn, Rm Register
}

type BicRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type MvnRegister struct {
	base
	Rd, Rm Register
	Shift  shift.Shift
	S      bool
}

type LslImmediate struct {
	base
	Rd, Rm Register
	Imm    uint8
	S      bool
}

type LsrImmediate struct {
	base
	Rd, Rm Register
	Imm    uint8
	S      bool
}

type AsrImmediate struct {
	base
	Rd, Rm Register
	Imm    uint8
	S      bool
}

type AddRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

type SubRegister struct {
	base
	Rd, Rn, Rm Register
	Shift      shift.Shift
	S          bool
}

// --- special data processing / branch exchange (A5.4) ---

type MovRegisterSpecial struct {
	base
	Rd, Rm Register
}

type CmpRegisterSpecial struct {
	base
	Rn, Rm Register
}

type Bx struct {
	base
	Rm Register
}

type Blx struct {
	base
	Rm Register
}

// --- load/store single data item ---

type StrImmediate struct {
	base
	Rt, Rn Register
	Imm    uint32
	Index, Add, Wback bool
}

type LdrImmediate struct {
	base
	Rt, Rn Register
	Imm    uint32
	Index, Add, Wback bool
}

type StrbImmediate struct {
	base
	Rt, Rn Register
	Imm    uint32
	Index, Add, Wback bool
}

type LdrbImmediate struct {
	base
	Rt, Rn Register
	Imm    uint32
	Index, Add, Wback bool
}

type StrhImmediate struct {
	base
	Rt, Rn Register
	Imm    uint32
	Index, Add, Wback bool
}

type LdrhImmediate struct {
	base
	Rt, Rn Register
	Imm    uint32
	Index, Add, Wback bool
}

type LdrLiteral struct {
	base
	Rt  Register
	Imm uint32
	Add bool
}

type LdrbLiteral struct {
	base
	Rt  Register
	Imm uint32
	Add bool
}

type LdrsbImmediate struct {
	base
	Rt, Rn            Register
	Imm               uint32
	Index, Add, Wback bool
}

type LdrsbLiteral struct {
	base
	Rt  Register
	Imm uint32
	Add bool
}

type StrRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type LdrRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type StrbRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type LdrbRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type StrhRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type LdrhRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type LdrsbRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

type LdrshRegister struct {
	base
	Rt, Rn, Rm Register
	Shift      shift.Shift
}

// --- block data transfer ---

type Stm struct {
	base
	Rn        Register
	Registers RegisterList
	Wback     bool
}

type Ldm struct {
	base
	Rn        Register
	Registers RegisterList
	Wback     bool
}

type Stmdb struct {
	base
	Rn        Register
	Registers RegisterList
	Wback     bool
}

type Ldmdb struct {
	base
	Rn        Register
	Registers RegisterList
	Wback     bool
}

type Push struct {
	base
	Registers RegisterList
}

type Pop struct {
	base
	Registers RegisterList
}

// --- branches and control ---

type B struct {
	base
	Condition *condition.Condition // nil for the unconditional T2/T4 forms
	Imm       int32
}

type Bl struct {
	base
	Imm int32
}

type Cbz struct {
	base
	Rn  Register
	Imm uint32
}

type Cbnz struct {
	base
	Rn  Register
	Imm uint32
}

type Svc struct {
	base
	Imm uint8
}

type Udf struct {
	base
	Imm uint32
}

// Nop is the hint-space "no operation" encoding, also the canonical
// form for every reserved Table A5.7 hint opcode.
type Nop struct {
	base
}

// It is the if-then instruction (Table A5.7): FirstCond/Mask describe
// which of the next up-to-4 instructions are conditional and on what.
type It struct {
	base
	FirstCond condition.Condition
	Mask      uint8
}

// Yield, Wfe, Wfi, Sev are the remaining Table A5.7 hint instructions.
type Yield struct{ base }
type Wfe struct{ base }
type Wfi struct{ base }
type Sev struct{ base }

// --- misc 16-bit ---

type Cps struct {
	base
	Enable bool
	Affect struct{ I, F bool }
}

type Sxth struct {
	base
	Rd, Rm Register
}

type Sxtb struct {
	base
	Rd, Rm Register
}

type Uxth struct {
	base
	Rd, Rm Register
}

type Uxtb struct {
	base
	Rd, Rm Register
}

type Rev struct {
	base
	Rd, Rm Register
}

type Rev16 struct {
	base
	Rd, Rm Register
}

type Revsh struct {
	base
	Rd, Rm Register
}

type Bkpt struct {
	base
	Imm uint8
}

// --- system ---

type Msr struct {
	base
	Rn           Register
	Mask         uint8
	SysM         uint8
}

type Mrs struct {
	base
	Rd   Register
	SysM uint8
}

// Register and RegisterList are re-exported aliases so callers of this
// package don't also need to import register directly for field types.
type Register = register.Register
type RegisterList = register.RegisterList
