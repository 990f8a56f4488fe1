package main

import (
	"fmt"
	"strings"

	"github.com/cortexm/thumb2/operation"
)

// format renders a decoded Operation as a single disassembly-style
// line, rendering immediates per numFmt ("hex" or "dec"). It covers
// the mnemonics most useful to skim in a listing; everything else
// falls back to a Go-syntax dump of the struct, which is still useful
// for spotting which table a word routed to.
func format(op operation.Operation, numFmt string) string {
	imm := func(v int64) string { return formatImm(v, numFmt) }
	switch v := op.(type) {
	case operation.MovImmediate:
		return fmt.Sprintf("MOV%s %s, #%s", suffix(v.S), v.Rd, imm(int64(v.Imm)))
	case operation.MovWImmediate:
		return fmt.Sprintf("MOVW %s, #%s", v.Rd, imm(int64(v.Imm)))
	case operation.MovtImmediate:
		return fmt.Sprintf("MOVT %s, #%s", v.Rd, imm(int64(v.Imm)))
	case operation.MovRegisterSpecial:
		return fmt.Sprintf("MOV %s, %s", v.Rd, v.Rm)
	case operation.AddImmediate:
		return fmt.Sprintf("ADD%s %s, %s, #%s", suffix(v.S), v.Rd, v.Rn, imm(int64(v.Imm)))
	case operation.AddRegister:
		return fmt.Sprintf("ADD%s %s, %s, %s", suffix(v.S), v.Rd, v.Rn, v.Rm)
	case operation.SubImmediate:
		return fmt.Sprintf("SUB%s %s, %s, #%s", suffix(v.S), v.Rd, v.Rn, imm(int64(v.Imm)))
	case operation.SubRegister:
		return fmt.Sprintf("SUB%s %s, %s, %s", suffix(v.S), v.Rd, v.Rn, v.Rm)
	case operation.CmpImmediate:
		return fmt.Sprintf("CMP %s, #%s", v.Rn, imm(int64(v.Imm)))
	case operation.CmpRegister:
		return fmt.Sprintf("CMP %s, %s", v.Rn, v.Rm)
	case operation.B:
		if v.Condition != nil {
			return fmt.Sprintf("B%s #%s", v.Condition, imm(int64(v.Imm)))
		}
		return fmt.Sprintf("B #%s", imm(int64(v.Imm)))
	case operation.Bl:
		return fmt.Sprintf("BL #%s", imm(int64(v.Imm)))
	case operation.Bx:
		return fmt.Sprintf("BX %s", v.Rm)
	case operation.Blx:
		return fmt.Sprintf("BLX %s", v.Rm)
	case operation.Cbz:
		return fmt.Sprintf("CBZ %s, #%s", v.Rn, imm(int64(v.Imm)))
	case operation.Cbnz:
		return fmt.Sprintf("CBNZ %s, #%s", v.Rn, imm(int64(v.Imm)))
	case operation.It:
		return fmt.Sprintf("IT %s (mask %#03b)", v.FirstCond, v.Mask)
	case operation.Nop:
		return "NOP"
	case operation.Yield:
		return "YIELD"
	case operation.Wfe:
		return "WFE"
	case operation.Wfi:
		return "WFI"
	case operation.Sev:
		return "SEV"
	case operation.Svc:
		return fmt.Sprintf("SVC #%s", imm(int64(v.Imm)))
	case operation.Udf:
		return fmt.Sprintf("UDF #%s", imm(int64(v.Imm)))
	case operation.Bkpt:
		return fmt.Sprintf("BKPT #%s", imm(int64(v.Imm)))
	case operation.LdrImmediate:
		return fmt.Sprintf("LDR %s, [%s, #%s]", v.Rt, v.Rn, imm(int64(v.Imm)))
	case operation.StrImmediate:
		return fmt.Sprintf("STR %s, [%s, #%s]", v.Rt, v.Rn, imm(int64(v.Imm)))
	case operation.LdrLiteral:
		return fmt.Sprintf("LDR %s, [PC, #%s]", v.Rt, imm(int64(v.Imm)))
	case operation.Push:
		return fmt.Sprintf("PUSH {%s}", registerListString(v.Registers))
	case operation.Pop:
		return fmt.Sprintf("POP {%s}", registerListString(v.Registers))
	case operation.Stm:
		return fmt.Sprintf("STM%s %s, {%s}", wbackSuffix(v.Wback), v.Rn, registerListString(v.Registers))
	case operation.Ldm:
		return fmt.Sprintf("LDM%s %s, {%s}", wbackSuffix(v.Wback), v.Rn, registerListString(v.Registers))
	default:
		return fmt.Sprintf("%T %+v", op, op)
	}
}

// formatImm renders an immediate per the configured number format,
// falling back to hex for anything other than "dec".
func formatImm(v int64, numFmt string) string {
	if numFmt == "dec" {
		return fmt.Sprintf("%d", v)
	}
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}

func suffix(s bool) string {
	if s {
		return "S"
	}
	return ""
}

func wbackSuffix(w bool) string {
	if w {
		return "!"
	}
	return ""
}

func registerListString(list operation.RegisterList) string {
	regs := list.Registers()
	names := make([]string, len(regs))
	for i, r := range regs {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
