// Command thumbdump disassembles a raw Armv7-M Thumb-2 instruction
// stream into its decoded operations, either as a plain listing or in
// a scrollable terminal viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cortexm/thumb2/config"
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/decode"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbdump: %v\n", err)
		os.Exit(1)
	}

	var (
		tuiMode = flag.Bool("tui", cfg.TUI.StartInTUI, "Browse the disassembly in a scrollable terminal viewer")
		base    = flag.String("base", "0x0", "Base address of the first byte, for the printed offsets")
		numFmt  = flag.String("format", cfg.Display.NumberFormat, "Immediate number format: hex or dec")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: thumbdump [-tui] [-base addr] [-format hex|dec] <file>")
		os.Exit(2)
	}

	baseAddr, err := strconv.ParseUint(*base, 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbdump: invalid -base %q: %v\n", *base, err)
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbdump: %v\n", err)
		os.Exit(1)
	}

	insns, perr := decode.NewParser(data).ParseWithOffsets()
	lines := listing(insns, uint32(baseAddr), *numFmt)

	if *tuiMode {
		runTUI(lines, perr, cfg.Display.ColorOutput)
		return
	}

	for _, l := range lines {
		fmt.Println(l)
	}
	if perr != nil {
		var derr *decerr.Error
		if asDecodeError(perr, &derr) {
			fmt.Fprintf(os.Stderr, "thumbdump: stopped after %d operations: %v\n", len(insns), derr.Inner)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "thumbdump: %v\n", perr)
		os.Exit(1)
	}
}

// listing renders each decoded instruction as "addr: mnemonic".
func listing(insns []decode.Instruction, base uint32, numFmt string) []string {
	out := make([]string, len(insns))
	for i, insn := range insns {
		out[i] = fmt.Sprintf("%08x: %s", base+uint32(insn.Offset), format(insn.Op, numFmt))
	}
	return out
}

func asDecodeError(err error, out **decerr.Error) bool {
	e, ok := err.(*decerr.Error)
	if ok && e.Kind == decerr.KindPartiallyParsed {
		*out = e
		return true
	}
	return false
}
