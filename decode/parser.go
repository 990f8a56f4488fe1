package decode

import (
	"github.com/cortexm/thumb2/decerr"
	"github.com/cortexm/thumb2/decode/halfword"
	"github.com/cortexm/thumb2/decode/wholeword"
	"github.com/cortexm/thumb2/operation"
	"github.com/cortexm/thumb2/stream"
)

// widthPrefixMin is the lowest value of the top 5 bits of the first
// half-word that signals a 32-bit instruction: 0b11101, 0b11110, and
// 0b11111 all do.
const widthPrefixMin = 0b11101

// Parser decodes a byte stream into a sequence of Operations, one
// per instruction, stopping (and reporting PartiallyParsed) at the
// first bad encoding.
type Parser struct {
	s *stream.Stream
}

// NewParser wraps data for decoding from offset 0.
func NewParser(data []byte) *Parser {
	return &Parser{s: stream.New(data)}
}

// Parse decodes the entire stream. On success it returns every decoded
// operation; on failure it returns the operations decoded before the
// failure together with a *decerr.Error of KindPartiallyParsed
// wrapping the underlying cause.
func (p *Parser) Parse() ([]operation.Operation, error) {
	insns, err := p.ParseWithOffsets()
	ops := make([]operation.Operation, len(insns))
	for i, insn := range insns {
		ops[i] = insn.Op
	}
	return ops, err
}

// Instruction pairs a decoded Operation with its byte offset into the
// stream, for callers (disassembly listings, debuggers) that need to
// report addresses alongside the decoded IR.
type Instruction struct {
	Offset int
	Op     operation.Operation
}

// ParseWithOffsets is Parse, additionally reporting each operation's
// starting byte offset.
func (p *Parser) ParseWithOffsets() ([]Instruction, error) {
	var insns []Instruction
	for p.s.Remaining() > 0 {
		offset := p.s.Position()
		op, err := p.next()
		if err != nil {
			ops := make([]operation.Operation, len(insns))
			for i, insn := range insns {
				ops[i] = insn.Op
			}
			return insns, decerr.PartiallyParsed(err, ops)
		}
		insns = append(insns, Instruction{Offset: offset, Op: op})
	}
	return insns, nil
}

func (p *Parser) next() (operation.Operation, error) {
	first, ok := p.s.Peek16(1)
	if !ok {
		return nil, decerr.IncompleteProgram()
	}
	if first>>11 >= widthPrefixMin {
		word, ok := p.s.Peek32()
		if !ok {
			return nil, decerr.Incomplete32Bit()
		}
		op, err := wholeword.Decode(word)
		if err != nil {
			return nil, err
		}
		p.s.Consume32()
		return op, nil
	}
	op, err := halfword.Decode(first)
	if err != nil {
		return nil, err
	}
	p.s.Consume16()
	return op, nil
}
