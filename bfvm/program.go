package bfvm

import "strings"

type Program struct {
	instructions []Instruction
	pc           int
}

// Parse keeps the eight instruction symbols and drops every other character.
func Parse(source string) *Program {
	var instructions []Instruction
	for _, r := range source {
		if inst, ok := ParseInstruction(r); ok {
			instructions = append(instructions, inst)
		}
	}
	return &Program{
		instructions: instructions,
	}
}

func (p *Program) PC() int {
	return p.pc
}

func (p *Program) Len() int {
	return len(p.instructions)
}

func (p *Program) Instructions() []Instruction {
	return p.instructions
}

func (p *Program) String() string {
	var b strings.Builder
	for _, inst := range p.instructions {
		b.WriteString(inst.String())
	}
	return b.String()
}

// Decode returns the instruction at the program counter and advances it.
// Loop markers are resolved against cell. A skipped loop leaves the counter on the
// matching EndLoop, which is decoded again in the next call.
func (p *Program) Decode(cell byte) (inst Instruction, terminated bool, err error) {
	if p.pc >= len(p.instructions) {
		return 0, true, nil
	}

	inst = p.instructions[p.pc]
	switch inst {

	case BeginLoop:
		if cell != 0 {
			p.pc++
			return inst, false, nil
		}
		depth := 0
		for i := p.pc; i < len(p.instructions); i++ {
			switch p.instructions[i] {
			case BeginLoop:
				depth++
			case EndLoop:
				depth--
			}
			if depth == 0 {
				p.pc = i
				return inst, false, nil
			}
		}
		return 0, false, mismatchedBracket("no matching closing bracket", p.pc)

	case EndLoop:
		if cell == 0 {
			p.pc++
			return inst, false, nil
		}
		depth := 0
		for i := p.pc; i >= 0; i-- {
			switch p.instructions[i] {
			case EndLoop:
				depth++
			case BeginLoop:
				depth--
			}
			if depth == 0 {
				p.pc = i
				return inst, false, nil
			}
		}
		return 0, false, mismatchedBracket("no matching opening bracket", p.pc)

	}

	p.pc++
	return inst, false, nil
}
