// Package flatpattern linearises a pattern.CoreAST into a flat instruction
// array addressable by a single integer index, the form the lattice
// (package lattice) needs to address pattern positions without walking a
// tree on every step.
package flatpattern

import "github.com/samroberts/fuzzygo/pattern"

// Op identifies the kind of a flat instruction.
type Op uint8

const (
	// OpLit matches one literal rune.
	OpLit Op = iota
	// OpClass matches one rune against a Class predicate.
	OpClass
	// OpGroupStart/OpGroupEnd bracket a capture with no text cost.
	OpGroupStart
	OpGroupEnd
	// OpAltLeft/OpAltRight bracket the two branches of an alternative.
	// AltLeft.Offset is the index of its matching AltRight; AltRight.Offset
	// is the index one past the whole alternative.
	OpAltLeft
	OpAltRight
	// OpRepStart/OpRepEnd bracket a zero-or-more repetition. RepStart.Offset
	// is the index of its matching RepEnd (the exit, for zero iterations);
	// RepEnd.Offset is the index of its matching RepStart (the loop back,
	// for another iteration).
	OpRepStart
	OpRepEnd
	// OpEnd is the sentinel instruction appended after the whole pattern;
	// reaching it with the text cursor at text length is a complete match.
	OpEnd
)

func (o Op) String() string {
	switch o {
	case OpLit:
		return "Lit"
	case OpClass:
		return "Class"
	case OpGroupStart:
		return "GroupStart"
	case OpGroupEnd:
		return "GroupEnd"
	case OpAltLeft:
		return "AltLeft"
	case OpAltRight:
		return "AltRight"
	case OpRepStart:
		return "RepStart"
	case OpRepEnd:
		return "RepEnd"
	case OpEnd:
		return "End"
	default:
		return "Op(?)"
	}
}

// Instr is one flat instruction.
type Instr struct {
	Op     Op
	Lit    rune
	Class  *pattern.Class
	Offset int // meaning depends on Op; see the Op constants
}

// Flat is a pattern.CoreAST linearised into an instruction array, terminated
// by a single OpEnd sentinel.
type Flat struct {
	Instrs []Instr
}

// Flatten linearises a CoreAST into a Flat.
func Flatten(core pattern.CoreAST) *Flat {
	b := &builder{}
	b.emitElems(core.Elems)
	b.instrs = append(b.instrs, Instr{Op: OpEnd})
	return &Flat{Instrs: b.instrs}
}

type builder struct {
	instrs []Instr
}

func (b *builder) emit(ins Instr) int {
	b.instrs = append(b.instrs, ins)
	return len(b.instrs) - 1
}

func (b *builder) emitElems(elems []pattern.CoreElement) {
	for _, e := range elems {
		b.emitElem(e)
	}
}

func (b *builder) emitElem(e pattern.CoreElement) {
	switch e.Kind {
	case pattern.CoreLit:
		b.emit(Instr{Op: OpLit, Lit: e.Lit})

	case pattern.CoreClass:
		b.emit(Instr{Op: OpClass, Class: e.Class})

	case pattern.CoreCapture:
		start := b.emit(Instr{Op: OpGroupStart})
		b.emitElems(e.Sub.Elems)
		end := b.emit(Instr{Op: OpGroupEnd})
		b.instrs[start].Offset = end
		b.instrs[end].Offset = start

	case pattern.CoreRepetition:
		start := b.emit(Instr{Op: OpRepStart})
		b.emitElems(e.Sub.Elems)
		end := b.emit(Instr{Op: OpRepEnd})
		b.instrs[start].Offset = end
		b.instrs[end].Offset = start

	case pattern.CoreAlternative:
		left := b.emit(Instr{Op: OpAltLeft})
		b.emitElems(e.Alt1.Elems)
		right := b.emit(Instr{Op: OpAltRight})
		b.emitElems(e.Alt2.Elems)
		end := len(b.instrs)
		b.instrs[left].Offset = right
		b.instrs[right].Offset = end
	}
}
