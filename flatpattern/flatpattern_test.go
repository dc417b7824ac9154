package flatpattern

import (
	"testing"

	"github.com/samroberts/fuzzygo/pattern"
)

func core(elems ...pattern.CoreElement) pattern.CoreAST {
	return pattern.CoreAST{Elems: elems}
}

func lit(r rune) pattern.CoreElement {
	return pattern.CoreElement{Kind: pattern.CoreLit, Lit: r}
}

func TestFlattenLiterals(t *testing.T) {
	flat := Flatten(core(lit('a'), lit('b')))
	if len(flat.Instrs) != 3 {
		t.Fatalf("got %d instrs, want 3 (2 lits + End)", len(flat.Instrs))
	}
	if flat.Instrs[0].Op != OpLit || flat.Instrs[0].Lit != 'a' {
		t.Errorf("instr 0 = %+v", flat.Instrs[0])
	}
	if flat.Instrs[2].Op != OpEnd {
		t.Errorf("last instr = %+v, want OpEnd", flat.Instrs[2])
	}
}

func TestFlattenCaptureOffsets(t *testing.T) {
	inner := pattern.CoreAST{Elems: []pattern.CoreElement{lit('a')}}
	flat := Flatten(core(pattern.CoreElement{Kind: pattern.CoreCapture, Sub: &inner}))
	// GroupStart, Lit, GroupEnd, End
	if len(flat.Instrs) != 4 {
		t.Fatalf("got %d instrs, want 4", len(flat.Instrs))
	}
	if flat.Instrs[0].Op != OpGroupStart || flat.Instrs[0].Offset != 2 {
		t.Errorf("GroupStart = %+v, want Offset 2", flat.Instrs[0])
	}
	if flat.Instrs[2].Op != OpGroupEnd || flat.Instrs[2].Offset != 0 {
		t.Errorf("GroupEnd = %+v, want Offset 0", flat.Instrs[2])
	}
}

func TestFlattenRepetitionOffsets(t *testing.T) {
	inner := pattern.CoreAST{Elems: []pattern.CoreElement{lit('a')}}
	flat := Flatten(core(pattern.CoreElement{Kind: pattern.CoreRepetition, Sub: &inner}))
	// RepStart, Lit, RepEnd, End
	if len(flat.Instrs) != 4 {
		t.Fatalf("got %d instrs, want 4", len(flat.Instrs))
	}
	if flat.Instrs[0].Op != OpRepStart || flat.Instrs[0].Offset != 2 {
		t.Errorf("RepStart = %+v, want Offset 2 (its RepEnd)", flat.Instrs[0])
	}
	if flat.Instrs[2].Op != OpRepEnd || flat.Instrs[2].Offset != 0 {
		t.Errorf("RepEnd = %+v, want Offset 0 (its RepStart)", flat.Instrs[2])
	}
}

func TestFlattenAlternativeOffsets(t *testing.T) {
	left := pattern.CoreAST{Elems: []pattern.CoreElement{lit('a')}}
	right := pattern.CoreAST{Elems: []pattern.CoreElement{lit('b')}}
	flat := Flatten(core(pattern.CoreElement{Kind: pattern.CoreAlternative, Alt1: &left, Alt2: &right}))
	// AltLeft, Lit(a), AltRight, Lit(b), End
	if len(flat.Instrs) != 5 {
		t.Fatalf("got %d instrs, want 5", len(flat.Instrs))
	}
	if flat.Instrs[0].Op != OpAltLeft || flat.Instrs[0].Offset != 2 {
		t.Errorf("AltLeft = %+v, want Offset 2 (its AltRight)", flat.Instrs[0])
	}
	if flat.Instrs[2].Op != OpAltRight || flat.Instrs[2].Offset != 4 {
		t.Errorf("AltRight = %+v, want Offset 4 (one past the alternative)", flat.Instrs[2])
	}
}

func TestFlattenEmpty(t *testing.T) {
	flat := Flatten(core())
	if len(flat.Instrs) != 1 || flat.Instrs[0].Op != OpEnd {
		t.Fatalf("got %+v, want single OpEnd", flat.Instrs)
	}
}
