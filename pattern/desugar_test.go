package pattern

import "testing"

func countKind(elems []CoreElement, k CoreKind) int {
	n := 0
	for _, e := range elems {
		if e.Kind == k {
			n++
		}
		if e.Sub != nil {
			n += countKind(e.Sub.Elems, k)
		}
		if e.Alt1 != nil {
			n += countKind(e.Alt1.Elems, k)
		}
		if e.Alt2 != nil {
			n += countKind(e.Alt2.Elems, k)
		}
	}
	return n
}

func TestDesugarStar(t *testing.T) {
	ast := AST{Elems: []Element{RepeatOf(0, Unbounded, AST{Elems: []Element{Match('a')}})}}
	core, err := Desugar(ast)
	if err != nil {
		t.Fatalf("Desugar: %v", err)
	}
	if len(core.Elems) != 1 || core.Elems[0].Kind != CoreRepetition {
		t.Fatalf("got %+v, want single unbounded Repetition", core.Elems)
	}
}

func TestDesugarPlus(t *testing.T) {
	ast := AST{Elems: []Element{RepeatOf(1, Unbounded, AST{Elems: []Element{Match('a')}})}}
	core, err := Desugar(ast)
	if err != nil {
		t.Fatalf("Desugar: %v", err)
	}
	// a+ -> a, a* : one mandatory Lit followed by one CoreRepetition.
	if len(core.Elems) != 2 {
		t.Fatalf("got %d elems, want 2", len(core.Elems))
	}
	if core.Elems[0].Kind != CoreLit || core.Elems[1].Kind != CoreRepetition {
		t.Errorf("got kinds %v, %v; want Lit, Repetition", core.Elems[0].Kind, core.Elems[1].Kind)
	}
}

func TestDesugarQuest(t *testing.T) {
	ast := AST{Elems: []Element{RepeatOf(0, 1, AST{Elems: []Element{Match('a')}})}}
	core, err := Desugar(ast)
	if err != nil {
		t.Fatalf("Desugar: %v", err)
	}
	if len(core.Elems) != 1 || core.Elems[0].Kind != CoreAlternative {
		t.Fatalf("got %+v, want single Alternative (optional)", core.Elems)
	}
	if len(core.Elems[0].Alt2.Elems) != 0 {
		t.Errorf("empty branch should have no elems, got %+v", core.Elems[0].Alt2.Elems)
	}
}

func TestDesugarExactCount(t *testing.T) {
	ast := AST{Elems: []Element{RepeatOf(3, 3, AST{Elems: []Element{Match('a')}})}}
	core, err := Desugar(ast)
	if err != nil {
		t.Fatalf("Desugar: %v", err)
	}
	if n := countKind(core.Elems, CoreLit); n != 3 {
		t.Errorf("got %d Lit elems, want 3", n)
	}
	if n := countKind(core.Elems, CoreRepetition); n != 0 {
		t.Errorf("got %d Repetition elems, want 0", n)
	}
}

func TestDesugarBoundedRange(t *testing.T) {
	// a{2,4} -> a, a, a?(a?)
	ast := AST{Elems: []Element{RepeatOf(2, 4, AST{Elems: []Element{Match('a')}})}}
	core, err := Desugar(ast)
	if err != nil {
		t.Fatalf("Desugar: %v", err)
	}
	if n := countKind(core.Elems, CoreLit); n != 4 {
		t.Errorf("got %d total Lit occurrences, want 4 (2 mandatory + up to 2 optional)", n)
	}
	if n := countKind(core.Elems, CoreAlternative); n != 2 {
		t.Errorf("got %d Alternative nodes, want 2 nested optionals", n)
	}
	if n := countKind(core.Elems, CoreRepetition); n != 0 {
		t.Errorf("got %d Repetition elems, want 0 (bounded range has no star)", n)
	}
}

func TestDesugarInvalidBounds(t *testing.T) {
	ast := AST{Elems: []Element{RepeatOf(4, 2, AST{Elems: []Element{Match('a')}})}}
	if _, err := Desugar(ast); err == nil {
		t.Errorf("Desugar(min > max): want error, got nil")
	}
}

func TestDesugarCaptureAndAlternative(t *testing.T) {
	ast := AST{Elems: []Element{
		CaptureOf(AST{Elems: []Element{Match('a')}}),
		AlternativeOf(
			AST{Elems: []Element{Match('b')}},
			AST{Elems: []Element{Match('c')}},
		),
	}}
	core, err := Desugar(ast)
	if err != nil {
		t.Fatalf("Desugar: %v", err)
	}
	if len(core.Elems) != 2 {
		t.Fatalf("got %d elems, want 2", len(core.Elems))
	}
	if core.Elems[0].Kind != CoreCapture {
		t.Errorf("elem 0 kind = %v, want CoreCapture", core.Elems[0].Kind)
	}
	if core.Elems[1].Kind != CoreAlternative {
		t.Errorf("elem 1 kind = %v, want CoreAlternative", core.Elems[1].Kind)
	}
}
