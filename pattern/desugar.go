package pattern

// Desugar reduces an AST to a CoreAST: every Repetition becomes an unbounded
// "zero or more" loop, and bounded counts are expanded into concatenations
// of mandatory copies followed by nested optional copies. This mirrors the
// expansion a regex engine's own compiler performs for {m,n} internally, but
// is done here explicitly so the lattice (component C) never has to reason
// about counted bounds at all — only CoreRepetition's unbounded loop.
//
// Desugaring rules, for inner pattern P:
//
//	P{0,0}  -> empty
//	P{0,1}  -> P?            = Alternative(P, empty)
//	P{0,}   -> P*            = CoreRepetition(P)
//	P{1,}   -> P+            = concat(P, CoreRepetition(P))
//	P{m,}   -> concat(P × m, CoreRepetition(P))
//	P{m,n}  -> concat(P × m, optional(P) nested n-m deep)
func Desugar(ast AST) (CoreAST, error) {
	elems, err := desugarElems(ast.Elems)
	if err != nil {
		return CoreAST{}, err
	}
	return CoreAST{Elems: elems}, nil
}

func desugarElems(elems []Element) ([]CoreElement, error) {
	var out []CoreElement
	for _, e := range elems {
		ce, err := desugarElem(e)
		if err != nil {
			return nil, err
		}
		out = append(out, ce...)
	}
	return out, nil
}

func desugarElem(e Element) ([]CoreElement, error) {
	switch e.Kind {
	case KindLit:
		return []CoreElement{{Kind: CoreLit, Lit: e.Lit}}, nil

	case KindClass:
		return []CoreElement{{Kind: CoreClass, Class: e.Class}}, nil

	case KindCapture:
		inner, err := Desugar(*e.Sub)
		if err != nil {
			return nil, err
		}
		return []CoreElement{{Kind: CoreCapture, Sub: &inner}}, nil

	case KindAlternative:
		left, err := Desugar(*e.Alt1)
		if err != nil {
			return nil, err
		}
		right, err := Desugar(*e.Alt2)
		if err != nil {
			return nil, err
		}
		return []CoreElement{{Kind: CoreAlternative, Alt1: &left, Alt2: &right}}, nil

	case KindRepetition:
		return desugarRepetition(e)

	default:
		return nil, &invalidKindError{e.Kind}
	}
}

func desugarRepetition(e Element) ([]CoreElement, error) {
	inner, err := Desugar(*e.Sub)
	if err != nil {
		return nil, err
	}

	min, max := e.Min, e.Max

	if max != Unbounded && min > max {
		return nil, &invalidBoundsError{min, max}
	}

	var out []CoreElement
	mandatory := min
	for i := 0; i < mandatory; i++ {
		out = append(out, cloneCoreElems(inner.Elems)...)
	}

	switch {
	case max == Unbounded:
		star := CoreAST{Elems: cloneCoreElems(inner.Elems)}
		out = append(out, CoreElement{Kind: CoreRepetition, Sub: &star})
	case max > min:
		tail := optionalChain(inner, max-min)
		out = append(out, tail...)
	}
	return out, nil
}

// optionalChain builds depth nested optional copies of inner: P?(P?(...P?)),
// each optional expressed as Alternative(P, empty).
func optionalChain(inner CoreAST, depth int) []CoreElement {
	if depth <= 0 {
		return nil
	}
	rest := optionalChain(inner, depth-1)
	body := CoreAST{Elems: append(cloneCoreElems(inner.Elems), rest...)}
	empty := CoreAST{}
	return []CoreElement{{Kind: CoreAlternative, Alt1: &body, Alt2: &empty}}
}

func cloneCoreElems(elems []CoreElement) []CoreElement {
	return append([]CoreElement(nil), elems...)
}

type invalidKindError struct{ kind Kind }

func (e *invalidKindError) Error() string {
	return "pattern: desugar: unrecognised element kind " + e.kind.String()
}

type invalidBoundsError struct{ min, max int }

func (e *invalidBoundsError) Error() string {
	return "pattern: desugar: repetition minimum exceeds maximum"
}
