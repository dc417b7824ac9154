package pattern

import (
	"fmt"
	"regexp/syntax"
	"unicode/utf8"

	"github.com/samroberts/fuzzygo/fuzzyerr"
)

// FromSyntax adapts a parsed regexp/syntax.Regexp into an AST. It is the
// boundary between the external pattern-parser contract (spec.md §1 treats
// parsing as out of scope) and this package's own tree; regexp/syntax.Parse
// is the parser, exactly as the teacher package uses it in its own compile
// path.
//
// FromSyntax supports the operators spec.md's pattern language covers:
// literals, character classes, captures, alternation (including 3+-way,
// right-folded into nested binary Alternative nodes), and repetition
// (*, +, ?, and bounded {m}/{m,n}/{m,}). Anchors and word boundaries have no
// meaning in an edit-distance lattice and are rejected as unsupported.
func FromSyntax(re *syntax.Regexp) (AST, error) {
	elems, err := fromSyntaxElems(re)
	if err != nil {
		return AST{}, err
	}
	return AST{Elems: elems}, nil
}

// fromSyntaxElems returns the Elements a single *syntax.Regexp node expands
// to. Most ops contribute exactly one Element; OpConcat and OpEmptyMatch may
// contribute zero or several, so this returns a slice rather than one value.
func fromSyntaxElems(re *syntax.Regexp) ([]Element, error) {
	switch re.Op {
	case syntax.OpEmptyMatch:
		return nil, nil

	case syntax.OpLiteral:
		elems := make([]Element, len(re.Rune))
		for i, r := range re.Rune {
			elems[i] = Match(r)
		}
		return elems, nil

	case syntax.OpCharClass:
		return []Element{MatchClass(ClassFromSyntaxRanges(re.Rune))}, nil

	case syntax.OpAnyCharNotNL:
		return []Element{MatchClass(NewClass([]RuneRange{
			{Lo: 0, Hi: '\n' - 1},
			{Lo: '\n' + 1, Hi: utf8.MaxRune},
		}))}, nil

	case syntax.OpAnyChar:
		return []Element{MatchClass(NewClass([]RuneRange{{Lo: 0, Hi: utf8.MaxRune}}))}, nil

	case syntax.OpCapture:
		inner, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return []Element{CaptureOf(inner)}, nil

	case syntax.OpStar:
		inner, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return []Element{RepeatOf(0, Unbounded, inner)}, nil

	case syntax.OpPlus:
		inner, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return []Element{RepeatOf(1, Unbounded, inner)}, nil

	case syntax.OpQuest:
		inner, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return []Element{RepeatOf(0, 1, inner)}, nil

	case syntax.OpRepeat:
		inner, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		max := re.Max
		if max < 0 {
			max = Unbounded
		}
		if re.Min > 1000 || (max != Unbounded && max > 1000) {
			return nil, fuzzyerr.ErrRegexBoundTooLarge
		}
		return []Element{RepeatOf(re.Min, max, inner)}, nil

	case syntax.OpConcat:
		var elems []Element
		for _, sub := range re.Sub {
			subElems, err := fromSyntaxElems(sub)
			if err != nil {
				return nil, err
			}
			elems = append(elems, subElems...)
		}
		return elems, nil

	case syntax.OpAlternate:
		alt, err := foldAlternation(re.Sub)
		if err != nil {
			return nil, err
		}
		return []Element{AlternativeOf(alt[0], alt[1])}, nil

	default:
		return nil, &fuzzyerr.UnsupportedError{Detail: fmt.Sprintf("operator %v has no edit-distance meaning", re.Op)}
	}
}

// foldAlternation right-folds 2+ alternation branches into one binary pair,
// so that `a|b|c` becomes Alternative(a, Alternative(b, c)). This restores
// the n-ary handling the thinner of the two retrieved pattern parsers had
// dropped down to binary-only alternation.
func foldAlternation(subs []*syntax.Regexp) ([2]AST, error) {
	if len(subs) < 2 {
		return [2]AST{}, &fuzzyerr.UnsupportedError{Detail: "alternation with fewer than 2 branches"}
	}
	left, err := FromSyntax(subs[0])
	if err != nil {
		return [2]AST{}, err
	}
	if len(subs) == 2 {
		right, err := FromSyntax(subs[1])
		if err != nil {
			return [2]AST{}, err
		}
		return [2]AST{left, right}, nil
	}
	rest, err := foldAlternation(subs[1:])
	if err != nil {
		return [2]AST{}, err
	}
	return [2]AST{left, {Elems: []Element{AlternativeOf(rest[0], rest[1])}}}, nil
}
