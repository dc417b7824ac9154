// Package prefilter short-circuits the lattice solve for patterns that
// reduce to a flat set of literal alternatives of one common length (a
// single literal run, or an alternation tree where every branch is itself a
// pure literal run, e.g. "cat|dog|cow"). For those patterns, an alignment
// that hits every pattern atom and skips no pattern atom exists if and only
// if one of the literal branches occurs verbatim somewhere in the text, a
// question an Aho-Corasick automaton answers in one linear pass over the
// text regardless of how many branches there are.
//
// When a branch does occur, an optimal trace is immediate: skip up to the
// occurrence, hit every atom of the branch, skip the remainder. When none
// occurs, the prefilter reports no shortcut and the caller falls through to
// the full solver. The shortcut's score always equals the full solver's;
// its trace can differ from the solver's when several traces are optimal.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/samroberts/fuzzygo/pattern"
)

// Prefilter is a literal-alternatives short-circuit built from a pattern's
// core AST.
type Prefilter struct {
	automaton *ahocorasick.Automaton
	literals  [][]rune
}

// Build attempts to construct a Prefilter for core. ok is false when core
// contains anything beyond a flat tree of pure literal runs (a class,
// capture, or repetition anywhere makes the pattern ineligible), when two
// of those literal runs are in a prefix relationship (e.g. "ab"/"abc"), or
// when the literal runs do not all have the same length. The underlying
// automaton reports the first-completing match, which can be a shorter
// branch even where a longer branch also occurs (or nearly occurs) and a
// correct solve would prefer it. Rather than risk handing back a suboptimal
// result, such patterns are declared ineligible and fall through to the
// full solver.
func Build(core pattern.CoreAST) (pf *Prefilter, ok bool) {
	literals, ok := extractLiterals(core)
	if !ok || len(literals) == 0 || hasPrefixRelation(literals) {
		return nil, false
	}
	for _, lit := range literals[1:] {
		if len(lit) != len(literals[0]) {
			return nil, false
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(string(lit)))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{automaton: auto, literals: literals}, true
}

// Match is an exact, zero-cost occurrence of one of a Prefilter's literal
// branches within a piece of text, identified by its rune-index span.
type Match struct {
	Start, End int // rune indices into the text TryExact was called with
}

// TryExact reports an occurrence of one of the Prefilter's literal branches
// verbatim in text. ok is false when none of the branches occur anywhere in
// text, in which case the caller must fall back to the full solver. The
// returned Match's span, hit in full with every other text atom skipped, is
// an optimal alignment with score len(text) minus the span length: every
// branch has that same length, no alignment hits more text atoms than that,
// and every text atom not hit costs exactly 1 to skip.
func (p *Prefilter) TryExact(text pattern.Atoms) (m Match, ok bool) {
	haystack, runeOffsets := encodeWithOffsets(text.Runes)
	found := p.automaton.Find(haystack, 0)
	if found == nil {
		return Match{}, false
	}
	return Match{
		Start: runeIndexForByte(runeOffsets, found.Start),
		End:   runeIndexForByte(runeOffsets, found.End),
	}, true
}

// extractLiterals returns the literal runs at the leaves of core's
// alternation tree, or ok=false if any node is not a pure literal run or
// flat alternation of such runs.
func extractLiterals(core pattern.CoreAST) (lits [][]rune, ok bool) {
	if len(core.Elems) == 1 && core.Elems[0].Kind == pattern.CoreAlternative {
		alt := core.Elems[0]
		left, ok1 := extractLiterals(*alt.Alt1)
		right, ok2 := extractLiterals(*alt.Alt2)
		if !ok1 || !ok2 {
			return nil, false
		}
		return append(left, right...), true
	}

	run := make([]rune, 0, len(core.Elems))
	for _, e := range core.Elems {
		if e.Kind != pattern.CoreLit {
			return nil, false
		}
		run = append(run, e.Lit)
	}
	return [][]rune{run}, true
}

// hasPrefixRelation reports whether any two distinct literals in lits have
// one as a prefix of the other.
func hasPrefixRelation(lits [][]rune) bool {
	for i, a := range lits {
		for j, b := range lits {
			if i == j || len(a) == len(b) {
				continue
			}
			short, long := a, b
			if len(long) < len(short) {
				short, long = long, short
			}
			if runesEqual(short, long[:len(short)]) {
				return true
			}
		}
	}
	return false
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// encodeWithOffsets UTF-8 encodes runes and returns, for each rune, the
// byte offset at which it starts (with a final trailing entry for the
// haystack's overall length, to make end-of-match lookups uniform).
func encodeWithOffsets(runes []rune) (haystack []byte, runeOffsets []int) {
	runeOffsets = make([]int, len(runes)+1)
	haystack = []byte(string(runes))
	pos := 0
	for i, r := range runes {
		runeOffsets[i] = pos
		pos += len(string(r))
	}
	runeOffsets[len(runes)] = pos
	return haystack, runeOffsets
}

func runeIndexForByte(runeOffsets []int, byteOffset int) int {
	for i, off := range runeOffsets {
		if off == byteOffset {
			return i
		}
	}
	return len(runeOffsets) - 1
}
