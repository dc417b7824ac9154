// Package pattern defines the pattern AST consumed by the fuzzy matcher core,
// the desugaring step that reduces it to an unbounded-repetition-only core
// form, and the adapter that builds an AST from Go's regexp/syntax parser.
package pattern

import "fmt"

// Kind identifies which case of Element is populated. Element is a tagged
// union rather than an interface hierarchy, the same shape regexp/syntax.Regexp
// itself uses for its Op-tagged node.
type Kind uint8

const (
	// KindLit matches one literal rune.
	KindLit Kind = iota
	// KindClass matches one rune satisfying a Class predicate.
	KindClass
	// KindCapture brackets an inner pattern for the trace.
	KindCapture
	// KindRepetition repeats an inner pattern Min..Max times (Max == Unbounded
	// for no upper bound).
	KindRepetition
	// KindAlternative matches either of two inner patterns.
	KindAlternative
)

func (k Kind) String() string {
	switch k {
	case KindLit:
		return "Lit"
	case KindClass:
		return "Class"
	case KindCapture:
		return "Capture"
	case KindRepetition:
		return "Repetition"
	case KindAlternative:
		return "Alternative"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Unbounded marks a Repetition with no upper bound (spec.md's max = ∞).
const Unbounded = -1

// Element is a single node of an AST. Only the fields relevant to Kind are
// populated; see Kind's doc comment for which.
type Element struct {
	Kind Kind

	Lit   rune   // KindLit
	Class *Class // KindClass

	Sub *AST // KindCapture, KindRepetition: inner pattern

	Min int // KindRepetition: minimum repeat count
	Max int // KindRepetition: maximum repeat count, or Unbounded

	Alt1, Alt2 *AST // KindAlternative: the two branches
}

// AST is a sequence of Elements, the user-facing pattern tree produced by
// FromSyntax (spec.md §3's "Pattern AST").
type AST struct {
	Elems []Element
}

// Atom is a single character of text.
type Atom = rune

// Atoms is the decoded text to align the pattern against.
type Atoms struct {
	Runes []rune
}

// NewAtoms decodes a string into Atoms once, at the API boundary.
func NewAtoms(text string) Atoms {
	return Atoms{Runes: []rune(text)}
}

// Match builds a literal-match Element.
func Match(c rune) Element {
	return Element{Kind: KindLit, Lit: c}
}

// MatchClass builds a class-match Element.
func MatchClass(c *Class) Element {
	return Element{Kind: KindClass, Class: c}
}

// CaptureOf builds a Capture Element.
func CaptureOf(inner AST) Element {
	return Element{Kind: KindCapture, Sub: &inner}
}

// RepeatOf builds a Repetition Element with explicit bounds.
func RepeatOf(min, max int, inner AST) Element {
	return Element{Kind: KindRepetition, Min: min, Max: max, Sub: &inner}
}

// AlternativeOf builds an Alternative Element.
func AlternativeOf(left, right AST) Element {
	return Element{Kind: KindAlternative, Alt1: &left, Alt2: &right}
}

// CoreKind identifies which case of CoreElement is populated. It omits
// KindRepetition's bounded form: every CoreElement Repetition is unbounded
// (spec.md §3's Core AST invariant).
type CoreKind uint8

const (
	CoreLit CoreKind = iota
	CoreClass
	CoreCapture
	CoreRepetition
	CoreAlternative
)

func (k CoreKind) String() string {
	switch k {
	case CoreLit:
		return "Lit"
	case CoreClass:
		return "Class"
	case CoreCapture:
		return "Capture"
	case CoreRepetition:
		return "Repetition"
	case CoreAlternative:
		return "Alternative"
	default:
		return fmt.Sprintf("CoreKind(%d)", k)
	}
}

// CoreElement is one node of a CoreAST. Only the fields relevant to Kind are
// populated.
type CoreElement struct {
	Kind CoreKind

	Lit   rune
	Class *Class

	Sub *CoreAST // CoreCapture, CoreRepetition: inner pattern (unbounded)

	Alt1, Alt2 *CoreAST // CoreAlternative: the two branches
}

// CoreAST is the pattern after Desugar: no bounded repetitions. One branch
// of an Alternative may be empty; Desugar expresses each optional copy as
// Alternative(P, empty).
type CoreAST struct {
	Elems []CoreElement
}
