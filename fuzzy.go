// Package fuzzygo computes the closest approximate alignment between a
// pattern and a piece of text: the minimum number of pattern atoms and text
// atoms that must be skipped to align the two (a substituted atom counts as
// one skipped pattern atom plus one skipped text atom, so it costs 2),
// together with a trace of exactly which atoms were matched or skipped to
// achieve that minimum.
//
// The typical entry point is SolveRegex, which accepts an ordinary regular
// expression (literals, character classes, captures, alternation, and
// bounded or unbounded repetition) as the pattern:
//
//	result, err := fuzzygo.SolveRegex(`colou?r`, "collor")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Score)      // 1
//	fmt.Println(result.Diff())     // "col{+l+}or" (one of the optimal traces)
//
// Solve accepts an already-parsed pattern.AST instead, for callers building
// patterns programmatically rather than from regex syntax.
package fuzzygo

import (
	"regexp/syntax"

	"github.com/samroberts/fuzzygo/config"
	"github.com/samroberts/fuzzygo/diffrender"
	"github.com/samroberts/fuzzygo/flatpattern"
	"github.com/samroberts/fuzzygo/fuzzyerr"
	"github.com/samroberts/fuzzygo/lattice"
	"github.com/samroberts/fuzzygo/nodestore"
	"github.com/samroberts/fuzzygo/pattern"
	"github.com/samroberts/fuzzygo/prefilter"
	"github.com/samroberts/fuzzygo/solver"
	"github.com/samroberts/fuzzygo/trace"
)

// StepKind identifies the kind of one Step in a Result's Trace.
type StepKind int

const (
	// Hit aligns one pattern atom with one text atom that matches it.
	Hit StepKind = iota
	// SkipPattern consumes one pattern atom with no corresponding text.
	SkipPattern
	// SkipText consumes one text atom with no corresponding pattern atom.
	SkipText
	// StartCapture marks the start of a capture group.
	StartCapture
	// StopCapture marks the end of a capture group.
	StopCapture
)

func (k StepKind) String() string {
	switch k {
	case Hit:
		return "Hit"
	case SkipPattern:
		return "SkipPattern"
	case SkipText:
		return "SkipText"
	case StartCapture:
		return "StartCapture"
	case StopCapture:
		return "StopCapture"
	default:
		return "StepKind(?)"
	}
}

// Step is one step of an alignment trace. Rune holds the literal atom
// involved (the text atom for Hit and SkipText, the pattern atom for
// SkipPattern); it is the zero rune for StartCapture/StopCapture, and for a
// SkipPattern that consumed a character-class atom rather than a literal.
type Step struct {
	Kind StepKind
	Rune rune
}

func fromLatticeKind(k lattice.StepKind) StepKind {
	switch k {
	case lattice.StepHit:
		return Hit
	case lattice.StepSkipPattern:
		return SkipPattern
	case lattice.StepSkipText:
		return SkipText
	case lattice.StepStartCapture:
		return StartCapture
	case lattice.StepStopCapture:
		return StopCapture
	default:
		return Hit
	}
}

func toTraceSteps(steps []Step) []trace.Step {
	out := make([]trace.Step, len(steps))
	for i, s := range steps {
		var k lattice.StepKind
		switch s.Kind {
		case Hit:
			k = lattice.StepHit
		case SkipPattern:
			k = lattice.StepSkipPattern
		case SkipText:
			k = lattice.StepSkipText
		case StartCapture:
			k = lattice.StepStartCapture
		case StopCapture:
			k = lattice.StepStopCapture
		}
		out[i] = trace.Step{Kind: k, Rune: s.Rune}
	}
	return out
}

// Result is the outcome of a Solve/SolveRegex call.
type Result struct {
	// Score is the minimum edit cost between the pattern and the text.
	Score int
	// Trace is one optimal sequence of steps achieving Score. When more
	// than one sequence is optimal, which one is returned is determined by
	// the solver's fixed tie-break order, not left unspecified; when the
	// prefilter short-circuit applies, it is instead the trace that hits the
	// first branch occurrence the prefilter reports and skips every other
	// text atom.
	Trace []Step
}

// Diff renders Trace as a git-style inline diff: text the pattern matched
// renders literally, pattern content with no counterpart in the text is
// wrapped [-like so-], and text with no counterpart in the pattern is
// wrapped {+like so+}. Capture boundaries are not rendered.
func (r Result) Diff() string {
	return diffrender.Render(toTraceSteps(r.Trace))
}

// Chunks renders Trace as the same Same/Taken/Added runs Diff assembles
// into a string, for callers (such as cmd/fuzzyserver) that want the
// structured pieces rather than the rendered text.
func (r Result) Chunks() []diffrender.Chunk {
	return diffrender.Chunks(toTraceSteps(r.Trace))
}

// Option configures a Solve/SolveRegex call.
type Option func(*config.Config)

// WithMaxSteps overrides the solver's step budget.
func WithMaxSteps(n int) Option {
	return func(c *config.Config) { c.MaxSteps = n }
}

// WithNodeStoreBacking overrides the node-store backing selection.
func WithNodeStoreBacking(b config.Backing) Option {
	return func(c *config.Config) { c.NodeStore = b }
}

// WithPrefilter enables or disables the Aho-Corasick literal short-circuit.
func WithPrefilter(enabled bool) Option {
	return func(c *config.Config) { c.Prefilter = enabled }
}

// SolveRegex parses pattern as a regular expression and solves it against
// text. See Solve for the semantics of the result.
func SolveRegex(pattrn string, text string, opts ...Option) (Result, error) {
	re, err := syntax.Parse(pattrn, syntax.Perl)
	if err != nil {
		if serr, ok := err.(*syntax.Error); ok {
			return Result{}, &fuzzyerr.ParseError{Pattern: pattrn, Err: serr}
		}
		return Result{}, &fuzzyerr.ParseError{Pattern: pattrn, Err: &syntax.Error{Code: syntax.ErrInternalError, Expr: pattrn}}
	}
	ast, err := pattern.FromSyntax(re)
	if err != nil {
		return Result{}, err
	}
	return Solve(ast, text, opts...)
}

// Solve computes the minimum-edit alignment between ast and text.
func Solve(ast pattern.AST, text string, opts ...Option) (Result, error) {
	cfg := config.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	core, err := pattern.Desugar(ast)
	if err != nil {
		return Result{}, err
	}
	atoms := pattern.NewAtoms(text)

	if cfg.Prefilter {
		if pf, ok := prefilter.Build(core); ok {
			if m, found := pf.TryExact(atoms); found {
				return exactResult(atoms, m), nil
			}
		}
	}

	flat := flatpattern.Flatten(core)
	table := lattice.NewTable(flat, atoms)

	var store nodestore.Store
	switch cfg.ResolveBacking(len(flat.Instrs), len(atoms.Runes)+1) {
	case config.BackingDense:
		store = nodestore.NewDense(len(flat.Instrs), len(atoms.Runes)+1)
	default:
		store = nodestore.NewSparse()
	}

	start := table.Start()
	score, err := solver.Solve(table, store, start, cfg.MaxSteps)
	if err != nil {
		return Result{}, err
	}
	steps, err := trace.Reconstruct(table, flat, atoms, store, start)
	if err != nil {
		return Result{}, err
	}

	result := Result{Score: score, Trace: make([]Step, len(steps))}
	for i, s := range steps {
		result.Trace[i] = Step{Kind: fromLatticeKind(s.Kind), Rune: s.Rune}
	}
	return result, nil
}

// exactResult builds the trivial trace for a prefilter-confirmed exact
// occurrence: skip up to the match, hit every atom within it, skip the rest.
func exactResult(atoms pattern.Atoms, m prefilter.Match) Result {
	var steps []Step
	for i := 0; i < m.Start; i++ {
		steps = append(steps, Step{Kind: SkipText, Rune: atoms.Runes[i]})
	}
	for i := m.Start; i < m.End; i++ {
		steps = append(steps, Step{Kind: Hit, Rune: atoms.Runes[i]})
	}
	for i := m.End; i < len(atoms.Runes); i++ {
		steps = append(steps, Step{Kind: SkipText, Rune: atoms.Runes[i]})
	}
	return Result{Score: len(atoms.Runes) - (m.End - m.Start), Trace: steps}
}
