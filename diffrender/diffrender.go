// Package diffrender turns a reconstructed alignment trace into a
// git-style inline diff: literal runs that matched render as plain text,
// pattern content with no counterpart in the text renders as [-taken-],
// and text with no counterpart in the pattern renders as {+added+}.
package diffrender

import (
	"strings"

	"github.com/samroberts/fuzzygo/lattice"
	"github.com/samroberts/fuzzygo/trace"
)

// any is the placeholder rendered for a skipped pattern atom that has no
// single literal rune to show (it came from a class, not a literal).
const any = '?'

// ChunkKind identifies which case of Chunk is populated.
type ChunkKind uint8

const (
	// ChunkSame is a run of text that the pattern matched exactly.
	ChunkSame ChunkKind = iota
	// ChunkDiff is a run where pattern content was taken out, text was
	// added, or both.
	ChunkDiff
)

// Chunk is one piece of a rendered diff.
type Chunk struct {
	Kind ChunkKind

	Text string // ChunkSame

	Taken string // ChunkDiff: pattern atoms skipped, with no text counterpart
	Added string // ChunkDiff: text atoms skipped, with no pattern counterpart
}

// Chunks groups a trace into the Same/Diff runs diffrender renders.
// Capture boundaries are skipped: they have no literal content to show.
func Chunks(steps []trace.Step) []Chunk {
	var chunks []Chunk

	sameBuf := new(strings.Builder)
	takenBuf := new(strings.Builder)
	addedBuf := new(strings.Builder)

	flushSame := func() {
		if sameBuf.Len() > 0 {
			chunks = append(chunks, Chunk{Kind: ChunkSame, Text: sameBuf.String()})
			sameBuf.Reset()
		}
	}
	flushDiff := func() {
		if takenBuf.Len() > 0 || addedBuf.Len() > 0 {
			chunks = append(chunks, Chunk{Kind: ChunkDiff, Taken: takenBuf.String(), Added: addedBuf.String()})
			takenBuf.Reset()
			addedBuf.Reset()
		}
	}

	for _, s := range steps {
		switch s.Kind {
		case lattice.StepHit:
			flushDiff()
			sameBuf.WriteRune(s.Rune)
		case lattice.StepSkipText:
			flushSame()
			addedBuf.WriteRune(s.Rune)
		case lattice.StepSkipPattern:
			flushSame()
			r := s.Rune
			if r == 0 {
				r = any
			}
			takenBuf.WriteRune(r)
		case lattice.StepStartCapture, lattice.StepStopCapture:
			// No literal content; neither flush nor render.
		}
	}
	flushSame()
	flushDiff()

	return chunks
}

// Render renders a trace as a single inline diff string.
func Render(steps []trace.Step) string {
	var b strings.Builder
	for _, c := range Chunks(steps) {
		switch c.Kind {
		case ChunkSame:
			b.WriteString(c.Text)
		case ChunkDiff:
			if c.Taken != "" {
				b.WriteString("[-")
				b.WriteString(c.Taken)
				b.WriteString("-]")
			}
			if c.Added != "" {
				b.WriteString("{+")
				b.WriteString(c.Added)
				b.WriteString("+}")
			}
		}
	}
	return b.String()
}
