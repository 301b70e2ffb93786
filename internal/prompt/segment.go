package prompt

import "github.com/alexisbeaulieu97/powerline/internal/terminal"

// Powerline separator glyphs.
const (
	SeparatorSolid rune = '\uE0B0'
	SeparatorThin  rune = '\uE0B1'
)

// Segment is one colored chunk of the prompt. Separator is drawn after the
// text in SeparatorFG on the next segment's background; a zero Separator
// draws nothing.
type Segment struct {
	Text        string
	FG          terminal.Color
	BG          terminal.Color
	Separator   rune
	SeparatorFG terminal.Color
}

// Simple builds a segment followed by a solid separator in its own background color.
func Simple(text string, fg, bg terminal.Color) Segment {
	return Segment{Text: text, FG: fg, BG: bg, Separator: SeparatorSolid, SeparatorFG: bg}
}

// Special builds a segment with an explicit separator glyph and color.
func Special(text string, fg, bg terminal.Color, sep rune, sepFG terminal.Color) Segment {
	return Segment{Text: text, FG: fg, BG: bg, Separator: sep, SeparatorFG: sepFG}
}

// Line is the append-only output sequence shared by all modules.
type Line struct {
	segments []Segment
}

// Append adds segments at the end of the line.
func (l *Line) Append(segments ...Segment) {
	l.segments = append(l.segments, segments...)
}

// Len returns the number of segments appended so far.
func (l *Line) Len() int {
	return len(l.segments)
}

// Segments returns a copy of the segments in append order.
func (l *Line) Segments() []Segment {
	out := make([]Segment, len(l.segments))
	copy(out, l.segments)
	return out
}
