// Package articulation turns raw persona output into render-ready sections.
//
// A reply may end with an expansion-seeds section introduced by ExpansionMarker.
// Format splits the text at the first marker; everything is derived from the
// stored raw content on every render, so nothing here is cached or persisted.
package articulation

import (
	"strings"
	"unicode"
)

// ExpansionMarker introduces the expansion-seeds section of a reply.
const ExpansionMarker = "🏛️ Timeline Expansion Seeds"

// ExpansionTitle is the marker without its icon, used as a block heading.
const ExpansionTitle = "Timeline Expansion Seeds"

// Articulated is a reply split for display.
type Articulated struct {
	// Main holds the analysis, one paragraph per source line.
	Main []string
	// Expansion holds the seed lines, or nil when the reply has no marker.
	Expansion []string
}

// HasExpansion reports whether the reply carried an expansion-seeds section.
func (a Articulated) HasExpansion() bool {
	return a.Expansion != nil
}

// Format splits raw at the first ExpansionMarker.
//
// Without a marker every line of raw becomes a paragraph, blank lines included,
// so joining Main with "\n" reproduces raw exactly. With a marker, trailing
// whitespace before it is dropped, and each seed line loses one leading bullet.
// Later markers are left in the seed text untouched.
func Format(raw string) Articulated {
	idx := strings.Index(raw, ExpansionMarker)
	if idx < 0 {
		return Articulated{Main: splitParagraphs(raw)}
	}

	var main []string
	if head := strings.TrimRightFunc(raw[:idx], unicode.IsSpace); head != "" {
		main = splitParagraphs(head)
	}

	tail := strings.TrimSpace(raw[idx+len(ExpansionMarker):])
	lines := strings.Split(tail, "\n")
	seeds := make([]string, 0, len(lines))
	for _, line := range lines {
		seeds = append(seeds, stripBullet(line))
	}

	return Articulated{Main: main, Expansion: seeds}
}

func splitParagraphs(s string) []string {
	return strings.Split(s, "\n")
}

// stripBullet removes a single leading "-", "*" or "•" and the whitespace after it.
// Indented bullets are left alone.
func stripBullet(line string) string {
	for _, bullet := range []string{"-", "*", "•"} {
		if rest, ok := strings.CutPrefix(line, bullet); ok {
			return strings.TrimLeftFunc(rest, unicode.IsSpace)
		}
	}
	return line
}

// Paragraphs flattens a reply into plain lines for non-styled output:
// the main analysis, then a heading and one "• " line per seed.
func (a Articulated) Paragraphs() []string {
	out := make([]string, 0, len(a.Main)+len(a.Expansion)+2)
	out = append(out, a.Main...)
	if !a.HasExpansion() {
		return out
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	out = append(out, ExpansionTitle)
	for _, seed := range a.Expansion {
		if seed == "" {
			out = append(out, "")
			continue
		}
		out = append(out, "• "+seed)
	}
	return out
}
