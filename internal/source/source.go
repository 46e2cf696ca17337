// Package source records the files a compilation pulls source text from and
// resolves byte ranges back to the substrings and line/column pairs that
// diagnostics render against.
package source

import (
	"fmt"
	"strings"
)

// FileID identifies a file registered with a Map. The zero value never
// names a registered file.
type FileID int

// Position is a single point in a source file. Line and Column are 1-based;
// zero means "absent" (used by synthetic nodes that carry no real position).
type Position struct {
	File   FileID
	Offset int
	Line   int
	Column int
}

// IsZero reports whether p carries no real position.
func (p Position) IsZero() bool { return p.Line == 0 }

// Range is a half-open interval of bytes in a source file, anchored at a
// starting Position.
type Range struct {
	Start  Position
	Length int
}

// Null is the canonical empty range carried by synthetic AST nodes.
// Diagnostics built from a Null range render no source sample.
var Null = Range{}

// IsNull reports whether r is the canonical null range.
func (r Range) IsNull() bool { return r == Null }

// End returns the position immediately after the range, on the same line as
// Start. Ranges never span a newline in this core (multi-line sample
// rendering is a rendering detail, not a range concept).
func (r Range) End() Position {
	end := r.Start
	end.Offset += r.Length
	end.Column += r.Length
	return end
}

type file struct {
	name string
	text string
	// lineOffsets[i] is the byte offset at which line i+1 begins.
	lineOffsets []int
}

// Map records registered files and answers position/substring queries
// against them. A Map owns the file contents for its lifetime; Ranges and
// Positions handed out are non-owning views keyed by FileID.
type Map struct {
	files []*file
}

// New returns an empty source map.
func New() *Map {
	return &Map{}
}

// AddFile registers a file's full text under name and returns its FileID.
// Lines are computed eagerly so Position lookups never fail later.
func (m *Map) AddFile(name, text string) FileID {
	f := &file{name: name, text: text, lineOffsets: computeLineOffsets(text)}
	m.files = append(m.files, f)
	return FileID(len(m.files))
}

func computeLineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func (m *Map) file(id FileID) (*file, bool) {
	if id <= 0 || int(id) > len(m.files) {
		return nil, false
	}
	return m.files[id-1], true
}

// FileName returns the registered name for id, or "" if id is unknown.
func (m *Map) FileName(id FileID) string {
	f, ok := m.file(id)
	if !ok {
		return ""
	}
	return f.name
}

// Position computes the line/column for a byte offset within file id.
func (m *Map) Position(id FileID, offset int) Position {
	f, ok := m.file(id)
	if !ok {
		return Position{}
	}
	line := lineForOffset(f.lineOffsets, offset)
	col := offset - f.lineOffsets[line-1] + 1
	return Position{File: id, Offset: offset, Line: line, Column: col}
}

func lineForOffset(lineOffsets []int, offset int) int {
	lo, hi := 0, len(lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// Substring resolves (file_id, offset, length) back to the source text it
// covers. The second return is false if the file is unknown or the range
// falls outside its text.
func (m *Map) Substring(id FileID, offset, length int) (string, bool) {
	f, ok := m.file(id)
	if !ok || offset < 0 || offset+length > len(f.text) {
		return "", false
	}
	return f.text[offset : offset+length], true
}

// Line returns the full text of the given 1-based line number in file id,
// with any trailing newline stripped.
func (m *Map) Line(id FileID, line int) (string, bool) {
	f, ok := m.file(id)
	if !ok || line < 1 || line > len(f.lineOffsets) {
		return "", false
	}
	start := f.lineOffsets[line-1]
	end := len(f.text)
	if line < len(f.lineOffsets) {
		end = f.lineOffsets[line] - 1
	}
	if end > start && f.text[end-1] == '\n' {
		end--
	}
	return f.text[start:end], true
}

// RangeText resolves a Range to the substring it covers, using the file
// named in its Start position.
func (m *Map) RangeText(r Range) (string, bool) {
	if r.IsNull() {
		return "", false
	}
	return m.Substring(r.Start.File, r.Start.Offset, r.Length)
}

// String renders a position as "path:line:col" for diagnostic headers.
func (p Position) String(m *Map) string {
	name := "<unknown>"
	if m != nil {
		if n := m.FileName(p.File); n != "" {
			name = n
		}
	}
	if p.IsZero() {
		return name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// Underline returns a carat string of the given width, using ch as the
// underline glyph, suitable for printing beneath a source sample.
func Underline(width int, ch rune) string {
	if width < 1 {
		width = 1
	}
	return strings.Repeat(string(ch), width)
}
