package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/forgelang/forge/internal/source"
)

// Sink is a text stream with two negotiated capability bits, matching the
// output-sink contract in the spec's external interfaces section: does it
// support ANSI color, and does it support non-ASCII glyphs (so the carat
// underline can use '▔' instead of falling back to '^').
type Sink struct {
	w       io.Writer
	color   bool
	unicode bool
}

// NewSink negotiates capability bits for w from the process environment,
// the way a CLI collaborator would before handing control to the core.
// Non-file writers (buffers, in test) are treated as non-interactive: color
// and unicode default to false unless ForceColor/ForceUnicode are applied.
func NewSink(w io.Writer) *Sink {
	s := &Sink{w: w}
	if f, ok := w.(*os.File); ok {
		s.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		s.unicode = s.color && termenv.NewOutput(f).Profile != termenv.Ascii
	}
	return s
}

// ForceColor overrides the negotiated color capability, for explicit
// --color=always/never style collaborators.
func (s *Sink) ForceColor(v bool) *Sink { s.color = v; return s }

// ForceUnicode overrides the negotiated unicode glyph capability.
func (s *Sink) ForceUnicode(v bool) *Sink { s.unicode = v; return s }

var severityStyle = map[Severity]lipgloss.Style{
	Debug:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),                     // bright black
	Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),          // magenta
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),         // bright yellow
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),          // red
	Fatal:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Underline(true),
	Internal: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),          // cyan
}

func (s *Sink) style(sev Severity) lipgloss.Style {
	st := severityStyle[sev]
	if !s.color {
		return st.UnsetForeground().UnsetBold().UnsetUnderline()
	}
	return st
}

func (s *Sink) caratGlyph() rune {
	if s.unicode {
		return '▔'
	}
	return '^'
}

// Render prints every top-level message in the buffer, in emission order,
// to the sink, each followed by its child notes indented beneath it. If sm
// is nil, source samples are omitted and a warning line is printed first
// explaining why. The final summary line and a non-zero-worthy error count
// are not printed here; callers drive process exit from b.Errors().
func Render(b *Buffer, s *Sink, sm *source.Map) {
	if sm == nil {
		st := s.style(Warning)
		fmt.Fprintln(s.w, st.Render("warning: no source map supplied; samples omitted"))
	}
	isChild := make(map[Handle]bool)
	for _, m := range b.messages {
		for _, c := range m.Children {
			isChild[c] = true
		}
	}
	for i := range b.messages {
		h := Handle(i + 1)
		if isChild[h] {
			continue
		}
		m := b.messages[i]
		renderOne(s, sm, b, h, m, 0)
	}
}

func renderOne(s *Sink, sm *source.Map, b *Buffer, h Handle, m Message, indent int) {
	gutter := strings.Repeat("  ", indent)

	if m.Severity == Debug || m.Severity == Internal {
		if m.OriginFile != "" {
			origin := s.style(Debug).Render(fmt.Sprintf("%s[%s:%d]", gutter, m.OriginFile, m.OriginLine))
			fmt.Fprintln(s.w, origin)
		}
	}

	loc := m.Range.Start.String(sm)
	header := fmt.Sprintf("%s%s: ", gutter, loc)
	sevText := m.Severity.String()
	if m.Code != "" {
		sevText = fmt.Sprintf("%s[%s]", sevText, m.Code)
	}
	header += s.style(m.Severity).Render(sevText) + " " + m.Text
	fmt.Fprintln(s.w, header)

	if sm != nil && !m.Range.IsNull() {
		renderSample(s, sm, m.Range, m.Severity, gutter)
	}

	for _, childHandle := range m.Children {
		child, ok := b.Get(childHandle)
		if !ok {
			continue
		}
		renderOne(s, sm, b, childHandle, child, indent+1)
	}
}

func renderSample(s *Sink, sm *source.Map, rng source.Range, sev Severity, gutter string) {
	line, ok := sm.Line(rng.Start.File, rng.Start.Line)
	if !ok {
		return
	}
	lineNoWidth := len(fmt.Sprintf("%d", rng.Start.Line))
	fmt.Fprintf(s.w, "%s%*d | %s\n", gutter, lineNoWidth, rng.Start.Line, line)

	col := rng.Start.Column - 1
	if col < 0 {
		col = 0
	}
	prefixWidth := runewidth.StringWidth(safeSlice(line, col))
	carWidth := runewidth.StringWidth(safeSlice(line, col, col+rng.Length))
	if carWidth < 1 {
		carWidth = 1
	}
	pad := strings.Repeat(" ", lineNoWidth) + gutter
	underline := source.Underline(carWidth, s.caratGlyph())
	fmt.Fprintf(s.w, "%s | %s%s\n", pad, strings.Repeat(" ", prefixWidth), s.style(sev).Render(underline))
}

// safeSlice returns line[from:to] (or line[from:] with a single arg) in
// bytes, clamped to the line's bounds, to guard against ranges whose
// reported length runs past a short or truncated sample line.
func safeSlice(line string, bounds ...int) string {
	from := 0
	to := len(line)
	if len(bounds) > 0 {
		from = bounds[0]
	}
	if len(bounds) > 1 {
		to = bounds[1]
	}
	if from < 0 {
		from = 0
	}
	if from > len(line) {
		from = len(line)
	}
	if to > len(line) {
		to = len(line)
	}
	if to < from {
		to = from
	}
	return line[from:to]
}
