// Package diag implements the compiler's structured diagnostic subsystem: a
// buffer of severity-tagged, positioned messages with parent/child nesting,
// queryable after the fact and renderable to a capability-negotiated sink.
package diag

import (
	"fmt"
	"strings"

	"github.com/forgelang/forge/internal/source"
)

// Severity orders a diagnostic's importance. The ordering matches the
// console logger this subsystem is grounded on: higher severities are
// louder, and only error-or-above counts toward a non-zero process exit.
type Severity int

const (
	Debug Severity = iota
	Note
	Warning
	Error
	Fatal
	Internal
)

// String renders the severity the way it appears in a rendered message
// header, e.g. "error", "internal error".
func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal error"
	case Internal:
		return "internal error"
	default:
		return "unknown"
	}
}

// IsErrorOrAbove reports whether s should cause a non-zero process exit.
func (s Severity) IsErrorOrAbove() bool { return s >= Error }

// Handle identifies a message within a Buffer. Zero is never a valid handle.
type Handle int

// Message is a single structured diagnostic: severity, an optional stable
// code, source range, text, and any attached child notes.
type Message struct {
	Severity Severity
	Code     string // e.g. "ET-6"; empty for uncoded messages
	Range    source.Range
	Text     string
	Children []Handle

	// OriginFile/OriginLine name the compiler's own source location that
	// emitted the message. They are only rendered for Debug and Internal
	// severities, matching the original console logger's behavior of
	// surfacing its own call site exclusively for messages that describe a
	// compiler-internal condition.
	OriginFile string
	OriginLine int
}

// Buffer holds messages in emission order and keeps running severity
// counters. It owns every Message handed out through Handle.
type Buffer struct {
	messages []Message
	counts   [Internal + 1]int
}

// NewBuffer returns an empty diagnostic buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// mustValidText panics (an internal invariant violation, never reachable
// from well-formed caller input) if text violates the message-text
// invariant from the data model: non-empty, starts with an uppercase
// letter, and does not end in '.', ',', ':', '\n', or a space.
func mustValidText(text string) {
	if text == "" {
		panic("diag: message text must not be empty")
	}
	r := rune(text[0])
	if r < 'A' || r > 'Z' {
		panic("diag: message text must start with an uppercase letter: " + text)
	}
	switch text[len(text)-1] {
	case '.', ',', ':', '\n', ' ':
		panic("diag: message text must not end in punctuation or whitespace: " + text)
	}
}

// Emit appends a new top-level message to the buffer and returns a handle
// to it. code may be empty for messages that have no stable external tag
// (internal-only diagnostics, samples without a catalog entry).
func (b *Buffer) Emit(severity Severity, code string, rng source.Range, text string) Handle {
	mustValidText(text)
	b.messages = append(b.messages, Message{
		Severity: severity,
		Code:     code,
		Range:    rng,
		Text:     text,
	})
	b.counts[severity]++
	return Handle(len(b.messages))
}

// Emitf is Emit with fmt.Sprintf-style formatting of text.
func (b *Buffer) Emitf(severity Severity, code string, rng source.Range, format string, args ...interface{}) Handle {
	return b.Emit(severity, code, rng, fmt.Sprintf(format, args...))
}

// EmitChild attaches a note under parent. Only Note severity is permitted
// for children; anything else is an internal invariant violation (the
// original source's frg_message_emit_child enforces the same restriction).
func (b *Buffer) EmitChild(parent Handle, text string) Handle {
	if !b.validHandle(parent) {
		panic("diag: invalid parent handle")
	}
	mustValidText(text)
	b.messages = append(b.messages, Message{
		Severity: Note,
		Range:    source.Null,
		Text:     text,
	})
	b.counts[Note]++
	child := Handle(len(b.messages))
	idx := int(parent) - 1
	b.messages[idx].Children = append(b.messages[idx].Children, child)
	return child
}

// EmitChildf is EmitChild with fmt.Sprintf-style formatting.
func (b *Buffer) EmitChildf(parent Handle, format string, args ...interface{}) Handle {
	return b.EmitChild(parent, fmt.Sprintf(format, args...))
}

func (b *Buffer) validHandle(h Handle) bool {
	return h >= 1 && int(h) <= len(b.messages)
}

// Get returns the message for h. ok is false for an invalid handle.
func (b *Buffer) Get(h Handle) (Message, bool) {
	if !b.validHandle(h) {
		return Message{}, false
	}
	return b.messages[h-1], true
}

// Len returns the number of top-level and child messages in the buffer.
func (b *Buffer) Len() int { return len(b.messages) }

// Count returns the running count of messages at exactly severity.
func (b *Buffer) Count(severity Severity) int { return b.counts[severity] }

// Warnings returns the running warning counter.
func (b *Buffer) Warnings() int { return b.counts[Warning] }

// Errors returns the running count of error-or-above messages.
func (b *Buffer) Errors() int {
	n := 0
	for s := Error; s <= Internal; s++ {
		n += b.counts[s]
	}
	return n
}

// HasErrors reports whether any error-or-above diagnostic has been emitted.
func (b *Buffer) HasErrors() bool { return b.Errors() > 0 }

// Query describes a predicate over messages; any zero-valued field is
// treated as "don't care" (Severity uses HasSeverity to disambiguate from
// the valid zero severity Debug).
type Query struct {
	HasSeverity bool
	Severity    Severity
	Code        string // exact match; empty means don't care
	Text        string // exact match; empty means don't care
	Line        int    // exact match; zero means don't care
	File        source.FileID
}

func (q Query) matches(m Message) bool {
	if q.HasSeverity && m.Severity != q.Severity {
		return false
	}
	if q.Code != "" && m.Code != q.Code {
		return false
	}
	if q.Text != "" && m.Text != q.Text {
		return false
	}
	if q.Line != 0 && m.Range.Start.Line != q.Line {
		return false
	}
	if q.File != 0 && m.Range.Start.File != q.File {
		return false
	}
	return true
}

// Find returns the handles of every top-level message matching q, in
// emission order. Child notes are not matched directly; query their parent
// and inspect Children.
func (b *Buffer) Find(q Query) []Handle {
	isChild := make(map[Handle]bool)
	for _, m := range b.messages {
		for _, c := range m.Children {
			isChild[c] = true
		}
	}
	var out []Handle
	for i, m := range b.messages {
		h := Handle(i + 1)
		if !isChild[h] && q.matches(m) {
			out = append(out, h)
		}
	}
	return out
}

// Summary renders the final "compiled with N warning(s) and M error(s)"
// line, pluralized.
func (b *Buffer) Summary() string {
	w, e := b.Count(Warning), b.Errors()
	return fmt.Sprintf("compiled with %d %s and %d %s", w, plural(w, "warning"), e, plural(e, "error"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// dump is an internal, order-preserving text rendering used by tests; it is
// intentionally independent of the colorized Render path in render.go.
func (b *Buffer) dump() string {
	var sb strings.Builder
	for i, m := range b.messages {
		fmt.Fprintf(&sb, "%d: %s", i+1, m.Severity)
		if m.Code != "" {
			fmt.Fprintf(&sb, "[%s]", m.Code)
		}
		fmt.Fprintf(&sb, ": %s\n", m.Text)
	}
	return sb.String()
}
