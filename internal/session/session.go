// Package session bundles the pieces a compilation run threads through
// every stage — the source map, the diagnostic buffer, and the rendering
// sink — behind one value, the way yaegi's Interpreter aggregates its
// option set, file set, universe scope, and per-file scopes instead of
// passing them as four separate parameters down every call.
package session

import (
	"io"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/diag"
	_ "github.com/forgelang/forge/internal/resolve" // registers type resolvers into the ast registry
	"github.com/forgelang/forge/internal/source"
)

// Session is the aggregate root for a single compilation: one source map,
// one diagnostic buffer, and the sink that renders it. Nothing in this
// package is safe for concurrent use from multiple goroutines, matching
// the core's single-threaded, cooperative execution model.
type Session struct {
	Sources *source.Map
	Diags   *diag.Buffer
	Sink    *diag.Sink
}

// New returns a Session with a fresh source map and diagnostic buffer,
// rendering to w.
func New(w io.Writer) *Session {
	return &Session{
		Sources: source.New(),
		Diags:   diag.NewBuffer(),
		Sink:    diag.NewSink(w),
	}
}

// AddFile registers a file's source text and returns its FileID.
func (s *Session) AddFile(name, text string) source.FileID {
	return s.Sources.AddFile(name, text)
}

// Render writes every diagnostic accumulated so far to the session's sink.
func (s *Session) Render() {
	diag.Render(s.Diags, s.Sink, s.Sources)
}

// ResolveType computes n's type under sc, appending any diagnostics to the
// session's own buffer. It exists purely as a convenience so callers driving a whole
// compilation don't need to import package resolve directly; resolve
// itself is still reached indirectly through ast.Resolver, which its
// init() populates.
func (s *Session) ResolveType(sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	fn, ok := ast.Resolver(n)
	if !ok {
		panic("session: no type resolver registered for kind " + ast.KindName(n.Kind()))
	}
	return fn(s.Diags, sc, n)
}

// ExitCode returns the process exit code a driver should use after a run:
// zero if no error-or-above diagnostic was emitted, one otherwise.
func (s *Session) ExitCode() int {
	if s.Diags.HasErrors() {
		return 1
	}
	return 0
}
