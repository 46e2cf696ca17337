package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/source"
)

func TestNewSessionStartsCleanWithZeroExitCode(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)
	require.NotNil(t, s.Sources)
	require.NotNil(t, s.Diags)
	require.NotNil(t, s.Sink)
	assert.Equal(t, 0, s.ExitCode())
}

func TestAddFileRegistersTextInSourceMap(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)
	fid := s.AddFile("main.frg", "fn f() {}\n")
	text, ok := s.Sources.Substring(fid, 0, 2)
	require.True(t, ok)
	assert.Equal(t, "fn", text)
}

func TestResolveTypeGoesThroughRegisteredResolvers(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)
	sc := ast.NewScope()
	lit := ast.NewValueInt(false, 8, 0, source.Null)

	typ, ok := s.ResolveType(sc, lit)
	require.True(t, ok)
	assert.Equal(t, ast.KindTypeInt, typ.Kind())
	assert.Equal(t, 8, typ.BitWidth())
	assert.Equal(t, 0, s.Diags.Len())
}

func TestResolveTypeOnUndeclaredSymbolRecordsET1AndExitCodeOne(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)
	sc := ast.NewScope()
	sym := ast.NewValueSymbol("missing", source.Null)

	_, ok := s.ResolveType(sc, sym)
	assert.False(t, ok)
	assert.Equal(t, 1, s.ExitCode())

	msg, found := s.Diags.Get(1)
	require.True(t, found)
	assert.Equal(t, "ET-1", msg.Code)
}

func TestRenderWritesToSessionSink(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)
	sc := ast.NewScope()
	s.ResolveType(sc, ast.NewValueSymbol("nope", source.Null))

	s.Render()
	assert.Contains(t, out.String(), "ET-1")
}
