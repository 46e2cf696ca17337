package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelang/forge/internal/source"
)

func TestEmitAndGet(t *testing.T) {
	b := NewBuffer()
	h := b.Emit(Error, "ET-1", source.Null, "Symbol 'x' must be declared")

	msg, ok := b.Get(h)
	require.True(t, ok)
	assert.Equal(t, Error, msg.Severity)
	assert.Equal(t, "ET-1", msg.Code)
	assert.Equal(t, 1, b.Count(Error))
	assert.Equal(t, 1, b.Errors())
	assert.True(t, b.HasErrors())
}

func TestEmitfFormats(t *testing.T) {
	b := NewBuffer()
	h := b.Emitf(Error, "ET-3", source.Null, "Cannot call non-function type '%s'", "i32")
	msg, _ := b.Get(h)
	assert.Equal(t, "Cannot call non-function type 'i32'", msg.Text)
}

func TestEmitChildRequiresNoteSeverity(t *testing.T) {
	b := NewBuffer()
	parent := b.Emit(Warning, "", source.Null, "Unused declaration")
	child := b.EmitChild(parent, "Declared here")

	msg, _ := b.Get(parent)
	require.Len(t, msg.Children, 1)
	assert.Equal(t, child, msg.Children[0])

	childMsg, ok := b.Get(child)
	require.True(t, ok)
	assert.Equal(t, Note, childMsg.Severity)
}

func TestEmitChildInvalidParentPanics(t *testing.T) {
	b := NewBuffer()
	assert.Panics(t, func() {
		b.EmitChild(Handle(42), "Orphan note")
	})
}

func TestMustValidTextInvariant(t *testing.T) {
	b := NewBuffer()
	assert.Panics(t, func() { b.Emit(Error, "", source.Null, "") })
	assert.Panics(t, func() { b.Emit(Error, "", source.Null, "lowercase start") })
	assert.Panics(t, func() { b.Emit(Error, "", source.Null, "Trailing period.") })
	assert.NotPanics(t, func() { b.Emit(Error, "", source.Null, "Well formed message") })
}

func TestSeverityOrderingAndExitWorthiness(t *testing.T) {
	assert.False(t, Warning.IsErrorOrAbove())
	assert.True(t, Error.IsErrorOrAbove())
	assert.True(t, Fatal.IsErrorOrAbove())
	assert.True(t, Internal.IsErrorOrAbove())
}

func TestFindQuery(t *testing.T) {
	b := NewBuffer()
	b.Emit(Error, "ET-1", source.Range{Start: source.Position{Line: 3}}, "Symbol 'a' must be declared")
	b.Emit(Warning, "", source.Null, "Unused declaration")
	b.Emit(Error, "ET-1", source.Range{Start: source.Position{Line: 9}}, "Symbol 'b' must be declared")

	found := b.Find(Query{HasSeverity: true, Severity: Error, Code: "ET-1"})
	assert.Len(t, found, 2)

	found = b.Find(Query{Line: 9})
	require.Len(t, found, 1)
	msg, _ := b.Get(found[0])
	assert.Equal(t, "Symbol 'b' must be declared", msg.Text)
}

func TestSummaryPluralization(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, "compiled with 0 warnings and 0 errors", b.Summary())

	b.Emit(Warning, "", source.Null, "Single warning")
	b.Emit(Error, "", source.Null, "Single error")
	assert.Equal(t, "compiled with 1 warning and 1 error", b.Summary())
}
