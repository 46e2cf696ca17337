package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/source"
)

// Vectors below are taken directly from the original compiler's
// type_operations_test.c (frg_verification_get_numeric_containing_type),
// which this module's contain() reimplements.

func TestContainNonNumericFails(t *testing.T) {
	a := ast.NewTypeBool(source.Null)
	b := ast.NewTypeSymbol("b", source.Null)
	_, ok := contain(a, b)
	assert.False(t, ok)
}

func TestContainNonNumericAndNumericFails(t *testing.T) {
	a := ast.NewTypeBool(source.Null)
	b := ast.NewTypeInt(true, 32, source.Null)
	_, ok := contain(a, b)
	assert.False(t, ok)
}

func TestContainIntSameWidth(t *testing.T) {
	a := ast.NewTypeInt(true, 8, source.Null)
	b := ast.NewTypeInt(true, 8, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.Equal(t, 8, result.BitWidth())
	assert.True(t, result.Signed())
}

func TestContainIntSameSignednessWidensToLarger(t *testing.T) {
	a := ast.NewTypeInt(true, 8, source.Null)
	b := ast.NewTypeInt(true, 64, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.Equal(t, 64, result.BitWidth())
	assert.True(t, result.Signed())
}

func TestContainIntMixedSignednessDoublesWidth(t *testing.T) {
	a := ast.NewTypeInt(true, 8, source.Null)
	b := ast.NewTypeInt(false, 32, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.Equal(t, ast.KindTypeInt, result.Kind())
	assert.True(t, result.Signed())
	assert.Equal(t, 64, result.BitWidth())
}

func TestContainIntMixedSignednessOperandOrderDoesNotMatter(t *testing.T) {
	a := ast.NewTypeInt(false, 32, source.Null)
	b := ast.NewTypeInt(true, 8, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.True(t, result.Signed())
	assert.Equal(t, 64, result.BitWidth())
}

func TestContainIntUnsigned64FallsBackToFloat64(t *testing.T) {
	a := ast.NewTypeInt(true, 8, source.Null)
	b := ast.NewTypeInt(false, 64, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.Equal(t, ast.KindTypeFloat, result.Kind())
	assert.Equal(t, 64, result.BitWidth())
}

func TestContainFloatSameWidth(t *testing.T) {
	a := ast.NewTypeFloat(32, source.Null)
	b := ast.NewTypeFloat(32, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.Equal(t, 32, result.BitWidth())
}

func TestContainFloatWidensToLarger(t *testing.T) {
	a := ast.NewTypeFloat(32, source.Null)
	b := ast.NewTypeFloat(64, source.Null)
	result, ok := contain(a, b)
	require.True(t, ok)
	assert.Equal(t, 64, result.BitWidth())
}

func TestContainIntFloatSignedSmallStaysAtFloatWidth(t *testing.T) {
	i := ast.NewTypeInt(true, 8, source.Null)
	f := ast.NewTypeFloat(32, source.Null)
	result, ok := contain(i, f)
	require.True(t, ok)
	assert.Equal(t, ast.KindTypeFloat, result.Kind())
	assert.Equal(t, 32, result.BitWidth())
}

func TestContainIntFloatSigned32StaysAt32(t *testing.T) {
	i := ast.NewTypeInt(true, 32, source.Null)
	f := ast.NewTypeFloat(32, source.Null)
	result, ok := contain(i, f)
	require.True(t, ok)
	assert.Equal(t, 32, result.BitWidth())
}

func TestContainIntFloatUnsigned32EscalatesTo64(t *testing.T) {
	i := ast.NewTypeInt(false, 32, source.Null)
	f := ast.NewTypeFloat(32, source.Null)
	result, ok := contain(i, f)
	require.True(t, ok)
	assert.Equal(t, 64, result.BitWidth())
}

func TestContainIntFloatSigned64EscalatesTo64(t *testing.T) {
	i := ast.NewTypeInt(true, 64, source.Null)
	f := ast.NewTypeFloat(32, source.Null)
	result, ok := contain(i, f)
	require.True(t, ok)
	assert.Equal(t, 64, result.BitWidth())
}

func TestContainIntFloatOperandOrderDoesNotMatter(t *testing.T) {
	i := ast.NewTypeInt(false, 32, source.Null)
	f := ast.NewTypeFloat(32, source.Null)
	result, ok := contain(f, i)
	require.True(t, ok)
	assert.Equal(t, 64, result.BitWidth())
}
