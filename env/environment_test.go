/*
File    : lox/env/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/env"
	"github.com/akashmaji946/lox/value"
)

func TestDefineAndGet(t *testing.T) {
	e := env.New(nil)
	e.Define("x", value.Number(1))

	v, err := e.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefinedReportsRuntimeError(t *testing.T) {
	e := env.New(nil)
	_, err := e.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestGetWalksEnclosingChain(t *testing.T) {
	parent := env.New(nil)
	parent.Define("x", value.Number(10))
	child := env.New(parent)

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(10), v)
}

func TestAssignMutatesInPlaceUpChain(t *testing.T) {
	parent := env.New(nil)
	parent.Define("x", value.Number(1))
	child := env.New(parent)

	require.NoError(t, child.Assign("x", value.Number(2)))

	v, err := parent.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestAssignUndefinedReportsError(t *testing.T) {
	e := env.New(nil)
	err := e.Assign("missing", value.Number(1))
	require.Error(t, err)
}

func TestShadowingDefinesInInnermostScope(t *testing.T) {
	parent := env.New(nil)
	parent.Define("x", value.Number(1))
	child := env.New(parent)
	child.Define("x", value.Number(2))

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)

	pv, err := parent.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), pv)
}

func TestGetAtAndAssignAtUseExplicitDistance(t *testing.T) {
	global := env.New(nil)
	outer := env.New(global)
	inner := env.New(outer)
	outer.Define("x", value.Number(5))

	assert.Equal(t, value.Number(5), inner.GetAt(1, "x"))

	inner.AssignAt(1, "x", value.Number(9))
	v, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(9), v)
}

func TestAncestorWalksExactDistance(t *testing.T) {
	global := env.New(nil)
	outer := env.New(global)
	inner := env.New(outer)

	assert.Same(t, outer, inner.Ancestor(1))
	assert.Same(t, global, inner.Ancestor(2))
	assert.Same(t, inner, inner.Ancestor(0))
}
