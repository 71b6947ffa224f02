package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlens/classlens/cycle/internal/walk"
	"github.com/classlens/classlens/diagram"
)

func newClass(t *testing.T, id string) *diagram.Class {
	t.Helper()
	c, err := diagram.NewClass(id, id, false, nil)
	require.NoError(t, err)
	return c
}

func TestFindCyclesSimpleTriangle(t *testing.T) {
	a, b, c := newClass(t, "a"), newClass(t, "b"), newClass(t, "c")
	edges := map[*diagram.Class][]*diagram.Class{
		a: {b},
		b: {c},
		c: {a},
	}
	cycles := walk.FindCycles(a, func(cls *diagram.Class) []*diagram.Class { return edges[cls] })
	require.Len(t, cycles, 1)
	assert.Equal(t, []*diagram.Class{a, b, c}, cycles[0])
}

func TestFindCyclesNoCycle(t *testing.T) {
	a, b := newClass(t, "a"), newClass(t, "b")
	edges := map[*diagram.Class][]*diagram.Class{a: {b}}
	cycles := walk.FindCycles(a, func(cls *diagram.Class) []*diagram.Class { return edges[cls] })
	assert.Empty(t, cycles)
}

func TestFindCyclesSelfLoop(t *testing.T) {
	a := newClass(t, "a")
	edges := map[*diagram.Class][]*diagram.Class{a: {a}}
	cycles := walk.FindCycles(a, func(cls *diagram.Class) []*diagram.Class { return edges[cls] })
	require.Len(t, cycles, 1)
	assert.Equal(t, []*diagram.Class{a}, cycles[0])
}
