package diagram_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlens/classlens/diagram"
)

func mustClass(t *testing.T, d *diagram.Diagram, id, name string) *diagram.Class {
	t.Helper()
	c, err := diagram.NewClass(id, name, false, nil)
	require.NoError(t, err)
	d.AddClass(c)
	return c
}

func TestDiagramClassLookupMiss(t *testing.T) {
	d := diagram.New()
	_, err := d.Class("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagram.ErrNoSuchElement))
}

func TestDiagramClassesInsertionOrder(t *testing.T) {
	d := diagram.New()
	a := mustClass(t, d, "1", "A")
	b := mustClass(t, d, "2", "B")

	var got []*diagram.Class
	for c := range d.Classes(false) {
		got = append(got, c)
	}
	require.Equal(t, []*diagram.Class{a, b}, got)
}

func TestDiagramClassesExcludesInterfaces(t *testing.T) {
	d := diagram.New()
	iface, err := diagram.NewClass("1", "Shape", false, nil)
	require.NoError(t, err)
	st, err := diagram.NewStereotype("s1", "Interface")
	require.NoError(t, err)
	iface.AddStereotype(st)
	d.AddClass(iface)
	concrete := mustClass(t, d, "2", "Circle")

	var got []*diagram.Class
	for c := range d.Classes(true) {
		got = append(got, c)
	}
	assert.Equal(t, []*diagram.Class{concrete}, got)
	assert.True(t, iface.IsInterface())
}

func TestDiagramGeneralizationQueries(t *testing.T) {
	d := diagram.New()
	base := mustClass(t, d, "1", "Animal")
	dog := mustClass(t, d, "2", "Dog")

	rel, err := diagram.NewRelationship("r1", diagram.GeneralizationKind, dog, base)
	require.NoError(t, err)
	d.AddRelationship(rel)

	assert.True(t, d.IsSubClass(dog, base))
	assert.False(t, d.IsSubClass(base, dog))
	assert.True(t, d.HasSubClasses(base))
	assert.True(t, d.HasSuperClasses(dog))
	assert.False(t, d.HasSuperClasses(base))

	var subs []*diagram.Class
	for c := range d.SubClasses(base) {
		subs = append(subs, c)
	}
	assert.Equal(t, []*diagram.Class{dog}, subs)

	assert.Equal(t, 1, d.InheritanceDepth(dog))
	assert.Equal(t, 0, d.InheritanceDepth(base))
}

func TestDiagramRealizationQueries(t *testing.T) {
	d := diagram.New()
	iface, err := diagram.NewClass("1", "Shape", false, nil)
	require.NoError(t, err)
	st, err := diagram.NewStereotype("s1", "Interface")
	require.NoError(t, err)
	iface.AddStereotype(st)
	d.AddClass(iface)
	circle := mustClass(t, d, "2", "Circle")

	rel, err := diagram.NewRelationship("r1", diagram.RealizationKind, circle, iface)
	require.NoError(t, err)
	d.AddRelationship(rel)

	assert.True(t, d.IsRealization(circle, iface))
	assert.True(t, d.HasRealizations(iface))

	var impls []*diagram.Class
	for c := range d.Realizations(iface) {
		impls = append(impls, c)
	}
	assert.Equal(t, []*diagram.Class{circle}, impls)

	var ifaces []*diagram.Class
	for c := range d.Interfaces(circle) {
		ifaces = append(ifaces, c)
	}
	assert.Equal(t, []*diagram.Class{iface}, ifaces)
}

func TestDiagramLeafClasses(t *testing.T) {
	d := diagram.New()
	base := mustClass(t, d, "1", "Animal")
	dog := mustClass(t, d, "2", "Dog")
	loner := mustClass(t, d, "3", "Loner")

	rel, err := diagram.NewRelationship("r1", diagram.GeneralizationKind, dog, base)
	require.NoError(t, err)
	d.AddRelationship(rel)

	var leaves []*diagram.Class
	for c := range d.LeafClasses(false) {
		leaves = append(leaves, c)
	}
	assert.ElementsMatch(t, []*diagram.Class{dog, loner}, leaves)

	var strict []*diagram.Class
	for c := range d.LeafClasses(true) {
		strict = append(strict, c)
	}
	assert.Equal(t, []*diagram.Class{dog}, strict)
}

func TestDiagramAssociationEndpoints(t *testing.T) {
	d := diagram.New()
	car := mustClass(t, d, "1", "Car")
	wheel := mustClass(t, d, "2", "Wheel")

	assoc, err := diagram.NewAssociation("a1", diagram.Composited, car, wheel, diagram.One, diagram.N)
	require.NoError(t, err)
	d.AddRelationship(assoc)

	assert.Equal(t, "Composition", assoc.Name())
	assert.True(t, assoc.AggregationType().IsAggregated())

	var related []*diagram.Class
	for c := range d.AssociatedClasses(car, diagram.LHS, nil) {
		related = append(related, c)
	}
	assert.Equal(t, []*diagram.Class{wheel}, related)
}

func TestDiagramDependencies(t *testing.T) {
	d := diagram.New()
	client := mustClass(t, d, "1", "Client")
	service := mustClass(t, d, "2", "Service")

	rel, err := diagram.NewRelationship("r1", diagram.DependencyKind, client, service)
	require.NoError(t, err)
	d.AddRelationship(rel)

	var deps []*diagram.Class
	for c := range d.Dependencies(client, nil) {
		deps = append(deps, c)
	}
	assert.Equal(t, []*diagram.Class{service}, deps)

	var dependants []*diagram.Class
	for c := range d.Dependants(service) {
		dependants = append(dependants, c)
	}
	assert.Equal(t, []*diagram.Class{client}, dependants)
}

func TestDiagramMethodsTransitive(t *testing.T) {
	d := diagram.New()
	base := mustClass(t, d, "1", "Animal")
	m, err := diagram.NewMethod("m1", "speak", diagram.Instance, false)
	require.NoError(t, err)
	base.AddMethod(m)

	dog := mustClass(t, d, "2", "Dog")
	rel, err := diagram.NewRelationship("r1", diagram.GeneralizationKind, dog, base)
	require.NoError(t, err)
	d.AddRelationship(rel)

	var names []string
	for meth := range d.Methods(dog) {
		names = append(names, meth.Name())
	}
	assert.Equal(t, []string{"speak"}, names)
}

func TestDiagramAncestorsDiamond(t *testing.T) {
	d := diagram.New()
	root := mustClass(t, d, "1", "Root")
	left := mustClass(t, d, "2", "Left")
	right := mustClass(t, d, "3", "Right")
	bottom := mustClass(t, d, "4", "Bottom")

	for _, rel := range [][2]*diagram.Class{{left, root}, {right, root}, {bottom, left}, {bottom, right}} {
		r, err := diagram.NewRelationship("r-"+rel[0].Identifier()+"-"+rel[1].Identifier(), diagram.GeneralizationKind, rel[0], rel[1])
		require.NoError(t, err)
		d.AddRelationship(r)
	}

	var ancestors []*diagram.Class
	for c := range d.Ancestors(bottom) {
		ancestors = append(ancestors, c)
	}
	// root is reachable through both left and right: diamond inheritance
	// yields it twice, matching the recursive definition.
	assert.ElementsMatch(t, []*diagram.Class{left, right, root, root}, ancestors)
}
