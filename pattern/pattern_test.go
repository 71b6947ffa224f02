package pattern_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlens/classlens/diagram"
	"github.com/classlens/classlens/pattern"
)

func mustClass(t *testing.T, id, name string) *diagram.Class {
	t.Helper()
	c, err := diagram.NewClass(id, name, false, nil)
	require.NoError(t, err)
	return c
}

func mustInterface(t *testing.T, id, name string) *diagram.Class {
	t.Helper()
	c := mustClass(t, id, name)
	st, err := diagram.NewStereotype(id+"-iface", "Interface")
	require.NoError(t, err)
	c.AddStereotype(st)
	return c
}

func mustDependency(t *testing.T, d *diagram.Diagram, id string, from, to *diagram.Class, creational bool) {
	t.Helper()
	rel, err := diagram.NewRelationship(id, diagram.DependencyKind, from, to)
	require.NoError(t, err)
	if creational {
		st, err := diagram.NewStereotype(id+"-create", "create")
		require.NoError(t, err)
		rel.AddStereotype(st)
	}
	d.AddRelationship(rel)
}

func mustRealization(t *testing.T, d *diagram.Diagram, id string, from, to *diagram.Class) {
	t.Helper()
	rel, err := diagram.NewRelationship(id, diagram.RealizationKind, from, to)
	require.NoError(t, err)
	d.AddRelationship(rel)
}

func mustAssociation(t *testing.T, d *diagram.Diagram, id string, aggType diagram.AggType, from, to *diagram.Class, fromMult, toMult diagram.Multiplicity) {
	t.Helper()
	a, err := diagram.NewAssociation(id, aggType, from, to, fromMult, toMult)
	require.NoError(t, err)
	d.AddRelationship(a)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Singleton", pattern.Singleton.String())
	assert.Equal(t, "Factory Method", pattern.FactoryMethod.String())
	assert.Equal(t, "Abstract Factory", pattern.AbstractFactory.String())
	assert.Equal(t, "Unknown", pattern.Kind(99).String())
}

func TestNewMatchDedupesClasses(t *testing.T) {
	c := mustClass(t, "c1", "Logger")
	m := pattern.NewMatch(pattern.Singleton, []*diagram.Class{c, c}, map[string]any{"class": c})
	assert.Equal(t, pattern.Singleton, m.Kind)
	assert.Equal(t, []*diagram.Class{c}, m.Classes)
}

func TestMatchEqualIgnoresRoleOrder(t *testing.T) {
	a := mustClass(t, "a1", "Alpha")
	b := mustClass(t, "b1", "Beta")

	m1 := pattern.NewMatch(pattern.Adapter, []*diagram.Class{a, b}, nil)
	m2 := pattern.NewMatch(pattern.Adapter, []*diagram.Class{b, a}, nil)
	m3 := pattern.NewMatch(pattern.Bridge, []*diagram.Class{a, b}, nil)

	assert.True(t, m1.Equal(m2))
	assert.False(t, m1.Equal(m3))
}

func TestFinderFindIsMemoized(t *testing.T) {
	logger := mustClass(t, "c1", "Logger")
	attr, err := diagram.NewAttribute("m1", "instance", logger, diagram.ClassScope)
	require.NoError(t, err)
	logger.AddAttribute(attr)
	method, err := diagram.NewMethod("m2", "instance", diagram.ClassScope, false)
	require.NoError(t, err)
	method.SetReturnType(logger)
	logger.AddMethod(method)

	d := diagram.New()
	d.AddClass(logger)

	finder := pattern.NewFinder(d)
	first, err := finder.Find(context.Background())
	require.NoError(t, err)
	second, err := finder.Find(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFinderWithMatchersRestrictsSearch(t *testing.T) {
	logger := mustClass(t, "c1", "Logger")
	attr, err := diagram.NewAttribute("m1", "instance", logger, diagram.ClassScope)
	require.NoError(t, err)
	logger.AddAttribute(attr)

	d := diagram.New()
	d.AddClass(logger)

	finder := pattern.NewFinder(d, pattern.WithMatchers())
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFinderNoMatchesOnPlainClass(t *testing.T) {
	plain := mustClass(t, "c1", "Plain")
	d := diagram.New()
	d.AddClass(plain)

	finder := pattern.NewFinder(d)
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestInvolvedClassesDedupes(t *testing.T) {
	a := mustClass(t, "a1", "Alpha")
	b := mustClass(t, "b1", "Beta")
	matches := []pattern.Match{
		pattern.NewMatch(pattern.Adapter, []*diagram.Class{a, b}, nil),
		pattern.NewMatch(pattern.Singleton, []*diagram.Class{a}, nil),
	}
	classes := pattern.InvolvedClasses(matches)
	assert.ElementsMatch(t, []*diagram.Class{a, b}, classes)
}

func TestTypesDedupes(t *testing.T) {
	a := mustClass(t, "a1", "Alpha")
	matches := []pattern.Match{
		pattern.NewMatch(pattern.Adapter, []*diagram.Class{a}, nil),
		pattern.NewMatch(pattern.Adapter, []*diagram.Class{a}, nil),
		pattern.NewMatch(pattern.Singleton, []*diagram.Class{a}, nil),
	}
	assert.ElementsMatch(t, []pattern.Kind{pattern.Adapter, pattern.Singleton}, pattern.Types(matches))
}

// S1: Interface I with realizations A and B; A has a non-creational
// dependency on B; B has no outgoing edges. One Adapter(I, A, B); no
// other pattern.
func TestScenarioS1Adapter(t *testing.T) {
	d := diagram.New()
	i := mustInterface(t, "i", "I")
	a := mustClass(t, "a", "A")
	b := mustClass(t, "b", "B")
	d.AddClass(i)
	d.AddClass(a)
	d.AddClass(b)
	mustRealization(t, d, "r1", a, i)
	mustRealization(t, d, "r2", b, i)
	mustDependency(t, d, "dep1", a, b, false)

	finder := pattern.NewFinder(d)
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, pattern.Adapter, matches[0].Kind)
	assert.Equal(t, i, matches[0].Fields["target"])
	assert.Equal(t, a, matches[0].Fields["adapter"])
	assert.Equal(t, b, matches[0].Fields["adaptee"])
}

// S2: Class C with class-scope attribute instance:C and class-scope
// parameterless method returning C. One Singleton(C, attribute, method).
func TestScenarioS2Singleton(t *testing.T) {
	d := diagram.New()
	c := mustClass(t, "c", "C")
	attr, err := diagram.NewAttribute("attr1", "instance", c, diagram.ClassScope)
	require.NoError(t, err)
	c.AddAttribute(attr)
	method, err := diagram.NewMethod("m1", "getInstance", diagram.ClassScope, false)
	require.NoError(t, err)
	method.SetReturnType(c)
	c.AddMethod(method)
	d.AddClass(c)

	finder := pattern.NewFinder(d)
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, pattern.Singleton, matches[0].Kind)
	assert.Equal(t, "instance", matches[0].Fields["attribute"])
	assert.Equal(t, "getInstance", matches[0].Fields["method"])
}

// Singleton requires BOTH the attribute and the method; either alone
// must not match.
func TestSingletonRequiresBothAttributeAndMethod(t *testing.T) {
	d := diagram.New()
	attrOnly := mustClass(t, "a", "AttrOnly")
	attr, err := diagram.NewAttribute("attr1", "instance", attrOnly, diagram.ClassScope)
	require.NoError(t, err)
	attrOnly.AddAttribute(attr)
	d.AddClass(attrOnly)

	methodOnly := mustClass(t, "m", "MethodOnly")
	method, err := diagram.NewMethod("m1", "getInstance", diagram.ClassScope, false)
	require.NoError(t, err)
	method.SetReturnType(methodOnly)
	methodOnly.AddMethod(method)
	d.AddClass(methodOnly)

	finder := pattern.NewFinder(d, pattern.WithMatchers(pattern.Matchers()[9]))
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// S4: Class F with outgoing dependencies to D1, D2, D3. One
// Facade(F, {D1,D2,D3}); no Facade when only two dependencies. No
// interface restriction.
func TestScenarioS4Facade(t *testing.T) {
	d := diagram.New()
	f := mustInterface(t, "f", "F")
	d1 := mustClass(t, "d1", "D1")
	d2 := mustClass(t, "d2", "D2")
	d3 := mustClass(t, "d3", "D3")
	d.AddClass(f)
	d.AddClass(d1)
	d.AddClass(d2)
	d.AddClass(d3)
	mustDependency(t, d, "dep1", f, d1, false)
	mustDependency(t, d, "dep2", f, d2, false)
	mustDependency(t, d, "dep3", f, d3, false)

	finder := pattern.NewFinder(d)
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, pattern.Facade, matches[0].Kind)
	assert.Equal(t, f, matches[0].Fields["facade"])
	assert.ElementsMatch(t, []*diagram.Class{d1, d2, d3}, matches[0].Fields["dependencies"])
}

func TestFacadeNoMatchWithOnlyTwoDependencies(t *testing.T) {
	d := diagram.New()
	f := mustClass(t, "f", "F")
	d1 := mustClass(t, "d1", "D1")
	d2 := mustClass(t, "d2", "D2")
	d.AddClass(f)
	d.AddClass(d1)
	d.AddClass(d2)
	mustDependency(t, d, "dep1", f, d1, false)
	mustDependency(t, d, "dep2", f, d2, false)

	finder := pattern.NewFinder(d, pattern.WithMatchers(pattern.Matchers()[5]))
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// S5: Interface P with method clone(): P, realized by P1 and P2. One
// Prototype(P, [P1,P2]).
func TestScenarioS5Prototype(t *testing.T) {
	d := diagram.New()
	p := mustInterface(t, "p", "P")
	method, err := diagram.NewMethod("m1", "clone", diagram.Instance, false)
	require.NoError(t, err)
	method.SetReturnType(p)
	p.AddMethod(method)
	p1 := mustClass(t, "p1", "P1")
	p2 := mustClass(t, "p2", "P2")
	d.AddClass(p)
	d.AddClass(p1)
	d.AddClass(p2)
	mustRealization(t, d, "r1", p1, p)
	mustRealization(t, d, "r2", p2, p)

	finder := pattern.NewFinder(d)
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, pattern.Prototype, matches[0].Kind)
	assert.Equal(t, p, matches[0].Fields["interface"])
	assert.ElementsMatch(t, []*diagram.Class{p1, p2}, matches[0].Fields["concrete_prototypes"])
}

func TestPrototypeRequiresInterfacePreconditionAndCloneMethod(t *testing.T) {
	d := diagram.New()
	notIface := mustClass(t, "c", "NotInterface")
	method, err := diagram.NewMethod("m1", "clone", diagram.Instance, false)
	require.NoError(t, err)
	method.SetReturnType(notIface)
	notIface.AddMethod(method)
	sub := mustClass(t, "s", "Sub")
	d.AddClass(notIface)
	d.AddClass(sub)
	mustRealization(t, d, "r1", sub, notIface)

	wrongName := mustInterface(t, "w", "WrongName")
	m2, err := diagram.NewMethod("m2", "build", diagram.Instance, false)
	require.NoError(t, err)
	m2.SetReturnType(wrongName)
	wrongName.AddMethod(m2)
	sub2 := mustClass(t, "s2", "Sub2")
	d.AddClass(wrongName)
	d.AddClass(sub2)
	mustRealization(t, d, "r2", sub2, wrongName)

	finder := pattern.NewFinder(d, pattern.WithMatchers(pattern.Matchers()[7]))
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// S6: Interface Comp realized by Leaf1, Leaf2, and Comp2; association
// Comp2 -(composited, 1 -> 0..*)-> Comp. One Composite(composite=Comp2,
// component=Comp, leaves=[Leaf1, Leaf2]).
func TestScenarioS6Composite(t *testing.T) {
	d := diagram.New()
	comp := mustInterface(t, "comp", "Comp")
	leaf1 := mustClass(t, "leaf1", "Leaf1")
	leaf2 := mustClass(t, "leaf2", "Leaf2")
	comp2 := mustClass(t, "comp2", "Comp2")
	d.AddClass(comp)
	d.AddClass(leaf1)
	d.AddClass(leaf2)
	d.AddClass(comp2)
	mustRealization(t, d, "r1", leaf1, comp)
	mustRealization(t, d, "r2", leaf2, comp)
	mustRealization(t, d, "r3", comp2, comp)
	mustAssociation(t, d, "assoc1", diagram.Composited, comp2, comp, diagram.One, diagram.Star)

	finder := pattern.NewFinder(d)
	matches, err := finder.Find(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, pattern.Composite, matches[0].Kind)
	assert.Equal(t, comp2, matches[0].Fields["composite"])
	assert.Equal(t, comp, matches[0].Fields["component"])
	assert.ElementsMatch(t, []*diagram.Class{leaf1, leaf2}, matches[0].Fields["leaves"])
}
