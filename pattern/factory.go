package pattern

import (
	"regexp"

	"github.com/classlens/classlens/diagram"
)

// factoryMethodNamePattern is the case-insensitive creational-verb
// prefix a Factory Method candidate's name must match.
var factoryMethodNamePattern = regexp.MustCompile(`(?i)^(?:alloc|build|construct|create|instantiate|new)`)

// factoryMethodMatcher finds the Factory Method shape: a class declares
// a method, named after a creational verb, whose return type is a class
// — refined to the creator's own creational dependency target when the
// declared return type is merely an interface the target realizes.
type factoryMethodMatcher struct{}

func (factoryMethodMatcher) Kind() Kind { return FactoryMethod }

func (factoryMethodMatcher) Find(d *diagram.Diagram) []Match {
	var matches []Match
	for creator := range d.Classes(false) {
		for _, m := range creator.Methods() {
			product, ok := diagram.ClassOf(m.ReturnType())
			if !ok || !factoryMethodNamePattern.MatchString(m.Name()) {
				continue
			}
			product = refineProduct(d, creator, product)
			matches = append(matches, NewMatch(FactoryMethod, []*diagram.Class{creator, product}, map[string]any{
				"factory": creator,
				"method":  m.Name(),
				"product": product,
			}))
		}
	}
	return matches
}

// refineProduct substitutes product, when it is an interface, with the
// first of creator's non-interface creational dependency targets that
// realizes it; otherwise product is returned unchanged.
func refineProduct(d *diagram.Diagram, creator, product *diagram.Class) *diagram.Class {
	if !product.IsInterface() {
		return product
	}
	for _, created := range creationalDependencyTargets(d, creator) {
		if d.IsRealization(created, product) {
			return created
		}
	}
	return product
}

// creationalDependencyTargets returns the non-interface classes creator
// creationally depends on, in relationship order.
func creationalDependencyTargets(d *diagram.Diagram, creator *diagram.Class) []*diagram.Class {
	var out []*diagram.Class
	for e := range d.Relationships(creator, diagram.LHS, nil, diagram.DependencyKind) {
		if !e.IsCreational() || e.To().IsInterface() {
			continue
		}
		out = append(out, e.To())
	}
	return out
}

// newAbstractFactoryMatcher wires an abstractFactoryMatcher to the
// factoryMethodMatcher it shares product identification with.
func newAbstractFactoryMatcher(fm factoryMethodMatcher) abstractFactoryMatcher {
	return abstractFactoryMatcher{factoryMethod: fm}
}

// abstractFactoryMatcher finds the Abstract Factory shape: an interface
// whose factory methods (as identified by [factoryMethodMatcher]) name a
// non-empty product set, realized by concrete factories that each carry
// their own creational dependency — a family of related products
// created together.
type abstractFactoryMatcher struct {
	factoryMethod factoryMethodMatcher
}

func (abstractFactoryMatcher) Kind() Kind { return AbstractFactory }

func (m abstractFactoryMatcher) Find(d *diagram.Diagram) []Match {
	factoryMatches := m.factoryMethod.Find(d)

	var matches []Match
	for creator := range d.Classes(false) {
		if !creator.IsInterface() {
			continue
		}
		products := dedupe(productsFor(factoryMatches, creator))
		if len(products) == 0 {
			continue
		}

		var concreteFactories []*diagram.Class
		var concreteProducts []*diagram.Class
		for realization := range d.Realizations(creator) {
			created := creationalDependencyTargets(d, realization)
			if len(created) == 0 {
				continue
			}
			concreteFactories = append(concreteFactories, realization)
			concreteProducts = append(concreteProducts, created...)
		}
		concreteProducts = dedupe(concreteProducts)
		if len(concreteFactories) == 0 || len(concreteProducts) == 0 {
			continue
		}

		classes := append([]*diagram.Class{creator}, products...)
		classes = append(classes, concreteFactories...)
		classes = append(classes, concreteProducts...)
		matches = append(matches, NewMatch(AbstractFactory, classes, map[string]any{
			"factory":            creator,
			"products":           products,
			"concrete_factories": concreteFactories,
			"concrete_products":  concreteProducts,
		}))
	}
	return matches
}

// productsFor returns the product field of every factory method match
// whose factory is creator.
func productsFor(factoryMatches []Match, creator *diagram.Class) []*diagram.Class {
	var out []*diagram.Class
	for _, fm := range factoryMatches {
		factory, ok := fm.Fields["factory"].(*diagram.Class)
		if !ok || factory != creator {
			continue
		}
		if product, ok := fm.Fields["product"].(*diagram.Class); ok {
			out = append(out, product)
		}
	}
	return out
}
