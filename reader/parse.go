package reader

import (
	"github.com/classlens/classlens/diag"
	"github.com/classlens/classlens/diagram"
)

func parseIdentifier(n *node) (string, bool) {
	return parseIdentifierAttr(n, attrID)
}

func parseIdentifierAttr(n *node, attr string) (string, bool) {
	v, ok := n.attr(attr)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func parseName(n *node) string {
	return n.attrOr(attrName, "")
}

func parseAbstract(n *node) bool {
	return n.attrOr(attrAbstract, "false") == "true"
}

func parseScope(n *node) diagram.Scope {
	return diagram.ParseScope(n.attrOr(attrScope, "instance"))
}

func parseAggType(n *node) diagram.AggType {
	switch n.attrOr(attrAggregationKind, "") {
	case "Shared", "shared", "SHARED":
		return diagram.Shared
	case "Composited", "composited", "COMPOSITED":
		return diagram.Composited
	default:
		return diagram.NoAggregation
	}
}

// parseStereotypes creates every Stereotype declared directly under root.
// A stereotype that cannot be constructed aborts the whole read: unlike a
// dangling relationship endpoint, a malformed element definition is not
// something a later pass can route around.
func (p *parser) parseStereotypes(root *node) {
	for _, n := range root.findAll(tagStereotype) {
		if p.fatal != nil {
			return
		}
		p.createStereotype(n)
	}
}

// parseDatatypes creates every plain DataType declared directly under root.
func (p *parser) parseDatatypes(root *node) {
	for _, n := range root.findAll(tagDataType) {
		if p.fatal != nil {
			return
		}
		p.createDatatype(n)
	}
}

// parseClasses creates every Class declared directly under root, then
// populates each with its attributes, methods, and stereotypes. The
// create/populate split matters: a class's members may reference a
// sibling class that has not been populated yet, but by the time
// populate runs, every class at this level has already been created and
// is resolvable.
func (p *parser) parseClasses(root *node, pkg *diagram.Package) {
	classNodes := root.findAll(tagClass)
	for _, n := range classNodes {
		if p.fatal != nil {
			return
		}
		p.createClass(n, pkg)
	}
	for _, n := range classNodes {
		if p.fatal != nil {
			return
		}
		p.populateClass(n)
	}
}

// parsePackages creates every Package declared directly under root and
// recurses into each one's ModelChildren to register its nested classes.
func (p *parser) parsePackages(root *node) {
	for _, pkgNode := range root.findAll(tagPackage) {
		if p.fatal != nil {
			return
		}
		pkg := p.createPackage(pkgNode)
		if p.fatal != nil {
			return
		}
		for _, children := range pkgNode.findAll(tagModelChildren) {
			p.parseClasses(children, pkg)
			if p.fatal != nil {
				return
			}
		}
	}
}

// parseRelationships creates every plain relationship (Dependency,
// Generalization, Realization, and Usage-as-Dependency) anywhere in the
// document, then every Association. Relationships are scanned with a
// recursive descendant search rather than a direct-child one because the
// source documents nest them at varying depths alongside their endpoints.
func (p *parser) parseRelationships(root *node) {
	for _, tag := range relationshipTags {
		for _, n := range root.iter(tag) {
			p.createRelationship(n)
		}
	}
	for _, n := range root.iter(tagAssociation) {
		p.createAssociation(n)
	}
}

func (p *parser) createPackage(n *node) *diagram.Package {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagPackage)
		return nil
	}
	pkg, err := diagram.NewPackage(id, parseName(n))
	if err != nil {
		p.failWith(err)
		return nil
	}
	p.diagram.AddPackage(&pkg)
	return &pkg
}

func (p *parser) createDatatype(n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagDataType)
		return
	}
	dt, err := diagram.NewDatatype(id, parseName(n))
	if err != nil {
		p.failWith(err)
		return
	}
	p.diagram.AddDatatype(&dt)
}

func (p *parser) createStereotype(n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagStereotype)
		return
	}
	st, err := diagram.NewStereotype(id, parseName(n))
	if err != nil {
		p.failWith(err)
		return
	}
	p.diagram.AddStereotype(&st)
}

func (p *parser) createClass(n *node, pkg *diagram.Package) {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagClass)
		return
	}
	cls, err := diagram.NewClass(id, parseName(n), parseAbstract(n), pkg)
	if err != nil {
		p.failWith(err)
		return
	}
	p.diagram.AddClass(cls)
}

func (p *parser) populateClass(n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		return
	}
	cls, err := p.diagram.Class(id)
	if err != nil {
		return
	}

	if children := n.find(tagModelChildren); children != nil {
		for _, attrNode := range children.findAll(tagAttribute) {
			p.addAttribute(cls, attrNode)
			if p.fatal != nil {
				return
			}
		}
		for _, opNode := range children.findAll(tagOperation) {
			p.addMethod(cls, opNode)
			if p.fatal != nil {
				return
			}
		}
	}

	p.addStereotypes(cls, n)
}

// addAttribute, addMethod, and addParameter are unguarded in the original
// tool: a member with a missing identifier aborts the whole read, same as
// a malformed Class or Datatype. Only relationship and association
// construction, and member type references (see refDatatype), tolerate a
// bad reference.
func (p *parser) addAttribute(cls *diagram.Class, n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagAttribute)
		return
	}
	attr, err := diagram.NewAttribute(id, parseName(n), p.refDatatype(n), parseScope(n))
	if err != nil {
		p.failWith(err)
		return
	}
	cls.AddAttribute(attr)
}

func (p *parser) addMethod(cls *diagram.Class, n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagOperation)
		return
	}
	method, err := diagram.NewMethod(id, parseName(n), parseScope(n), parseAbstract(n))
	if err != nil {
		p.failWith(err)
		return
	}
	for _, paramNode := range n.iter(tagParameter) {
		p.addParameter(&method, paramNode)
		if p.fatal != nil {
			return
		}
	}
	if rt := n.find(tagReturnType); rt != nil {
		method.SetReturnType(p.resolveTypeRef(rt))
	}
	cls.AddMethod(method)
}

func (p *parser) addParameter(method *diagram.Method, n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		p.fail(n, tagParameter)
		return
	}
	param, err := diagram.NewParameter(id, parseName(n), p.refDatatype(n))
	if err != nil {
		p.failWith(err)
		return
	}
	method.AddParameter(param)
}

func (p *parser) addStereotypes(el stereotypeAdder, n *node) {
	for _, ref := range n.findAllPath(tagStereotypes, tagStereotype) {
		st := p.refStereotype(ref)
		if st == nil {
			continue
		}
		el.AddStereotype(*st)
	}
}

// stereotypeAdder is satisfied by every element kind that can carry
// stereotypes: *diagram.Class and *diagram.Relationship (which
// *diagram.Association embeds).
type stereotypeAdder interface {
	AddStereotype(diagram.Stereotype)
}

// refDatatype resolves a member's declared type. n is the owning element
// (an Attribute, Parameter, or Method node); its direct Type child
// wraps the actual reference one level deeper, in that child's own first
// child's Idref attribute. A missing or unresolvable reference leaves the
// member untyped rather than failing the member's construction: this
// matches the tolerance the rest of this package applies to relationship
// endpoints.
func (p *parser) refDatatype(n *node) diagram.TypeRef {
	return p.resolveTypeRef(n.find(tagType))
}

// resolveTypeRef resolves a ReturnType/Type wrapper node's nested
// reference, as described on refDatatype.
func (p *parser) resolveTypeRef(typeNode *node) diagram.TypeRef {
	if typeNode == nil {
		return nil
	}
	refNode := typeNode.firstChild()
	if refNode == nil {
		return nil
	}
	id, ok := parseIdentifierAttr(refNode, attrIDRef)
	if !ok {
		return nil
	}
	ref, err := p.diagram.Reference(id)
	if err != nil {
		p.warn(diag.W_SKIPPED_REFERENCE, "unresolved type reference",
			diag.Detail{Key: diag.DetailKeyTargetID, Value: id})
		return nil
	}
	return ref
}

func (p *parser) refStereotype(n *node) *diagram.Stereotype {
	id, ok := parseIdentifierAttr(n, attrIDRef)
	if !ok {
		return nil
	}
	st, err := p.diagram.Stereotype(id)
	if err != nil {
		return nil
	}
	return st
}

func (p *parser) createRelationship(n *node) {
	kind, ok := relKindForTag(n.XMLName.Local)
	if !ok {
		return
	}
	id, ok := parseIdentifier(n)
	if !ok {
		return
	}
	fromID, ok := parseIdentifierAttr(n, attrFrom)
	if !ok {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "relationship missing From endpoint",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}
	toID, ok := parseIdentifierAttr(n, attrTo)
	if !ok {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "relationship missing To endpoint",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}

	from, err := p.diagram.Class(fromID)
	if err != nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "relationship From endpoint not found",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id},
			diag.Detail{Key: diag.DetailKeyTargetID, Value: fromID})
		return
	}
	to, err := p.diagram.Class(toID)
	if err != nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "relationship To endpoint not found",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id},
			diag.Detail{Key: diag.DetailKeyTargetID, Value: toID})
		return
	}

	rel, err := diagram.NewRelationship(id, kind, from, to)
	if err != nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "relationship could not be constructed",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}

	p.addStereotypes(rel, n)
	p.diagram.AddRelationship(rel)
}

func (p *parser) createAssociation(n *node) {
	id, ok := parseIdentifier(n)
	if !ok {
		return
	}

	fromNode := n.findPath(tagFromEnd, tagAssociationEnd)
	toNode := n.findPath(tagToEnd, tagAssociationEnd)
	if fromNode == nil || toNode == nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association missing an end",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}

	fromID, ok := parseIdentifierAttr(fromNode, attrEndModelElement)
	if !ok {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association From end missing its model element reference",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}
	toID, ok := parseIdentifierAttr(toNode, attrEndModelElement)
	if !ok {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association To end missing its model element reference",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}

	from, err := p.diagram.Class(fromID)
	if err != nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association From endpoint not found",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id},
			diag.Detail{Key: diag.DetailKeyTargetID, Value: fromID})
		return
	}
	to, err := p.diagram.Class(toID)
	if err != nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association To endpoint not found",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id},
			diag.Detail{Key: diag.DetailKeyTargetID, Value: toID})
		return
	}

	fromMult, fromOK := parseEndMultiplicity(fromNode)
	toMult, toOK := parseEndMultiplicity(toNode)
	if !fromOK || !toOK {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association end missing multiplicity",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}

	assoc, err := diagram.NewAssociation(id, parseAggType(fromNode), from, to, fromMult, toMult)
	if err != nil {
		p.warn(diag.W_SKIPPED_RELATIONSHIP, "association could not be constructed",
			diag.Detail{Key: diag.DetailKeyElementID, Value: id})
		return
	}

	p.addStereotypes(assoc.Relationship, n)
	p.diagram.AddRelationship(assoc)
}

// parseEndMultiplicity resolves an association end's Multiplicity
// attribute. ok is false when the attribute is absent, matching the
// original tool's behavior of dropping an association whose end
// multiplicity cannot be read at all (as opposed to an unrecognized
// value, which defaults to One).
func parseEndMultiplicity(end *node) (diagram.Multiplicity, bool) {
	raw, ok := end.attr(attrMultiplicity)
	if !ok {
		return 0, false
	}
	return diagram.ParseMultiplicity(raw), true
}
