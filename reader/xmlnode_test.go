package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodeFixture = `
<Root>
  <Stereotypes>
    <Stereotype Idref="s1"/>
    <Stereotype Idref="s2"/>
  </Stereotypes>
  <Association Id="as1">
    <FromEnd>
      <AssociationEnd EndModelElement="a"/>
    </FromEnd>
  </Association>
  <Package Id="p1">
    <Generalization Id="g1"/>
  </Package>
</Root>`

func mustParse(t *testing.T) *node {
	t.Helper()
	n, err := parseNode(strings.NewReader(nodeFixture))
	require.NoError(t, err)
	return n
}

func TestNodeFindAll(t *testing.T) {
	root := mustParse(t)
	sts := root.findAllPath(tagStereotypes, tagStereotype)
	require.Len(t, sts, 2)
	assert.Equal(t, "s1", sts[0].attrOr(attrIDRef, ""))
	assert.Equal(t, "s2", sts[1].attrOr(attrIDRef, ""))
}

func TestNodeFindPath(t *testing.T) {
	root := mustParse(t)
	assoc := root.find(tagAssociation)
	require.NotNil(t, assoc)

	end := assoc.findPath(tagFromEnd, tagAssociationEnd)
	require.NotNil(t, end)
	v, ok := end.attr(attrEndModelElement)
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestNodeFindPathMissingStepReturnsNil(t *testing.T) {
	root := mustParse(t)
	assoc := root.find(tagAssociation)
	require.NotNil(t, assoc)

	assert.Nil(t, assoc.findPath(tagToEnd, tagAssociationEnd))
}

func TestNodeIterRecursesIntoNestedPackages(t *testing.T) {
	root := mustParse(t)
	found := root.iter(tagGeneralization)
	require.Len(t, found, 1)
	id, ok := found[0].attr(attrID)
	require.True(t, ok)
	assert.Equal(t, "g1", id)
}

func TestNodeAttrOrDefault(t *testing.T) {
	root := mustParse(t)
	assert.Equal(t, "fallback", root.attrOr("NoSuchAttr", "fallback"))
}
