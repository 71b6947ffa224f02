package reader

import (
	"encoding/xml"
	"io"
)

// node is a generic, order-preserving XML tree: every element, regardless
// of its tag, decodes into the same shape. The source documents this
// package reads describe arbitrary nesting (packages inside packages,
// relationships stored alongside or beneath their container), so a fixed
// set of typed structs would have to duplicate the same shape under many
// names; a single generic node walked with find/findAll/iter is simpler
// and mirrors how the rest of this package reasons about the tree.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

// attr returns the value of the named attribute and whether it was present.
func (n *node) attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == key {
			return a.Value, true
		}
	}
	return "", false
}

// attrOr returns the named attribute's value, or def if absent.
func (n *node) attrOr(key, def string) string {
	if v, ok := n.attr(key); ok {
		return v
	}
	return def
}

// firstChild returns n's first child element, or nil if n has none.
func (n *node) firstChild() *node {
	if len(n.Children) == 0 {
		return nil
	}
	return &n.Children[0]
}

// find returns the first direct child with the given tag, or nil.
func (n *node) find(tag string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			return &n.Children[i]
		}
	}
	return nil
}

// findAll returns every direct child with the given tag, in document order.
func (n *node) findAll(tag string) []*node {
	var out []*node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// findPath walks successive direct-child lookups and returns the node
// reached at the end of the path, or nil if any step fails to match.
func (n *node) findPath(tags ...string) *node {
	cur := n
	for _, tag := range tags {
		cur = cur.find(tag)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// findAllPath walks direct-child lookups for every tag but the last, then
// returns every direct child of that node matching the final tag.
func (n *node) findAllPath(tags ...string) []*node {
	if len(tags) == 0 {
		return nil
	}
	cur := n
	for _, tag := range tags[:len(tags)-1] {
		cur = cur.find(tag)
		if cur == nil {
			return nil
		}
	}
	return cur.findAll(tags[len(tags)-1])
}

// iter recursively collects every descendant (including n itself) whose
// tag matches, in document (pre-order) order.
func (n *node) iter(tag string) []*node {
	var out []*node
	var walk func(cur *node)
	walk = func(cur *node) {
		if cur.XMLName.Local == tag {
			out = append(out, cur)
		}
		for i := range cur.Children {
			walk(&cur.Children[i])
		}
	}
	walk(n)
	return out
}

// parseNode decodes r into a node tree, regardless of the document's root
// element name.
func parseNode(r io.Reader) (*node, error) {
	var root node
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}
