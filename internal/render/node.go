package render

import (
	"bufio"
	"html"
	"io"
)

// Attr is one node attribute. Order is preserved.
type Attr struct {
	Name, Value string
}

// Node is a retained vector node: an element name, its attributes and
// child nodes.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
}

// NewNode returns a node with the given element name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// SetAttr sets or replaces an attribute.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild adds child as the last child.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// RemoveChild detaches child and reports whether it was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// WriteTo serialises the node and its subtree as XML.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	n.write(cw, 0)
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

func (n *Node) write(w *countingWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.str("  ")
	}
	w.str("<" + n.Name)
	for _, a := range n.Attrs {
		w.str(" " + a.Name + `="` + html.EscapeString(a.Value) + `"`)
	}
	if len(n.Children) == 0 {
		w.str("/>\n")
		return
	}
	w.str(">\n")
	for _, c := range n.Children {
		c.write(w, depth+1)
	}
	for i := 0; i < depth; i++ {
		w.str("  ")
	}
	w.str("</" + n.Name + ">\n")
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) str(s string) {
	if c.err != nil {
		return
	}
	k, err := c.w.WriteString(s)
	c.n += int64(k)
	c.err = err
}
