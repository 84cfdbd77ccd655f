package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNode is returned when a node cannot be serialized
var ErrInvalidNode = errors.New("invalid html node")

var (
	// ErrMissingTag is returned when a parent node has no tag
	ErrMissingTag = fmt.Errorf("%w: parent node has no tag", ErrInvalidNode)
	// ErrNoChildren is returned when a parent node has no children
	ErrNoChildren = fmt.Errorf("%w: parent node has no children", ErrInvalidNode)
)

// Node is an element of the output tree
type Node interface {
	// HTML serializes the node and everything below it
	HTML() (string, error)
	writeHTML(b *strings.Builder) error
}

// Attribute is a single key="value" pair on an element
type Attribute struct {
	Key   string
	Value string
}

// Attributes keeps element attributes in insertion order
type Attributes []Attribute

// Attrs builds Attributes from alternating key, value arguments.
// A trailing key without a value is ignored.
func Attrs(kv ...string) Attributes {
	attrs := make(Attributes, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, Attribute{Key: kv[i], Value: kv[i+1]})
	}
	return attrs
}

// Get returns the value of the first attribute named key
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// String renders the attributes as space separated key="value" pairs
func (a Attributes) String() string {
	var b strings.Builder
	for i, attr := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}

func writeOpenTag(b *strings.Builder, tag string, attrs Attributes) {
	b.WriteByte('<')
	b.WriteString(tag)
	if len(attrs) > 0 {
		b.WriteByte(' ')
		b.WriteString(attrs.String())
	}
	b.WriteByte('>')
}

func writeCloseTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// Leaf is a node without children. A leaf without a tag is raw text.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes
}

// NewLeaf creates a leaf element
func NewLeaf(tag, value string, attrs Attributes) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// Text creates a raw text leaf that serializes to value verbatim
func Text(value string) *Leaf {
	return &Leaf{Value: value}
}

// HTML serializes the leaf
func (l *Leaf) HTML() (string, error) {
	var b strings.Builder
	if err := l.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) writeHTML(b *strings.Builder) error {
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}
	writeOpenTag(b, l.Tag, l.Attrs)
	b.WriteString(l.Value)
	writeCloseTag(b, l.Tag)
	return nil
}

func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q, %v)", l.Tag, l.Value, l.Attrs)
}

// Parent is a structural node that owns an ordered, non-empty list of children
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// NewParent creates a parent element
func NewParent(tag string, children []Node, attrs Attributes) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// HTML serializes the parent and its children depth first
func (p *Parent) HTML() (string, error) {
	var b strings.Builder
	if err := p.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) writeHTML(b *strings.Builder) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("<%s>: %w", p.Tag, ErrNoChildren)
	}

	writeOpenTag(b, p.Tag, p.Attrs)
	for _, child := range p.Children {
		if child == nil {
			return fmt.Errorf("<%s>: %w: nil child", p.Tag, ErrInvalidNode)
		}
		if err := child.writeHTML(b); err != nil {
			return err
		}
	}
	writeCloseTag(b, p.Tag)
	return nil
}

func (p *Parent) String() string {
	return fmt.Sprintf("Parent(%q, %d children, %v)", p.Tag, len(p.Children), p.Attrs)
}

// Walk visits n and every node below it in document order.
// Returning false from fn skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if p, ok := n.(*Parent); ok {
		for _, child := range p.Children {
			Walk(child, fn)
		}
	}
}
