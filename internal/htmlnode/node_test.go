package htmlnode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesString(t *testing.T) {
	tests := []struct {
		name     string
		attrs    Attributes
		expected string
	}{
		{
			name:     "single attribute",
			attrs:    Attrs("href", "google.com"),
			expected: `href="google.com"`,
		},
		{
			name:     "two attributes",
			attrs:    Attrs("href", "cnn.com", "test", "value"),
			expected: `href="cnn.com" test="value"`,
		},
		{
			name:     "insertion order kept",
			attrs:    Attrs("target", "value", "test", "value2", "another_test", "value3"),
			expected: `target="value" test="value2" another_test="value3"`,
		},
		{
			name:     "no attributes",
			attrs:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.attrs.String())
		})
	}
}

func TestAttrsIgnoresDanglingKey(t *testing.T) {
	attrs := Attrs("src", "a.png", "alt")
	assert.Len(t, attrs, 1)

	v, ok := attrs.Get("src")
	assert.True(t, ok)
	assert.Equal(t, "a.png", v)

	_, ok = attrs.Get("alt")
	assert.False(t, ok)
}

func TestLeafHTML(t *testing.T) {
	tests := []struct {
		name     string
		leaf     *Leaf
		expected string
	}{
		{
			name:     "paragraph",
			leaf:     NewLeaf("p", "Hello, world!", nil),
			expected: "<p>Hello, world!</p>",
		},
		{
			name:     "anchor with attribute",
			leaf:     NewLeaf("a", "Click me!", Attrs("href", "https://www.google.com")),
			expected: `<a href="https://www.google.com">Click me!</a>`,
		},
		{
			name:     "raw text passthrough",
			leaf:     Text("just <br> text"),
			expected: "just <br> text",
		},
		{
			name:     "raw text ignores attributes",
			leaf:     &Leaf{Value: "plain", Attrs: Attrs("class", "x")},
			expected: "plain",
		},
		{
			name:     "empty image",
			leaf:     NewLeaf("img", "", Attrs("src", "u", "alt", "a")),
			expected: `<img src="u" alt="a"></img>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := tt.leaf.HTML()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, html)
		})
	}
}

func TestParentHTML(t *testing.T) {
	child := NewLeaf("span", "child", nil)
	parent := NewParent("div", []Node{child}, nil)

	html, err := parent.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<div><span>child</span></div>", html)
}

func TestParentHTMLWithGrandchildren(t *testing.T) {
	grandchild := NewLeaf("b", "grandchild", nil)
	child := NewParent("span", []Node{grandchild}, nil)
	parent := NewParent("div", []Node{child}, Attrs("class", "outer"))

	html, err := parent.HTML()
	require.NoError(t, err)
	assert.Equal(t, `<div class="outer"><span><b>grandchild</b></span></div>`, html)
}

func TestParentHTMLMixedChildren(t *testing.T) {
	parent := NewParent("p", []Node{
		NewLeaf("b", "Bold text", nil),
		Text("Normal text"),
		NewLeaf("i", "italic text", nil),
		Text("Normal text"),
	}, nil)

	html, err := parent.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>", html)
}

func TestParentHTMLErrors(t *testing.T) {
	tests := []struct {
		name   string
		node   Node
		target error
	}{
		{
			name:   "missing tag",
			node:   NewParent("", []Node{Text("x")}, nil),
			target: ErrMissingTag,
		},
		{
			name:   "nil children",
			node:   NewParent("div", nil, nil),
			target: ErrNoChildren,
		},
		{
			name:   "empty children",
			node:   NewParent("ul", []Node{}, nil),
			target: ErrNoChildren,
		},
		{
			name:   "nested empty parent",
			node:   NewParent("div", []Node{NewParent("p", nil, nil)}, nil),
			target: ErrNoChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.node.HTML()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, ErrInvalidNode)
		})
	}
}

func TestMissingTagAndNoChildrenAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMissingTag, ErrNoChildren))
	assert.False(t, errors.Is(ErrNoChildren, ErrMissingTag))
}

func TestWalk(t *testing.T) {
	tree := NewParent("div", []Node{
		NewParent("p", []Node{Text("a"), NewLeaf("b", "b", nil)}, nil),
		NewParent("ul", []Node{NewParent("li", []Node{Text("c")}, nil)}, nil),
	}, nil)

	var tags []string
	Walk(tree, func(n Node) bool {
		switch n := n.(type) {
		case *Parent:
			tags = append(tags, n.Tag)
		case *Leaf:
			tags = append(tags, "leaf:"+n.Tag)
		}
		return true
	})
	assert.Equal(t, []string{"div", "p", "leaf:", "leaf:b", "ul", "li", "leaf:"}, tags)

	count := 0
	Walk(tree, func(n Node) bool {
		count++
		p, ok := n.(*Parent)
		return !ok || p.Tag != "ul"
	})
	assert.Equal(t, 5, count)
}
