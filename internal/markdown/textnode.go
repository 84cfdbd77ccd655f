package markdown

import (
	"fmt"

	"github.com/gerunddev/mdsite/internal/htmlnode"
)

// ErrUnknownTextType is returned when a TextNode carries a style with no HTML form
var ErrUnknownTextType = fmt.Errorf("%w: unknown text type", htmlnode.ErrInvalidNode)

// TextType is the inline style of a span of text
type TextType int

const (
	TextPlain TextType = iota
	TextBold
	TextItalic
	TextCode
	TextLink
	TextImage
)

func (t TextType) String() string {
	switch t {
	case TextPlain:
		return "plain"
	case TextBold:
		return "bold"
	case TextItalic:
		return "italic"
	case TextCode:
		return "code"
	case TextLink:
		return "link"
	case TextImage:
		return "image"
	default:
		return fmt.Sprintf("TextType(%d)", int(t))
	}
}

// TextNode is a span of inline text with a single style.
// URL is only meaningful for links and images.
type TextNode struct {
	Text string
	Type TextType
	URL  string
}

// Plain returns an unstyled text node
func Plain(text string) TextNode {
	return TextNode{Text: text, Type: TextPlain}
}

func (n TextNode) String() string {
	return fmt.Sprintf("TextNode(%q, %s, %q)", n.Text, n.Type, n.URL)
}

// ToHTMLNode converts the span to its leaf element
func (n TextNode) ToHTMLNode() (*htmlnode.Leaf, error) {
	switch n.Type {
	case TextPlain:
		return htmlnode.Text(n.Text), nil
	case TextBold:
		return htmlnode.NewLeaf("b", n.Text, nil), nil
	case TextItalic:
		return htmlnode.NewLeaf("i", n.Text, nil), nil
	case TextCode:
		return htmlnode.NewLeaf("code", n.Text, nil), nil
	case TextLink:
		return htmlnode.NewLeaf("a", n.Text, htmlnode.Attrs("href", n.URL)), nil
	case TextImage:
		return htmlnode.NewLeaf("img", "", htmlnode.Attrs("src", n.URL, "alt", n.Text)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTextType, n.Type)
	}
}

// textToChildren runs the inline pipeline over text and converts the spans to leaves.
// Line breaks are collapsed to single spaces first.
func textToChildren(text string) ([]htmlnode.Node, error) {
	nodes, err := TextToTextNodes(collapseLines(text))
	if err != nil {
		return nil, err
	}
	return toLeaves(nodes)
}

func toLeaves(nodes []TextNode) ([]htmlnode.Node, error) {
	if len(nodes) == 0 {
		return []htmlnode.Node{htmlnode.Text("")}, nil
	}

	children := make([]htmlnode.Node, 0, len(nodes))
	for _, n := range nodes {
		leaf, err := n.ToHTMLNode()
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	return children, nil
}
