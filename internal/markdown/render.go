package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gerunddev/mdsite/internal/htmlnode"
)

// quoteLineBreak separates the lines of a block quote. It reaches the output
// as markup only because leaf text is written unescaped.
const quoteLineBreak = "<br>"

// RenderBlock converts a classified block into its element subtree
func RenderBlock(block Block) (htmlnode.Node, error) {
	switch block.Type {
	case BlockParagraph:
		return renderParagraph(block.Text)
	case BlockHeading:
		return renderHeading(block.Text, block.Level)
	case BlockCode:
		return renderCode(block.Text)
	case BlockQuote:
		return renderQuote(block.Text)
	case BlockUnorderedList:
		return renderList("ul", block.Text, unorderedItemText)
	case BlockOrderedList:
		return renderList("ol", block.Text, orderedItemText)
	default:
		return nil, fmt.Errorf("%w: unknown block type %s", htmlnode.ErrInvalidNode, block.Type)
	}
}

func renderParagraph(text string) (htmlnode.Node, error) {
	children, err := textToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children, nil), nil
}

func renderHeading(text string, level int) (htmlnode.Node, error) {
	if level < 1 || level > MaxHeadingLevel {
		return nil, fmt.Errorf("%w: heading level %d", htmlnode.ErrInvalidNode, level)
	}
	content := strings.TrimLeftFunc(text[level:], unicode.IsSpace)
	children, err := textToChildren(content)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(fmt.Sprintf("h%d", level), children, nil), nil
}

// renderCode keeps everything between the fences verbatim, including any
// text on the opening fence line
func renderCode(text string) (htmlnode.Node, error) {
	content := strings.TrimSuffix(strings.TrimPrefix(text, fence), fence)

	code, err := TextNode{Text: strings.TrimSpace(content), Type: TextCode}.ToHTMLNode()
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{code}, nil), nil
}

func renderQuote(text string) (htmlnode.Node, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(strings.TrimPrefix(line, ">"), unicode.IsSpace)
	}
	children, err := textToChildren(strings.Join(lines, quoteLineBreak))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children, nil), nil
}

func unorderedItemText(line string) string {
	return strings.TrimLeftFunc(strings.TrimPrefix(line, "-"), unicode.IsSpace)
}

func orderedItemText(line string) string {
	if m := orderedListPattern.FindStringSubmatch(line); m != nil {
		return m[2]
	}
	return line
}

func renderList(tag, text string, itemText func(string) string) (htmlnode.Node, error) {
	lines := strings.Split(text, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		children, err := textToChildren(itemText(line))
		if err != nil {
			return nil, err
		}
		items = append(items, htmlnode.NewParent("li", children, nil))
	}
	return htmlnode.NewParent(tag, items, nil), nil
}
