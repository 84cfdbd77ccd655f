package markdown

import (
	"strings"

	"github.com/gerunddev/mdsite/internal/htmlnode"
)

// ParseDocument converts a whole markdown document into a tree rooted at a
// single div. The first malformed block aborts the whole document.
func ParseDocument(markdown string) (*htmlnode.Parent, error) {
	raw := splitBlocks(markdown)
	children := make([]htmlnode.Node, 0, len(raw))

	for _, rb := range raw {
		block, err := ClassifyBlock(rb.text)
		if err != nil {
			return nil, atLine(err, rb.line)
		}
		node, err := RenderBlock(block)
		if err != nil {
			return nil, atLine(err, rb.line)
		}
		children = append(children, node)
	}

	return htmlnode.NewParent("div", children, nil), nil
}

// ExtractTitle returns the text of the first level-1 heading line
func ExtractTitle(markdown string) (string, error) {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	for _, line := range strings.Split(markdown, "\n") {
		m := headingPattern.FindStringSubmatch(line)
		if m != nil && len(m[1]) == 1 {
			return strings.TrimSpace(m[2]), nil
		}
	}
	return "", syntaxError(0, "no level-1 heading", "")
}
