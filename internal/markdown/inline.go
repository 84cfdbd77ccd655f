package markdown

import "strings"

// TextToTextNodes runs the inline pipeline over a single run of text:
// bold, italic and code delimiters first, then images, then links.
func TextToTextNodes(text string) ([]TextNode, error) {
	if text == "" {
		return nil, nil
	}

	nodes, err := SplitMultiDelimiters([]TextNode{Plain(text)})
	if err != nil {
		return nil, err
	}
	nodes, err = SplitNodesImage(nodes)
	if err != nil {
		return nil, err
	}
	return SplitNodesLink(nodes)
}

func collapseLines(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}
