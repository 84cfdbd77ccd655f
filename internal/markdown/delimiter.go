package markdown

import (
	"fmt"
	"strings"
)

// MaxInlineSpans caps the styled spans a single run of text may produce in
// one splitter or extractor pass
const MaxInlineSpans = 4096

// Inline delimiters in the order they are applied
var delimiters = []struct {
	delimiter string
	textType  TextType
}{
	{"**", TextBold},
	{"_", TextItalic},
	{"`", TextCode},
}

// SplitNodesDelimiter splits every plain node on pairs of delimiter, turning the
// text between each pair into a node of textType. Nodes that are already styled
// pass through untouched. Each opening delimiter is closed by the nearest
// following one; a delimiter without a partner is a syntax error.
func SplitNodesDelimiter(nodes []TextNode, delimiter string, textType TextType) ([]TextNode, error) {
	if delimiter == "" {
		return nil, fmt.Errorf("split %s: empty delimiter", textType)
	}

	result := make([]TextNode, 0, len(nodes))
	for _, node := range nodes {
		if node.Type != TextPlain || !strings.Contains(node.Text, delimiter) {
			result = append(result, node)
			continue
		}

		split, err := splitDelimited(node.Text, delimiter, textType)
		if err != nil {
			return nil, err
		}
		result = append(result, split...)
	}
	return result, nil
}

func splitDelimited(text, delimiter string, textType TextType) ([]TextNode, error) {
	var nodes []TextNode
	rest := text

	for spans := 0; ; spans++ {
		open := strings.Index(rest, delimiter)
		if open < 0 {
			if rest != "" {
				nodes = append(nodes, Plain(rest))
			}
			return nodes, nil
		}
		if spans == MaxInlineSpans {
			return nil, tooManySpans(delimiter)
		}

		body := rest[open+len(delimiter):]
		end := strings.Index(body, delimiter)
		if end < 0 {
			return nil, syntaxError(0, fmt.Sprintf("unpaired delimiter %q", delimiter), text)
		}

		if open > 0 {
			nodes = append(nodes, Plain(rest[:open]))
		}
		nodes = append(nodes, TextNode{Text: body[:end], Type: textType})
		rest = body[end+len(delimiter):]
	}
}

// SplitMultiDelimiters applies bold, italic and code splitting in that order
func SplitMultiDelimiters(nodes []TextNode) ([]TextNode, error) {
	var err error
	for _, d := range delimiters {
		nodes, err = SplitNodesDelimiter(nodes, d.delimiter, d.textType)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func tooManySpans(token string) *SyntaxError {
	return &SyntaxError{
		Reason: fmt.Sprintf("more than %d inline spans in one block", MaxInlineSpans),
		Text:   token,
		Err:    ErrTooManySpans,
	}
}
