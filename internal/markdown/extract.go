package markdown

import (
	"regexp"
	"strings"
)

var (
	// ![alt](url)
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	// [text](url); matches preceded by "!" are images and get filtered out
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Reference is the text and target of an image or link
type Reference struct {
	Text string
	URL  string
}

type referenceMatch struct {
	Reference
	start, end int
}

func findImages(text string) []referenceMatch {
	var matches []referenceMatch
	for _, m := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, referenceMatch{
			Reference: Reference{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]},
			start:     m[0],
			end:       m[1],
		})
	}
	return matches
}

// findLinks emulates a (?<!!) lookbehind, which RE2 does not support
func findLinks(text string) []referenceMatch {
	var matches []referenceMatch
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		matches = append(matches, referenceMatch{
			Reference: Reference{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]},
			start:     m[0],
			end:       m[1],
		})
	}
	return matches
}

func references(matches []referenceMatch) []Reference {
	refs := make([]Reference, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m.Reference)
	}
	return refs
}

// ExtractMarkdownImages returns every ![alt](url) in text, in order
func ExtractMarkdownImages(text string) []Reference {
	return references(findImages(text))
}

// ExtractMarkdownLinks returns every [text](url) in text that is not an image, in order
func ExtractMarkdownLinks(text string) []Reference {
	return references(findLinks(text))
}

// SplitNodesImage turns image references inside plain nodes into image nodes
func SplitNodesImage(nodes []TextNode) ([]TextNode, error) {
	return splitNodesReference(nodes, "![", TextImage, findImages)
}

// SplitNodesLink turns link references inside plain nodes into link nodes
func SplitNodesLink(nodes []TextNode) ([]TextNode, error) {
	return splitNodesReference(nodes, "[", TextLink, findLinks)
}

func splitNodesReference(nodes []TextNode, marker string, textType TextType, find func(string) []referenceMatch) ([]TextNode, error) {
	result := make([]TextNode, 0, len(nodes))
	for _, node := range nodes {
		if node.Type != TextPlain || !strings.Contains(node.Text, marker) {
			result = append(result, node)
			continue
		}

		matches := find(node.Text)
		if len(matches) > MaxInlineSpans {
			return nil, tooManySpans(marker)
		}

		pos := 0
		for _, m := range matches {
			if m.start > pos {
				result = append(result, Plain(node.Text[pos:m.start]))
			}
			result = append(result, TextNode{Text: m.Text, Type: textType, URL: m.URL})
			pos = m.end
		}
		if pos < len(node.Text) {
			result = append(result, Plain(node.Text[pos:]))
		}
	}
	return result, nil
}
