package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/mdsite/internal/htmlnode"
)

func parseToHTML(t *testing.T, md string) string {
	t.Helper()
	node, err := ParseDocument(md)
	require.NoError(t, err)
	html, err := node.HTML()
	require.NoError(t, err)
	return html
}

func TestParseDocumentHeadingAndParagraph(t *testing.T) {
	html := parseToHTML(t, "# H1 Tag\n\nThis is a paragraph with **bold** and _italic_ text")
	assert.Equal(t, "<div><h1>H1 Tag</h1><p>This is a paragraph with <b>bold</b> and <i>italic</i> text</p></div>", html)
}

func TestParseDocumentParagraphs(t *testing.T) {
	md := strings.Join([]string{
		"This is **bolded** paragraph",
		"text in a p",
		"tag here",
		"",
		"This is another paragraph with _italic_ text and `code` here",
	}, "\n")

	assert.Equal(t,
		"<div><p>This is <b>bolded</b> paragraph text in a p tag here</p><p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		parseToHTML(t, md),
	)
}

func TestParseDocumentComprehensive(t *testing.T) {
	md := strings.Join([]string{
		"# H1 Tag",
		"",
		"## H2 Tag",
		"",
		"### H3 Tag",
		"",
		"#### H4 Tag",
		"",
		"##### H5 Tag",
		"",
		"###### H6 Tag",
		"",
		"This is a paragraph with **bold** and _italic_ text",
		"",
		"This is a paragraph with an inline `code` tag",
		"",
		"```",
		"This is a code block",
		"```",
		"",
		"> This is a quote",
		"> block with more than one line",
		"",
		"An unordered list appears below:",
		"",
		"- first",
		"- second",
		"- third",
		"",
		"An ordered list appears below:",
		"",
		"1. first",
		"2. second",
		"3. third",
		"",
		"The end",
	}, "\n")

	expected := "<div><h1>H1 Tag</h1><h2>H2 Tag</h2><h3>H3 Tag</h3><h4>H4 Tag</h4><h5>H5 Tag</h5><h6>H6 Tag</h6>" +
		"<p>This is a paragraph with <b>bold</b> and <i>italic</i> text</p>" +
		"<p>This is a paragraph with an inline <code>code</code> tag</p>" +
		"<pre><code>This is a code block</code></pre>" +
		"<blockquote>This is a quote<br>block with more than one line</blockquote>" +
		"<p>An unordered list appears below:</p><ul><li>first</li><li>second</li><li>third</li></ul>" +
		"<p>An ordered list appears below:</p><ol><li>first</li><li>second</li><li>third</li></ol>" +
		"<p>The end</p></div>"

	assert.Equal(t, expected, parseToHTML(t, md))
}

func TestParseDocumentImagesAndLinks(t *testing.T) {
	md := "Look: ![cat](/img/cat.png) and [home](/index.html)"
	assert.Equal(t,
		`<div><p>Look: <img src="/img/cat.png" alt="cat"></img> and <a href="/index.html">home</a></p></div>`,
		parseToHTML(t, md),
	)
}

func TestParseDocumentRootShape(t *testing.T) {
	root, err := ParseDocument("# A\n\nb\n\n- c")
	require.NoError(t, err)
	assert.Equal(t, "div", root.Tag)
	require.Len(t, root.Children, 3)

	var tags []string
	for _, child := range root.Children {
		tags = append(tags, child.(*htmlnode.Parent).Tag)
	}
	assert.Equal(t, []string{"h1", "p", "ul"}, tags)
}

func TestParseDocumentEmpty(t *testing.T) {
	root, err := ParseDocument("\n\n")
	require.NoError(t, err)
	assert.Empty(t, root.Children)

	_, err = root.HTML()
	assert.ErrorIs(t, err, htmlnode.ErrNoChildren)
}

func TestParseDocumentErrorsCarryDocumentLine(t *testing.T) {
	tests := []struct {
		name string
		md   string
		line int
	}{
		{
			name: "quote prefix on third document line",
			md:   "# Title\n\n> one\ntwo\n> three",
			line: 4,
		},
		{
			name: "heading overflow after blank lines",
			md:   "intro\n\n\n\n######## deep",
			line: 5,
		},
		{
			name: "unpaired delimiter reports block start",
			md:   "# Title\n\nfine\n\nstarts fine\nbut **never closes",
			line: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument(tt.md)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.line, se.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestParseDocumentSingleBadBlockFailsDocument(t *testing.T) {
	_, err := ParseDocument("# Good\n\nGood paragraph\n\n```\nno closing fence")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"first line", "# Hello", "Hello"},
		{"after other headings", "## Sub\n\n### Deeper\n\n# Real Title\n\ntext", "Real Title"},
		{"surrounding spaces", "#   Spaced   ", "Spaced"},
		{"crlf", "intro\r\n# Windows\r\n", "Windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := ExtractTitle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, title)
		})
	}
}

func TestExtractTitleMissing(t *testing.T) {
	for _, input := range []string{"", "no heading", "## only h2", "#NoSpace"} {
		_, err := ExtractTitle(input)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", input)
	}
}

func TestParseDocumentCodeKeepsFirstLine(t *testing.T) {
	html := parseToHTML(t, "```hello\nworld\n```")
	assert.Equal(t, "<div><pre><code>hello\nworld</code></pre></div>", html)
}
