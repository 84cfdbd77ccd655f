package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxHeadingLevel is the deepest heading the grammar supports
const MaxHeadingLevel = 6

var (
	headingPattern     = regexp.MustCompile(`^(#+)\s(.*)$`)
	orderedListPattern = regexp.MustCompile(`^(\d+)\. (.*)$`)
)

// BlockType is the structural kind of a block
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered list"
	case BlockOrderedList:
		return "ordered list"
	default:
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
}

// Block is a classified chunk of source text
type Block struct {
	Type BlockType
	// Level is the heading level (1-6) for headings and zero otherwise
	Level int
	Text  string
}

type rawBlock struct {
	text string
	line int // 1-based line of the first non-blank line
}

// MarkdownToBlocks splits a document into blocks separated by blank lines.
// Each block is trimmed of surrounding whitespace.
func MarkdownToBlocks(markdown string) []string {
	raw := splitBlocks(markdown)
	blocks := make([]string, 0, len(raw))
	for _, b := range raw {
		blocks = append(blocks, b.text)
	}
	return blocks
}

func splitBlocks(markdown string) []rawBlock {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")

	var (
		blocks  []rawBlock
		current []string
		start   int
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		if text := strings.TrimSpace(strings.Join(current, "\n")); text != "" {
			blocks = append(blocks, rawBlock{text: text, line: start})
		}
		current = current[:0]
	}

	for i, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(current) == 0 {
			start = i + 1
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// ClassifyBlock determines the type of a single block and validates its
// structure. Line numbers in returned errors are relative to the block.
func ClassifyBlock(text string) (Block, error) {
	lines := strings.Split(text, "\n")
	block := Block{Type: BlockParagraph, Text: text}
	if text == "" {
		return block, nil
	}

	switch text[0] {
	case '#':
		level, err := headingLevel(lines[0])
		if err != nil {
			return Block{}, err
		}
		block.Type = BlockHeading
		block.Level = level

	case '`':
		if !isFenceOpening(text) {
			return block, nil
		}
		if !strings.Contains(text[len(fence):], fence) {
			return Block{}, syntaxError(1, "unterminated code fence", lines[0])
		}
		block.Type = BlockCode

	case '>':
		for i, line := range lines {
			if !strings.HasPrefix(line, ">") {
				return Block{}, syntaxError(i+1, "quote block: inconsistent line prefix", line)
			}
		}
		block.Type = BlockQuote

	case '-':
		for i, line := range lines {
			if !isUnorderedItem(line) {
				return Block{}, syntaxError(i+1, "unordered list: malformed item", line)
			}
		}
		block.Type = BlockUnorderedList

	case '1':
		for i, line := range lines {
			m := orderedListPattern.FindStringSubmatch(line)
			if m == nil {
				return Block{}, syntaxError(i+1, "ordered list: malformed ordinal line", line)
			}
			if n, err := strconv.Atoi(m[1]); err != nil || n != i+1 {
				return Block{}, syntaxError(i+1, fmt.Sprintf("ordered list: non-sequential ordinal, expected %d", i+1), line)
			}
		}
		block.Type = BlockOrderedList
	}

	return block, nil
}

func headingLevel(line string) (int, error) {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	if level > MaxHeadingLevel {
		return 0, syntaxError(1, "too many heading markers", line[:level])
	}
	next, _ := utf8.DecodeRuneInString(line[level:])
	if level == len(line) || !unicode.IsSpace(next) {
		return 0, syntaxError(1, "missing space after heading marker", line)
	}
	return level, nil
}

const fence = "```"

// isFenceOpening reports whether text opens with exactly three backticks
func isFenceOpening(text string) bool {
	return strings.HasPrefix(text, fence) && !strings.HasPrefix(text, fence+"`")
}

func isUnorderedItem(line string) bool {
	if !strings.HasPrefix(line, "-") {
		return false
	}
	next, _ := utf8.DecodeRuneInString(line[1:])
	return len(line) > 1 && unicode.IsSpace(next)
}
