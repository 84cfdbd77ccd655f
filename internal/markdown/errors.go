package markdown

import (
	"errors"
	"fmt"
)

// ErrSyntax matches every *SyntaxError via errors.Is
var ErrSyntax = errors.New("invalid markdown syntax")

// ErrTooManySpans is wrapped by a SyntaxError when a single run of text
// produces more than MaxInlineSpans styled spans in one pass
var ErrTooManySpans = errors.New("too many inline spans")

// SyntaxError describes malformed markdown
type SyntaxError struct {
	// Line is the 1-based line in the document, or in the block when the
	// block was classified on its own. Zero when unknown.
	Line   int
	Reason string
	// Text is the offending text or delimiter
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	msg := "invalid markdown syntax"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	msg += ": " + e.Reason
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	return msg
}

// Is reports ErrSyntax as a match
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(line int, reason, text string) *SyntaxError {
	return &SyntaxError{Line: line, Reason: reason, Text: text}
}

// atLine shifts a block-relative line number to a document line.
// Errors without a position get the block's first line.
func atLine(err error, blockLine int) error {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	if se.Line > 0 {
		se.Line += blockLine - 1
	} else {
		se.Line = blockLine
	}
	return se
}
