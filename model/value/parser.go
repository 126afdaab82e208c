package value

import (
	"fmt"
	"strconv"

	"github.com/viant/parsly"
)

// FormatError describes a malformed textual scalar literal
type FormatError struct {
	Input    string
	Position int
	Message  string
}

// Error implements error
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid scalar literal %q at position %v: %v", e.Input, e.Position, e.Message)
}

// NewFormatError creates a format error for the given input
func NewFormatError(input string, position int, message string) *FormatError {
	return &FormatError{Input: input, Position: position, Message: message}
}

// term is one signed component of a complex literal
type term struct {
	value     float64
	imaginary bool
}

// Parse parses a textual scalar literal: a plain real number, a purely
// imaginary number ("3.4i") or a real±imaginary pair ("1.2+3.4i"). The
// imaginary suffix may be spelled "i", "j" or "im"; whitespace around the
// middle sign is tolerated.
func Parse(input string) (Scalar, error) {
	cursor := parsly.NewCursor("", []byte(input), 0)

	first, err := parseTerm(cursor, input, false)
	if err != nil {
		return 0, err
	}

	matched := cursor.MatchAfterOptional(whitespaceToken, signToken)
	if matched.Code != signToken.Code {
		if pos := skipTrailing(cursor); pos != -1 {
			return 0, NewFormatError(input, pos, "unexpected trailing input")
		}
		if first.imaginary {
			return New(0, first.value), nil
		}
		return Real(first.value), nil
	}
	negative := matched.Text(cursor) == "-"

	second, err := parseTerm(cursor, input, true)
	if err != nil {
		return 0, err
	}
	if negative {
		second.value = -second.value
	}
	if pos := skipTrailing(cursor); pos != -1 {
		return 0, NewFormatError(input, pos, "unexpected trailing input")
	}
	if first.imaginary == second.imaginary {
		return 0, NewFormatError(input, cursor.Pos, "exactly one component must carry the imaginary unit")
	}
	if first.imaginary {
		return New(second.value, first.value), nil
	}
	return New(first.value, second.value), nil
}

// parseTerm consumes an optionally signed number with an optional imaginary
// suffix; afterSign suppresses the leading sign (it was consumed as the
// component separator).
func parseTerm(cursor *parsly.Cursor, input string, afterSign bool) (term, error) {
	negative := false
	if !afterSign {
		matched := cursor.MatchAfterOptional(whitespaceToken, signToken)
		if matched.Code == signToken.Code {
			negative = matched.Text(cursor) == "-"
		}
	}
	matched := cursor.MatchAfterOptional(whitespaceToken, numberToken)
	if matched.Code != numberToken.Code {
		return term{}, NewFormatError(input, cursor.Pos, "expected number")
	}
	text := matched.Text(cursor)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return term{}, NewFormatError(input, cursor.Pos, err.Error())
	}
	if negative {
		v = -v
	}
	result := term{value: v}
	matched = cursor.MatchOne(imaginaryUnitToken)
	if matched.Code == imaginaryUnitToken.Code {
		result.imaginary = true
	}
	return result, nil
}

// skipTrailing consumes trailing whitespace and returns the position of the
// first unconsumed byte, or -1 when the cursor reached the end of input.
func skipTrailing(cursor *parsly.Cursor) int {
	cursor.MatchOne(whitespaceToken)
	if cursor.Pos < cursor.InputSize {
		return cursor.Pos
	}
	return -1
}
