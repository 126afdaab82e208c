package value

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	signCode
	numberCode
	imaginaryUnitCode
)

// Token definitions
var (
	whitespaceToken    = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	signToken          = parsly.NewToken(signCode, "Sign", newSignMatcher())
	numberToken        = parsly.NewToken(numberCode, "Number", newNumberMatcher())
	imaginaryUnitToken = parsly.NewToken(imaginaryUnitCode, "ImaginaryUnit", newImaginaryUnitMatcher())
)

func newSignMatcher() parsly.Matcher {
	return &signMatcher{}
}

func newNumberMatcher() parsly.Matcher {
	return &numberMatcher{}
}

func newImaginaryUnitMatcher() parsly.Matcher {
	return &imaginaryUnitMatcher{}
}

// signMatcher matches a single '+' or '-'
type signMatcher struct{}

func (m *signMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	switch cursor.Input[cursor.Pos] {
	case '+', '-':
		return 1
	}
	return 0
}

// numberMatcher matches an unsigned decimal literal with an optional
// fraction and exponent (the exponent sign belongs to the literal, so that
// "1.2e-3" is consumed as a single token)
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	digits := 0
	seenDot := false

	for i := pos; i < size; i++ {
		c := input[i]
		if isDigit(c) {
			digits++
			matched++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			matched++
			continue
		}
		break
	}
	if digits == 0 {
		return 0
	}

	// optional exponent
	i := pos + matched
	if i < size && (input[i] == 'e' || input[i] == 'E') {
		j := i + 1
		if j < size && (input[j] == '+' || input[j] == '-') {
			j++
		}
		expDigits := 0
		for ; j < size && isDigit(input[j]); j++ {
			expDigits++
		}
		if expDigits > 0 {
			matched = j - pos
		}
	}
	return matched
}

// imaginaryUnitMatcher matches an imaginary suffix: "im", "i" or "j"
type imaginaryUnitMatcher struct{}

func (m *imaginaryUnitMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}
	switch input[pos] {
	case 'i', 'I':
		if pos+1 < size && (input[pos+1] == 'm' || input[pos+1] == 'M') {
			return 2
		}
		return 1
	case 'j', 'J':
		return 1
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
