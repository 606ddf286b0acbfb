// Package classify infers the semantic data type of a table column from its
// cell values.
//
// Classification is an ordered predicate chain over the column's non-empty
// values, first majority wins: Tolerance, then Numeric, then Identifier,
// with Text as the total fallback. Tolerance and identifier shapes are
// checked before generic numeric because their lexical signatures are easy
// to mask otherwise; stripping the sign off "±0.05" first would make it
// numeric. Classification never fails: empty input is Text.
package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/scantab/model"
)

var (
	tolerancePattern = regexp.MustCompile(`^(±|\+|[tT])\d+([.,]\d+)?$`)
	numericPattern   = regexp.MustCompile(`^\d+([.,]\d+)?$`)
	codePattern      = regexp.MustCompile(`^[A-Z0-9-]+$`)
	letterPattern    = regexp.MustCompile(`[A-Z]`)
	alphaRunPattern  = regexp.MustCompile(`[A-Z]{5,}`)
)

// Identifier codes shorter or longer than this range are treated as text.
const (
	minIdentifierLen = 2
	maxIdentifierLen = 32
)

// Classify returns the data type shared by a column's values. The decision
// is a majority vote over the non-empty values, evaluated in priority order:
// Tolerance, Numeric, Identifier, then Text as the fallback.
func Classify(values []string) model.DataType {
	var nonEmpty []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}
	if len(nonEmpty) == 0 {
		return model.TypeText
	}

	tolerance, numeric, identifier := 0, 0, 0
	for _, v := range nonEmpty {
		if IsTolerance(v) {
			tolerance++
		}
		if IsNumeric(v) {
			numeric++
		}
		if IsIdentifier(v) {
			identifier++
		}
	}

	n := len(nonEmpty)
	switch {
	case majority(tolerance, n):
		return model.TypeTolerance
	case majority(numeric, n):
		return model.TypeNumeric
	case majority(identifier, n):
		return model.TypeIdentifier
	}
	return model.TypeText
}

// majority reports whether count is strictly more than half of n.
func majority(count, n int) bool {
	return count*2 > n
}

// IsTolerance reports whether a value has a tolerance shape: a sign token
// (±, +, or the common OCR corruptions t and T) followed by a decimal
// number.
func IsTolerance(value string) bool {
	return tolerancePattern.MatchString(value)
}

// IsNumeric reports whether a value, with whitespace stripped, parses as a
// decimal number with at most one embedded separator.
func IsNumeric(value string) bool {
	stripped := strings.Join(strings.Fields(value), "")
	return numericPattern.MatchString(stripped)
}

// IsIdentifier reports whether a value looks like an alphanumeric code:
// uppercase letters, digits and hyphens only, bounded length, at least one
// letter, and no long purely alphabetic word (so ordinary words in caps do
// not read as codes).
func IsIdentifier(value string) bool {
	if len(value) < minIdentifierLen || len(value) > maxIdentifierLen {
		return false
	}
	if !codePattern.MatchString(value) {
		return false
	}
	if !letterPattern.MatchString(value) {
		return false
	}
	return !alphaRunPattern.MatchString(value)
}
