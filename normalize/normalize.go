// Package normalize rewrites raw cell text into cleaned values using
// type-specific OCR error-correction rules.
//
// Normalization is a pure, total function: unrecognized patterns pass
// through unchanged, so repair is best-effort and never blocks the pipeline.
// Within a cell, character-confusable substitution runs before format
// standardization, since substitution may create the numeric shape the later
// step depends on. Applying Normalize twice yields the same value.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scantab/model"
)

// Normalizer repairs OCR-corrupted cell values according to the column's
// inferred data type. The confusable-character table and the token remap
// table come from configuration; the zero tables disable the corresponding
// repairs.
type Normalizer struct {
	confusables map[rune]rune
	tokenRemaps map[string]string
}

// New creates a normalizer with the default correction tables.
func New() *Normalizer {
	return NewWithTables(DefaultConfusables(), DefaultTokenRemaps())
}

// NewWithTables creates a normalizer with explicit correction tables.
func NewWithTables(confusables map[rune]rune, tokenRemaps map[string]string) *Normalizer {
	return &Normalizer{
		confusables: confusables,
		tokenRemaps: tokenRemaps,
	}
}

// DefaultConfusables returns the built-in single-character OCR confusion
// table for digit-expected positions.
func DefaultConfusables() map[rune]rune {
	return map[rune]rune{
		'O': '0', 'o': '0',
		'I': '1', 'l': '1',
		'S': '5', 's': '5',
		'B': '8',
		'G': '6',
		'g': '9',
	}
}

// DefaultTokenRemaps returns the built-in multi-character identifier
// corrections, matched as whole tokens between hyphens.
func DefaultTokenRemaps() map[string]string {
	return map[string]string{
		"SSI": "551",
		"I2":  "12",
		"0S":  "05",
	}
}

var decimalPattern = regexp.MustCompile(`^\d+([.,]\d+)?$`)

// Normalize rewrites one cell's raw text using the rules for the given data
// type. It never fails; values it cannot repair come back with at most
// surrounding whitespace trimmed.
func (n *Normalizer) Normalize(raw string, dt model.DataType) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	switch dt {
	case model.TypeNumeric:
		return n.normalizeNumeric(trimmed)
	case model.TypeIdentifier:
		return n.normalizeIdentifier(trimmed)
	case model.TypeTolerance:
		return n.normalizeTolerance(trimmed)
	}
	return norm.NFKC.String(trimmed)
}

// normalizeNumeric substitutes confusable characters only when the result
// parses as a decimal number; ambiguous strings pass through untouched.
func (n *Normalizer) normalizeNumeric(value string) string {
	candidate := n.substituteAll(value)
	if isDecimal(candidate) {
		return candidate
	}
	return value
}

// normalizeIdentifier applies whole-token remaps between hyphens, then
// confusable substitution at positions surrounded by digits so genuine
// letters in codes stay intact.
func (n *Normalizer) normalizeIdentifier(value string) string {
	tokens := strings.Split(value, "-")
	for i, token := range tokens {
		if repl, ok := n.tokenRemaps[token]; ok {
			tokens[i] = repl
		}
	}
	return n.substituteDigitContext(strings.Join(tokens, "-"))
}

// normalizeTolerance repairs the numeric part first, then standardizes the
// sign: a leading t (the usual OCR reading of ±) becomes ± when it precedes
// a decimal number. A genuine leading + is preserved. Unparseable strings
// pass through untouched.
func (n *Normalizer) normalizeTolerance(value string) string {
	sign, rest := splitSign(value)

	candidate := strings.ReplaceAll(n.substituteAll(rest), ",", ".")
	if !isDecimal(candidate) {
		return value
	}

	switch sign {
	case "t", "T":
		sign = "±"
	}
	return sign + candidate
}

// substituteAll replaces every confusable character in the string.
func (n *Normalizer) substituteAll(value string) string {
	return strings.Map(func(r rune) rune {
		if repl, ok := n.confusables[r]; ok {
			return repl
		}
		return r
	}, value)
}

// substituteDigitContext replaces confusable characters only where both
// neighbors are digits.
func (n *Normalizer) substituteDigitContext(value string) string {
	runes := []rune(value)
	for i := 1; i < len(runes)-1; i++ {
		repl, ok := n.confusables[runes[i]]
		if !ok {
			continue
		}
		if isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			runes[i] = repl
		}
	}
	return string(runes)
}

// splitSign splits a leading sign token (±, +, t or T) from the rest of the
// value. Returns an empty sign when none is present.
func splitSign(value string) (sign, rest string) {
	for _, prefix := range []string{"±", "+", "t", "T"} {
		if strings.HasPrefix(value, prefix) {
			return prefix, value[len(prefix):]
		}
	}
	return "", value
}

func isDecimal(value string) bool {
	return decimalPattern.MatchString(value)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
