// Package upload turns an uploaded text or CSV file into a numeric sequence.
package upload

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	stdunicode "unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"algotrace/pkg/traceerrors"
)

// decoder reads UTF-8, or UTF-16 when the file starts with a BOM, and drops
// bytes that do not decode.
func decoder() transform.Transformer {
	return transform.Chain(
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
}

// Parse reads numbers separated by commas and/or whitespace.
func Parse(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(transform.NewReader(r, decoder()))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return ParseString(string(data))
}

func ParseString(content string) ([]float64, error) {
	tokens := strings.FieldsFunc(content, isSeparator)
	if len(tokens) == 0 {
		return nil, traceerrors.ErrNoNumbers
	}

	numbers := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", traceerrors.ErrInvalidNumber, tok)
		}
		numbers = append(numbers, v)
	}
	return numbers, nil
}

func isSeparator(r rune) bool {
	return r == ',' || stdunicode.IsSpace(r)
}
