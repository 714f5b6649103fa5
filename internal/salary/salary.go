// Package salary parses free-text salary ranges into numeric bounds.
//
// Job postings carry salary as free text ("$100k - $140k", "120000",
// "$95,000"). Listings and filters need numbers, so the text is parsed
// best-effort at write time; a failed parse is reported as an error and the
// caller stores NULL bounds instead of garbage.
package salary

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnparseable is returned when no numeric figure can be extracted.
var ErrUnparseable = errors.New("salary text contains no parseable figure")

// bandPercentage is the spread applied around a single salary figure.
const bandPercentage = 0.25

// Range is the numeric interpretation of a salary text.
type Range struct {
	Min int
	Max int
}

// ParseRange interprets a free-text salary string.
//
// "min - max" forms split on the hyphen and parse each side independently;
// a single figure gets a ±25% band around it. A "k"/"K" suffix multiplies by
// a thousand, currency symbols and thousands separators are ignored.
func ParseRange(text string) (Range, error) {
	if minStr, maxStr, ok := strings.Cut(text, "-"); ok {
		min, err := parseFigure(minStr)
		if err != nil {
			return Range{}, err
		}
		max, err := parseFigure(maxStr)
		if err != nil {
			return Range{}, err
		}
		return Range{Min: min, Max: max}, nil
	}

	figure, err := parseFigure(text)
	if err != nil {
		return Range{}, err
	}
	return Range{
		Min: int(math.Round(float64(figure) * (1 - bandPercentage))),
		Max: int(math.Round(float64(figure) * (1 + bandPercentage))),
	}, nil
}

// parseFigure extracts one salary figure from text like "$100k" or "95,000".
func parseFigure(text string) (int, error) {
	var digits strings.Builder
	thousands := false
	for _, r := range strings.TrimSpace(text) {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case (r == 'k' || r == 'K') && digits.Len() > 0:
			thousands = true
		}
	}
	if digits.Len() == 0 {
		return 0, ErrUnparseable
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, ErrUnparseable
	}
	if thousands {
		n *= 1000
	}
	return n, nil
}
