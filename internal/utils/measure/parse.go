package measure

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWidth returns the spine width in millimeters of a "L x W x H mm" string.
func ParseWidth(dimensions string) (int, error) {
	d, err := ParseDimensions(dimensions)
	if err != nil {
		return 0, err
	}
	return d.Width, nil
}

// ParseDimensions reads a "L x W x H mm" string. The width token is mandatory;
// the other extents are read on a best effort basis.
func ParseDimensions(dimensions string) (Dimensions, error) {
	if strings.TrimSpace(dimensions) == "" {
		return Dimensions{}, errEmpty
	}
	tokens := strings.Split(dimensions, DimensionSeparator)
	if len(tokens) <= WidthToken {
		return Dimensions{}, fmt.Errorf("%w: %q", errMissingToken, dimensions)
	}

	width, err := parseExtent(tokens[WidthToken])
	if err != nil {
		return Dimensions{}, fmt.Errorf("width of %q: %w", dimensions, err)
	}
	d := Dimensions{Width: width}
	if v, err := parseExtent(tokens[0]); err == nil {
		d.Length = v
	}
	if len(tokens) > 2 {
		if v, err := parseExtent(tokens[2]); err == nil {
			d.Height = v
		}
	}
	return d, nil
}

// ParseWeight returns the weight in grams of a "350g" string. A bare number is
// taken as grams.
func ParseWeight(weight string) (int, error) {
	s := strings.TrimSpace(weight)
	if s == "" {
		return 0, errEmpty
	}
	v, err := parseNonNegative(strings.TrimRight(s, UnitGrams+" "))
	if err != nil {
		return 0, fmt.Errorf("weight %q: %w", weight, err)
	}
	return v, nil
}

// parseExtent strips spaces and the millimeter suffix from a single token.
func parseExtent(token string) (int, error) {
	return parseNonNegative(strings.Trim(token, " "+UnitMillimeters))
}

func parseNonNegative(s string) (int, error) {
	if s == "" {
		return 0, errEmpty
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		if strings.IndexFunc(s, isLetter) >= 0 {
			return 0, fmt.Errorf("%w: %q", errUnknownUnit, s)
		}
		return 0, fmt.Errorf("%w: %q", errNotInteger, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", errNegative, v)
	}
	return v, nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
