// Package measure parses the free-form physical attributes found in catalog
// records. Dimensions come as "L x W x H mm" strings and weights as "350g";
// only the spine width (the second token) and the weight in grams are used.
package measure

import "errors"

var (
	errEmpty        = errors.New("empty measurement")
	errMissingToken = errors.New("dimensions have no width token")
	errNotInteger   = errors.New("measurement is not an integer")
	errNegative     = errors.New("measurement must not be negative")
	errUnknownUnit  = errors.New("measurement has an unknown unit")
)

// Unit suffixes accepted by the parsers.
const (
	UnitMillimeters = "mm"
	UnitGrams       = "g"

	// DimensionSeparator splits the L x W x H tokens.
	DimensionSeparator = "x"

	// WidthToken is the index of the spine width among the dimension tokens.
	WidthToken = 1
)

// Dimensions holds the three parsed extents of an item, in millimeters.
// Only Width is required; Length and Height are zero when they cannot be read.
type Dimensions struct {
	Length int
	Width  int
	Height int
}
