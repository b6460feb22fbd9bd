package model

import "strings"

// Category is the qualitative label derived from the numeric quality.
type Category string

// Categories in ascending order of quality.
const (
	CategoryPoor      Category = "Poor"
	CategoryAverage   Category = "Average"
	CategoryGood      Category = "Good"
	CategoryExcellent Category = "Excellent"
)

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPoor, CategoryAverage, CategoryGood, CategoryExcellent:
		return true
	}
	return false
}

// Rank returns the ordinal position of the category (Poor = 0).
// Unknown categories rank -1.
func (c Category) Rank() int {
	switch c {
	case CategoryPoor:
		return 0
	case CategoryAverage:
		return 1
	case CategoryGood:
		return 2
	case CategoryExcellent:
		return 3
	default:
		return -1
	}
}

// CategoryFor classifies a rounded quality value. Boundaries are
// left-inclusive: 4.5 is Average, 5.5 is Good, 6.5 is Excellent.
func CategoryFor(quality float64) Category {
	switch {
	case quality < 4.5:
		return CategoryPoor
	case quality < 5.5:
		return CategoryAverage
	case quality < 6.5:
		return CategoryGood
	default:
		return CategoryExcellent
	}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range []Category{CategoryPoor, CategoryAverage, CategoryGood, CategoryExcellent} {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}
