// Package entity contains the core business objects of the project.
package entity

import "slices"

// Category represents the closed set of wardrobe item categories.
type Category string

const (
	// CategoryTop indicates shirts, blouses and similar upper-body garments.
	CategoryTop Category = "top"
	// CategoryBottom indicates trousers, skirts and similar lower-body garments.
	CategoryBottom Category = "bottom"
	// CategoryShoes indicates footwear.
	CategoryShoes Category = "shoes"
	// CategoryAccessories indicates bags, belts, jewellery and the like.
	CategoryAccessories Category = "accessories"
)

// AllCategories lists every valid category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryTop,
		CategoryBottom,
		CategoryShoes,
		CategoryAccessories,
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	return slices.Contains(AllCategories(), c)
}

// ParseCategory converts a string into a Category, reporting whether the
// value is part of the closed set.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)

	return c, c.IsValid()
}
