package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClothingItem is a single garment in the wardrobe.
type ClothingItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Color    string    `json:"color"`
	Seasons  Seasons   `json:"seasons"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}

// Matches reports whether the item matches a case-insensitive search term
// against its name, color or any tag. An empty term matches everything.
func (i *ClothingItem) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(i.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(i.Color), term) {
		return true
	}
	for _, tag := range i.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}

	return false
}

// WornIn reports whether the item is suitable for the given season.
func (i *ClothingItem) WornIn(season Season) bool {
	return i.Seasons.Contains(season)
}
