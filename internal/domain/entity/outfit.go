package entity

import (
	"time"

	"github.com/google/uuid"
)

// Outfit is a named combination of clothing items. Items are stored as
// value snapshots; removing an item from the wardrobe later does not
// mutate outfits that reference it.
type Outfit struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Items     []ClothingItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	Rating    int            `json:"rating,omitempty"` // 0 means unrated.
	Notes     string         `json:"notes,omitempty"`
}

// WornIn reports whether any item of the outfit suits the given season.
func (o *Outfit) WornIn(season Season) bool {
	for i := range o.Items {
		if o.Items[i].WornIn(season) {
			return true
		}
	}

	return false
}
