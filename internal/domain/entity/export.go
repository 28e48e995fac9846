package entity

import "time"

// WardrobeStats summarizes the wardrobe contents. Categories always holds
// an entry for every category, zero-valued when empty.
type WardrobeStats struct {
	TotalItems   int              `json:"totalItems"`
	TotalOutfits int              `json:"totalOutfits"`
	Categories   map[Category]int `json:"categories"`
}

// ExportDocument is the full portable snapshot of the wardrobe state.
// Import consumes the same shape and replaces state wholesale.
type ExportDocument struct {
	Measurements Measurements   `json:"measurements"`
	Stats        WardrobeStats  `json:"stats"`
	ExportDate   time.Time      `json:"exportDate"`
	Items        []ClothingItem `json:"wardrobeItems"`
	Outfits      []Outfit       `json:"outfits"`
}

// SuggestedFilename names an export file after its export date.
func (d *ExportDocument) SuggestedFilename() string {
	return "mydrip-export-" + d.ExportDate.Format("2006-01-02") + ".json"
}
