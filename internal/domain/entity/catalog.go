package entity

// CatalogProduct is a product returned by the external catalog search.
type CatalogProduct struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	ImageURL string   `json:"imageUrl"`
	Category Category `json:"category"`
	Rating   float64  `json:"rating"`
	Orders   int      `json:"orders"`
	StoreURL string   `json:"storeUrl"`
	Store    string   `json:"store"`
}
