package entity

// Language describes one supported interface language.
type Language struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Flag    string   `json:"flag"`
	Regions []string `json:"regions"` // Country codes that map to this language.
}

// DefaultLanguage is the fallback when detection finds no match.
const DefaultLanguage = "pt"
