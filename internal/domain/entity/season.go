package entity

import "slices"

// Season represents the closed set of seasons an item can be worn in.
type Season string

const (
	// SeasonSpring indicates the spring season.
	SeasonSpring Season = "spring"
	// SeasonSummer indicates the summer season.
	SeasonSummer Season = "summer"
	// SeasonAutumn indicates the autumn season.
	SeasonAutumn Season = "autumn"
	// SeasonWinter indicates the winter season.
	SeasonWinter Season = "winter"
)

// AllSeasons lists every valid season in calendar order.
func AllSeasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// String returns the string representation of the Season.
func (s Season) String() string {
	return string(s)
}

// IsValid checks if the Season is a valid value.
func (s Season) IsValid() bool {
	return slices.Contains(AllSeasons(), s)
}

// ParseSeason converts a string into a Season, reporting whether the
// value is part of the closed set.
func ParseSeason(s string) (Season, bool) {
	season := Season(s)

	return season, season.IsValid()
}

// Seasons is a slice of Season for convenience.
type Seasons []Season

// Contains checks if the seasons slice contains a specific season.
func (ss Seasons) Contains(season Season) bool {
	return slices.Contains(ss, season)
}

// Valid reports whether every season in the slice is part of the closed set.
func (ss Seasons) Valid() bool {
	for _, s := range ss {
		if !s.IsValid() {
			return false
		}
	}

	return true
}
