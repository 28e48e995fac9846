package entity

// Measurements holds the body measurements used by the virtual mannequin.
// All values are centimeters except ShoeSize, which is a shoe size number.
type Measurements struct {
	Height    float64 `json:"height"`
	Chest     float64 `json:"chest"`
	Waist     float64 `json:"waist"`
	Hips      float64 `json:"hips"`
	Shoulders float64 `json:"shoulders"`
	ArmLength float64 `json:"armLength"`
	LegLength float64 `json:"legLength"`
	ShoeSize  float64 `json:"shoeSize"`
}

// DefaultMeasurements returns the measurements used before the user has
// saved any.
func DefaultMeasurements() Measurements {
	return Measurements{
		Height:    170,
		Chest:     90,
		Waist:     75,
		Hips:      95,
		Shoulders: 40,
		ArmLength: 60,
		LegLength: 100,
		ShoeSize:  40,
	}
}

// Validate reports the first field whose value falls outside its accepted
// range. It returns an empty string when every field is in range.
func (m Measurements) Validate() string {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"height", m.Height, 140, 220},
		{"chest", m.Chest, 60, 140},
		{"waist", m.Waist, 50, 130},
		{"hips", m.Hips, 60, 140},
		{"shoulders", m.Shoulders, 30, 60},
		{"armLength", m.ArmLength, 40, 90},
		{"legLength", m.LegLength, 60, 130},
		{"shoeSize", m.ShoeSize, 30, 50},
	}

	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return c.field
		}
	}

	return ""
}
