package entity

// SizePreset identifies a standard clothing size with known measurements.
type SizePreset string

const (
	SizeS   SizePreset = "S"
	SizeM   SizePreset = "M"
	SizeL   SizePreset = "L"
	SizeXL  SizePreset = "XL"
	SizeXXL SizePreset = "XXL"
)

// AllSizePresets lists the presets from smallest to largest.
func AllSizePresets() []SizePreset {
	return []SizePreset{SizeS, SizeM, SizeL, SizeXL, SizeXXL}
}

// String returns the string representation of the SizePreset.
func (s SizePreset) String() string {
	return string(s)
}

// IsValid checks if the SizePreset is a valid value.
func (s SizePreset) IsValid() bool {
	_, ok := sizePresetTable[s]

	return ok
}

// ParseSizePreset converts a string into a SizePreset, reporting whether
// the value is part of the closed set.
func ParseSizePreset(s string) (SizePreset, bool) {
	preset := SizePreset(s)

	return preset, preset.IsValid()
}

var sizePresetTable = map[SizePreset]Measurements{
	SizeS:   {Height: 160, Chest: 85, Waist: 68, Hips: 90, Shoulders: 38, ArmLength: 58, LegLength: 95},
	SizeM:   {Height: 170, Chest: 90, Waist: 75, Hips: 95, Shoulders: 40, ArmLength: 60, LegLength: 100},
	SizeL:   {Height: 175, Chest: 95, Waist: 82, Hips: 100, Shoulders: 42, ArmLength: 62, LegLength: 105},
	SizeXL:  {Height: 180, Chest: 100, Waist: 90, Hips: 105, Shoulders: 44, ArmLength: 64, LegLength: 110},
	SizeXXL: {Height: 185, Chest: 105, Waist: 98, Hips: 110, Shoulders: 46, ArmLength: 66, LegLength: 115},
}

// Apply merges the preset measurements into current, preserving the shoe
// size, which is not part of any standard clothing size.
func (s SizePreset) Apply(current Measurements) Measurements {
	preset, ok := sizePresetTable[s]
	if !ok {
		return current
	}
	preset.ShoeSize = current.ShoeSize

	return preset
}
