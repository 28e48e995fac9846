package entity

// referenceHeight is the height that renders the mannequin at scale 1.0.
const referenceHeight = 170

// Body segments that do not follow any single measurement. Renderers draw
// them as-is and apply Scale as a whole-figure transform.
const (
	figureHeadRadius  = 12
	figureNeckLength  = 8
	figureTorsoLength = 60
)

// Figure describes the proportions of the virtual mannequin derived from a
// set of measurements. All values are render units for a neutral front
// view, before scaling: the renderer applies Scale as a single transform
// over the whole figure.
type Figure struct {
	Scale        float64 `json:"scale"`
	HeadRadius   float64 `json:"headRadius"`
	NeckLength   float64 `json:"neckLength"`
	TorsoLength  float64 `json:"torsoLength"`
	LegLength    float64 `json:"legLength"`
	ShoulderSpan float64 `json:"shoulderSpan"`
	ChestSpan    float64 `json:"chestSpan"`
	WaistSpan    float64 `json:"waistSpan"`
	HipSpan      float64 `json:"hipSpan"`
}

// FigureFrom computes mannequin proportions from measurements. Scale grows
// linearly with height: a 170cm body renders at 1.0 and a 340cm body at
// exactly 2.0. Spans stay unscaled: girth measurements widen by 1.2 and the
// shoulder span is always exactly double the shoulder width input.
func FigureFrom(m Measurements) Figure {
	return Figure{
		Scale:        m.Height / referenceHeight,
		HeadRadius:   figureHeadRadius,
		NeckLength:   figureNeckLength,
		TorsoLength:  figureTorsoLength,
		LegLength:    m.LegLength,
		ShoulderSpan: m.Shoulders * 2,
		ChestSpan:    m.Chest * 1.2,
		WaistSpan:    m.Waist * 1.2,
		HipSpan:      m.Hips * 1.2,
	}
}
