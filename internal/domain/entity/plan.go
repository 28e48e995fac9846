package entity

// Plan represents the subscription plan of the account.
type Plan string

const (
	// PlanFree is the default plan with a limited number of outfits.
	PlanFree Plan = "free"
	// PlanPremium removes the outfit creation limit.
	PlanPremium Plan = "premium"
)

// FreeOutfitLimit is the lifetime number of outfits a free account may create.
const FreeOutfitLimit = 3

// String returns the string representation of the Plan.
func (p Plan) String() string {
	return string(p)
}

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPremium:
		return true
	default:
		return false
	}
}
