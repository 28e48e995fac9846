package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account record of the wardrobe. The storage layer keeps
// at most one user at a time; its presence doubles as the session marker.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Plan           Plan      `json:"plan"`
	OutfitsCreated int       `json:"outfitsCreated"` // Lifetime counter, never decremented.
	CreatedAt      time.Time `json:"createdAt"`
}

// IsPremium reports whether the account is on the premium plan.
func (u *User) IsPremium() bool {
	return u.Plan == PlanPremium
}

// OutfitPermission is the result of the outfit creation gate.
type OutfitPermission struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CanCreateOutfit evaluates the plan gate against the lifetime counter.
// Premium accounts are never limited.
func (u *User) CanCreateOutfit() OutfitPermission {
	if u.IsPremium() {
		return OutfitPermission{Allowed: true}
	}
	if u.OutfitsCreated < FreeOutfitLimit {
		return OutfitPermission{Allowed: true}
	}

	return OutfitPermission{Allowed: false, Reason: "free plan outfit limit reached"}
}
