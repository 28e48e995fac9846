package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanCreateOutfit(t *testing.T) {
	cases := []struct {
		name    string
		plan    Plan
		created int
		allowed bool
	}{
		{"free with no outfits", PlanFree, 0, true},
		{"free below limit", PlanFree, FreeOutfitLimit - 1, true},
		{"free at limit", PlanFree, FreeOutfitLimit, false},
		{"free far past limit", PlanFree, 1000, false},
		{"premium with no outfits", PlanPremium, 0, true},
		{"premium far past free limit", PlanPremium, 1000, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			user := &User{Plan: c.plan, OutfitsCreated: c.created}

			permission := user.CanCreateOutfit()
			assert.Equal(t, c.allowed, permission.Allowed)
			if c.allowed {
				assert.Empty(t, permission.Reason)
			} else {
				assert.NotEmpty(t, permission.Reason)
			}
		})
	}
}

func TestUser_IsPremium(t *testing.T) {
	assert.False(t, (&User{Plan: PlanFree}).IsPremium())
	assert.True(t, (&User{Plan: PlanPremium}).IsPremium())
}
