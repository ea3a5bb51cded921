package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProjectionTruncatesActivity(t *testing.T) {
	u := User{ID: 1, Name: "Lina Awad", Rating: "emirates", Activity: "four seasons hotel stay", Review: "Super Good", Recommend: "yes"}

	p := u.Projection()
	assert.Equal(t, "four seaso...", p.Activity)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "Lina Awad", p.Name)
}

func TestUserProjectionShortActivityKeepsEllipsis(t *testing.T) {
	u := User{Activity: "spa"}
	assert.Equal(t, "spa...", u.Projection().Activity)
}
