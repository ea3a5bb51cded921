package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountProjectionOmitsPassword(t *testing.T) {
	a := Account{ID: 3, Name: "Thomas Edison", Email: "toby@example.com", PhoneNumber: "1234567890"}

	p := a.Projection()
	assert.Equal(t, uint(3), p.ID)
	assert.Equal(t, "toby@example.com", p.Email)
	assert.Equal(t, "1234567890", p.PhoneNumber)
}

func TestAccountSetPassword(t *testing.T) {
	a := Account{Name: "Thomas Edison", Email: "toby@example.com"}
	assert.NoError(t, a.SetPassword("123Toby!"))
	assert.NotEmpty(t, a.PasswordHash)
	assert.NotEqual(t, "123Toby!", a.PasswordHash)
	assert.True(t, a.IsPassword("123Toby!"))
	assert.False(t, a.IsPassword("wrong"))
}
