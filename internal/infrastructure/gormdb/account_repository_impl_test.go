package gormdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foryous/reviews-api/internal/domain/entity"
	"github.com/foryous/reviews-api/internal/domain/repository"
)

func TestAccountCreateAssignsID(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	a := &entity.Account{Name: "Thomas Edison", Email: "toby@example.com"}
	require.NoError(t, repo.Create(a))
	assert.NotZero(t, a.ID)
}

func TestAccountDuplicateEmailIsConflict(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	require.NoError(t, repo.Create(&entity.Account{Name: "Thomas Edison", Email: "toby@example.com"}))
	err := repo.Create(&entity.Account{Name: "Other Name", Email: "toby@example.com"})
	require.ErrorIs(t, err, repository.ErrConflict)

	// the first row survives the failed insert
	accounts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Thomas Edison", accounts[0].Name)
}

func TestAccountListReturnsEveryRow(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, repo.Create(&entity.Account{Name: "Someone", Email: email}))
	}
	accounts, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
}
