package application

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foryous/reviews-api/internal/infrastructure/gormdb"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormdb.AutoMigrate(db))
	return db
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(gormdb.NewAccountRepository(newTestDB(t)), testLogger())
}

func TestAccountCreateStoresValidInput(t *testing.T) {
	svc := newAccountService(t)

	res, err := svc.Create(CreateAccountInput{Name: "Thomas Edison", Email: "toby@example.com"})
	require.NoError(t, err)
	require.Equal(t, StatusStored, res.Status)
	require.NotNil(t, res.Account)
	assert.NotZero(t, res.Account.ID)
	assert.Equal(t, "Thomas Edison", res.Account.Name)
	assert.Equal(t, "toby@example.com", res.Account.Email)
}

func TestAccountCreateRejectsShortName(t *testing.T) {
	svc := newAccountService(t)

	for _, name := range []string{"", "T"} {
		res, err := svc.Create(CreateAccountInput{Name: name, Email: "toby@example.com"})
		require.NoError(t, err)
		assert.Equal(t, StatusInvalid, res.Status)
		assert.Equal(t, "Name is missing, or is less than 2 characters", res.Message)
	}

	// nothing was persisted
	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAccountCreateRejectsShortEmail(t *testing.T) {
	svc := newAccountService(t)

	res, err := svc.Create(CreateAccountInput{Name: "Thomas Edison", Email: "t"})
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, res.Status)
	assert.Equal(t, "User ID is missing, or is less than 2 characters", res.Message)
}

func TestAccountCreateDuplicateEmailIsConflict(t *testing.T) {
	svc := newAccountService(t)

	first, err := svc.Create(CreateAccountInput{Name: "Thomas Edison", Email: "toby@example.com"})
	require.NoError(t, err)
	require.Equal(t, StatusStored, first.Status)

	second, err := svc.Create(CreateAccountInput{Name: "Other Name", Email: "toby@example.com"})
	require.NoError(t, err)
	assert.Equal(t, StatusConflict, second.Status)
	assert.Equal(t, "Processed Other Name, either a format error or email toby@example.com is duplicate", second.Message)

	// first account remains queryable
	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Thomas Edison", list[0].Name)
}

func TestAccountCreateHashesOptionalPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(gormdb.NewAccountRepository(db), testLogger())

	res, err := svc.Create(CreateAccountInput{
		Name:        "Thomas Edison",
		Email:       "toby@example.com",
		PhoneNumber: "1234567890",
		Password:    "123Toby!",
		HasPassword: true,
	})
	require.NoError(t, err)
	require.Equal(t, StatusStored, res.Status)
	assert.Equal(t, "1234567890", res.Account.PhoneNumber)
	assert.True(t, res.Account.IsPassword("123Toby!"))
}
