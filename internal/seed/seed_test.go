package seed

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foryous/reviews-api/internal/domain/entity"
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
	return db
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunSeedsSampleUsersWithPosts(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	require.NoError(t, Run(db, dir, testLogger()))

	var users []entity.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, len(SampleUsers()))

	for _, u := range users {
		var count int64
		require.NoError(t, db.Model(&entity.Post{}).Where("user_id = ?", u.ID).Count(&count).Error)
		assert.GreaterOrEqual(t, count, int64(1))
		assert.LessOrEqual(t, count, int64(6))
	}

	// placeholder image exists so seeded post reads succeed
	_, err := os.Stat(filepath.Join(dir, PlaceholderImage))
	assert.NoError(t, err)
}

func TestRunTwiceSkipsDuplicates(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	require.NoError(t, Run(db, dir, testLogger()))

	var postsBefore int64
	require.NoError(t, db.Model(&entity.Post{}).Count(&postsBefore).Error)

	// second run must not crash and must not add rows
	require.NoError(t, Run(db, dir, testLogger()))

	var userCount int64
	require.NoError(t, db.Model(&entity.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(len(SampleUsers())), userCount)

	var postsAfter int64
	require.NoError(t, db.Model(&entity.Post{}).Count(&postsAfter).Error)
	assert.Equal(t, postsBefore, postsAfter)
}
