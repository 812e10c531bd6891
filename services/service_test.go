package services

import (
	"context"
	"sync"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shutterfeed/api-go/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection so every goroutine sees the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.RefreshToken{}, &models.Post{},
		&models.Comment{}, &models.Like{}, &models.Save{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedPost(t *testing.T, db *gorm.DB, owner *models.User, images ...string) *models.Post {
	t.Helper()
	post := models.Post{
		Caption: "a caption",
		UserID:  owner.ID,
		Images:  pq.StringArray(images),
	}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

func seedComment(t *testing.T, db *gorm.DB, owner *models.User, post *models.Post, body string) *models.Comment {
	t.Helper()
	comment := models.Comment{
		Body:   body,
		UserID: owner.ID,
		PostID: post.ID,
	}
	require.NoError(t, db.Create(&comment).Error)
	return &comment
}

// fakeRemover records removed keys; used to assert the media cleanup side
// effect without hitting object storage.
type fakeRemover struct {
	mu      sync.Mutex
	removed []string
	err     error
}

func (f *fakeRemover) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeRemover) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removed...)
}
