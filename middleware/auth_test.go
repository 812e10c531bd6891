package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/utils"
)

func setupAuthTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.GET("/whoami", AuthMiddleware(db), func(c *gin.Context) {
		user := utils.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
	})
	return db, r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingHeaderIsUnauthorized(t *testing.T) {
	_, r := setupAuthTest(t)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is empty")
}

func TestMalformedHeaderIsUnauthorized(t *testing.T) {
	_, r := setupAuthTest(t)

	w := doRequest(r, "not-a-bearer-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is empty")
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	_, r := setupAuthTest(t)

	w := doRequest(r, "Bearer this.is.garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is invalid")
}

func TestUnknownSubjectIsUnauthorized(t *testing.T) {
	_, r := setupAuthTest(t)

	// Valid signature, but no user with that id exists.
	token, err := utils.GenerateAccessToken(42)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user is invalid")
}

func TestValidTokenResolvesIdentity(t *testing.T) {
	db, r := setupAuthTest(t)

	user := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateAccessToken(user.ID)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}
