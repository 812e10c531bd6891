package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shutterfeed/api-go/config"
	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/utils"
)

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=20"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	password := string(hashed)

	user := models.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.ToLower(req.Email),
		Password:  &password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Provider:  "email",
	}

	if err := ac.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already exists"})
		return
	}

	ac.respondWithTokens(c, &user, http.StatusCreated)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.WithContext(c.Request.Context()).
		Where("email = ?", strings.ToLower(req.Email)).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if user.Password == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	ac.respondWithTokens(c, &user, http.StatusOK)
}

// GoogleLogin verifies a Google ID token and signs the matching user in,
// creating the account on first login.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := ac.GoogleConfig.VerifyIDToken(req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid google token"})
		return
	}

	var user models.User
	err = ac.DB.WithContext(c.Request.Context()).
		Where("google_id = ?", info.ID).
		First(&user).Error
	if err != nil {
		user = models.User{
			Username:      strings.Split(info.Email, "@")[0],
			Email:         strings.ToLower(info.Email),
			FirstName:     info.GivenName,
			LastName:      info.FamilyName,
			Avatar:        info.Picture,
			GoogleID:      &info.ID,
			Provider:      "google",
			EmailVerified: info.VerifiedEmail,
		}
		if err := ac.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not create user"})
			return
		}
	}

	ac.respondWithTokens(c, &user, http.StatusOK)
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var stored models.RefreshToken
	if err := ac.DB.WithContext(c.Request.Context()).
		Where("token = ?", req.RefreshToken).
		First(&stored).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	if time.Now().After(stored.ExpirationDate) {
		ac.DB.Delete(&stored)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired"})
		return
	}

	var user models.User
	if err := ac.DB.WithContext(c.Request.Context()).First(&user, stored.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user is invalid"})
		return
	}

	// Rotate: the old refresh token row is reused for the new token.
	newRefresh, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	stored.Token = newRefresh
	stored.ExpirationDate = time.Now().Add(utils.RefreshTokenTTL)
	ac.DB.Save(&stored)

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": newRefresh,
		"user":          publicUser(&user),
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user is invalid"})
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

func (ac *AuthController) respondWithTokens(c *gin.Context, user *models.User, status int) {
	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	ac.DB.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(utils.RefreshTokenTTL),
	})

	c.JSON(status, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          publicUser(user),
	})
}

func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"avatar":   user.Avatar,
		"bio":      user.Bio,
	}
}
