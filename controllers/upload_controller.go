package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shutterfeed/api-go/config"
	"github.com/shutterfeed/api-go/utils"
)

const (
	maxPhotoSize      = int64(10 << 20) // 10 MB
	presignedExpiry   = 15 * time.Minute
	presignedExpirySecs = int(presignedExpiry / time.Second)
)

type UploadController struct {
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController(client *s3.Client, cfg *config.R2Config) *UploadController {
	return &UploadController{R2Client: client, R2Config: cfg}
}

// GetPresignedURL hands the client a short-lived PUT URL for a post photo.
// The returned key is what the post stores in Images and what gets removed
// from the bucket when the post is deleted.
func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.CurrentUser(c)
	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !strings.HasPrefix(req.ContentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are supported"})
		return
	}
	if req.FileSize > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size exceeds limit"})
		return
	}

	key := uc.generateFileKey(user.ID, req.FileName)

	presignClient := s3.NewPresignClient(uc.R2Client)
	presigned, err := presignClient.PresignPutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(presignedExpiry))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, PresignedURLResponse{
		UploadURL: presigned.URL,
		FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
		Key:       key,
		ExpiresIn: presignedExpirySecs,
	})
}

func (uc *UploadController) generateFileKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("posts/%d/%s%s", userID, uuid.New().String(), ext)
}
