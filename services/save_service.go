package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/utils"
)

// SaveService owns the bookmark toggle. Same discipline as likes: composite
// unique index is the authoritative duplicate guard, removal is a hard
// delete, re-saving after removal creates a distinct row.
type SaveService struct {
	db *gorm.DB
}

func NewSaveService(db *gorm.DB) *SaveService {
	return &SaveService{db: db}
}

func (s *SaveService) ListSaves(ctx context.Context, userID uint) ([]models.Save, error) {
	var saves []models.Save
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saves).Error
	return saves, err
}

func (s *SaveService) GetSave(ctx context.Context, id uint) (*models.Save, error) {
	var save models.Save
	if err := s.db.WithContext(ctx).First(&save, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("save not found")
		}
		return nil, err
	}
	return &save, nil
}

func (s *SaveService) SavePost(ctx context.Context, postID, userID uint) (*models.Save, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("post not found")
		}
		return nil, err
	}

	var existing models.Save
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", post.ID, userID).
		First(&existing).Error
	if err == nil {
		return nil, utils.BadRequest("post already saved")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	save := models.Save{PostID: post.ID, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&save).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.BadRequest("post already saved")
		}
		return nil, err
	}
	return &save, nil
}

func (s *SaveService) UnsavePost(ctx context.Context, postID, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Save{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.BadRequest("post is not saved")
	}
	return nil
}

// DeleteSaved removes a save record by its own id, owner-gated. Kept separate
// from UnsavePost: this is the "manage my bookmarks" path.
func (s *SaveService) DeleteSaved(ctx context.Context, id, userID uint) error {
	save, err := s.GetSave(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(save, userID, "you cannot delete another user's save"); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Save{}, save.ID).Error
}
