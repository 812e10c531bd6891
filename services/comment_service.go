package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/utils"
)

// CommentService owns comments and reply chains. Comments soft-delete like
// posts; replies to a deleted parent intentionally remain visible (the
// reference is only validated at creation time).
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) CreateComment(ctx context.Context, postID, userID uint, body string) (*models.Comment, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("post not found")
		}
		return nil, err
	}

	comment := models.Comment{
		Body:   body,
		UserID: userID,
		PostID: post.ID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment replaces the body in place. No edit history is kept.
func (s *CommentService) UpdateComment(ctx context.Context, id, userID uint, body string) (*models.Comment, error) {
	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(comment, userID, "you cannot edit another user's comment"); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(comment).Update("body", body).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id, userID uint) error {
	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(comment, userID, "you cannot delete another user's comment"); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Delete(&models.Comment{}, comment.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFound("comment not found")
	}
	return nil
}

// Reply creates a comment whose parent must exist and not be soft-deleted at
// creation time. The reply inherits the parent's post id, never the caller's
// input, and records replyTo = parent id. The parent reference is never
// re-checked afterwards.
func (s *CommentService) Reply(ctx context.Context, parentID, userID uint, body string) (*models.Comment, error) {
	parent, err := s.GetComment(ctx, parentID)
	if err != nil {
		return nil, err
	}

	reply := models.Comment{
		Body:    body,
		UserID:  userID,
		PostID:  parent.PostID,
		ReplyTo: &parent.ID,
	}
	if err := s.db.WithContext(ctx).Create(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}
