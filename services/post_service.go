package services

import (
	"context"
	"errors"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/storage"
	"github.com/shutterfeed/api-go/utils"
)

// PostService owns the post lifecycle and the like toggle. All lookups go
// through gorm's default scope, so soft-deleted posts are invisible to every
// operation here, including delete itself.
type PostService struct {
	db    *gorm.DB
	media storage.Remover
}

func NewPostService(db *gorm.DB, media storage.Remover) *PostService {
	return &PostService{db: db, media: media}
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (s *PostService) ListUserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("post not found")
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostService) CreatePost(ctx context.Context, userID uint, caption string, tags, images []string) (*models.Post, error) {
	post := models.Post{
		Caption: caption,
		Tags:    tags,
		Images:  images,
		UserID:  userID,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces the caption and tags in place. No edit history is kept.
func (s *PostService) UpdatePost(ctx context.Context, id, userID uint, caption string, tags []string) (*models.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(post, userID, "you cannot edit another user's post"); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"caption": caption}
	if tags != nil {
		updates["tags"] = pq.StringArray(tags)
	}
	if err := s.db.WithContext(ctx).Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost soft-deletes the post and best-effort removes its media from
// backing storage. The soft delete is guarded by the default scope, so a
// concurrent duplicate delete observes zero affected rows and fails NotFound.
func (s *PostService) DeletePost(ctx context.Context, id, userID uint) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(post, userID, "you cannot delete another user's post"); err != nil {
		return err
	}

	for _, key := range post.Images {
		if err := s.media.Remove(ctx, key); err != nil {
			log.Printf("failed to remove media %s for post %d: %v", key, post.ID, err)
		}
	}

	res := s.db.WithContext(ctx).Delete(&models.Post{}, post.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFound("post not found")
	}
	return nil
}

// LikePost creates the (user, post) like relation. The existence check gives
// the friendly duplicate error; under a concurrent duplicate add the unique
// index is what guarantees a single success, surfacing here as
// gorm.ErrDuplicatedKey.
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) (*models.Like, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	var existing models.Like
	err = s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", post.ID, userID).
		First(&existing).Error
	if err == nil {
		return nil, utils.BadRequest("post already liked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	like := models.Like{PostID: post.ID, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.BadRequest("post already liked")
		}
		return nil, err
	}
	return &like, nil
}

// UnlikePost hard-deletes the relation. Removal of a relation that does not
// exist is an error, never a silent no-op.
func (s *PostService) UnlikePost(ctx context.Context, postID, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.BadRequest("post is not liked")
	}
	return nil
}

func (s *PostService) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
