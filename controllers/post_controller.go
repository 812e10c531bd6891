package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shutterfeed/api-go/services"
	"github.com/shutterfeed/api-go/utils"
)

type PostController struct {
	Posts *services.PostService
}

type CreatePostRequest struct {
	Caption string   `json:"caption" binding:"required"`
	Tags    []string `json:"tags"`
	Images  []string `json:"images"`
}

type UpdatePostRequest struct {
	Caption string   `json:"caption" binding:"required"`
	Tags    []string `json:"tags"`
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{Posts: posts}
}

// GetPosts godoc
// @Summary List posts
// @Description Returns all posts, newest first; soft-deleted posts are excluded
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.Posts.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetUserPosts(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	posts, err := pc.Posts.ListUserPosts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPostDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	post, err := pc.Posts.GetPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Posts.CreatePost(c.Request.Context(), user.ID, req.Caption, req.Tags, req.Images)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Posts.UpdatePost(c.Request.Context(), id, user.ID, req.Caption, req.Tags)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Soft-deletes an owned post and removes its media from storage
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := pc.Posts.DeletePost(c.Request.Context(), id, user.ID); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (pc *PostController) LikePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	like, err := pc.Posts.LikePost(c.Request.Context(), id, user.ID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, like)
}

func (pc *PostController) UnlikePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := pc.Posts.UnlikePost(c.Request.Context(), id, user.ID); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post unliked"})
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}
