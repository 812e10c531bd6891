package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shutterfeed/api-go/services"
	"github.com/shutterfeed/api-go/utils"
)

type CommentController struct {
	Comments *services.CommentService
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{Comments: comments}
}

func (cc *CommentController) GetComments(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	comments, err := cc.Comments.ListComments(c.Request.Context(), postID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	user := utils.CurrentUser(c)
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.Comments.CreateComment(c.Request.Context(), postID, user.ID, req.Body)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.Comments.UpdateComment(c.Request.Context(), id, user.ID, req.Body)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := cc.Comments.DeleteComment(c.Request.Context(), id, user.ID); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// ReplyComment creates a reply under an existing comment. The reply's post is
// always the parent's post, regardless of the request body.
func (cc *CommentController) ReplyComment(c *gin.Context) {
	user := utils.CurrentUser(c)
	parentID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := cc.Comments.Reply(c.Request.Context(), parentID, user.ID, req.Body)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reply)
}
