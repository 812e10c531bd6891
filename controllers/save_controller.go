package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shutterfeed/api-go/services"
	"github.com/shutterfeed/api-go/utils"
)

type SaveController struct {
	Saves *services.SaveService
}

func NewSaveController(saves *services.SaveService) *SaveController {
	return &SaveController{Saves: saves}
}

func (sc *SaveController) GetSaves(c *gin.Context) {
	user := utils.CurrentUser(c)
	saves, err := sc.Saves.ListSaves(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saves)
}

func (sc *SaveController) SavePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	save, err := sc.Saves.SavePost(c.Request.Context(), postID, user.ID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, save)
}

func (sc *SaveController) UnsavePost(c *gin.Context) {
	user := utils.CurrentUser(c)
	postID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := sc.Saves.UnsavePost(c.Request.Context(), postID, user.ID); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post unsaved"})
}

func (sc *SaveController) DeleteSaved(c *gin.Context) {
	user := utils.CurrentUser(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid save id"})
		return
	}

	if err := sc.Saves.DeleteSaved(c.Request.Context(), id, user.ID); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "save deleted"})
}
