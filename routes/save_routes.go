package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shutterfeed/api-go/controllers"
)

func SetupSaveRoutes(protected *gin.RouterGroup, saveController *controllers.SaveController) {
	saves := protected.Group("/saves")
	{
		saves.GET("", saveController.GetSaves)
		saves.DELETE("/:id", saveController.DeleteSaved)
	}
}
