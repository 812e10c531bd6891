package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shutterfeed/api-go/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController, commentController *controllers.CommentController, saveController *controllers.SaveController) {
	posts := protected.Group("/posts")
	{
		posts.GET("", postController.GetPosts)
		posts.POST("", postController.CreatePost)
		posts.GET("/:id", postController.GetPostDetail)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)

		posts.POST("/:id/like", postController.LikePost)
		posts.DELETE("/:id/like", postController.UnlikePost)
		posts.POST("/:id/save", saveController.SavePost)
		posts.DELETE("/:id/save", saveController.UnsavePost)

		posts.GET("/:id/comments", commentController.GetComments)
		posts.POST("/:id/comments", commentController.CreateComment)
	}

	comments := protected.Group("/comments")
	{
		comments.PUT("/:id", commentController.UpdateComment)
		comments.DELETE("/:id", commentController.DeleteComment)
		comments.POST("/:id/reply", commentController.ReplyComment)
	}

	users := protected.Group("/users")
	{
		users.GET("/:userId/posts", postController.GetUserPosts)
	}
}
