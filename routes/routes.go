package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shutterfeed/api-go/config"
	"github.com/shutterfeed/api-go/controllers"
	"github.com/shutterfeed/api-go/middleware"
	"github.com/shutterfeed/api-go/services"
	"github.com/shutterfeed/api-go/storage"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r2Config := config.GetR2Config()
	r2Client := config.NewR2Client(r2Config)

	// Without R2 credentials media lives on local disk (dev setups).
	var media storage.Remover = storage.NewR2Store(r2Client, r2Config.BucketName)
	if r2Config.AccountID == "" {
		media = storage.NewLocalStore(os.Getenv("MEDIA_ROOT"))
	}

	postService := services.NewPostService(db, media)
	commentService := services.NewCommentService(db)
	saveService := services.NewSaveService(db)

	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	saveController := controllers.NewSaveController(saveService)
	uploadController := controllers.NewUploadController(r2Client, r2Config)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/login/google", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(db))
	{
		protected.GET("/profile", authController.GetProfile)

		SetupPostRoutes(protected, postController, commentController, saveController)
		SetupSaveRoutes(protected, saveController)
		SetupUploadRoutes(protected, uploadController)
	}
}
