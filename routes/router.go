package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saeedNW/go-divar/config"
	"github.com/saeedNW/go-divar/controllers"
	"github.com/saeedNW/go-divar/middleware"
	"github.com/saeedNW/go-divar/services"
	"github.com/saeedNW/go-divar/utils"
)

// SetupRouter wires routes, middlewares, services, and controllers.
func SetupRouter(db *mongo.Database) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.GinLogger(gl))
		r.Use(utils.GinRecovery(gl, cfg.IsProduction()))
	} else {
		r.Use(gin.Recovery())
	}

	r.Use(middleware.ErrorHandler())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", utils.AccessTokenCookie},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/uploads", cfg.UploadDir)
	r.LoadHTMLGlob("templates/*.html")

	categoryService := services.NewCategoryService(db)
	optionService := services.NewOptionService(db, categoryService)
	postService := services.NewPostService(db, categoryService, optionService)
	authService := services.NewAuthService(db)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController()
	categoryController := controllers.NewCategoryController(categoryService)
	optionController := controllers.NewOptionController(optionService)
	postController := controllers.NewPostController(postService, categoryService, utils.NewMapClient(cfg))

	guard := middleware.AuthGuard(db)

	r.GET("/health", func(ctx *gin.Context) {
		utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit())
	authGroup.POST("/send-otp", authController.SendOTP)
	authGroup.POST("/check-otp", authController.CheckOTP)

	userGroup := r.Group("/user")
	userGroup.Use(guard)
	userGroup.GET("/profile", userController.Profile)

	categoryGroup := r.Group("/category")
	categoryGroup.GET("/list", categoryController.Find)
	categoryGroup.GET("/single/:id", categoryController.FindByID)
	categoryGroup.GET("/slug/:slug", categoryController.FindBySlug)
	categoryGroup.POST("/new", guard, categoryController.Create)
	categoryGroup.DELETE("/remove/:id", guard, categoryController.Remove)

	optionGroup := r.Group("/option")
	optionGroup.GET("/list", optionController.Find)
	optionGroup.GET("/single/:id", optionController.FindByID)
	optionGroup.GET("/by-category/:categoryId", optionController.FindByCategoryID)
	optionGroup.GET("/by-category-slug/:slug", optionController.FindByCategorySlug)
	optionGroup.POST("/new", guard, optionController.Create)
	optionGroup.PUT("/update/:id", guard, optionController.Update)
	optionGroup.DELETE("/remove/:id", guard, optionController.Remove)

	postGroup := r.Group("/post")
	// The single post page stays public so listings can link to it.
	postGroup.GET("/single/:id", postController.ShowPost)
	postGroup.GET("/create", guard, postController.NewPostPage)
	postGroup.POST("/create", guard, postController.Create)
	postGroup.GET("/my", guard, postController.FindMyPosts)
	postGroup.DELETE("/delete/:id", guard, postController.Remove)
	// HTML forms cannot send DELETE
	postGroup.POST("/delete/:id", guard, postController.Remove)

	r.GET("/", postController.ListPosts)

	r.NoRoute(func(ctx *gin.Context) {
		utils.SendError(ctx, http.StatusNotFound, "route not found", nil)
	})

	return r
}
