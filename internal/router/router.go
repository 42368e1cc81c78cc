package router

import (
	"log"
	"net/http"

	"github.com/instashare/backend/internal/handlers"
	"github.com/instashare/backend/internal/middleware"
	"github.com/instashare/backend/internal/relations"
	"github.com/instashare/backend/internal/repositories"
	"github.com/instashare/backend/internal/storage"
	"github.com/instashare/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware and the envelope-shaped
// error handler, so even framework-level failures come back as
// {success, message, error}.
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = envelopeErrorHandler
	log.Println("Global middleware configured.")
}

func envelopeErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "Internal server error"
	if he, okErr := err.(*echo.HTTPError); okErr {
		status = he.Code
		if msg, okMsg := he.Message.(string); okMsg {
			message = msg
		}
	}
	_ = c.JSON(status, handlers.Response{Success: false, Message: message, Error: err.Error()})
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client, uploader storage.Uploader) {
	db := mgClient.Database(cfg.MongoDatabase)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	profileRepo := repositories.NewMongoProfileRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)
	likeRepo := repositories.NewMongoLikeRepository(db)
	tagRepo := repositories.NewMongoTagRepository(db)

	// --- Relationship maintainer ---
	maintainer := relations.NewMaintainer(userRepo, postRepo, commentRepo, likeRepo, tagRepo)

	// --- Unprotected routes ---
	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	postHandler := handlers.NewPostHandler(maintainer, postRepo, userRepo, uploader)
	postHandler.RegisterPublicPostRoutes(e)

	commentHandler := handlers.NewCommentHandler(maintainer, commentRepo, userRepo)
	commentHandler.RegisterPublicCommentRoutes(e)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied.")

	userHandler := handlers.NewUserHandler(userRepo, profileRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	followHandler := handlers.NewFollowHandler(maintainer)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(maintainer)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	tagHandler := handlers.NewTagHandler(maintainer)
	tagHandler.RegisterTagRoutes(api)
	log.Println("Tag routes configured.")

	log.Println("All routes configured.")
}
