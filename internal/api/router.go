package api

import (
	"fmt"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/timmy/photofeed/internal/api/handler"
	"github.com/timmy/photofeed/internal/api/middleware"
	"github.com/timmy/photofeed/internal/config"
	"github.com/timmy/photofeed/internal/logger"
)

// RouterDeps holds the collaborators the router wires into handlers.
type RouterDeps struct {
	Feed       handler.FeedFetcher
	SourceName string
	Logger     *logger.Logger
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(deps RouterDeps, cfg *config.ServerConfig) (*gin.Engine, error) {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	// Path parameters may carry escaped slashes, e.g. /api/tag/a%2Fb
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.SetHTMLTemplate(tmpl)

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(deps.Logger))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.CORS.AllowAllOrigins,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Create handlers
	healthHandler := handler.NewHealthHandler(deps.SourceName)
	photoHandler := handler.NewPhotoHandler(deps.Feed)
	galleryHandler := handler.NewGalleryHandler(deps.Feed)

	// Health check
	r.GET("/health", healthHandler.Health)

	// Feed proxy
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/getPhotos", photoHandler.GetPhotos)
		apiGroup.GET("/author/:id", photoHandler.GetAuthorPhotos)
		apiGroup.GET("/tag/:tag", photoHandler.GetTagPhotos)
	}

	// Feed view
	r.GET("/", galleryHandler.Home)
	r.GET("/author/:id", galleryHandler.Author)
	r.GET("/tag/:tag", galleryHandler.Tag)
	r.GET("/about", galleryHandler.About)
	r.NoRoute(galleryHandler.NotFound)

	return r, nil
}
