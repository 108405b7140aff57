package handlers

import (
	"net/http"

	"newsboard/internal/logger"
	"newsboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config carries the handler-level settings that the original hard-coded.
type Config struct {
	UploadDir string
	// SessionMaxAge is the remember-me cookie lifetime in seconds.
	SessionMaxAge int
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.identity)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public pages
	router.GET("/", h.index)
	router.GET("/index", h.index)
	h.registerAuthRoutes(router)
	h.registerDemoRoutes(router)

	// Owner-only news mutations behind the login guard
	h.registerNewsRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.formPlaceholder)
	r.POST("/register", h.register)
	r.GET("/login", h.formPlaceholder)
	r.POST("/login", h.login)
	r.GET("/logout", h.loginRequired, h.logout)
}

func (h *Handler) registerNewsRoutes(r *gin.Engine) {
	news := r.Group("", h.loginRequired)
	{
		news.GET("/news", h.formPlaceholder)
		news.POST("/news", h.createNews)
		news.GET("/news/:id", h.getNews)
		news.POST("/news/:id", h.updateNews)
		news.GET("/news_del/:id", h.deleteNews)
		news.POST("/news_del/:id", h.deleteNews)
	}
}

func (h *Handler) registerDemoRoutes(r *gin.Engine) {
	r.GET("/weather_form", h.formPlaceholder)
	r.POST("/weather_form", h.weather)
	r.GET("/form_sample", h.formPlaceholder)
	r.POST("/form_sample", h.formSample)
	r.GET("/cookie_test", h.cookieTest)
	r.GET("/session_test", h.sessionTest)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// formPlaceholder answers GET on routes where the original rendered an
// HTML form. Template rendering is out of scope here.
func (h *Handler) formPlaceholder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
