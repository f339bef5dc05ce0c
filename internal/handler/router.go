package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"codevend/internal/handler/api"
	"codevend/internal/handler/middleware"
	"codevend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	deliveryHandler *api.DeliveryHandler,
	inventoryHandler *api.InventoryHandler,
	codeHandler *api.CodeHandler,
	productHandler *api.ProductHandler,
	secretAuth *middleware.SecretAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, deliveryHandler, inventoryHandler, codeHandler, productHandler, secretAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	deliveryHandler *api.DeliveryHandler,
	inventoryHandler *api.InventoryHandler,
	codeHandler *api.CodeHandler,
	productHandler *api.ProductHandler,
	secretAuth *middleware.SecretAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(secretAuth.RequireSecret())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/get-code", Handler: deliveryHandler.GetCode},
			{Method: http.MethodPost, Path: "/upload-codes", Handler: codeHandler.UploadCodes},
			{Method: http.MethodGet, Path: "/inventory/:product_id", Handler: inventoryHandler.GetStatus},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/products", Handler: productHandler.ListProducts},
				{Method: http.MethodPost, Path: "/products", Handler: productHandler.CreateProduct},
				{Method: http.MethodGet, Path: "/products/:id", Handler: productHandler.GetProduct},
				{Method: http.MethodPatch, Path: "/products/:id", Handler: productHandler.UpdateProduct},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: productHandler.DeleteProduct},
				{Method: http.MethodGet, Path: "/products/:id/codes", Handler: codeHandler.ListCodes},
				{Method: http.MethodPost, Path: "/products/:id/codes", Handler: codeHandler.UploadProductCodes},
				{Method: http.MethodDelete, Path: "/codes/:id", Handler: codeHandler.DeleteCode},
				{Method: http.MethodPost, Path: "/codes/:id/assign", Handler: codeHandler.AssignCode},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
