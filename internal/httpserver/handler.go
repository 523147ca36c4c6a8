package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"group-janitor/internal/middleware"
	"group-janitor/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	// Unmatched routes 404, wrong method on a known route 405.
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the janitor routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
	srv.gin.GET("/webhook/register", srv.telegramHandler.HandleRegister)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
