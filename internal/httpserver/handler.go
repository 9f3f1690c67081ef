package httpserver

import (
	"context"

	"pagination-srv/internal/middleware"
	pagerangehttp "pagination-srv/internal/pagerange/delivery/http"
	pagerangeusecase "pagination-srv/internal/pagerange/usecase"
	"pagination-srv/pkg/paginator"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize usecases
	pagerangeUC := pagerangeusecase.New(srv.l, pagerangeusecase.Config{
		DefaultRadius:   srv.config.Paginator.DefaultRadius,
		MaxRadius:       srv.config.Paginator.MaxRadius,
		DefaultPolicy:   paginator.Policy(srv.config.Paginator.DefaultPolicy),
		DefaultPageSize: srv.config.Paginator.DefaultPageSize,
		MaxPageSize:     srv.config.Paginator.MaxPageSize,
	})

	// Initialize HTTP handlers
	pagerangeHandler := pagerangehttp.New(srv.l, pagerangeUC, srv.discord)

	// Map routes (no prefix)
	pagerangeHandler.RegisterRoutes(srv.gin.Group(""), mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows any origin)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
