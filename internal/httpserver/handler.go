package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingRepo "shareit/internal/booking/repository/sqlstore"
	bookingUC "shareit/internal/booking/usecase"
	itemHTTP "shareit/internal/item/delivery/http"
	itemRepo "shareit/internal/item/repository/sqlstore"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	"shareit/internal/model"
	requestHTTP "shareit/internal/request/delivery/http"
	requestRepo "shareit/internal/request/repository/sqlstore"
	requestUC "shareit/internal/request/usecase"
	userHTTP "shareit/internal/user/delivery/http"
	userRepo "shareit/internal/user/repository/sqlstore"
	userUC "shareit/internal/user/usecase"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID(), mw.AccessLog(), mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) && srv.mode != gin.ReleaseMode {
		srv.l.Warnf(ctx, "Running production with gin mode %q", srv.mode)
	}
	srv.l.Infof(ctx, "Environment: %s, mask forbidden: %t", srv.environment, srv.maskForbidden)
	if srv.middleware.RequestsPerMin > 0 {
		srv.l.Infof(ctx, "Rate limit: %d requests/min per caller", srv.middleware.RequestsPerMin)
	}
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

// registerDomainRoutes builds each domain bottom-up (repository, usecase,
// handler) and mounts it at the root group.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	root := srv.gin.Group("")

	// Repositories
	users := userRepo.New(srv.db, srv.l)
	items := itemRepo.New(srv.db, srv.l)
	requests := requestRepo.New(srv.db, srv.l)
	bookings := bookingRepo.New(srv.db, srv.l)

	// UseCases
	userUseCase := userUC.New(users, srv.db, srv.l)
	bookingUseCase := bookingUC.New(bookings, items, users, srv.db, srv.l)
	itemUseCase := itemUC.New(items, users, requests, bookingUseCase, srv.db, srv.l)
	requestUseCase := requestUC.New(requests, items, users, srv.db, srv.l)

	// Routes
	userHTTP.RegisterRoutes(root, userHTTP.New(srv.l, userUseCase))
	itemHTTP.RegisterRoutes(root, itemHTTP.New(srv.l, itemUseCase, srv.maskForbidden), mw)
	requestHTTP.RegisterRoutes(root, requestHTTP.New(srv.l, requestUseCase), mw)
	bookingHTTP.RegisterRoutes(root, bookingHTTP.New(srv.l, bookingUseCase, srv.maskForbidden), mw)

	srv.l.Infof(ctx, "Domain routes registered: users, items, requests, bookings")
}
