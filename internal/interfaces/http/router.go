package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	importerapp "workbase/internal/application/importer"
	userusecases "workbase/internal/application/user/usecases"
	workitemusecases "workbase/internal/application/workitem/usecases"
	"workbase/internal/infrastructure/auth"
	"workbase/internal/infrastructure/config"
	"workbase/internal/infrastructure/repository"
	authhandlers "workbase/internal/interfaces/http/handlers/auth"
	importerhandlers "workbase/internal/interfaces/http/handlers/importer"
	workitemhandlers "workbase/internal/interfaces/http/handlers/workitem"
	"workbase/internal/interfaces/http/middleware"
	"workbase/internal/interfaces/http/routes"
	"workbase/internal/shared/db"
	"workbase/internal/shared/logger"
	"workbase/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Logger(log), gin.Recovery())
	engine.MaxMultipartMemory = cfg.Import.MaxFileBytes

	workItemRepo := repository.NewWorkItemRepository(database)
	columnRepo := repository.NewColumnDefinitionRepository(database)
	userRepo := repository.NewUserRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	txManager := db.NewTransactionManager(database)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	markdownService := markdown.NewService()

	importUC := importerapp.NewImportWorkItemsUseCase(
		workItemRepo,
		userRepo,
		projectRepo,
		importerapp.NewSchemaExtender(columnRepo, log.Named("schema")),
		txManager,
		cfg.Import.RecentIssueWindow,
		log.Named("importer"),
	)
	deleteBatchUC := importerapp.NewDeleteBatchUseCase(workItemRepo, txManager, log.Named("importer"))

	importHandler := importerhandlers.NewImportHandler(importUC, deleteBatchUC, cfg.Import.MaxFileBytes)
	workItemHandler := workitemhandlers.NewWorkItemHandler(
		workitemusecases.NewCreateWorkItemUseCase(workItemRepo, cfg.Import.RecentIssueWindow, log),
		workitemusecases.NewGetWorkItemUseCase(workItemRepo, markdownService, log),
		workitemusecases.NewListWorkItemsUseCase(workItemRepo, log),
		workitemusecases.NewDeleteWorkItemUseCase(workItemRepo, log),
	)
	columnHandler := workitemhandlers.NewColumnHandler(
		workitemusecases.NewListColumnsUseCase(columnRepo, log),
		workitemusecases.NewDeleteColumnUseCase(columnRepo, log),
	)
	authHandler := authhandlers.NewAuthHandler(
		userusecases.NewLoginUseCase(userRepo, jwtService, log.Named("auth")),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var uploadLimiter, loginLimiter *middleware.RateLimiter
	if redisClient != nil {
		uploadLimiter = middleware.NewRateLimiter(redisClient, cfg.Import.UploadsPerMinute, time.Minute)
		loginLimiter = middleware.NewRateLimiter(redisClient, 20, time.Minute)
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimiter: loginLimiter,
	})
	routes.SetupWorkItemRoutes(engine, &routes.WorkItemRouteConfig{
		WorkItemHandler: workItemHandler,
		ColumnHandler:   columnHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupImportRoutes(engine, &routes.ImportRouteConfig{
		ImportHandler:  importHandler,
		ColumnHandler:  columnHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    uploadLimiter,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
