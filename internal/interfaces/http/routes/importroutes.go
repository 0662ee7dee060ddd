package routes

import (
	"github.com/gin-gonic/gin"

	importerhandlers "workbase/internal/interfaces/http/handlers/importer"
	workitemhandlers "workbase/internal/interfaces/http/handlers/workitem"
	"workbase/internal/interfaces/http/middleware"
)

type ImportRouteConfig struct {
	ImportHandler  *importerhandlers.ImportHandler
	ColumnHandler  *workitemhandlers.ColumnHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupImportRoutes(engine *gin.Engine, config *ImportRouteConfig) {
	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		importGroup := projects.Group("")
		importGroup.Use(config.AuthMiddleware.RequireAdmin())
		if config.RateLimiter != nil {
			importGroup.Use(config.RateLimiter.Limit())
		}
		importGroup.POST("/:id/import", config.ImportHandler.ImportWorkItems)

		projects.GET("/:id/columns", config.ColumnHandler.ListColumns)
	}

	imports := engine.Group("/imports")
	imports.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		imports.DELETE("/:batchId", config.ImportHandler.DeleteBatch)
	}
}
