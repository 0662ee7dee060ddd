package routes

import (
	"github.com/gin-gonic/gin"

	workitemhandlers "workbase/internal/interfaces/http/handlers/workitem"
	"workbase/internal/interfaces/http/middleware"
)

type WorkItemRouteConfig struct {
	WorkItemHandler *workitemhandlers.WorkItemHandler
	ColumnHandler   *workitemhandlers.ColumnHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupWorkItemRoutes(engine *gin.Engine, config *WorkItemRouteConfig) {
	items := engine.Group("/work-items")
	items.Use(config.AuthMiddleware.RequireAuth())
	{
		items.POST("", config.WorkItemHandler.CreateWorkItem)
		items.GET("", config.WorkItemHandler.ListWorkItems)
		items.GET("/:id", config.WorkItemHandler.GetWorkItem)
		items.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.WorkItemHandler.DeleteWorkItem)
	}

	columns := engine.Group("/columns")
	columns.Use(config.AuthMiddleware.RequireAuth())
	{
		columns.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.ColumnHandler.DeleteColumn)
	}
}
