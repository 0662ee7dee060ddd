package workitem

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"workbase/internal/application/workitem/usecases"
	"workbase/internal/interfaces/http/middleware"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
	"workbase/internal/shared/utils"
)

type WorkItemHandler struct {
	createUC *usecases.CreateWorkItemUseCase
	getUC    *usecases.GetWorkItemUseCase
	listUC   *usecases.ListWorkItemsUseCase
	deleteUC *usecases.DeleteWorkItemUseCase
	logger   logger.Interface
}

func NewWorkItemHandler(
	createUC *usecases.CreateWorkItemUseCase,
	getUC *usecases.GetWorkItemUseCase,
	listUC *usecases.ListWorkItemsUseCase,
	deleteUC *usecases.DeleteWorkItemUseCase,
) *WorkItemHandler {
	return &WorkItemHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateWorkItemRequest struct {
	Summary     string     `json:"summary" binding:"required"`
	Description string     `json:"description"`
	IssueType   string     `json:"issue_type"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   uint       `json:"project_id" binding:"required"`
	AssigneeID  *uint      `json:"assignee_id"`
	Labels      []string   `json:"labels"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateWorkItem handles POST /work-items
func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	var req CreateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create work item", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateWorkItemCommand{
		Summary:     req.Summary,
		Description: req.Description,
		IssueType:   req.IssueType,
		Status:      req.Status,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		CreatorID:   middleware.UserIDFromContext(c),
		AssigneeID:  req.AssigneeID,
		Labels:      req.Labels,
		DueDate:     req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Work item created successfully")
}

// GetWorkItem handles GET /work-items/:id
func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	query := usecases.GetWorkItemQuery{}

	// Numeric ids address the row; anything else is treated as an issue id.
	raw := c.Param("id")
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
		query.WorkItemID = uint(id)
	} else {
		query.IssueID = raw
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListWorkItems handles GET /work-items
func (h *WorkItemHandler) ListWorkItems(c *gin.Context) {
	query := usecases.ListWorkItemsQuery{
		Status:        c.Query("status"),
		Priority:      c.Query("priority"),
		IssueType:     c.Query("issue_type"),
		UploadBatchID: c.Query("upload_batch_id"),
		SortBy:        c.Query("sort_by"),
		SortOrder:     c.Query("sort_order"),
	}

	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid project_id"))
			return
		}
		projectID := uint(id)
		query.ProjectID = &projectID
	}
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid assignee_id"))
			return
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}

	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, query.Page, query.PageSize)
}

// DeleteWorkItem handles DELETE /work-items/:id
func (h *WorkItemHandler) DeleteWorkItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid work item id"))
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteWorkItemCommand{WorkItemID: uint(id)}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
