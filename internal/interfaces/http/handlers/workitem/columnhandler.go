package workitem

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workbase/internal/application/workitem/usecases"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
	"workbase/internal/shared/utils"
)

type ColumnHandler struct {
	listUC   *usecases.ListColumnsUseCase
	deleteUC *usecases.DeleteColumnUseCase
	logger   logger.Interface
}

func NewColumnHandler(listUC *usecases.ListColumnsUseCase, deleteUC *usecases.DeleteColumnUseCase) *ColumnHandler {
	return &ColumnHandler{
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// ListColumns handles GET /projects/:id/columns
func (h *ColumnHandler) ListColumns(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || projectID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid project id"))
		return
	}

	columns, err := h.listUC.Execute(c.Request.Context(), usecases.ListColumnsQuery{ProjectID: uint(projectID)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", columns)
}

// DeleteColumn handles DELETE /columns/:id
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	columnID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || columnID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid column id"))
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteColumnCommand{ColumnID: uint(columnID)}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
