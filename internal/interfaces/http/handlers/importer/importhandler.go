package importer

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workbase/internal/application/importer"
	"workbase/internal/interfaces/http/middleware"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
	"workbase/internal/shared/utils"
)

type ImportHandler struct {
	importUC     *importer.ImportWorkItemsUseCase
	deleteUC     *importer.DeleteBatchUseCase
	maxFileBytes int64
	logger       logger.Interface
}

func NewImportHandler(
	importUC *importer.ImportWorkItemsUseCase,
	deleteUC *importer.DeleteBatchUseCase,
	maxFileBytes int64,
) *ImportHandler {
	return &ImportHandler{
		importUC:     importUC,
		deleteUC:     deleteUC,
		maxFileBytes: maxFileBytes,
		logger:       logger.NewLogger(),
	}
}

// ImportWorkItems handles POST /projects/:id/import
func (h *ImportHandler) ImportWorkItems(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || projectID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid project id"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("no file uploaded", "expected multipart field 'file'"))
		return
	}

	// Reject oversized uploads before reading the body into memory.
	if fileHeader.Size > h.maxFileBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError(
			"file too large",
			fmt.Sprintf("maximum upload size is %d bytes", h.maxFileBytes)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to open uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileBytes+1))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	if int64(len(data)) > h.maxFileBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file too large"))
		return
	}

	result, err := h.importUC.Execute(c.Request.Context(), importer.ImportCommand{
		FileName:   fileHeader.Filename,
		Data:       data,
		ProjectID:  uint(projectID),
		ImporterID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// DeleteBatch handles DELETE /imports/:batchId
func (h *ImportHandler) DeleteBatch(c *gin.Context) {
	result, err := h.deleteUC.Execute(c.Request.Context(), importer.DeleteBatchCommand{
		UploadBatchID: c.Param("batchId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import batch deleted", result)
}
