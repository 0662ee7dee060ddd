package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workbase/internal/application/user/usecases"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
	"workbase/internal/shared/utils"
)

type AuthHandler struct {
	loginUC *usecases.LoginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
