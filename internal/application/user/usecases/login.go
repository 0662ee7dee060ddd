package usecases

import (
	"context"
	"strings"

	"workbase/internal/domain/user"
	"workbase/internal/infrastructure/auth"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type LoginUseCase struct {
	userRepo user.Repository
	jwt      *auth.JWTService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, jwt *auth.JWTService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		jwt:      jwt,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same response for unknown email and wrong password.
		uc.logger.Warnw("login attempt for unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !u.VerifyPassword(cmd.Password) {
		uc.logger.Warnw("login attempt with wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresIn, err := uc.jwt.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		UserID:      u.ID(),
		Name:        u.Name(),
		Role:        string(u.Role()),
	}, nil
}
