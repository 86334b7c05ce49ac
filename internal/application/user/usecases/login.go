package usecases

import (
	"context"
	"strings"

	"ticketdesk/internal/application/user/dto"
	"ticketdesk/internal/domain/user"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  dto.UserDTO
	Token string
}

// LoginUseCase authenticates email/password credentials and issues a
// session token. Unknown email and wrong password return distinct errors,
// both 400.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewMissingCredentialError("Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, apperrors.NewInternalError("Failed to process login")
	}
	if u == nil {
		return nil, apperrors.NewInvalidEmailError()
	}

	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, apperrors.NewInvalidPasswordError()
	}

	token, err := uc.tokens.Issue(u.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewTokenCreationError()
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		User:  dto.UserToDTO(u),
		Token: token,
	}, nil
}
