package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/user/dto"
	"ticketdesk/internal/domain/user"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	User dto.UserDTO
}

// RegisterUseCase creates an account from name, email, and password. The
// existence pre-check gives a friendly 409 early; the unique constraint in
// the store closes the race for concurrent duplicates.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	log logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   log,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewMissingCredentialError("Email and password are required")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, u.Email())
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, apperrors.NewUserAlreadyExistsError()
	}

	if err := u.SetPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("Failed to process registration")
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, apperrors.NewInternalError("Failed to create user")
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", u.Email())

	return &RegisterResult{User: dto.UserToDTO(u)}, nil
}
