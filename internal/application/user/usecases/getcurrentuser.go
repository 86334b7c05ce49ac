package usecases

import (
	"context"

	"ticketdesk/internal/application/user/dto"
	"ticketdesk/internal/domain/user"
	apperrors "ticketdesk/internal/shared/errors"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserResult struct {
	User dto.UserDTO
}

// GetCurrentUserUseCase resolves the account behind an authenticated
// session. An account deleted after token issuance reports the user as
// gone, not a generic not-found.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
}

func NewGetCurrentUserUseCase(userRepo user.Repository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*GetCurrentUserResult, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to load user")
	}
	if u == nil {
		return nil, apperrors.NewUserGoneError()
	}
	return &GetCurrentUserResult{User: dto.UserToDTO(u)}, nil
}
