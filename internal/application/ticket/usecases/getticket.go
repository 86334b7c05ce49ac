package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
)

type GetTicketQuery struct {
	ID uint
}

type GetTicketResult struct {
	Ticket dto.TicketDTO
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.ID)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("Failed to load ticket")
	}
	return &GetTicketResult{Ticket: dto.TicketToDTO(t)}, nil
}
