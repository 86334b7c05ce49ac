package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Summary  string
	Priority string
	Status   string
}

type CreateTicketResult struct {
	Ticket dto.TicketDTO
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	t, err := ticket.NewTicket(cmd.Summary, cmd.Priority, cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, apperrors.NewInternalError("Failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID())

	return &CreateTicketResult{Ticket: dto.TicketToDTO(t)}, nil
}
