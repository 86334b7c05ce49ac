package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// UpdateTicketCommand is a partial update: nil fields keep the stored value.
type UpdateTicketCommand struct {
	ID       uint
	Summary  *string
	Priority *string
	Status   *string
}

type UpdateTicketResult struct {
	Ticket dto.TicketDTO
}

// UpdateTicketUseCase applies a partial patch by fetching the current row,
// substituting the provided fields, and rewriting. The stored row is
// re-read afterwards so the response reflects exactly what persisted.
type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("Failed to load ticket")
	}

	if err := t.ApplyPatch(cmd.Summary, cmd.Priority, cmd.Status); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.ID, "error", err)
		return nil, apperrors.NewInternalError("Failed to update ticket")
	}

	updated, err := uc.ticketRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("Failed to load ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.ID)

	return &UpdateTicketResult{Ticket: dto.TicketToDTO(updated)}, nil
}
