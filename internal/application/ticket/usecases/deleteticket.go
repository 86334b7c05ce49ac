package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	ID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if err := uc.ticketRepo.Delete(ctx, cmd.ID); err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.ID, "error", err)
		return apperrors.NewInternalError("Failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.ID)
	return nil
}
