package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func TestCreateTicketUseCase_Success(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1)
		},
	}
	uc := NewCreateTicketUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Summary:  "Printer on fire",
		Priority: "high",
		Status:   "open",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.Ticket.ID)
	assert.Equal(t, "Printer on fire", result.Ticket.Summary)
	assert.Equal(t, "high", result.Ticket.Priority)
	assert.Equal(t, "open", result.Ticket.Status)
	assert.False(t, result.Ticket.CreatedAt.IsZero())
}

func TestCreateTicketUseCase_Validation(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, logger.NewLogger())

	cases := []CreateTicketCommand{
		{Summary: "", Priority: "high", Status: "open"},
		{Summary: "Something", Priority: "", Status: "open"},
		{Summary: "Something", Priority: "high", Status: ""},
	}
	for _, cmd := range cases {
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	}
}

func TestCreateTicketUseCase_DuplicateSummary(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return apperrors.NewConflictError("A ticket with that summary already exists")
		},
	}
	uc := NewCreateTicketUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Summary:  "Taken",
		Priority: "low",
		Status:   "open",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}
