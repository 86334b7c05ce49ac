package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

func TestListTicketsUseCase_DefaultsPagination(t *testing.T) {
	var seen ticket.ListFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, seen.Page)
	assert.Equal(t, 20, seen.Limit)
	assert.Empty(t, result.Tickets)
	assert.Zero(t, result.Total)
}

func TestListTicketsUseCase_CapsLimit(t *testing.T) {
	var seen ticket.ListFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Pagination: utils.Pagination{Page: 3, Limit: 5000},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, seen.Page)
	assert.Equal(t, 100, seen.Limit)
}

func TestListTicketsUseCase_ReturnsPage(t *testing.T) {
	tk := storedTicket(t, 1)
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
			return []*ticket.Ticket{tk}, 42, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Pagination: utils.Pagination{Page: 1, Limit: 20},
	})
	require.NoError(t, err)

	require.Len(t, result.Tickets, 1)
	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, "Original summary", result.Tickets[0].Summary)
}
