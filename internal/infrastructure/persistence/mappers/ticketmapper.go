package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/biztime"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:        t.ID(),
		Summary:   t.Summary(),
		Priority:  t.Priority(),
		Status:    t.Status(),
		CreatedAt: biztime.ToMilli(t.CreatedAt()),
		UpdatedAt: biztime.ToMilli(t.UpdatedAt()),
	}
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Summary,
		model.Priority,
		model.Status,
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapper) ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(list))
	for _, model := range list {
		t, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
