package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	apperrors "ticketdesk/internal/shared/errors"
)

type GormTicketRepository struct {
	db     *database.Connection
	mapper *mappers.TicketMapper
}

func NewGormTicketRepository(db *database.Connection) *GormTicketRepository {
	return &GormTicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *GormTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.Get().WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("A ticket with that summary already exists")
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if t.ID() == 0 {
		if err := t.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set ticket ID: %w", err)
		}
	}
	return nil
}

func (r *GormTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.Get().WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Ticket with ID: %d not found", id))
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// List returns a page of tickets ordered newest first, plus the total count.
func (r *GormTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	db := r.db.Get().WithContext(ctx).Model(&models.TicketModel{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit

	var list []*models.TicketModel
	err := db.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// Update rewrites the mutable columns of an existing ticket. The update
// timestamp always changes on patch, so zero rows affected means the row
// is gone.
func (r *GormTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.Get().WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"summary":    model.Summary,
			"priority":   model.Priority,
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("A ticket with that summary already exists")
		}
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("Ticket with ID: %d not found", t.ID()))
	}
	return nil
}

func (r *GormTicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.Get().WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("Ticket with ID: %d not found", id))
	}
	return nil
}
