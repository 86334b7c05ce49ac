package repository

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/shared/biztime"
	"ticketdesk/internal/shared/constants"
	apperrors "ticketdesk/internal/shared/errors"
)

type GormCommentRepository struct {
	db     *database.Connection
	mapper *mappers.CommentMapper
}

func NewGormCommentRepository(db *database.Connection) *GormCommentRepository {
	return &GormCommentRepository{
		db:     db,
		mapper: mappers.NewCommentMapper(),
	}
}

// Save persists a new comment. Foreign key violations (ticket or author
// missing) map to a not-found error.
func (r *GormCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.ToModel(c)

	err := r.db.Get().WithContext(ctx).
		Omit("Ticket", "Author").
		Create(model).Error
	if err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewNotFoundError("Ticket or author does not exist")
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if c.ID() == 0 {
		if err := c.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set comment ID: %w", err)
		}
	}
	return nil
}

// commentRow is the scan target for the comment-with-author join.
type commentRow struct {
	ID         uint
	Content    string
	AuthorID   uint
	AuthorName string
	CreatedAt  int64
}

// ListByTicket returns all comments on a ticket, oldest first, each joined
// with its author's display name. A missing name comes back as "".
func (r *GormCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]ticket.CommentView, error) {
	var rows []commentRow
	err := r.db.Get().WithContext(ctx).
		Table(constants.TableComments+" AS c").
		Select("c.id, c.content, c.author_id, COALESCE(u.name, '') AS author_name, c.created_at").
		Joins("LEFT JOIN "+constants.TableUsers+" AS u ON u.id = c.author_id").
		Where("c.ticket_id = ?", ticketID).
		Order("c.created_at ASC, c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	views := make([]ticket.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ticket.CommentView{
			ID:         row.ID,
			Content:    row.Content,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			CreatedAt:  biztime.FromMilli(row.CreatedAt),
		})
	}
	return views, nil
}
