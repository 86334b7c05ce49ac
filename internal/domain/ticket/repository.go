package ticket

import (
	"context"
	"time"
)

// ListFilter carries 1-indexed pagination for ticket listings.
type ListFilter struct {
	Page  int
	Limit int
}

// TicketRepository persists tickets. GetByID, Update, and Delete return a
// not-found application error when no row matches.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
}

// CommentView is the read model for a comment listing: the comment joined
// with its author's display name. AuthorName is "" when the author row
// carries no name.
type CommentView struct {
	ID         uint
	Content    string
	AuthorID   uint
	AuthorName string
	CreatedAt  time.Time
}

// CommentRepository persists comments. Referential integrity of TicketID
// and AuthorID is enforced by the store's foreign keys, not re-validated
// here.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]CommentView, error)
}
