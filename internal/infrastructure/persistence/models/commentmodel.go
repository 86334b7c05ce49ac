package models

import "ticketdesk/internal/shared/constants"

// CommentModel is the persistence shape of a ticket comment. TicketID and
// AuthorID are foreign keys; the store rejects comments against rows that
// do not exist.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null"`

	Ticket TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Author UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
