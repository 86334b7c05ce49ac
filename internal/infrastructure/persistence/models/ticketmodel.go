package models

import "ticketdesk/internal/shared/constants"

// TicketModel is the persistence shape of a ticket. Timestamps are stored
// as Unix milliseconds. Summary carries a unique index.
type TicketModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Summary   string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Priority  string `gorm:"type:varchar(50);not null"`
	Status    string `gorm:"type:varchar(50);not null"`
	CreatedAt int64  `gorm:"not null;index"`
	UpdatedAt int64  `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
