package ticket

import (
	"fmt"
	"time"

	"ticketdesk/internal/shared/biztime"
)

// Ticket is a free-form work item. Priority and status are free text by
// design; the API does not constrain them to an enumeration.
type Ticket struct {
	id        uint
	summary   string
	priority  string
	status    string
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(summary, priority, status string) (*Ticket, error) {
	if len(summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}
	if len(summary) > 255 {
		return nil, fmt.Errorf("summary exceeds maximum length of 255 characters")
	}
	if len(priority) == 0 {
		return nil, fmt.Errorf("priority is required")
	}
	if len(status) == 0 {
		return nil, fmt.Errorf("status is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		summary:   summary,
		priority:  priority,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	summary string,
	priority string,
	status string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}

	return &Ticket{
		id:        id,
		summary:   summary,
		priority:  priority,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Summary() string {
	return t.summary
}

func (t *Ticket) Priority() string {
	return t.priority
}

func (t *Ticket) Status() string {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ApplyPatch overlays a partial update: nil fields keep their stored value.
// The update timestamp is always refreshed, even for an empty patch.
func (t *Ticket) ApplyPatch(summary, priority, status *string) error {
	if summary != nil {
		if len(*summary) == 0 {
			return fmt.Errorf("summary cannot be empty")
		}
		if len(*summary) > 255 {
			return fmt.Errorf("summary exceeds maximum length of 255 characters")
		}
		t.summary = *summary
	}
	if priority != nil {
		if len(*priority) == 0 {
			return fmt.Errorf("priority cannot be empty")
		}
		t.priority = *priority
	}
	if status != nil {
		if len(*status) == 0 {
			return fmt.Errorf("status cannot be empty")
		}
		t.status = *status
	}

	t.updatedAt = biztime.NowUTC()
	return nil
}
