package domain

import (
	"context"
	"time"
)

// DateOption is one candidate date/time slot of an event. Both times nil means all day.
// swagger:model DateOption
type DateOption struct {
	ID        string    `json:"id"`
	EventID   string    `json:"-"`
	Date      string    `json:"date"`
	StartTime *string   `json:"startTime"`
	EndTime   *string   `json:"endTime"`
	Label     *string   `json:"label"`
	CreatedAt time.Time `json:"-"`
}

// NewDateOption returns a DateOption bound to eventID. ID is set by the repository on insert.
func NewDateOption(eventID, date string, startTime, endTime, label *string, createdAt time.Time) *DateOption {
	return &DateOption{
		EventID:   eventID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Label:     label,
		CreatedAt: createdAt,
	}
}

// DateOptionInput describes a submitted date option. ID is empty for new options.
type DateOptionInput struct {
	ID        string  `json:"id,omitempty"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Label     *string `json:"label"`
}

// DateOptionRepository defines read access to date options. Writes go through
// EventRepository so they share the event's transaction.
type DateOptionRepository interface {
	// ListByEventID returns options ordered by date, then start time with all-day first.
	ListByEventID(ctx context.Context, eventID string) ([]*DateOption, error)
}
