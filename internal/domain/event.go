package domain

import (
	"context"
	"time"
)

// Event is a schedulable occasion with candidate dates and a shared passphrase.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	PublicID    string    `json:"publicId"`
	Passphrase  string    `json:"-"`
	Title       string    `json:"title"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(publicID, passphrase, title string, location, description *string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		PublicID:    publicID,
		Passphrase:  passphrase,
		Title:       title,
		Location:    location,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventInput is the organizer-supplied payload for creating or editing an event.
type EventInput struct {
	Title       string
	Passphrase  string
	Location    *string
	Description *string
	DateOptions []DateOptionInput
}

// EventView is the read model for one event: its ordered options, every
// participant's answers and the derived tallies.
type EventView struct {
	Event        *Event
	DateOptions  []*DateOption
	Participants []*ParticipantAnswers
	Summary      Summary
	BestOptions  []string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// Create inserts the event and its date options atomically.
	Create(ctx context.Context, event *Event, options []*DateOption) error
	GetByPublicID(ctx context.Context, publicID string) (*Event, error)
	// Update writes title, location and description and applies the
	// date-option plan atomically.
	Update(ctx context.Context, event *Event, plan ReconcilePlan) error
	// Delete removes the event; date options and responses cascade.
	Delete(ctx context.Context, id string) error
}

// EventService defines the organizer-facing operations on events.
type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (event *Event, shareURL string, err error)
	GetEvent(ctx context.Context, publicID string) (*EventView, error)
	UpdateEvent(ctx context.Context, publicID string, in EventInput) error
	DeleteEvent(ctx context.Context, publicID, passphrase string) error
	VerifyPassphrase(ctx context.Context, publicID, passphrase string) error
}
