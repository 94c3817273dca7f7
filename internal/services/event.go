package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"groupschedule/internal/domain"
)

const (
	publicIDLength   = 8
	publicIDAttempts = 3
)

type eventService struct {
	eventRepo      domain.EventRepository
	dateOptionRepo domain.DateOptionRepository
	responseRepo   domain.ResponseRepository
	gate           domain.PassphraseGate
	usage          domain.UsageRecorder
	appURL         string
	contextTimeout time.Duration

	newPublicID func() string
	now         func() time.Time
}

func NewEventService(eventRepo domain.EventRepository,
	dateOptionRepo domain.DateOptionRepository,
	responseRepo domain.ResponseRepository,
	gate domain.PassphraseGate,
	usage domain.UsageRecorder,
	appURL string,
	timeout time.Duration,
) domain.EventService {
	if usage == nil {
		usage = domain.NopUsageRecorder{}
	}
	return &eventService{
		eventRepo:      eventRepo,
		dateOptionRepo: dateOptionRepo,
		responseRepo:   responseRepo,
		gate:           gate,
		usage:          usage,
		appURL:         strings.TrimRight(appURL, "/"),
		contextTimeout: timeout,
		newPublicID:    generatePublicID,
		now:            time.Now,
	}
}

func generatePublicID() string {
	return uuid.NewString()[:publicIDLength]
}

func (s *eventService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.ValidateEventCreation(in); err != nil {
		return nil, "", err
	}
	in = normalizeEventInput(in)

	sealed, err := s.gate.Seal(in.Passphrase)
	if err != nil {
		return nil, "", fmt.Errorf("seal passphrase: %w", err)
	}

	now := s.now()
	for attempt := 1; ; attempt++ {
		event := domain.NewEvent(s.newPublicID(), sealed, in.Title, in.Location, in.Description, now, now)
		options := make([]*domain.DateOption, 0, len(in.DateOptions))
		for _, o := range in.DateOptions {
			options = append(options, domain.NewDateOption("", o.Date, o.StartTime, o.EndTime, o.Label, now))
		}

		err := s.eventRepo.Create(ctx, event, options)
		if errors.Is(err, domain.ErrDuplicatePublicID) && attempt < publicIDAttempts {
			continue
		}
		if err != nil {
			return nil, "", storageError("create event", err)
		}
		s.usage.EventCreated()
		return event, s.shareURL(event.PublicID), nil
	}
}

func (s *eventService) shareURL(publicID string) string {
	return s.appURL + "/e/" + publicID
}

func (s *eventService) GetEvent(ctx context.Context, publicID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, storageError("get event", err)
	}
	options, err := s.dateOptionRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, storageError("list date options", err)
	}
	if options == nil {
		options = []*domain.DateOption{}
	}
	rows, err := s.responseRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, storageError("list responses", err)
	}

	participants, summary, best := domain.Aggregate(options, rows)
	return &domain.EventView{
		Event:        event,
		DateOptions:  options,
		Participants: participants,
		Summary:      summary,
		BestOptions:  best,
	}, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, publicID string, in domain.EventInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.ValidateEventUpdate(in); err != nil {
		return err
	}
	event, err := authorize(ctx, s.eventRepo, s.gate, publicID, in.Passphrase)
	if err != nil {
		return err
	}
	in = normalizeEventInput(in)

	existing, err := s.dateOptionRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return storageError("list date options", err)
	}
	ids := make([]string, 0, len(existing))
	for _, o := range existing {
		ids = append(ids, o.ID)
	}

	now := s.now()
	plan := domain.PlanReconcile(event.ID, ids, in.DateOptions, now)
	event.Title = in.Title
	event.Location = in.Location
	event.Description = in.Description
	event.UpdatedAt = now

	if err := s.eventRepo.Update(ctx, event, plan); err != nil {
		return storageError("update event", err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, publicID, passphrase string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if passphrase == "" {
		return domain.NewValidationError("passphrase is required")
	}
	event, err := authorize(ctx, s.eventRepo, s.gate, publicID, passphrase)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, event.ID); err != nil {
		return storageError("delete event", err)
	}
	return nil
}

func (s *eventService) VerifyPassphrase(ctx context.Context, publicID, passphrase string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if passphrase == "" {
		return domain.NewValidationError("passphrase is required")
	}
	_, err := authorize(ctx, s.eventRepo, s.gate, publicID, passphrase)
	return err
}

// authorize loads the event and checks the supplied passphrase. A missing
// event is reported before any comparison.
func authorize(ctx context.Context, repo domain.EventRepository, gate domain.PassphraseGate, publicID, supplied string) (*domain.Event, error) {
	event, err := repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, storageError("get event", err)
	}
	if !gate.Verify(event.Passphrase, supplied) {
		return nil, domain.ErrUnauthorized
	}
	return event, nil
}

// storageError passes ErrNotFound through and tags everything else as ErrStorage.
func storageError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

// normalizeEventInput trims text fields, turns empty optionals into nil and
// rewrites dates and clocks to their canonical form. Input must already be valid.
func normalizeEventInput(in domain.EventInput) domain.EventInput {
	out := domain.EventInput{
		Title:       strings.TrimSpace(in.Title),
		Passphrase:  in.Passphrase,
		Location:    trimmedOrNil(in.Location),
		Description: trimmedOrNil(in.Description),
		DateOptions: make([]domain.DateOptionInput, 0, len(in.DateOptions)),
	}
	for _, o := range in.DateOptions {
		date, _ := domain.NormalizeDate(o.Date)
		out.DateOptions = append(out.DateOptions, domain.DateOptionInput{
			ID:        o.ID,
			Date:      date,
			StartTime: clockOrNil(o.StartTime),
			EndTime:   clockOrNil(o.EndTime),
			Label:     trimmedOrNil(o.Label),
		})
	}
	return out
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func clockOrNil(s *string) *string {
	v := trimmedOrNil(s)
	if v == nil {
		return nil
	}
	c, err := domain.NormalizeClock(*v)
	if err != nil {
		return nil
	}
	return &c
}
