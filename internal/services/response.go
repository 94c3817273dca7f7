package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"groupschedule/internal/domain"
)

type responseService struct {
	eventRepo      domain.EventRepository
	dateOptionRepo domain.DateOptionRepository
	responseRepo   domain.ResponseRepository
	usage          domain.UsageRecorder
	contextTimeout time.Duration
	now            func() time.Time
}

func NewResponseService(eventRepo domain.EventRepository,
	dateOptionRepo domain.DateOptionRepository,
	responseRepo domain.ResponseRepository,
	usage domain.UsageRecorder,
	timeout time.Duration,
) domain.ResponseService {
	if usage == nil {
		usage = domain.NopUsageRecorder{}
	}
	return &responseService{
		eventRepo:      eventRepo,
		dateOptionRepo: dateOptionRepo,
		responseRepo:   responseRepo,
		usage:          usage,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// SubmitResponse replaces every answer stored under the trimmed name with in.Answers.
func (s *responseService) SubmitResponse(ctx context.Context, publicID string, in domain.ResponseInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	in.Name = strings.TrimSpace(in.Name)
	if err := domain.ValidateResponseSubmission(in); err != nil {
		return err
	}

	event, err := s.eventRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return storageError("get event", err)
	}
	options, err := s.dateOptionRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return storageError("list date options", err)
	}
	known := make(map[string]struct{}, len(options))
	for _, o := range options {
		known[o.ID] = struct{}{}
	}

	optionIDs := make([]string, 0, len(in.Answers))
	for id := range in.Answers {
		optionIDs = append(optionIDs, id)
	}
	sort.Strings(optionIDs)
	for _, id := range optionIDs {
		if _, ok := known[id]; !ok {
			return domain.NewValidationError(fmt.Sprintf("unknown date option %q", id))
		}
	}

	now := s.now()
	rows := make([]*domain.Response, 0, len(optionIDs))
	for _, id := range optionIDs {
		a := in.Answers[id]
		rows = append(rows, domain.NewResponse(event.ID, id, in.Name, a.Status, trimmedOrNil(a.Note), now, now))
	}

	if err := s.responseRepo.Replace(ctx, event.ID, in.Name, rows); err != nil {
		return storageError("replace responses", err)
	}
	s.usage.ResponseSubmitted()
	return nil
}
