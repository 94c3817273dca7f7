package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"groupschedule/internal/domain"
)

// MaxInvitationsPerRequest caps how many addresses one request may mail.
const MaxInvitationsPerRequest = 20

type invitationService struct {
	eventRepo      domain.EventRepository
	dateOptionRepo domain.DateOptionRepository
	gate           domain.PassphraseGate
	emailService   domain.EmailService
	usage          domain.UsageRecorder
	appURL         string
	contextTimeout time.Duration
	logger         *slog.Logger
}

func NewInvitationService(eventRepo domain.EventRepository,
	dateOptionRepo domain.DateOptionRepository,
	gate domain.PassphraseGate,
	emailService domain.EmailService,
	usage domain.UsageRecorder,
	appURL string,
	timeout time.Duration,
	logger *slog.Logger,
) domain.InvitationService {
	if usage == nil {
		usage = domain.NopUsageRecorder{}
	}
	return &invitationService{
		eventRepo:      eventRepo,
		dateOptionRepo: dateOptionRepo,
		gate:           gate,
		emailService:   emailService,
		usage:          usage,
		appURL:         strings.TrimRight(appURL, "/"),
		contextTimeout: timeout,
		logger:         logger,
	}
}

// SendInvitations mails the share link to each address. A failed send does not
// stop the others; failed addresses are returned alongside the sent count.
func (s *invitationService) SendInvitations(ctx context.Context, publicID, passphrase string, emails []string) (int, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if passphrase == "" {
		return 0, nil, domain.NewValidationError("passphrase is required")
	}
	recipients, err := normalizeRecipients(emails)
	if err != nil {
		return 0, nil, err
	}

	event, err := authorize(ctx, s.eventRepo, s.gate, publicID, passphrase)
	if err != nil {
		return 0, nil, err
	}
	options, err := s.dateOptionRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return 0, nil, storageError("list date options", err)
	}
	lines := make([]string, 0, len(options))
	for _, o := range options {
		lines = append(lines, describeOption(o))
	}

	sent := 0
	failed := make([]string, 0)
	for _, to := range recipients {
		data := &domain.ShareInvitationEmailData{
			Email:      to,
			EventTitle: event.Title,
			Location:   deref(event.Location),
			ShareURL:   s.appURL + "/e/" + event.PublicID,
			Options:    lines,
		}
		if err := s.emailService.SendShareInvitation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "share invitation failed", "public_id", event.PublicID, "to", to, "err", err)
			failed = append(failed, to)
			continue
		}
		sent++
	}
	s.usage.InvitationsSent(sent)
	return sent, failed, nil
}

// normalizeRecipients trims, validates and de-duplicates addresses, keeping first-seen order.
func normalizeRecipients(emails []string) ([]string, error) {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		addr, err := mail.ParseAddress(e)
		if err != nil || addr.Address != e {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid email address: %s", e))
		}
		key := strings.ToLower(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, domain.NewValidationError("at least one email address is required")
	}
	if len(out) > MaxInvitationsPerRequest {
		return nil, domain.NewValidationError(fmt.Sprintf("at most %d email addresses per request", MaxInvitationsPerRequest))
	}
	return out, nil
}

func describeOption(o *domain.DateOption) string {
	s := formatDateShort(o.Date) + " " + formatTimeRange(o.StartTime, o.EndTime)
	if o.Label != nil && *o.Label != "" {
		s += " " + *o.Label
	}
	return s
}
