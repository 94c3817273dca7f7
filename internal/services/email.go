package services

import (
	"context"
	"fmt"
	"log/slog"

	"groupschedule/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendShareInvitation sends the event link using the "share_invitation" template.
func (s *emailService) SendShareInvitation(ctx context.Context, data *domain.ShareInvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("share invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("share_invitation", data)
	if err != nil {
		return fmt.Errorf("failed to render share_invitation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send share invitation: %w", err)
	}
	s.logger.InfoContext(ctx, "share invitation sent", "to", data.Email)
	return nil
}
