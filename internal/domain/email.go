package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ShareInvitationEmailData holds data for the share invitation email.
type ShareInvitationEmailData struct {
	Email      string
	EventTitle string
	Location   string
	ShareURL   string
	Options    []string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendShareInvitation(ctx context.Context, data *ShareInvitationEmailData) error
}

// InvitationService sends an event's share link to a list of addresses.
type InvitationService interface {
	// SendInvitations returns how many emails were sent and which addresses failed.
	SendInvitations(ctx context.Context, publicID, passphrase string, emails []string) (sent int, failed []string, err error)
}
