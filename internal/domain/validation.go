package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits, counted in characters.
const (
	MaxTitleLength      = 100
	MaxPassphraseLength = 50
	MaxLocationLength   = 200
	MaxNameLength       = 50
)

const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	clockLayoutSecs = "15:04:05"
)

// ValidateEventCreation checks a creation payload and returns the first violation.
func ValidateEventCreation(in EventInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title is required")
	}
	if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		return NewValidationError(fmt.Sprintf("title must be %d characters or fewer", MaxTitleLength))
	}
	if strings.TrimSpace(in.Passphrase) == "" {
		return NewValidationError("passphrase is required")
	}
	if utf8.RuneCountInString(in.Passphrase) > MaxPassphraseLength {
		return NewValidationError(fmt.Sprintf("passphrase must be %d characters or fewer", MaxPassphraseLength))
	}
	if len(in.DateOptions) == 0 {
		return NewValidationError("at least one date option is required")
	}
	if in.Location != nil && utf8.RuneCountInString(*in.Location) > MaxLocationLength {
		return NewValidationError(fmt.Sprintf("location must be %d characters or fewer", MaxLocationLength))
	}
	return validateDateOptions(in.DateOptions)
}

// ValidateEventUpdate checks an edit payload. The passphrase length is not
// checked here; the gate compares it against the stored value.
func ValidateEventUpdate(in EventInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("title is required")
	}
	if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		return NewValidationError(fmt.Sprintf("title must be %d characters or fewer", MaxTitleLength))
	}
	if len(in.DateOptions) == 0 {
		return NewValidationError("at least one date option is required")
	}
	if in.Passphrase == "" {
		return NewValidationError("passphrase is required")
	}
	if in.Location != nil && utf8.RuneCountInString(*in.Location) > MaxLocationLength {
		return NewValidationError(fmt.Sprintf("location must be %d characters or fewer", MaxLocationLength))
	}
	return validateDateOptions(in.DateOptions)
}

// ValidateResponseSubmission checks a participant submission and returns the first violation.
func ValidateResponseSubmission(in ResponseInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name is required")
	}
	if utf8.RuneCountInString(in.Name) > MaxNameLength {
		return NewValidationError(fmt.Sprintf("name must be %d characters or fewer", MaxNameLength))
	}
	if len(in.Answers) == 0 {
		return NewValidationError("at least one answer is required")
	}
	for _, a := range in.Answers {
		if !a.Status.Valid() {
			return NewValidationError("invalid answer status")
		}
	}
	return nil
}

func validateDateOptions(opts []DateOptionInput) error {
	seen := make(map[string]struct{}, len(opts))
	for i, o := range opts {
		if _, err := NormalizeDate(o.Date); err != nil {
			return NewValidationError(fmt.Sprintf("date option %d: date must be YYYY-MM-DD", i+1))
		}
		if o.StartTime != nil && *o.StartTime != "" {
			if _, err := NormalizeClock(*o.StartTime); err != nil {
				return NewValidationError(fmt.Sprintf("date option %d: start time must be HH:MM", i+1))
			}
		}
		if o.EndTime != nil && *o.EndTime != "" {
			if _, err := NormalizeClock(*o.EndTime); err != nil {
				return NewValidationError(fmt.Sprintf("date option %d: end time must be HH:MM", i+1))
			}
		}
		if o.ID == "" {
			continue
		}
		if _, dup := seen[o.ID]; dup {
			return NewValidationError("duplicate date option id")
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}

// NormalizeDate parses YYYY-MM-DD (an RFC 3339 timestamp is cut to its date)
// and returns it in YYYY-MM-DD form.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

// NormalizeClock parses HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		t, err = time.Parse(clockLayoutSecs, s)
		if err != nil {
			return "", err
		}
	}
	return t.Format(clockLayout), nil
}
