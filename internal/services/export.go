package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"groupschedule/internal/domain"
)

const utf8BOM = "\ufeff"

var statusSymbols = map[domain.Status]string{
	domain.StatusOK:    "○",
	domain.StatusMaybe: "△",
	domain.StatusNG:    "×",
}

type exportService struct {
	events domain.EventService
}

// NewExportService returns an ExportService that renders the read model of events.
func NewExportService(events domain.EventService) domain.ExportService {
	return &exportService{events: events}
}

// ExportCSV renders the participant-by-option matrix with per-option tallies.
func (s *exportService) ExportCSV(ctx context.Context, publicID string) (string, []byte, error) {
	view, err := s.events.GetEvent(ctx, publicID)
	if err != nil {
		return "", nil, err
	}
	content, err := renderResponsesCSV(view)
	if err != nil {
		return "", nil, fmt.Errorf("render csv: %w", err)
	}
	return sanitizeFilename(view.Event.Title) + "_responses.csv", content, nil
}

func renderResponsesCSV(view *domain.EventView) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	header := []string{"Date", "Time", "Label", "OK", "Maybe", "NG"}
	for _, p := range view.Participants {
		header = append(header, p.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, o := range view.DateOptions {
		counts := view.Summary[o.ID]
		row := []string{
			formatDateShort(o.Date),
			formatTimeRange(o.StartTime, o.EndTime),
			deref(o.Label),
			strconv.Itoa(counts.OK),
			strconv.Itoa(counts.Maybe),
			strconv.Itoa(counts.NG),
		}
		for _, p := range view.Participants {
			row = append(row, formatAnswerCell(p.Answers, o.ID))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatDateShort renders 2025-01-08 as 1/8(Wed).
func formatDateShort(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), t.Weekday().String()[:3])
}

func formatTimeRange(start, end *string) string {
	if start == nil || *start == "" {
		return "All day"
	}
	if end == nil || *end == "" {
		return formatClock(*start)
	}
	return formatClock(*start) + "-" + formatClock(*end)
}

// formatClock drops the leading zero of the hour: 09:00 becomes 9:00.
func formatClock(clock string) string {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return clock
	}
	if n, err := strconv.Atoi(h); err == nil {
		h = strconv.Itoa(n)
	}
	if len(m) > 2 {
		m = m[:2]
	}
	return h + ":" + m
}

func formatAnswerCell(answers map[string]domain.Answer, optionID string) string {
	a, ok := answers[optionID]
	if !ok {
		return ""
	}
	symbol := statusSymbols[a.Status]
	if a.Note != nil && *a.Note != "" {
		return symbol + "(" + *a.Note + ")"
	}
	return symbol
}

var filenameReplacer = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_", `"`, "_", "<", "_", ">", "_", "|", "_",
)

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(filenameReplacer.Replace(name))
	if name == "" {
		return "export"
	}
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
