package domain

import "context"

// ExportService renders an event's answer matrix for download.
type ExportService interface {
	ExportCSV(ctx context.Context, publicID string) (filename string, content []byte, err error)
}
