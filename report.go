package gapscan

import (
	"context"
	"time"
)

// Analysis modes.
const (
	ModeUpdate = "update"
	ModePlan   = "plan"
)

// Report is the persisted result of one analysis run.
type Report struct {
	ID             string            `json:"id"`
	Mode           string            `json:"mode"`
	PrimaryURL     string            `json:"primaryUrl,omitempty"`
	Title          string            `json:"title,omitempty"`
	CompetitorURLs []string          `json:"competitorUrls"`
	Gaps           []GapRow          `json:"gaps,omitempty"`
	Strategy       []SectionCoverage `json:"strategy,omitempty"`
	Audit          *Audit            `json:"audit,omitempty"`
	Compliance     []ComplianceRow   `json:"compliance,omitempty"`
	Media          []MediaRow        `json:"media,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	switch r.Mode {
	case ModeUpdate:
		if r.PrimaryURL == "" {
			return Errorf(EINVALID, "report primary URL required in update mode")
		}
	case ModePlan:
		if r.Title == "" {
			return Errorf(EINVALID, "report title required in plan mode")
		}
	default:
		return Errorf(EINVALID, "report mode must be %q or %q", ModeUpdate, ModePlan)
	}
	if len(r.CompetitorURLs) == 0 {
		return Errorf(EINVALID, "report requires at least one competitor URL")
	}
	return nil
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	Mode *string `json:"mode"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportService represents a service for managing analysis reports.
type ReportService interface {
	// CreateReport persists a new report, assigning its ID and timestamp.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}
