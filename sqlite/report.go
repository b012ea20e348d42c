package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/gapscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ gapscan.ReportService = (*ReportService)(nil)

// ReportService implements gapscan.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// reportPayload is the JSON-stored portion of a report.
type reportPayload struct {
	Gaps       []gapscan.GapRow          `json:"gaps,omitempty"`
	Strategy   []gapscan.SectionCoverage `json:"strategy,omitempty"`
	Audit      *gapscan.Audit            `json:"audit,omitempty"`
	Compliance []gapscan.ComplianceRow   `json:"compliance,omitempty"`
	Media      []gapscan.MediaRow        `json:"media,omitempty"`
}

// CreateReport persists a new report, assigning its ID and timestamp.
func (s *ReportService) CreateReport(ctx context.Context, report *gapscan.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()

	urls, err := json.Marshal(report.CompetitorURLs)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(reportPayload{
		Gaps:       report.Gaps,
		Strategy:   report.Strategy,
		Audit:      report.Audit,
		Compliance: report.Compliance,
		Media:      report.Media,
	})
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, mode, primary_url, title, competitor_urls, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.Mode, report.PrimaryURL, report.Title, string(urls), string(payload),
		report.CreatedAt.Format(time.RFC3339))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*gapscan.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, mode, primary_url, title, competitor_urls, payload, created_at
		FROM reports
		WHERE id = ?
	`, id)

	report, err := scanReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, gapscan.Errorf(gapscan.ENOTFOUND, "report not found")
	}
	return report, err
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter gapscan.ReportFilter) ([]*gapscan.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, mode, primary_url, title, competitor_urls, payload, created_at FROM reports WHERE 1=1")

	if filter.Mode != nil {
		query.WriteString(" AND mode = ?")
		args = append(args, *filter.Mode)
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*gapscan.Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return gapscan.Errorf(gapscan.ENOTFOUND, "report not found")
	}
	return nil
}

// scanReport reads one report row via the given scan function.
func scanReport(scan func(dest ...any) error) (*gapscan.Report, error) {
	var report gapscan.Report
	var urls, payload, createdAt string

	if err := scan(&report.ID, &report.Mode, &report.PrimaryURL, &report.Title,
		&urls, &payload, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(urls), &report.CompetitorURLs); err != nil {
		return nil, fmt.Errorf("failed to parse competitor URLs: %w", err)
	}
	var p reportPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to parse report payload: %w", err)
	}
	report.Gaps = p.Gaps
	report.Strategy = p.Strategy
	report.Audit = p.Audit
	report.Compliance = p.Compliance
	report.Media = p.Media

	var err error
	report.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &report, nil
}
