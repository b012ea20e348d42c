package mock

import (
	"context"

	"github.com/fwojciec/gapscan"
)

var _ gapscan.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of gapscan.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *gapscan.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*gapscan.Report, error)
	FindReportsFn    func(ctx context.Context, filter gapscan.ReportFilter) ([]*gapscan.Report, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *gapscan.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*gapscan.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter gapscan.ReportFilter) ([]*gapscan.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}

var _ gapscan.PageService = (*PageService)(nil)

// PageService is a mock implementation of gapscan.PageService.
type PageService struct {
	CreatePageFn    func(ctx context.Context, page *gapscan.Page) error
	FindPageByURLFn func(ctx context.Context, url string) (*gapscan.Page, error)
}

func (s *PageService) CreatePage(ctx context.Context, page *gapscan.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*gapscan.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}
