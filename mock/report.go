// Package mock provides function-field mock implementations of the root
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/konverta/leadscan"
)

var _ leadscan.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of leadscan.ReportService.
type ReportService struct {
	CreateReportFn      func(ctx context.Context, report *leadscan.Report) error
	FindReportByIDFn    func(ctx context.Context, id string) (*leadscan.Report, error)
	FindReportByTokenFn func(ctx context.Context, token string) (*leadscan.Report, error)
	FindReportsFn       func(ctx context.Context, filter leadscan.ReportFilter) ([]*leadscan.Report, error)
	UpdateReportFn      func(ctx context.Context, id string, upd leadscan.ReportUpdate) (*leadscan.Report, error)
	DeleteReportFn      func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *leadscan.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*leadscan.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReportByToken(ctx context.Context, token string) (*leadscan.Report, error) {
	return s.FindReportByTokenFn(ctx, token)
}

func (s *ReportService) FindReports(ctx context.Context, filter leadscan.ReportFilter) ([]*leadscan.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) UpdateReport(ctx context.Context, id string, upd leadscan.ReportUpdate) (*leadscan.Report, error) {
	return s.UpdateReportFn(ctx, id, upd)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}
