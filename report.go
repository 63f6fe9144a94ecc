package leadscan

import (
	"context"
	"time"
)

// Report is a persisted analysis of one URL. The structural fields are
// complete at creation; narrative fields are merged in later by the
// background enrichment worker.
type Report struct {
	ID                 string             `json:"id"`
	URL                string             `json:"url"`
	CompanyName        string             `json:"companyName"`
	CompanyDescription string             `json:"companyDescription"`
	ShortSummary       string             `json:"shortSummary"`
	OverallScore       float64            `json:"overallScore"`
	IssuesFound        int                `json:"issuesFound"`
	Industry           Industry           `json:"industry"`
	Elements           *ExtractedElements `json:"elements"`
	Analysis           *AnalysisResult    `json:"analysis"`
	Narrative          *NarrativeSections `json:"narrative,omitempty"`
	Enriched           bool               `json:"enriched"`
	AccessToken        string             `json:"-"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "report URL required")
	}
	if r.Analysis == nil {
		return Errorf(EINVALID, "report analysis required")
	}
	return nil
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportUpdate represents fields the enrichment worker may merge into a
// persisted report.
type ReportUpdate struct {
	Narrative *NarrativeSections `json:"narrative"`
	Analysis  *AnalysisResult    `json:"analysis"`
	Enriched  *bool              `json:"enriched"`
}

// ReportService represents a service for managing persisted reports.
type ReportService interface {
	// CreateReport persists a new report, assigning ID and access token.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReportByToken retrieves a report by its access token.
	// Returns ENOTFOUND if no report matches.
	FindReportByToken(ctx context.Context, token string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// UpdateReport merges upd into an existing report.
	// Returns ENOTFOUND if the report does not exist.
	UpdateReport(ctx context.Context, id string, upd ReportUpdate) (*Report, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}
