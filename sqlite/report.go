package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/konverta/leadscan"
)

// Compile-time interface verification.
var _ leadscan.ReportService = (*ReportService)(nil)

// ReportService implements leadscan.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

const reportColumns = `id, url, company_name, company_description, short_summary,
	overall_score, issues_found, industry, elements, analysis, narrative,
	enriched, access_token, created_at, updated_at`

// CreateReport persists a new report, assigning an ID and an access token.
func (s *ReportService) CreateReport(ctx context.Context, report *leadscan.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	token, err := newAccessToken()
	if err != nil {
		return err
	}
	report.AccessToken = token

	now := time.Now().UTC()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	report.UpdatedAt = report.CreatedAt

	industry, elements, analysis, narrative, err := marshalReportJSON(report)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (`+reportColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.URL, report.CompanyName, report.CompanyDescription, report.ShortSummary,
		report.OverallScore, report.IssuesFound, industry, elements, analysis, narrative,
		boolToInt(report.Enriched), report.AccessToken,
		report.CreatedAt.Format(time.RFC3339), report.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*leadscan.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+` FROM reports WHERE id = ?
	`, id)
	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
	}
	return report, err
}

// FindReportByToken retrieves a report by its access token.
func (s *ReportService) FindReportByToken(ctx context.Context, token string) (*leadscan.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+` FROM reports WHERE access_token = ?
	`, token)
	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
	}
	return report, err
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter leadscan.ReportFilter) ([]*leadscan.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + reportColumns + " FROM reports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC")

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

	var reports []*leadscan.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// UpdateReport merges upd into an existing report. Only the enrichment
// fields are mutable; the structural report is immutable after creation.
func (s *ReportService) UpdateReport(ctx context.Context, id string, upd leadscan.ReportUpdate) (*leadscan.Report, error) {
	report, err := s.FindReportByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Narrative != nil {
		report.Narrative = upd.Narrative
	}
	if upd.Analysis != nil {
		report.Analysis = upd.Analysis
		report.OverallScore = upd.Analysis.OverallScore
		report.IssuesFound = upd.Analysis.IssuesFound
	}
	if upd.Enriched != nil {
		report.Enriched = *upd.Enriched
	}
	report.UpdatedAt = time.Now().UTC()

	_, _, analysis, narrative, err := marshalReportJSON(report)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE reports
		SET analysis = ?, narrative = ?, enriched = ?, overall_score = ?, issues_found = ?, updated_at = ?
		WHERE id = ?
	`, analysis, narrative, boolToInt(report.Enriched), report.OverallScore, report.IssuesFound,
		report.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return leadscan.Errorf(leadscan.ENOTFOUND, "report not found")
	}

	return nil
}

// newAccessToken returns a 32-character hex token for unauthenticated
// report sharing links.
func newAccessToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func marshalReportJSON(report *leadscan.Report) (industry, elements, analysis string, narrative any, err error) {
	industryJSON, err := json.Marshal(report.Industry)
	if err != nil {
		return "", "", "", nil, fmt.Errorf("marshal industry: %w", err)
	}
	elementsJSON, err := json.Marshal(report.Elements)
	if err != nil {
		return "", "", "", nil, fmt.Errorf("marshal elements: %w", err)
	}
	analysisJSON, err := json.Marshal(report.Analysis)
	if err != nil {
		return "", "", "", nil, fmt.Errorf("marshal analysis: %w", err)
	}

	narrative = nil
	if report.Narrative != nil {
		narrativeJSON, err := json.Marshal(report.Narrative)
		if err != nil {
			return "", "", "", nil, fmt.Errorf("marshal narrative: %w", err)
		}
		narrative = string(narrativeJSON)
	}

	return string(industryJSON), string(elementsJSON), string(analysisJSON), narrative, nil
}

// scanner abstracts sql.Row and sql.Rows for scanReport.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*leadscan.Report, error) {
	var report leadscan.Report
	var industry, elements, analysis string
	var narrative sql.NullString
	var enriched int
	var createdAt, updatedAt string

	err := row.Scan(&report.ID, &report.URL, &report.CompanyName, &report.CompanyDescription,
		&report.ShortSummary, &report.OverallScore, &report.IssuesFound,
		&industry, &elements, &analysis, &narrative,
		&enriched, &report.AccessToken, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(industry), &report.Industry); err != nil {
		return nil, fmt.Errorf("unmarshal industry: %w", err)
	}
	if err := json.Unmarshal([]byte(elements), &report.Elements); err != nil {
		return nil, fmt.Errorf("unmarshal elements: %w", err)
	}
	if err := json.Unmarshal([]byte(analysis), &report.Analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	if narrative.Valid {
		if err := json.Unmarshal([]byte(narrative.String), &report.Narrative); err != nil {
			return nil, fmt.Errorf("unmarshal narrative: %w", err)
		}
	}
	report.Enriched = enriched != 0

	if report.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if report.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &report, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
