// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grants

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/grantscout/pkg/types"
)

// reporterAPIBase is the NIH RePORTER project-search endpoint. Declared as
// a var so tests can substitute an httptest server.
var reporterAPIBase = "https://api.reporter.nih.gov/v2/projects/search"

// reporterMaxPageSize is the largest limit the RePORTER API accepts.
const reporterMaxPageSize = 500

// ReporterSource queries the NIH RePORTER project-search API.
type ReporterSource struct {
	Client *http.Client
}

// Name returns the source identifier.
func (s *ReporterSource) Name() string { return "reporter" }

// Search queries RePORTER for active projects matching the criteria. The
// API is paginated by offset/limit, so the search advances the offset
// window page by page until the reported total is exhausted or
// cfg.MaxRecords is reached. A failed page aborts the whole search.
func (s *ReporterSource) Search(ctx context.Context, crit types.Criteria, cfg types.SearchConfig) ([]types.Award, error) {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > reporterMaxPageSize {
		pageSize = reporterMaxPageSize
	}

	criteria := reporterCriteria{
		PINames: []reporterPIName{{
			FirstName: crit.FirstName,
			LastName:  crit.LastName,
		}},
		OrgNamesExactMatch: crit.Institutions,
		// Projects whose end date is today or later are still funded.
		ProjectEndDate: reporterDateRange{
			FromDate: time.Now().Format("2006-01-02"),
			ToDate:   "",
		},
	}

	var awards []types.Award
	offset := cfg.Offset
	for {
		page, err := s.fetchPage(ctx, criteria, offset, pageSize, cfg)
		if err != nil {
			return nil, err
		}

		for _, p := range page.Results {
			awards = append(awards, p.toAward())
			if cfg.MaxRecords > 0 && len(awards) >= cfg.MaxRecords {
				return awards, nil
			}
		}

		offset += pageSize
		if offset >= page.Meta.Total || len(page.Results) == 0 {
			break
		}
	}
	return awards, nil
}

// fetchPage issues a single project-search request for one offset window.
func (s *ReporterSource) fetchPage(ctx context.Context, criteria reporterCriteria, offset, limit int, cfg types.SearchConfig) (*reporterResponse, error) {
	body, err := json.Marshal(reporterRequest{
		Criteria: criteria,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reporterAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RePORTER API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("RePORTER API returned HTTP %d", resp.StatusCode)
	}

	var rr reporterResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("parsing RePORTER response: %w", err)
	}
	return &rr, nil
}

// toAward normalizes a RePORTER project record.
func (p reporterProject) toAward() types.Award {
	a := types.Award{
		ID:           p.ProjectNum,
		Title:        p.ProjectTitle,
		Institution:  p.Organization.OrgName,
		Agency:       "NIH",
		Source:       "reporter",
		FiscalYear:   p.FiscalYear,
		AdminIC:      p.AgencyICAdmin.Name,
		AdminICAbbr:  p.AgencyICAdmin.Abbreviation,
		AwardAmount:  p.AwardAmount,
		DirectCost:   p.DirectCostAmt,
		IndirectCost: p.IndirectCostAmt,
	}

	for _, pi := range p.PrincipalInvestigators {
		name := strings.TrimSpace(strings.TrimSpace(pi.FirstName) + " " + strings.TrimSpace(pi.LastName))
		if name != "" {
			a.PIs = append(a.PIs, name)
		}
	}

	if len(p.AgencyICFundings) > 0 {
		a.FundingIC = p.AgencyICFundings[0].Name
		a.FundingICAbbr = p.AgencyICFundings[0].Abbreviation
	}

	a.StartDate = parseReporterDate(p.ProjectStartDate)
	a.EndDate = parseReporterDate(p.ProjectEndDate)
	return a
}

// parseReporterDate handles RePORTER timestamps, which appear both with and
// without a trailing zone designator. Unparseable input yields a zero time.
func parseReporterDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(s, "Z")); err == nil {
		return t
	}
	return time.Time{}
}

// RePORTER API JSON structures.
type reporterRequest struct {
	Criteria reporterCriteria `json:"criteria"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

type reporterCriteria struct {
	PINames            []reporterPIName  `json:"pi_names"`
	OrgNamesExactMatch []string          `json:"org_names_exact_match"`
	ProjectEndDate     reporterDateRange `json:"project_end_date"`
}

type reporterPIName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type reporterDateRange struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type reporterResponse struct {
	Meta    reporterMeta      `json:"meta"`
	Results []reporterProject `json:"results"`
}

type reporterMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type reporterProject struct {
	ApplID                 int                `json:"appl_id"`
	ProjectNum             string             `json:"project_num"`
	ProjectTitle           string             `json:"project_title"`
	FiscalYear             int                `json:"fiscal_year"`
	PrincipalInvestigators []reporterPI       `json:"principal_investigators"`
	Organization           reporterOrg        `json:"organization"`
	AgencyICAdmin          reporterAgencyIC   `json:"agency_ic_admin"`
	AgencyICFundings       []reporterAgencyIC `json:"agency_ic_fundings"`
	ProjectStartDate       string             `json:"project_start_date"`
	ProjectEndDate         string             `json:"project_end_date"`
	AwardAmount            float64            `json:"award_amount"`
	DirectCostAmt          float64            `json:"direct_cost_amt"`
	IndirectCostAmt        float64            `json:"indirect_cost_amt"`
}

type reporterPI struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type reporterOrg struct {
	OrgName string `json:"org_name"`
}

type reporterAgencyIC struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}
