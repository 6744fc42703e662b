// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grants

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/grantscout/pkg/types"
)

// nsfAPIBase is the NSF award-search endpoint. Declared as a var so tests
// can substitute an httptest server.
var nsfAPIBase = "https://api.nsf.gov/services/v1/awards.json"

// nsfPrintFields lists the fields requested from the API.
const nsfPrintFields = "id,agency,awardeeName,coPDPI,pdPIName,startDate,expDate,estimatedTotalAmt,fundsObligatedAmt,title"

// NSFSource queries the NSF award-search API.
type NSFSource struct {
	Client *http.Client
}

// Name returns the source identifier.
func (s *NSFSource) Name() string { return "nsf" }

// Search queries the NSF award search for unexpired awards matching the
// criteria. The PI name is sent as a quoted "First+Last" phrase and each
// institution becomes its own awardeeName parameter, both matched exactly
// API-side.
func (s *NSFSource) Search(ctx context.Context, crit types.Criteria, cfg types.SearchConfig) ([]types.Award, error) {
	params := url.Values{
		"pdPIName":     {fmt.Sprintf("%q", crit.FirstName+"+"+crit.LastName)},
		"expDateStart": {time.Now().Format("01/02/2006")},
		"printFields":  {nsfPrintFields},
	}
	for _, inst := range crit.Institutions {
		params.Add("awardeeName", inst)
	}

	reqURL := nsfAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NSF API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NSF API returned HTTP %d", resp.StatusCode)
	}

	var nr nsfResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("parsing NSF response: %w", err)
	}

	var awards []types.Award
	for _, na := range nr.Response.Awards {
		a, err := na.toAward()
		if err != nil {
			return nil, fmt.Errorf("award %s: %w", na.ID, err)
		}
		awards = append(awards, a)
	}
	return awards, nil
}

// toAward normalizes an NSF award record. NSF serializes monetary amounts
// as JSON strings, so they are parsed here.
func (na nsfAward) toAward() (types.Award, error) {
	a := types.Award{
		ID:          na.ID,
		Title:       na.Title,
		Institution: na.AwardeeName,
		Agency:      na.Agency,
		Source:      "nsf",
	}

	a.PIs = append(a.PIs, na.CoPDPI...)
	if na.PDPIName != "" {
		a.PIs = append(a.PIs, na.PDPIName)
	}

	if t, err := time.Parse("01/02/2006", na.StartDate); err == nil {
		a.StartDate = t
	}
	if t, err := time.Parse("01/02/2006", na.ExpDate); err == nil {
		a.EndDate = t
	}

	var err error
	if a.AwardAmount, err = parseNSFAmount(na.EstimatedTotalAmt); err != nil {
		return types.Award{}, fmt.Errorf("estimatedTotalAmt: %w", err)
	}
	if a.ObligatedAmount, err = parseNSFAmount(na.FundsObligatedAmt); err != nil {
		return types.Award{}, fmt.Errorf("fundsObligatedAmt: %w", err)
	}
	return a, nil
}

// parseNSFAmount converts NSF's string-encoded dollar amounts. Empty means
// the field was not reported and parses to zero.
func parseNSFAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	return v, nil
}

// NSF API JSON structures.
type nsfResponse struct {
	Response nsfResponseBody `json:"response"`
}

type nsfResponseBody struct {
	Awards []nsfAward `json:"award"`
}

type nsfAward struct {
	ID                string   `json:"id"`
	Agency            string   `json:"agency"`
	AwardeeName       string   `json:"awardeeName"`
	CoPDPI            []string `json:"coPDPI"`
	PDPIName          string   `json:"pdPIName"`
	StartDate         string   `json:"startDate"`
	ExpDate           string   `json:"expDate"`
	EstimatedTotalAmt string   `json:"estimatedTotalAmt"`
	FundsObligatedAmt string   `json:"fundsObligatedAmt"`
	Title             string   `json:"title"`
}
