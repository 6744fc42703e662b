package grants

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/grantscout/pkg/types"
)

func reporterAward() types.Award {
	return types.Award{
		ID:            "5R01CA123456-04",
		Title:         "Mechanisms of Tumor Suppression",
		PIs:           []string{"Sakiko Togawa", "Mutsumi Wakaba"},
		Institution:   "HANEOKA GIRLS' HIGH SCHOOL",
		Agency:        "NIH",
		Source:        "reporter",
		AdminIC:       "National Cancer Institute",
		AdminICAbbr:   "NCI",
		FundingIC:     "National Cancer Institute",
		FundingICAbbr: "NCI",
		FiscalYear:    2026,
		StartDate:     time.Date(2022, 9, 1, 12, 9, 0, 0, time.UTC),
		EndDate:       time.Date(2027, 8, 31, 12, 8, 0, 0, time.UTC),
		AwardAmount:   1500000,
		DirectCost:    1000000,
		IndirectCost:  500000,
	}
}

func nsfGrantAward() types.Award {
	return types.Award{
		ID:              "2312345",
		Title:           "Collaborative Research: Ensemble Coordination",
		PIs:             []string{"Uika Misumi", "Sakiko Togawa"},
		Institution:     "TSUKINOMORI GIRLS' ACADEMY",
		Agency:          "NSF",
		Source:          "nsf",
		StartDate:       time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2027, 8, 31, 0, 0, 0, 0, time.UTC),
		AwardAmount:     750000,
		ObligatedAmount: 250000,
	}
}

func TestFormatDetailReporter(t *testing.T) {
	var buf bytes.Buffer
	FormatDetail([]types.Award{reporterAward()}, &buf)
	s := buf.String()

	for _, want := range []string{
		"PI Name: Sakiko Togawa, Mutsumi Wakaba",
		"Project Title: Mechanisms of Tumor Suppression",
		"Organization: HANEOKA GIRLS' HIGH SCHOOL",
		"Admin IC: National Cancer Institute (NCI)",
		"Funding IC: National Cancer Institute (NCI)",
		"Fiscal Year: 2026",
		"Project Number: 5R01CA123456-04",
		"Start: September 01, 2022 12:09 PM",
		"End: August 31, 2027 12:08 PM",
		"Total Cost: $1,500,000.00",
		"Direct Cost: $1,000,000.00",
		"Indirect Cost: $500,000.00 (50.00%)",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("detail output missing %q\n%s", want, s)
		}
	}
}

func TestFormatDetailNSF(t *testing.T) {
	var buf bytes.Buffer
	FormatDetail([]types.Award{nsfGrantAward()}, &buf)
	s := buf.String()

	for _, want := range []string{
		"PI Name: Uika Misumi, Sakiko Togawa",
		"Agency: NSF",
		"Project Number: 2312345",
		"Start: September 01, 2024",
		"End: August 31, 2027",
		"Estimated Total Amount: $750,000.00",
		"Funds Obligated Amount: $250,000.00",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("detail output missing %q\n%s", want, s)
		}
	}
	if strings.Contains(s, "Admin IC:") {
		t.Error("NSF block should not carry NIH IC lines")
	}
}

func TestFormatDetailBlockCount(t *testing.T) {
	awards := []types.Award{reporterAward(), nsfGrantAward(), reporterAward()}

	var buf bytes.Buffer
	FormatDetail(awards, &buf)
	s := buf.String()

	if got := strings.Count(s, "Project Title:"); got != 3 {
		t.Errorf("printed %d blocks, want 3", got)
	}
	// One rule per award plus the closing rule.
	if got := strings.Count(s, blockRule); got != 4 {
		t.Errorf("printed %d rules, want 4", got)
	}
}

func TestFormatDetailEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatDetail(nil, &buf)
	if !strings.Contains(buf.String(), "No matching funded projects found.") {
		t.Errorf("empty output = %q, want no-results message", buf.String())
	}
}

func TestFormatDetailZeroDirectCost(t *testing.T) {
	a := reporterAward()
	a.DirectCost = 0
	a.IndirectCost = 0

	var buf bytes.Buffer
	FormatDetail([]types.Award{a}, &buf)
	s := buf.String()

	if strings.Contains(s, "%") && strings.Contains(s, "NaN") {
		t.Errorf("zero direct cost produced a NaN percentage:\n%s", s)
	}
	if !strings.Contains(s, "Indirect Cost: $0.00\n") {
		t.Errorf("indirect cost line should omit the percentage:\n%s", s)
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable([]types.Award{reporterAward(), nsfGrantAward()}, &buf)
	s := buf.String()

	if !strings.Contains(s, "Mechanisms of Tumor Suppression") {
		t.Error("table should contain the first title")
	}
	if !strings.Contains(s, "2 award(s)") {
		t.Error("table should report the award count")
	}
}

func TestFormatTableTruncatesLongTitles(t *testing.T) {
	a := reporterAward()
	a.Title = strings.Repeat("Very Long Title ", 10)

	var buf bytes.Buffer
	FormatTable([]types.Award{a}, &buf)

	if !strings.Contains(buf.String(), "...") {
		t.Error("long title should be truncated with an ellipsis")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No matching funded projects found.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON([]types.Award{nsfGrantAward()}, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.Award
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 1 || parsed[0].ID != "2312345" {
		t.Errorf("parsed = %v", parsed)
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234567.5, "$1,234,567.50"},
		{750000, "$750,000.00"},
		{0, "$0.00"},
		{999, "$999.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatCost(tt.amount); got != tt.want {
				t.Errorf("formatCost(%f) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short unchanged", "Short", 10, "Short"},
		{"exact unchanged", "1234567890", 10, "1234567890"},
		{"long truncated", "123456789012345", 10, "1234567..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateWidth(tt.input, tt.width); got != tt.want {
				t.Errorf("truncateWidth(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}
