// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grants

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/grantscout/pkg/types"
)

const blockRule = "================================================================================"

// costPrinter renders dollar amounts with thousands separators.
var costPrinter = message.NewPrinter(language.English)

// FormatDetail writes one multi-line block per award, the layout a reader
// scans when checking whether a PI holds any active funding. With no
// awards it prints a single no-results line.
func FormatDetail(awards []types.Award, w io.Writer) {
	if len(awards) == 0 {
		fmt.Fprintln(w, "No matching funded projects found.")
		return
	}

	for _, a := range awards {
		fmt.Fprintln(w, blockRule)
		fmt.Fprintf(w, "PI Name: %s\n", strings.Join(a.PIs, ", "))
		fmt.Fprintf(w, "Project Title: %s\n", a.Title)
		fmt.Fprintf(w, "Organization: %s\n", a.Institution)

		switch a.Source {
		case "reporter":
			fmt.Fprintf(w, "Admin IC: %s (%s)\n", a.AdminIC, a.AdminICAbbr)
			fmt.Fprintf(w, "Funding IC: %s (%s)\n", a.FundingIC, a.FundingICAbbr)
			fmt.Fprintf(w, "Fiscal Year: %d\n", a.FiscalYear)
			fmt.Fprintf(w, "Project Number: %s\n", a.ID)
			fmt.Fprintf(w, "Start: %s\n", formatDateTime(a.StartDate))
			fmt.Fprintf(w, "End: %s\n", formatDateTime(a.EndDate))
			fmt.Fprintf(w, "Total Cost: %s\n", formatCost(a.AwardAmount))
			fmt.Fprintf(w, "Direct Cost: %s\n", formatCost(a.DirectCost))
			if a.DirectCost > 0 {
				pct := a.IndirectCost / a.DirectCost * 100
				fmt.Fprintf(w, "Indirect Cost: %s (%.2f%%)\n", formatCost(a.IndirectCost), pct)
			} else {
				fmt.Fprintf(w, "Indirect Cost: %s\n", formatCost(a.IndirectCost))
			}
		default:
			fmt.Fprintf(w, "Agency: %s\n", a.Agency)
			fmt.Fprintf(w, "Project Number: %s\n", a.ID)
			fmt.Fprintf(w, "Start: %s\n", formatDate(a.StartDate))
			fmt.Fprintf(w, "End: %s\n", formatDate(a.EndDate))
			fmt.Fprintf(w, "Estimated Total Amount: %s\n", formatCost(a.AwardAmount))
			fmt.Fprintf(w, "Funds Obligated Amount: %s\n", formatCost(a.ObligatedAmount))
		}
	}
	fmt.Fprintln(w, blockRule)
}

// FormatTable writes awards as a compact one-line-per-award table.
func FormatTable(awards []types.Award, w io.Writer) {
	if len(awards) == 0 {
		fmt.Fprintln(w, "No matching funded projects found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-48s  %-20s  %-28s  %14s  %s\n",
		"Rank", "Title", "PI", "Institution", "Amount", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 128))

	for i, a := range awards {
		pi := ""
		if len(a.PIs) > 0 {
			pi = a.PIs[len(a.PIs)-1]
		}
		fmt.Fprintf(w, "%-4d  %-48s  %-20s  %-28s  %14s  %s\n",
			i+1,
			truncateWidth(a.Title, 48),
			truncateWidth(pi, 20),
			truncateWidth(a.Institution, 28),
			formatCost(a.AwardAmount),
			a.Source)
	}
	fmt.Fprintf(w, "\n%d award(s)\n", len(awards))
}

// FormatJSON writes awards as indented JSON to w.
func FormatJSON(awards []types.Award, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(awards)
}

// truncateWidth shortens s to at most w terminal columns. Display width
// rather than byte length keeps columns aligned for wide characters.
func truncateWidth(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "...")
}

// formatCost renders a dollar amount like "$1,234,567.00".
func formatCost(amount float64) string {
	return costPrinter.Sprintf("$%.2f", amount)
}

// formatDateTime renders RePORTER award timestamps, e.g. "April 11, 2025 12:00 AM".
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 02, 2006 03:04 PM")
}

// formatDate renders NSF award dates, e.g. "April 11, 2025".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 02, 2006")
}
