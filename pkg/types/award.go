// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for grant lookups.
package types

import "time"

// Criteria identifies the principal investigator being searched for. All
// values are passed to the funding APIs verbatim; matching is exact and
// happens API-side.
type Criteria struct {
	// FirstName is the PI's exact first name.
	FirstName string `json:"first_name" yaml:"first_name"`

	// LastName is the PI's exact last name.
	LastName string `json:"last_name" yaml:"last_name"`

	// Institutions lists institution names exactly as stored by the APIs,
	// including case and punctuation.
	Institutions []string `json:"institutions" yaml:"institutions"`
}

// IsEmpty reports whether any required criterion is missing.
func (c Criteria) IsEmpty() bool {
	return c.FirstName == "" || c.LastName == "" || len(c.Institutions) == 0
}

// Award is a funded project normalized across sources. NIH and NSF expose
// different cost breakdowns, so the funding fields form an optional union:
// a zero value means the source does not report that field.
type Award struct {
	// ID is the source's award identifier (NIH project number or NSF award ID).
	ID string `json:"id" yaml:"id"`

	// Title is the project title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// PIs lists principal and co-principal investigators in source order.
	PIs []string `json:"pis" yaml:"pis"`

	// Institution is the awardee organization name.
	Institution string `json:"institution" yaml:"institution"`

	// Agency is the funding agency ("NIH" or as reported by NSF).
	Agency string `json:"agency" yaml:"agency"`

	// StartDate and EndDate bound the award period. EndDate is in the
	// future for every record returned by an active-award search.
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date" yaml:"end_date"`

	// Source identifies which API returned this award ("reporter" or "nsf").
	Source string `json:"source" yaml:"source"`

	// AwardAmount is the total award value: NIH award_amount or NSF
	// estimated total.
	AwardAmount float64 `json:"award_amount" yaml:"award_amount"`

	// NIH-only fields.
	AdminIC       string  `json:"admin_ic,omitempty" yaml:"admin_ic,omitempty"`
	AdminICAbbr   string  `json:"admin_ic_abbr,omitempty" yaml:"admin_ic_abbr,omitempty"`
	FundingIC     string  `json:"funding_ic,omitempty" yaml:"funding_ic,omitempty"`
	FundingICAbbr string  `json:"funding_ic_abbr,omitempty" yaml:"funding_ic_abbr,omitempty"`
	FiscalYear    int     `json:"fiscal_year,omitempty" yaml:"fiscal_year,omitempty"`
	DirectCost    float64 `json:"direct_cost,omitempty" yaml:"direct_cost,omitempty"`
	IndirectCost  float64 `json:"indirect_cost,omitempty" yaml:"indirect_cost,omitempty"`

	// NSF-only field.
	ObligatedAmount float64 `json:"obligated_amount,omitempty" yaml:"obligated_amount,omitempty"`
}
