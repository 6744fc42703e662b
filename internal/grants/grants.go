// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grants queries public grant-funding APIs for a principal
// investigator's active awards and normalizes their responses.
package grants

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/grantscout/pkg/types"
)

// Source queries a single funding API. Each source (NIH RePORTER, NSF)
// implements this interface per the Strategy pattern.
type Source interface {
	Name() string
	Search(ctx context.Context, crit types.Criteria, cfg types.SearchConfig) ([]types.Award, error)
}

// SearchOutput holds the awards collected from all queried sources.
type SearchOutput struct {
	Awards  []types.Award
	Sources []string
}

// Search queries the sources one at a time in the given order and collects
// their awards. The first source failure aborts the run: partial results
// are never surfaced, so an HTTP error cannot be mistaken for an empty
// match set.
func Search(ctx context.Context, crit types.Criteria, sources []Source, cfg types.SearchConfig) (SearchOutput, error) {
	if crit.IsEmpty() {
		return SearchOutput{}, fmt.Errorf("incomplete criteria: first name, last name, and at least one institution are required")
	}
	if len(sources) == 0 {
		return SearchOutput{}, fmt.Errorf("no funding sources configured")
	}

	var out SearchOutput
	for _, s := range sources {
		awards, err := s.Search(ctx, crit, cfg)
		if err != nil {
			return SearchOutput{}, fmt.Errorf("%s: %w", s.Name(), err)
		}
		out.Awards = append(out.Awards, awards...)
		out.Sources = append(out.Sources, s.Name())
	}
	return out, nil
}

// SplitInstitutions splits a comma-separated institution list into trimmed
// terms. Terms are otherwise passed through verbatim: no case folding, no
// punctuation changes.
func SplitInstitutions(s string) []string {
	var institutions []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			institutions = append(institutions, part)
		}
	}
	return institutions
}

// projectNumRe matches NIH project numbers like "5R01CA123456-04": an
// optional application-type prefix, the core number, and a support-year
// suffix.
var projectNumRe = regexp.MustCompile(`^(?:\d+)?([A-Z0-9]+)-(\d+)$`)

var leadingDigitsRe = regexp.MustCompile(`^\d+`)

// splitProjectNum breaks an NIH project number into its core number and
// support-year suffix. Numbers that do not match the expected shape are
// returned whole with suffix 0.
func splitProjectNum(num string) (string, int) {
	m := projectNumRe.FindStringSubmatch(num)
	if m == nil {
		return num, 0
	}
	core := leadingDigitsRe.ReplaceAllString(m[1], "")
	suffix, err := strconv.Atoi(m[2])
	if err != nil {
		return num, 0
	}
	return core, suffix
}

// DedupeAwards collapses awards that share a core project number, keeping
// the record with the highest support-year suffix. RePORTER returns one
// record per funded year of a grant; only the latest reflects the current
// award. Order of first appearance is preserved.
func DedupeAwards(awards []types.Award) ([]types.Award, int) {
	seen := make(map[string]int) // core number → index in deduped
	var deduped []types.Award
	removed := 0

	for _, a := range awards {
		core, suffix := splitProjectNum(a.ID)
		idx, ok := seen[core]
		if !ok {
			seen[core] = len(deduped)
			deduped = append(deduped, a)
			continue
		}
		removed++
		_, storedSuffix := splitProjectNum(deduped[idx].ID)
		if suffix > storedSuffix {
			deduped[idx] = a
		}
	}
	return deduped, removed
}
