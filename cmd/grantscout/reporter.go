package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grantscout/internal/grants"
)

var reporterCmd = &cobra.Command{
	Use:   "reporter",
	Short: "Search NIH RePORTER only, with pagination and support-year dedup",
	Long: `Reporter queries only the NIH RePORTER project-search API. Pages of
--limit records are fetched starting at --offset until RePORTER reports no
more matches. Records sharing a core project number are collapsed to the
one with the highest support-year suffix, so a long-running grant appears
once.`,
	RunE: runReporter,
}

func init() {
	addCriteriaFlags(reporterCmd)
	addOutputFlags(reporterCmd)
	reporterCmd.Flags().IntP("offset", "o", 0, "pagination offset of the first record")
	reporterCmd.Flags().IntP("limit", "n", 50, "number of records to request per page")

	rootCmd.AddCommand(reporterCmd)
}

func runReporter(cmd *cobra.Command, args []string) error {
	crit, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg := searchConfigFromFlags(cmd)
	cfg.Offset, _ = cmd.Flags().GetInt("offset")
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		cfg.PageSize = limit
	}

	source := &grants.ReporterSource{Client: &http.Client{Timeout: cfg.Timeout}}

	awards, err := source.Search(cmd.Context(), crit, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", source.Name(), err)
	}

	deduped, removed := grants.DedupeAwards(awards)
	if removed > 0 {
		fmt.Fprintf(os.Stderr, "%d superseded support-year record(s) removed\n", removed)
	}

	out := grants.SearchOutput{Awards: deduped, Sources: []string{source.Name()}}
	return renderOutput(cmd, crit, cfg, out)
}
