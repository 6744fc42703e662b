package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grantscout/internal/grants"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search NIH RePORTER and NSF for a PI's active awards",
	Long: `Search queries the NIH RePORTER project-search API and the NSF award-search
API for funded projects whose end date has not passed, matching the given
PI name and institutions exactly. Sources are queried sequentially; the
first failure aborts the run so a transport error is never mistaken for
an empty result.`,
	RunE: runSearch,
}

func init() {
	addCriteriaFlags(searchCmd)
	addOutputFlags(searchCmd)

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	crit, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg := searchConfigFromFlags(cmd)

	client := &http.Client{Timeout: cfg.Timeout}

	var sources []grants.Source
	if cfg.EnableReporter {
		sources = append(sources, &grants.ReporterSource{Client: client})
	}
	if cfg.EnableNSF {
		sources = append(sources, &grants.NSFSource{Client: client})
	}
	if len(sources) == 0 {
		return fmt.Errorf("all funding sources are disabled in the configuration")
	}

	out, err := grants.Search(cmd.Context(), crit, sources, cfg)
	if err != nil {
		return err
	}
	return renderOutput(cmd, crit, cfg, out)
}
