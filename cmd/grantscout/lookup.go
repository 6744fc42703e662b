package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/grantscout/internal/grants"
	"github.com/pdiddy/grantscout/internal/secrets"
	"github.com/pdiddy/grantscout/pkg/types"
)

// addCriteriaFlags registers the PI identity flags shared by the search
// commands.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("first", "f", "", "exact first name of the principal investigator")
	cmd.Flags().StringP("last", "l", "", "exact last name of the principal investigator")
	cmd.Flags().StringP("institutions", "i", "", "comma-separated list of institution names (exact matches)")
	cmd.MarkFlagRequired("first")
	cmd.MarkFlagRequired("last")
	cmd.MarkFlagRequired("institutions")
}

// addOutputFlags registers the result rendering flags shared by the search
// commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("table", false, "print a compact one-line-per-award table")
	cmd.Flags().Bool("json", false, "output awards as JSON")
	cmd.Flags().String("save", "", "write the query and results to a YAML report file")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
}

// criteriaFromFlags builds the search criteria from the command's flags.
func criteriaFromFlags(cmd *cobra.Command) (types.Criteria, error) {
	first, _ := cmd.Flags().GetString("first")
	last, _ := cmd.Flags().GetString("last")
	instFlag, _ := cmd.Flags().GetString("institutions")

	crit := types.Criteria{
		FirstName:    first,
		LastName:     last,
		Institutions: grants.SplitInstitutions(instFlag),
	}
	if crit.IsEmpty() {
		return types.Criteria{}, fmt.Errorf("first name, last name, and at least one institution are required")
	}
	return crit, nil
}

// searchConfigFromFlags builds a SearchConfig from viper settings with
// flag overrides.
func searchConfigFromFlags(cmd *cobra.Command) types.SearchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	ua := viper.GetString("http.user_agent")
	if email := loadedSecrets[secrets.ContactEmailKey]; email != "" {
		ua = fmt.Sprintf("%s (mailto:%s)", ua, email)
	}

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: ua,
		},
		PageSize:       viper.GetInt("search.page_size"),
		MaxRecords:     viper.GetInt("search.max_records"),
		EnableReporter: viper.GetBool("sources.reporter"),
		EnableNSF:      viper.GetBool("sources.nsf"),
	}
}

// renderOutput prints the awards in the format selected by the command's
// flags and saves a report file when requested.
func renderOutput(cmd *cobra.Command, crit types.Criteria, cfg types.SearchConfig, out grants.SearchOutput) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	asTable, _ := cmd.Flags().GetBool("table")

	switch {
	case asJSON:
		if err := grants.FormatJSON(out.Awards, os.Stdout); err != nil {
			return fmt.Errorf("encoding awards: %w", err)
		}
	case asTable:
		grants.FormatTable(out.Awards, os.Stdout)
	default:
		grants.FormatDetail(out.Awards, os.Stdout)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := grants.WriteReportFile(savePath, crit, cfg, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", savePath)
	}
	return nil
}
