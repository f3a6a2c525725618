package cmd

import (
	"fmt"
	"os"
	"subsidiaries-cli/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "subsidiaries",
	Short: "Subsidiaries CLI - extract subsidiary data for a parent company",
	Long: `Subsidiaries CLI fetches the subsidiaries of a parent company from the
subsidiaries API, filters out internal bookkeeping columns, previews the
result and exports it as a CSV file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(config.InitConfig)
}
