package cmd

import (
	"fmt"
	"subsidiaries-cli/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure Subsidiaries CLI settings",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var setURLCmd = &cobra.Command{
	Use:   "set-url [url]",
	Short: "Set the API base URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		err := config.SetEndpointURL(url)
		if err != nil {
			fmt.Printf("Error setting API base URL: %v\n", err)
			return
		}
		fmt.Println("API base URL set successfully.")
	},
}

var getURLCmd = &cobra.Command{
	Use:   "get-url",
	Short: "Get the current API base URL",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Current API base URL: %s\n", config.GetEndpointURL())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setURLCmd)
	configCmd.AddCommand(getURLCmd)
}
