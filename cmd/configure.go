package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"parking-cli/internal/config"
)

var (
	cfgHost     string
	cfgInsecure bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save the parking API location",
	Long: `Stores the API base URL in the config file so later commands know
where to connect.

Example:
  parking-cli configure --host "http://cnms-parking-api.net.uztec.com.br/api/v1"`,
	Run: func(cmd *cobra.Command, args []string) {
		host := strings.TrimRight(cfgHost, "/")

		if err := config.SaveBaseURL(host, cfgInsecure); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Printf("Configuration saved. Commands will now use %s.\n", host)
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&cfgHost, "host", "", "API Base URL (e.g. http://cnms-parking-api.net.uztec.com.br/api/v1)")
	configureCmd.Flags().BoolVar(&cfgInsecure, "insecure", false, "Skip TLS certificate verification")
	_ = configureCmd.MarkFlagRequired("host")
}
