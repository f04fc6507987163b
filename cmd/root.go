package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"parking-cli/internal/client"
	"parking-cli/internal/config"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parking-cli",
	Short: "A CLI for the parking management API",
	Long: `Register vehicle entries and exits, query stay time and presence,
and update or cancel registrations on the parking management API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.parking-cli.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}

// getClient builds an API client from the loaded configuration
func getClient() *client.ParkingClient {
	return client.New(config.ClientConfig(viper.GetViper()))
}

// printJSON writes v to stdout when --json is set and reports whether it did.
func printJSON(v interface{}) bool {
	if !jsonOutput {
		return false
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	return true
}
