package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"parking-cli/internal/web"
)

var timeCmd = &cobra.Command{
	Use:     "time",
	Short:   "Show how long a vehicle has been parked",
	Example: `  parking-cli time --plate "ABC1234"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		st, err := api.GetStayTime(vehiclePlate)
		if err != nil {
			fmt.Printf("Failed to query stay time: %v\n", err)
			os.Exit(1)
		}
		if printJSON(st) {
			return
		}

		fmt.Printf("Parked time: %.2f minutes\n", st.ParkedTime)
	},
}

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Check whether a vehicle is in the lot",
	Example: `  parking-cli check --plate "ABC1234"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		p, err := api.CheckPresence(vehiclePlate)
		if err != nil {
			fmt.Printf("Error checking presence: %v\n", err)
			os.Exit(1)
		}
		if printJSON(p) {
			return
		}

		fmt.Printf("Is the vehicle in the parking lot? %s\n", web.YesNo(p.Present()))
		if p.Present() {
			fmt.Printf("Entry time: %s\n", p.EntryTimeString())
		}
	},
}

func init() {
	rootCmd.AddCommand(timeCmd, checkCmd)

	timeCmd.Flags().StringVar(&vehiclePlate, "plate", "", "License plate")
	checkCmd.Flags().StringVar(&vehiclePlate, "plate", "", "License plate")
}
