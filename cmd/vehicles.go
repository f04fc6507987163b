package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	vehiclePlate string
	vehicleModel string
)

var entryCmd = &cobra.Command{
	Use:     "entry",
	Short:   "Register a vehicle entering the lot",
	Example: `  parking-cli entry --model "Civic" --plate "ABC1234"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		conf, err := api.RegisterEntry(vehicleModel, vehiclePlate)
		if err != nil {
			fmt.Printf("Error registering entry: %v\n", err)
			os.Exit(1)
		}
		if printJSON(conf) {
			return
		}

		fmt.Println("Entry registered successfully!")
	},
}

var exitCmd = &cobra.Command{
	Use:     "exit",
	Short:   "Register a vehicle leaving the lot",
	Example: `  parking-cli exit --plate "ABC1234"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		conf, err := api.RegisterExit(vehiclePlate)
		if err != nil {
			fmt.Printf("Error registering exit: %v\n", err)
			os.Exit(1)
		}
		if printJSON(conf) {
			return
		}

		fmt.Println("Exit registered successfully!")
	},
}

var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Change the model stored for a plate",
	Example: `  parking-cli update --plate "ABC1234" --model "Civic EX"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		conf, err := api.UpdateVehicle(vehiclePlate, vehicleModel)
		if err != nil {
			fmt.Printf("Error updating vehicle: %v\n", err)
			os.Exit(1)
		}
		if printJSON(conf) {
			return
		}

		fmt.Println("Vehicle data updated successfully!")
	},
}

var cancelCmd = &cobra.Command{
	Use:     "cancel",
	Short:   "Remove a vehicle registration",
	Example: `  parking-cli cancel --plate "ABC1234"`,
	Run: func(cmd *cobra.Command, args []string) {
		api := getClient()

		conf, err := api.CancelRegistration(vehiclePlate)
		if err != nil {
			fmt.Printf("Error removing registration: %v\n", err)
			os.Exit(1)
		}
		if printJSON(conf) {
			return
		}

		fmt.Println("Registration removed successfully!")
	},
}

func init() {
	rootCmd.AddCommand(entryCmd, exitCmd, updateCmd, cancelCmd)

	// Blank values are sent as-is; the API decides whether they are valid.
	entryCmd.Flags().StringVar(&vehicleModel, "model", "", "Vehicle model")
	entryCmd.Flags().StringVar(&vehiclePlate, "plate", "", "License plate")

	exitCmd.Flags().StringVar(&vehiclePlate, "plate", "", "License plate")

	updateCmd.Flags().StringVar(&vehiclePlate, "plate", "", "License plate")
	updateCmd.Flags().StringVar(&vehicleModel, "model", "", "New vehicle model")

	cancelCmd.Flags().StringVar(&vehiclePlate, "plate", "", "License plate")
}
