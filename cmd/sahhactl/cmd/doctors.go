package cmd

import (
	"github.com/spf13/cobra"

	sahha "github.com/sahha-dz/sahha-go"
)

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Search and browse doctors",
}

var doctorsNearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "List doctors near a coordinate",
	Long: `List doctors within a radius (kilometers) of a coordinate.

Examples:
  sahhactl doctors nearby --latitude 36.75 --longitude 3.05
  sahhactl doctors nearby --latitude 35.69 --longitude -0.64 --radius 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		lat, _ := cmd.Flags().GetFloat64("latitude")
		lon, _ := cmd.Flags().GetFloat64("longitude")
		radius, _ := cmd.Flags().GetFloat64("radius")

		doctors, err := client.Doctors.Nearby(cmd.Context(), lat, lon, radius)
		if err != nil {
			return err
		}
		return printOutput(doctors)
	},
}

var doctorsSpecialtyCmd = &cobra.Command{
	Use:   "specialty <name>",
	Short: "List doctors by specialty",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		doctors, err := client.Doctors.BySpecialty(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printOutput(doctors)
	},
}

var doctorsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search doctors by name or keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		doctors, err := client.Doctors.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printOutput(doctors)
	},
}

func init() {
	doctorsNearbyCmd.Flags().Float64("latitude", 0, "latitude")
	doctorsNearbyCmd.Flags().Float64("longitude", 0, "longitude")
	doctorsNearbyCmd.Flags().Float64("radius", sahha.DefaultDoctorRadius, "radius in kilometers")
	doctorsNearbyCmd.MarkFlagRequired("latitude")
	doctorsNearbyCmd.MarkFlagRequired("longitude")

	doctorsCmd.AddCommand(doctorsNearbyCmd, doctorsSpecialtyCmd, doctorsSearchCmd)
	rootCmd.AddCommand(doctorsCmd)
}
