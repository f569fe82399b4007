package cmd

import (
	"github.com/spf13/cobra"

	sahha "github.com/sahha-dz/sahha-go"
)

var pharmaciesCmd = &cobra.Command{
	Use:   "pharmacies",
	Short: "Search and browse pharmacies",
}

var pharmaciesNearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "List pharmacies near a coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		lat, _ := cmd.Flags().GetFloat64("latitude")
		lon, _ := cmd.Flags().GetFloat64("longitude")
		radius, _ := cmd.Flags().GetFloat64("radius")

		pharmacies, err := client.Pharmacies.Nearby(cmd.Context(), lat, lon, radius)
		if err != nil {
			return err
		}
		return printOutput(pharmacies)
	},
}

var pharmaciesRegionCmd = &cobra.Command{
	Use:   "region <name>",
	Short: "List pharmacies in a region",
	Long: `List pharmacies registered in a region.

Examples:
  sahhactl pharmacies region Algiers
  sahhactl pharmacies region "Sidi Bel Abbès"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		pharmacies, err := client.Pharmacies.ByRegion(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printOutput(pharmacies)
	},
}

var pharmacies24hCmd = &cobra.Command{
	Use:   "24h",
	Short: "List pharmacies open around the clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		pharmacies, err := client.Pharmacies.Open24Hours(cmd.Context())
		if err != nil {
			return err
		}
		return printOutput(pharmacies)
	},
}

func init() {
	pharmaciesNearbyCmd.Flags().Float64("latitude", 0, "latitude")
	pharmaciesNearbyCmd.Flags().Float64("longitude", 0, "longitude")
	pharmaciesNearbyCmd.Flags().Float64("radius", sahha.DefaultPharmacyRadius, "radius in kilometers")
	pharmaciesNearbyCmd.MarkFlagRequired("latitude")
	pharmaciesNearbyCmd.MarkFlagRequired("longitude")

	pharmaciesCmd.AddCommand(pharmaciesNearbyCmd, pharmaciesRegionCmd, pharmacies24hCmd)
	rootCmd.AddCommand(pharmaciesCmd)
}
