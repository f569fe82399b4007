package cmd

import (
	"github.com/spf13/cobra"

	sahha "github.com/sahha-dz/sahha-go"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		profile, err := client.Profile.Get(cmd.Context())
		if err != nil {
			return err
		}
		return printOutput(profile)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace your profile",
	Long: `Replace the stored profile. Updates are whole-object: every field is
sent, and omitted optional fields are cleared server-side.

Examples:
  sahhactl profile update --age 31 --blood-type O+ \
    --latitude 36.75 --longitude 3.05 --full-name "Amine B."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		age, _ := cmd.Flags().GetInt("age")
		bloodType, _ := cmd.Flags().GetString("blood-type")
		lat, _ := cmd.Flags().GetFloat64("latitude")
		lon, _ := cmd.Flags().GetFloat64("longitude")

		profile := sahha.UserProfile{
			Age:       age,
			BloodType: bloodType,
			Latitude:  lat,
			Longitude: lon,
		}
		if fullName, _ := cmd.Flags().GetString("full-name"); fullName != "" {
			profile.FullName = sahha.Ptr(fullName)
		}
		if phone, _ := cmd.Flags().GetString("phone"); phone != "" {
			profile.Phone = sahha.Ptr(phone)
		}

		updated, err := client.Profile.Update(cmd.Context(), profile)
		if err != nil {
			return err
		}
		return printOutput(updated)
	},
}

func init() {
	profileUpdateCmd.Flags().Int("age", 0, "age in years")
	profileUpdateCmd.Flags().String("blood-type", "", "blood group, e.g. O+")
	profileUpdateCmd.Flags().Float64("latitude", 0, "home latitude")
	profileUpdateCmd.Flags().Float64("longitude", 0, "home longitude")
	profileUpdateCmd.Flags().String("full-name", "", "full name")
	profileUpdateCmd.Flags().String("phone", "", "mobile number")
	profileUpdateCmd.MarkFlagRequired("age")
	profileUpdateCmd.MarkFlagRequired("blood-type")

	profileCmd.AddCommand(profileGetCmd, profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
