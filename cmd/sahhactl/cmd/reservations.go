package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	sahha "github.com/sahha-dz/sahha-go"
)

var reservationsCmd = &cobra.Command{
	Use:     "reservations",
	Aliases: []string{"res"},
	Short:   "Manage appointment reservations",
}

var reservationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reservations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		reservations, err := client.Reservations.List(cmd.Context())
		if err != nil {
			return err
		}
		return printOutput(reservations)
	},
}

var reservationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book an appointment",
	Long: `Book an appointment with a doctor.

Examples:
  sahhactl reservations create --doctor doc-1 \
    --date 2026-09-12 --time 10:30 --service consultation \
    --notes "first visit"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		doctorID, _ := cmd.Flags().GetString("doctor")
		date, _ := cmd.Flags().GetString("date")
		timeOfDay, _ := cmd.Flags().GetString("time")
		service, _ := cmd.Flags().GetString("service")
		notes, _ := cmd.Flags().GetString("notes")

		reservation, err := client.Reservations.Create(cmd.Context(), sahha.ReservationRequest{
			DoctorID:        doctorID,
			AppointmentDate: date,
			AppointmentTime: timeOfDay,
			ServiceType:     service,
			Notes:           notes,
		})
		if err != nil {
			return err
		}
		return printOutput(reservation)
	},
}

var reservationsScanQRCmd = &cobra.Command{
	Use:   "scan-qr <payload>",
	Short: "Submit a scanned reservation QR code for check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Reservations.ScanQR(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("checked in")
		return nil
	},
}

func init() {
	reservationsCreateCmd.Flags().String("doctor", "", "doctor ID")
	reservationsCreateCmd.Flags().String("date", "", "appointment date (YYYY-MM-DD)")
	reservationsCreateCmd.Flags().String("time", "", "appointment time (HH:MM)")
	reservationsCreateCmd.Flags().String("service", "consultation", "service type")
	reservationsCreateCmd.Flags().String("notes", "", "notes for the doctor")
	reservationsCreateCmd.MarkFlagRequired("doctor")
	reservationsCreateCmd.MarkFlagRequired("date")
	reservationsCreateCmd.MarkFlagRequired("time")

	reservationsCmd.AddCommand(reservationsListCmd, reservationsCreateCmd, reservationsScanQRCmd)
	rootCmd.AddCommand(reservationsCmd)
}
