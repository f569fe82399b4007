package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	sahha "github.com/sahha-dz/sahha-go"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store the session in the platform keyring",
	Long: `Sign in with an email and password.

The password is prompted without echo unless --password is given (avoid it:
the flag leaks into shell history). On success the token pair is written to
the platform keyring and the user snapshot is cached locally, so later
invocations stay signed in.

Examples:
  sahhactl login amine@example.com
  SAHHA_BASE_URL=https://staging.sahha.dz sahhactl login amine@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account and sign in",
	Long: `Create a client account and sign in.

Examples:
  sahhactl register amine@example.com \
    --full-name "Amine B." --phone 0551234567 \
    --region Algiers --age 31 --blood-type O+`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := newSession()
		if err != nil {
			return err
		}
		mgr.Logout()
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := newSession()
		if err != nil {
			return err
		}
		state := mgr.State()
		if !state.Authenticated {
			return errors.New("not signed in")
		}
		if state.User == nil {
			fmt.Println("signed in (no cached user snapshot)")
			return nil
		}
		return printOutput(state.User)
	},
}

func init() {
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")

	registerCmd.Flags().String("password", "", "password (prompted when omitted)")
	registerCmd.Flags().String("full-name", "", "full name")
	registerCmd.Flags().String("phone", "", "mobile number, e.g. 0551234567")
	registerCmd.Flags().String("region", "", "region, e.g. Algiers")
	registerCmd.Flags().Int("age", 0, "age in years")
	registerCmd.Flags().String("blood-type", "", "blood group, e.g. O+")
	registerCmd.MarkFlagRequired("full-name")
	registerCmd.MarkFlagRequired("phone")
	registerCmd.MarkFlagRequired("region")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

// readPassword returns the --password flag or prompts without echo.
func readPassword(cmd *cobra.Command) (string, error) {
	if pw, _ := cmd.Flags().GetString("password"); pw != "" {
		return pw, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := args[0]
	if !sahha.IsValidEmail(email) {
		return fmt.Errorf("%q is not a valid email address", email)
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	mgr, _, err := newSession()
	if err != nil {
		return err
	}

	if !mgr.Login(cmd.Context(), email, password) {
		return errors.New(mgr.State().LastError)
	}

	state := mgr.State()
	fmt.Printf("signed in as %s\n", state.User.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	email := args[0]
	if !sahha.IsValidEmail(email) {
		return fmt.Errorf("%q is not a valid email address", email)
	}

	phone, _ := cmd.Flags().GetString("phone")
	if !sahha.IsValidPhoneNumber(phone) {
		return fmt.Errorf("%q is not a valid mobile number", phone)
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	if !sahha.IsValidPassword(password) {
		label, _ := sahha.PasswordStrength(password)
		return fmt.Errorf("password too weak (%s): need 8+ characters with a letter and a digit", label)
	}

	region, _ := cmd.Flags().GetString("region")
	if !slices.Contains(sahha.Regions, region) {
		return fmt.Errorf("unknown region %q (one of: %s)", region, strings.Join(sahha.Regions, ", "))
	}

	bloodType, _ := cmd.Flags().GetString("blood-type")
	if bloodType != "" && !slices.Contains(sahha.BloodTypes, sahha.BloodType(bloodType)) {
		return fmt.Errorf("unknown blood type %q", bloodType)
	}

	fullName, _ := cmd.Flags().GetString("full-name")
	age, _ := cmd.Flags().GetInt("age")

	mgr, _, err := newSession()
	if err != nil {
		return err
	}

	ok := mgr.Register(cmd.Context(), sahha.RegisterParams{
		Email:     email,
		Password:  password,
		FullName:  fullName,
		Phone:     phone,
		Region:    region,
		Age:       age,
		BloodType: sahha.BloodType(bloodType),
	})
	if !ok {
		return errors.New(mgr.State().LastError)
	}

	fmt.Printf("account created, signed in as %s\n", email)
	return nil
}
