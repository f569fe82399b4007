package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sahha "github.com/sahha-dz/sahha-go"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sahhactl",
	Short: "Command-line client for the Sahha healthcare API",
	Long: `sahhactl is a command-line client for the Sahha healthcare-access API.

It signs in against the auth endpoints, keeps the token pair in the platform
keyring, and exposes doctor search, pharmacy search, reservations, and profile
management.

Configuration is read from --config, ~/.config/sahhactl/config.yaml, or
environment variables prefixed with SAHHA_ (e.g. SAHHA_BASE_URL).

Examples:
  # Sign in (password prompted without echo)
  sahhactl login amine@example.com

  # Find cardiologists near Algiers
  sahhactl doctors nearby --latitude 36.75 --longitude 3.05

  # Book a consultation
  sahhactl reservations create --doctor doc-1 \
    --date 2026-09-12 --time 10:30 --service consultation

  # YAML output
  sahhactl pharmacies 24h --output yaml`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/sahhactl/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", sahha.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sahhactl"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("SAHHA")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// dataDir returns the directory holding the encrypted credential fallback
// file and the user snapshot.
func dataDir() (string, error) {
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "sahhactl"), nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient builds the SDK client with the keyring-backed credential store.
func newClient() (*sahha.Client, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	creds, err := sahha.NewKeyringStore(sahha.KeyringConfig{
		ServiceName: "sahha-auth",
		FileDir:     filepath.Join(dir, "keyring"),
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	return sahha.NewClient(
		sahha.WithBaseURL(viper.GetString("base_url")),
		sahha.WithCredentials(creds),
		sahha.WithLogger(logger),
	), nil
}

// newSession builds the session manager over a fresh client and restores any
// prior session from the credential store and snapshot.
func newSession() (*sahha.SessionManager, *sahha.Client, error) {
	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}

	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}
	cache, err := sahha.NewUserCache(filepath.Join(dir, "user.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("open user cache: %w", err)
	}

	mgr := sahha.NewSessionManager(client, cache, newLogger())
	mgr.CheckAuthenticationStatus()
	return mgr, client, nil
}
