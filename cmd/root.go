package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chinmay1088/ddollars/api"
	"github.com/chinmay1088/ddollars/credentials"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	version = "0.3.0"

	cfgFile    string
	settings   *viper.Viper
	logger     = zap.NewNop()
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ddollars",
	Short: "Command-line client for the DiscordDollars API",
	Long: `ddollars talks to the DiscordDollars virtual currency API. It looks up
wallet and bank balances, inspects banks and sends money between users.

Your API token is stored encrypted under ~/.ddollars and unlocked for
short sessions, or can be supplied with --token / DDOLLARS_TOKEN.

Examples:
  ddollars login                               # Store your API token
  ddollars balance 1234                        # Wallet balance of user 1234
  ddollars balance 1234 bank-1                 # Balance of user 1234 at bank-1
  ddollars bank bank-1                         # Bank information
  ddollars transact bank-1 bank-2 1234 5678 50 # Send 50 from 1234 to 5678`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer func() { _ = logger.Sync() }()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.ddollars/config.yaml)")
	rootCmd.PersistentFlags().String("token", "", "API token (overrides the stored token)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON responses")

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(transactCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and the logger before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	settings = v

	verbose, _ := cmd.Flags().GetBool("verbose")
	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	config.Encoding = "console"
	config.DisableStacktrace = true
	return config.Build()
}

// newCredentials returns the credential manager for the configured directory
func newCredentials() (*credentials.Manager, error) {
	dir := settings.GetString(keyDir)
	if dir == "" {
		d, err := credentials.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return credentials.NewManager(dir), nil
}

// newClient builds an API client from flags, environment, config and the stored token
func newClient(opts ...api.Option) (*api.Client, error) {
	token := settings.GetString(keyToken)
	if token == "" {
		manager, err := newCredentials()
		if err != nil {
			return nil, err
		}
		token, err = manager.Token()
		if err != nil {
			return nil, err
		}
	}

	base := []api.Option{
		api.WithBaseURL(settings.GetString(keyBaseURL)),
		api.WithTimeout(settings.GetDuration(keyTimeout)),
		api.WithConcurrentLookups(settings.GetBool(keyConcurrentLookups)),
		api.WithUserAgent("ddollars/" + version),
		api.WithLogger(logger),
	}
	return api.NewClient(token, append(base, opts...)...)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ddollars v%s\n", version)
	},
}
