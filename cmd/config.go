package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chinmay1088/ddollars/api"
	"github.com/chinmay1088/ddollars/credentials"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "DDOLLARS"

// settings keys
const (
	keyToken             = "token"
	keyBaseURL           = "base_url"
	keyTimeout           = "timeout"
	keyConcurrentLookups = "concurrent_lookups"
	keyDir               = "dir"
)

// keys that may be written with 'ddollars config <key> <value>'
var writableKeys = map[string]bool{
	keyBaseURL:           true,
	keyTimeout:           true,
	keyConcurrentLookups: true,
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Show or change settings",
	Long: `Show the effective settings, a single setting, or persist a new value
to the config file.

Settings are read from the config file, then DDOLLARS_* environment
variables, then command-line flags (later sources win).

Writable keys: base_url, timeout, concurrent_lookups

Examples:
  ddollars config                                   # Show all settings
  ddollars config base_url                          # Show one setting
  ddollars config timeout 10s                       # Persist a setting
  ddollars config concurrent_lookups true`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// loadSettings reads the config file (if any) and environment into a fresh viper instance
func loadSettings(file string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyBaseURL, api.BaseURL)
	v.SetDefault(keyTimeout, api.DefaultTimeout)
	v.SetDefault(keyConcurrentLookups, false)

	if file == "" {
		dir := v.GetString(keyDir)
		if dir == "" {
			d, err := credentials.DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		file = filepath.Join(dir, "config.yaml")
	}
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(keyToken, flags.Lookup("token")); err != nil {
		return fmt.Errorf("failed to bind flag: %w", err)
	}
	if err := v.BindPFlag(keyBaseURL, flags.Lookup("base-url")); err != nil {
		return fmt.Errorf("failed to bind flag: %w", err)
	}
	return nil
}

func configPath() (string, error) {
	if f := settings.ConfigFileUsed(); f != "" {
		return f, nil
	}
	dir, err := credentials.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch len(args) {
	case 0:
		for _, k := range []string{keyBaseURL, keyConcurrentLookups, keyTimeout, keyToken} {
			fmt.Fprintf(out, "%s = %s\n", color.CyanString(k), displayValue(k))
		}
		if f := settings.ConfigFileUsed(); f != "" {
			fmt.Fprintf(out, "\n📄 Config file: %s\n", f)
		}
		return nil
	case 1:
		fmt.Fprintln(out, displayValue(strings.ToLower(args[0])))
		return nil
	}

	key := strings.ToLower(args[0])
	if !writableKeys[key] {
		return fmt.Errorf("cannot set %q. Writable keys: base_url, timeout, concurrent_lookups", key)
	}
	return writeSetting(cmd, key, args[1])
}

func displayValue(key string) string {
	value := settings.GetString(key)
	if key == keyToken && value != "" {
		return maskToken(value)
	}
	return value
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// writeSetting persists one key without copying environment or flag values into the file
func writeSetting(cmd *cobra.Command, key, value string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(path)
	if err := file.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	switch key {
	case keyTimeout:
		d, err := parseDuration(value)
		if err != nil {
			return err
		}
		file.Set(key, d.String())
	case keyConcurrentLookups:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		file.Set(key, b)
	default:
		file.Set(key, value)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s set to %s\n", key, color.GreenString(value))
	return nil
}
