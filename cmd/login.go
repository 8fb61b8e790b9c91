package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your API token",
	Long: `Store your DiscordDollars API token in an encrypted vault.

This command will:
  - Ask for your API token (input is hidden)
  - Ask for a passphrase used to encrypt it
  - Unlock the token for the next 30 minutes

Example:
  ddollars login`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager, err := newCredentials()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if manager.VaultExists() && !force {
		return fmt.Errorf("a token is already stored. Use 'ddollars login --force' to replace it")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔑 Storing DiscordDollars API token")
	fmt.Fprintln(out)

	token, err := readSecret(cmd, "Enter your API token: ")
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	passphrase, err := readSecret(cmd, "Enter a passphrase to encrypt it: ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(passphrase) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters long")
	}

	confirm, err := readSecret(cmd, "Confirm passphrase: ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase confirmation: %w", err)
	}
	if passphrase != confirm {
		return fmt.Errorf("passphrases do not match")
	}

	if err := manager.Save(token, passphrase); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Fprintln(out, "✅ Token stored and unlocked")
	fmt.Fprintln(out, "💡 Use 'ddollars balance <userID>' to check a balance")
	return nil
}

func init() {
	loginCmd.Flags().Bool("force", false, "Replace an already stored token")
}
