package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the stored token for a session",
	Long: `Unlock your stored API token for the current session.
The token stays unlocked for 30 minutes or until you run 'ddollars lock'.

Example:
  ddollars unlock`,
	RunE: runUnlock,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the stored token",
	Long: `End the current session. With --forget the stored token is deleted.

Examples:
  ddollars lock
  ddollars lock --forget`,
	RunE: runLock,
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager, err := newCredentials()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !manager.VaultExists() {
		return fmt.Errorf("no token found. Run 'ddollars login' first")
	}

	if manager.IsUnlocked() {
		fmt.Fprintln(out, "✅ Token is already unlocked")
		return nil
	}

	passphrase, err := readSecret(cmd, "Enter your passphrase: ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	if err := manager.Unlock(passphrase); err != nil {
		return fmt.Errorf("failed to unlock token: %w", err)
	}

	fmt.Fprintln(out, "✅ Token unlocked successfully!")
	if expiry, ok := manager.SessionExpiry(); ok {
		fmt.Fprintf(out, "⏱  Session valid until %s\n", expiry.Local().Format("15:04"))
	}
	return nil
}

func runLock(cmd *cobra.Command, args []string) error {
	manager, err := newCredentials()
	if err != nil {
		return err
	}

	forget, _ := cmd.Flags().GetBool("forget")
	if forget {
		if err := manager.Forget(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "🗑  Stored token deleted")
		return nil
	}

	manager.Lock()
	fmt.Fprintln(cmd.OutOrStdout(), "🔒 Token locked")
	return nil
}

func init() {
	lockCmd.Flags().Bool("forget", false, "Delete the stored token")
}
