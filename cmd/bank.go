package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank <bankID>",
	Short: "Show bank information",
	Long: `Show information about a bank.

Example:
  ddollars bank bank-1`,
	Args: cobra.ExactArgs(1),
	RunE: runBank,
}

func runBank(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	body, err := client.GetBank(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch bank: %w", err)
	}

	return printBody(cmd, fmt.Sprintf("🏦 Bank %s", args[0]), body)
}
