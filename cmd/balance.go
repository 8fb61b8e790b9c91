package cmd

import (
	"fmt"

	"github.com/chinmay1088/ddollars/api"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <userID> [bankID]",
	Short: "Check a user's balance",
	Long: `Check a user's wallet balance, or their balance at a bank.

Examples:
  ddollars balance 1234          # Wallet balance of user 1234
  ddollars balance 1234 bank-1   # Balance of user 1234 at bank-1
  ddollars balance 1234 --json   # Raw API response`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	userID := args[0]
	var (
		body  api.Body
		title string
	)
	if len(args) == 2 {
		bankID := args[1]
		body, err = client.GetBalanceFromBank(cmd.Context(), userID, bankID)
		title = fmt.Sprintf("🏦 Balance of %s at %s", userID, bankID)
	} else {
		body, err = client.GetBalance(cmd.Context(), userID)
		title = fmt.Sprintf("💰 Wallet balance of %s", userID)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	return printBody(cmd, title, body)
}
