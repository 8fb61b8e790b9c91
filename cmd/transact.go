package cmd

import (
	"fmt"

	"github.com/chinmay1088/ddollars/api"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var transactCmd = &cobra.Command{
	Use:   "transact <sourceBank> <destBank> <payer> <payee> <amount>",
	Short: "Send money between users",
	Long: `Send a whole amount from a payer at one bank to a payee at another.

Both users and both banks are looked up and the payer's balance is checked
before anything is sent.

Examples:
  ddollars transact bank-1 bank-2 1234 5678 50
  ddollars transact bank-1 bank-1 1234 5678 50 --yes`,
	Args: cobra.ExactArgs(5),
	RunE: runTransact,
}

func runTransact(cmd *cobra.Command, args []string) error {
	sourceBank, destBank, payer, payee, amount := args[0], args[1], args[2], args[3], args[4]
	out := cmd.OutOrStdout()

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Fprintf(out, "💸 Send %s from %s (%s) to %s (%s)\n",
			color.GreenString(amount), payer, sourceBank, payee, destBank)
		if !getConfirmation(cmd, "Press y to confirm or n to stop") {
			fmt.Fprintln(out, "❌ Transaction cancelled by user")
			return nil
		}
	}

	var opts []api.Option
	var bar *progressbar.ProgressBar
	if !jsonOutput {
		bar = progressbar.NewOptions(api.StageCount,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription(fmt.Sprintf("[cyan][0/%d][reset] Preparing...", api.StageCount)),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		opts = append(opts, api.WithStageHook(func(s api.Stage) {
			bar.Describe(fmt.Sprintf("[cyan][%d/%d][reset] %s...", int(s), api.StageCount, s))
			bar.Set(int(s) - 1)
		}))
	}

	client, err := newClient(opts...)
	if err != nil {
		return err
	}

	body, err := client.Transact(cmd.Context(), sourceBank, destBank, payer, payee, amount)
	if bar != nil {
		if err == nil {
			bar.Finish()
		} else {
			bar.Clear()
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return printBody(cmd, "✅ Transaction submitted", body)
}

func init() {
	transactCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
