package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chinmay1088/ddollars/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readSecret prompts for hidden input when stdin is a terminal, otherwise reads a line
var readSecret = func(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout()) // New line after hidden input
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	return readLine(cmd.InOrStdin())
}

// readLine reads up to a newline one byte at a time so that later
// prompts can keep reading from the same stream
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				break
			}
			return "", err
		}
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}

// getConfirmation asks a yes/no question and defaults to no
func getConfirmation(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/n): ", question)

	response, err := readLine(cmd.InOrStdin())
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// printBody prints a response either as raw JSON or as aligned key/value lines
func printBody(cmd *cobra.Command, title string, body api.Body) error {
	out := cmd.OutOrStdout()

	if jsonOutput {
		data, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, title)

	keys := make([]string, 0, len(body))
	width := 0
	for k := range body {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "   %-*s  %s\n", width, k, formatValue(body[k]))
	}
	fmt.Fprintln(out)
	return nil
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return color.HiBlackString("null")
	case string:
		return t
	case json.Number:
		return t.String()
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	default:
		return fmt.Sprint(t)
	}
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return b, nil
}
