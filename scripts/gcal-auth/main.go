// Command gcal-auth authorizes Google Calendar access once and writes the
// OAuth token the reminder engine reads.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json --token token.json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Generate the Google Calendar OAuth token used for reminders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return authorize(cmd.Context(), credsPath, tokenPath)
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", envOr("GOOGLE_CALENDAR_CREDENTIALS_PATH", "google-credentials.json"), "OAuth desktop client credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", envOr("GOOGLE_CALENDAR_TOKEN_PATH", "token.json"), "where to write the token")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func authorize(ctx context.Context, credsPath, tokenPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials file %q: %w", credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials (expected an OAuth desktop app file): %w", err)
	}

	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Restart the API to enable reminders.\n", tokenPath)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
