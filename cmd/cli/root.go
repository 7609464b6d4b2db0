package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	defaultServer = "http://localhost:8080"
	envServer     = "FITNESS_API_URL"
)

// options are the flags shared by every subcommand.
type options struct {
	server string
	output string
	client *http.Client
}

func newRootCmd() *cobra.Command {
	opts := &options{client: &http.Client{Timeout: 2 * time.Minute}}

	root := &cobra.Command{
		Use:   "fitness",
		Short: "Command line client for the Fitness AI Agent",
		Long: `Send messages to the fitness agent and inspect goals, summaries and reminders.

Examples:
  fitness chat alice "I had two eggs and toast"
  fitness goal set alice --type weight_loss --calories 1800
  fitness summary alice --period monthly -o yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case outputJSON, outputYAML, outputText:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want %s, %s or %s)", opts.output, outputText, outputJSON, outputYAML)
			}
		},
	}

	server := os.Getenv(envServer)
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&opts.server, "server", server, "API base URL (env "+envServer+")")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")

	root.AddCommand(
		newChatCmd(opts),
		newGoalCmd(opts),
		newSummaryCmd(opts),
		newRemindersCmd(opts),
		newHealthCmd(opts),
	)
	return root
}
