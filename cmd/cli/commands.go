package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <user_id> <message...>",
		Short: "Send a message to the agent",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"user_id": args[0],
				"message": strings.Join(args[1:], " "),
			}
			data, err := opts.call(cmd.Context(), http.MethodPost, "/api/v1/chat", body)
			if err != nil {
				return err
			}
			var reply struct {
				Response string `json:"response"`
			}
			_ = json.Unmarshal(data, &reply)
			return render(cmd.OutOrStdout(), opts.output, data, reply.Response)
		},
	}
}

func newGoalCmd(opts *options) *cobra.Command {
	goal := &cobra.Command{
		Use:   "goal",
		Short: "Show or set a user's goal",
	}

	get := &cobra.Command{
		Use:   "get <user_id>",
		Short: "Show the current goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.call(cmd.Context(), http.MethodGet, "/api/v1/goals/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}

	var (
		goalType string
		calories int
		weight   float64
		date     string
	)
	set := &cobra.Command{
		Use:   "set <user_id>",
		Short: "Create or replace the goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"goal_type": goalType}
			if cmd.Flags().Changed("calories") {
				body["target_calories"] = calories
			}
			if cmd.Flags().Changed("weight") {
				body["target_weight"] = weight
			}
			if date != "" {
				body["target_date"] = date
			}
			data, err := opts.call(cmd.Context(), http.MethodPost, "/api/v1/goals/"+url.PathEscape(args[0]), body)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}
	set.Flags().StringVar(&goalType, "type", "maintenance", "weight_loss, muscle_gain or maintenance")
	set.Flags().IntVar(&calories, "calories", 0, "daily calorie target")
	set.Flags().Float64Var(&weight, "weight", 0, "target weight in kg")
	set.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD)")

	goal.AddCommand(get, set)
	return goal
}

func newSummaryCmd(opts *options) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "summary <user_id>",
		Short: "Summarize calories against the goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/summary/%s?period=%s", url.PathEscape(args[0]), url.QueryEscape(period))
			data, err := opts.call(cmd.Context(), http.MethodGet, path, nil)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}
	cmd.Flags().StringVar(&period, "period", "weekly", "daily, weekly or monthly")
	return cmd
}

func newRemindersCmd(opts *options) *cobra.Command {
	reminders := &cobra.Command{
		Use:   "reminders",
		Short: "List or schedule calendar reminders",
	}

	list := &cobra.Command{
		Use:   "list <user_id>",
		Short: "List reminders ordered by time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.call(cmd.Context(), http.MethodGet, "/api/v1/reminders/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}

	var day string
	meal := &cobra.Command{
		Use:   "meal <user_id> <meal_type> <time>",
		Short: "Schedule a meal logging reminder (time is HH:MM or RFC3339)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"meal_type": args[1], "time": args[2], "day": day}
			data, err := opts.call(cmd.Context(), http.MethodPost, "/api/v1/reminders/"+url.PathEscape(args[0])+"/meal", body)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}
	meal.Flags().StringVar(&day, "day", "", "relative day such as tomorrow or next monday")

	var weekday int
	weekly := &cobra.Command{
		Use:   "weekly <user_id>",
		Short: "Schedule the weekly summary reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]int{"day_of_week": weekday}
			data, err := opts.call(cmd.Context(), http.MethodPost, "/api/v1/reminders/"+url.PathEscape(args[0])+"/weekly", body)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}
	weekly.Flags().IntVar(&weekday, "weekday", 0, "0 = Monday ... 6 = Sunday")

	reminders.AddCommand(list, meal, weekly)
	return reminders
}

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := opts.call(cmd.Context(), http.MethodGet, "/ready", nil)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, data, "")
		},
	}
}
