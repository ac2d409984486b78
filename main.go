// Command triply talks to the trip assistant from a terminal. The HTTP API
// lives in backend/.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"triply/internal/assistant"
	"triply/internal/config"
	"triply/internal/logger"
	"triply/internal/planner"
	"triply/internal/store"
	"triply/internal/trip"
)

type options struct {
	tripFile    string
	tripID      string
	historyFile string
	asJSON      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "triply",
		Short:         "Rule-based trip assistant",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.tripFile, "trip", "", "trip JSON file")
	root.PersistentFlags().StringVar(&opts.tripID, "trip-id", "", "load the trip from the configured store")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(newAskCmd(opts), newInsightsCmd(opts), newPlanCmd(opts))
	return root
}

// ========== ask ==========

func newAskCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask MESSAGE...",
		Short: "Ask the assistant about a trip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := setup()
			if err != nil {
				return err
			}
			t, err := loadTrip(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			history, err := loadHistory(opts.historyFile)
			if err != nil {
				return err
			}

			resp, err := svc.Respond(cmd.Context(), strings.Join(args, " "), t, history)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.historyFile, "history", "", "chat history JSON file (oldest first)")
	return cmd
}

// ========== insights ==========

func newInsightsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show tip cards for a trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, svc, err := setup()
			if err != nil {
				return err
			}
			t, err := loadTrip(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}

			cards := svc.Insights(t)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), cards)
			}
			for _, in := range cards {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n  %s\n", in.Priority, in.Title, in.Description)
			}
			return nil
		},
	}
}

// ========== plan ==========

func newPlanCmd(opts *options) *cobra.Command {
	var (
		req    planner.Request
		budget float64
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Suggest what to do at a destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(req.Destination) == "" {
				return errors.New("--destination is required")
			}
			if cmd.Flags().Changed("budget") {
				req.Budget = &budget
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			money, err := assistant.NewCurrencyFormatter(cfg.CurrencyCode)
			if err != nil {
				return err
			}

			suggestions, err := planner.NewRulePlanner(money.Format).Suggest(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), suggestions)
			}
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n\n", s.Title, s.Priority, s.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Destination, "destination", "", "city or region")
	cmd.Flags().IntVar(&req.Days, "days", 0, "trip length in days")
	cmd.Flags().Float64Var(&budget, "budget", 0, "total budget")
	cmd.Flags().StringSliceVar(&req.Interests, "interest", nil, "interests, repeatable")
	return cmd
}

// ========== helpers ==========

func setup() (*config.Config, *assistant.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Development(), logger.LogLevel(cfg.LogLevel)); err != nil {
		return nil, nil, err
	}
	svc := assistant.NewService(
		assistant.WithCurrency(cfg.CurrencyCode),
		assistant.WithLogger(logger.Get()),
	)
	return cfg, svc, nil
}

func loadTrip(ctx context.Context, cfg *config.Config, opts *options) (*trip.Trip, error) {
	switch {
	case opts.tripFile != "":
		var t trip.Trip
		if err := readJSON(opts.tripFile, &t); err != nil {
			return nil, err
		}
		return &t, nil
	case opts.tripID != "":
		var st store.Store
		var err error
		if cfg.StoreDriver == config.DriverMongo {
			st, err = store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, logger.Get())
		} else {
			st, err = store.NewMemoryStore(cfg.DataFile, logger.Get())
		}
		if err != nil {
			return nil, err
		}
		defer st.Close(ctx)
		return st.GetTrip(ctx, opts.tripID)
	}
	return nil, errors.New("one of --trip or --trip-id is required")
}

func loadHistory(path string) ([]trip.ChatMessage, error) {
	if path == "" {
		return nil, nil
	}
	var history []trip.ChatMessage
	if err := readJSON(path, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
