package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/advisor"
	"github.com/Manoj-Murari/task-analyzer/internal/config"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/domain/priority"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/gemini"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/service"
	"github.com/spf13/cobra"
)

type rankOptions struct {
	strategy string
	date     string
	useAI    bool
	asJSON   bool
}

func newRankCmd() *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score and rank the tasks of a file",
		Long: `Score every task of the file and print them from highest to lowest
priority. Strategies: smart (default), fastest, impact, deadline.

With --ai the Gemini advisor is consulted first; its API key is read from
ANALYZER_LLM_GEMINI_API_KEY or config.yaml. When it is unavailable the
built-in engine is used.

Examples:
  taskrank rank -f tasks.yaml
  taskrank rank -f tasks.json --strategy fastest --date 2025-06-15
  taskrank rank -f tasks.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			return runRank(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", string(domain.StrategySmart),
		"scoring strategy: smart, fastest, impact or deadline")
	cmd.Flags().StringVar(&opts.date, "date", "", "evaluation date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&opts.useAI, "ai", false, "ask the Gemini advisor before falling back to the engine")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	return cmd
}

func runRank(ctx context.Context, in io.Reader, out, errOut io.Writer, path string, opts *rankOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tasks, err := readTasks(path, in)
	if err != nil {
		return err
	}

	now := time.Now()
	if opts.date != "" {
		if now, err = domain.ParseDate(opts.date); err != nil {
			return fmt.Errorf("--date: %w", err)
		}
	}

	strategy := domain.ParseStrategy(opts.strategy)
	if string(strategy) != strings.ToLower(strings.TrimSpace(opts.strategy)) {
		fmt.Fprintf(errOut, "unknown strategy %q, using %s\n", opts.strategy, strategy)
	}

	log := logger.New(errOut, "warn")
	svcOpts := []service.Option{service.WithClock(func() time.Time { return now })}
	if opts.useAI {
		svcOpts = append(svcOpts, service.WithAdvisor(loadAdvisor(ctx, log)))
	}

	svc, err := service.NewTaskService(priority.NewDefaultService(), log, svcOpts...)
	if err != nil {
		return err
	}

	results, err := svc.Analyze(ctx, tasks, service.AnalyzeOptions{Strategy: strategy, UseAI: opts.useAI})
	if err != nil {
		var cycleErr *service.CycleError
		if errors.As(err, &cycleErr) {
			printCycles(out, cycleErr.Messages)
			return errCyclesFound
		}
		return err
	}

	if opts.asJSON {
		return writeJSON(out, results)
	}
	fmt.Fprintln(out, renderTable(results, strategy, now))
	return nil
}

// loadAdvisor builds the Gemini advisor from configuration. Any problem
// leaves the advisor disabled so ranking still succeeds.
func loadAdvisor(ctx context.Context, log *slog.Logger) advisor.Advisor {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("configuration unavailable, AI advisor disabled", "error", err)
		return advisor.Disabled{}
	}
	a, err := gemini.New(ctx, log, cfg.LLM)
	if err != nil {
		log.Warn("AI advisor disabled", "error", err)
		return advisor.Disabled{}
	}
	return a
}

type jsonResult struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	DueDate        string  `json:"due_date"`
	EstimatedHours float64 `json:"estimated_hours"`
	Importance     int     `json:"importance"`
	Dependencies   []int64 `json:"dependencies"`
	Score          float64 `json:"score"`
	Explanation    string  `json:"explanation"`
}

func writeJSON(out io.Writer, results []domain.ScoreResult) error {
	rows := make([]jsonResult, 0, len(results))
	for _, r := range results {
		rows = append(rows, jsonResult{
			ID:             r.Task.ID,
			Title:          r.Task.Title,
			DueDate:        domain.FormatDate(r.Task.DueDate),
			EstimatedHours: r.Task.EstimatedHours,
			Importance:     r.Task.Importance,
			Dependencies:   r.Task.Dependencies,
			Score:          r.Score,
			Explanation:    r.Explanation,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
