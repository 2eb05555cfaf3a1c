package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/smartlearn/internal/llm"
	"github.com/abhisek/smartlearn/internal/store"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Audit the model calls made for quiz generation and tutoring",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded model calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := store.QueryOpts{}
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		opts.Purpose, _ = cmd.Flags().GetString("purpose")
		opts.SessionID, _ = cmd.Flags().GetString("for-session")

		return withEventStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(ctx, opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println("No model calls recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWHEN\tPURPOSE\tSESSION\tMODEL\tTOKENS\tMS\tOK")
			for _, e := range events {
				status := "yes"
				if !e.Success {
					status = "no"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d/%d\t%d\t%s\n",
					e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, truncate(e.SessionID, 12),
					truncate(e.Model, 28), e.InputTokens, e.OutputTokens, e.LatencyMs, status)
			}
			return tw.Flush()
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply captured for one model call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("event id must be a number, got %q", args[0])
		}

		return withEventStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("no model call with id %d", id)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
			fmt.Fprintf(tw, "Event\t%d\n", e.ID)
			fmt.Fprintf(tw, "Time\t%s\n", e.Timestamp.Local().Format(timeLayout))
			fmt.Fprintf(tw, "Provider\t%s (%s)\n", e.Provider, e.Model)
			fmt.Fprintf(tw, "Purpose\t%s\n", e.Purpose)
			if e.SessionID != "" {
				fmt.Fprintf(tw, "Session\t%s\n", e.SessionID)
			}
			fmt.Fprintf(tw, "Tokens\t%d in, %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Fprintf(tw, "Latency\t%dms\n", e.LatencyMs)
			if e.Success {
				fmt.Fprintln(tw, "Result\tok")
			} else {
				fmt.Fprintf(tw, "Result\tfailed: %s\n", e.ErrorMessage)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			printSection("Prompt", e.RequestBody)
			printSection("Reply", e.ResponseBody)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage per purpose and estimated spend per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			byPurpose, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Println("No model calls recorded.")
				return nil
			}
			if err := printPurposeUsage(byPurpose); err != nil {
				return err
			}

			byModel, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			fmt.Println()
			return printModelCost(byModel)
		})
	},
}

func printPurposeUsage(rows []store.PurposeUsage) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tAVG MS\t")
	var calls, in, out int
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", r.Purpose, r.Calls, r.InputTokens, r.OutputTokens, r.AvgLatencyMs)
		calls += r.Calls
		in += r.InputTokens
		out += r.OutputTokens
	}
	fmt.Fprintf(tw, "total\t%d\t%d\t%d\t\t\n", calls, in, out)
	return tw.Flush()
}

// printModelCost prices each model from the built-in table. Models with no
// known price are listed with "?" and left out of the total.
func printModelCost(rows []store.ModelUsage) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST\t")
	var total float64
	var unpriced []string
	for _, r := range rows {
		cost := "?"
		if p := llm.LookupCost(r.Model); p != nil {
			c := p.Cost(r.InputTokens, r.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, r.Model)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t\n", truncate(r.Model, 32), r.Calls, r.InputTokens, r.OutputTokens, cost)
	}
	fmt.Fprintf(tw, "estimated total\t\t\t\t%s\t\n", formatCost(total))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(unpriced) > 0 {
		fmt.Printf("\nNo price known for %s.\n", strings.Join(unpriced, ", "))
	}
	return nil
}

func printSection(title, body string) {
	fmt.Printf("\n== %s ==\n", title)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

// withEventStore opens the store without building an engine, so the audit
// commands work even when no LLM provider is configured.
func withEventStore(cmd *cobra.Command, fn func(context.Context, store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(cmd.Context(), st.EventRepo())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls for this purpose (quiz-gen or tutor)")
	llmListCmd.Flags().String("for-session", "", "Only show calls made for this learner session")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
