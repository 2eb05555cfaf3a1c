package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show progress, subject analytics and recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		asJSON, _ := cmd.Flags().GetBool("json")

		rt, err := wire(ctx, cmd, wireOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		d, err := rt.engine.Dashboard(ctx, sessionFlag(cmd))
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}
		printDashboard(d)
		return nil
	},
}

func printDashboard(d *engine.Dashboard) {
	p := d.Progress
	rule := strings.Repeat("─", 64)

	fmt.Printf("Session %s\n", d.SessionID)
	fmt.Println(rule)
	fmt.Printf("Questions asked:   %d\n", p.TotalQuestions)
	fmt.Printf("Quizzes taken:     %d\n", p.TotalQuizzes)
	fmt.Printf("Average score:     %.1f%%\n", p.AverageQuizScore)
	if p.MostActiveSubject != "" {
		fmt.Printf("Most active:       %s\n", p.MostActiveSubject)
	}
	if b := p.QuizPerformance.BestPerformingSubject; b != "" {
		fmt.Printf("Best subject:      %s\n", b)
	}

	if len(d.SubjectAnalytics) > 0 {
		subjects := make([]string, 0, len(d.SubjectAnalytics))
		for s := range d.SubjectAnalytics {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)

		fmt.Println()
		fmt.Printf("%-20s  %9s  %7s  %8s\n", "Subject", "Questions", "Quizzes", "Average")
		fmt.Println(rule)
		for _, s := range subjects {
			st := d.SubjectAnalytics[s]
			avg := "-"
			if st.QuizAttempts > 0 {
				avg = fmt.Sprintf("%.1f%%", st.AverageQuizScore)
			}
			fmt.Printf("%-20s  %9d  %7d  %8s\n", truncate(s, 20), st.QuestionsAsked, st.QuizAttempts, avg)
		}
	}

	if len(d.Recommendations) > 0 {
		fmt.Println()
		fmt.Println("Next steps")
		fmt.Println(rule)
		for _, r := range d.Recommendations {
			fmt.Printf("[%s] %s\n", r.Priority, r.Title)
			fmt.Printf("       %s\n", r.Description)
		}
	}

	if len(d.RecentActivity) > 0 {
		fmt.Println()
		fmt.Println("Recent activity")
		fmt.Println(rule)
		for _, in := range d.RecentActivity {
			detail := in.Question
			if in.Kind == session.KindQuizAttempt {
				detail = fmt.Sprintf("quiz on %s: %.0f%%", in.Topic, in.Score)
			}
			fmt.Printf("%s  %-12s  %s\n", in.Timestamp.Local().Format("Jan 02 15:04"), truncate(in.Subject, 12), truncate(detail, 40))
		}
	}
}

func init() {
	dashboardCmd.Flags().Bool("json", false, "Print the dashboard as JSON")
}
