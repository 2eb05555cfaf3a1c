package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List quiz subjects and topics with built-in bank coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		bank := fallback.Default()
		catalog := fallback.AvailableQuizzes(nil, nil)

		fmt.Printf("%-16s  %-24s  %s\n", "Subject", "Topic", "Bank")
		fmt.Println(strings.Repeat("─", 50))

		shown := 0
		for _, s := range catalog.Subjects {
			if subject != "" && !strings.EqualFold(s.Name, subject) {
				continue
			}
			for _, t := range s.Topics {
				fmt.Printf("%-16s  %-24s  %4d\n", s.Name, truncate(t, 24), len(bank.Topic(s.Name, t)))
			}
			shown++
		}
		if shown == 0 {
			return fmt.Errorf("no subject named %q", subject)
		}

		diffs := make([]string, len(quiz.Difficulties))
		for i, d := range quiz.Difficulties {
			diffs[i] = string(d)
		}
		types := make([]string, len(quiz.Types))
		for i, t := range quiz.Types {
			types[i] = string(t)
		}
		fmt.Println()
		fmt.Println("Difficulties:", strings.Join(diffs, ", "))
		fmt.Println("Quiz types:  ", strings.Join(types, ", "))
		fmt.Println("\nTopics without bank questions are filled from the subject and generic pools when no LLM is configured.")
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("subject", "", "Only show one subject")
}
