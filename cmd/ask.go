package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		subject, _ := cmd.Flags().GetString("subject")

		rt, err := wire(ctx, cmd, wireOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.engine.Ask(ctx, sessionFlag(cmd), subject, strings.Join(args, " "))
		if err != nil {
			return err
		}
		r := res.Response

		fmt.Println(r.Answer)
		if r.QuizQuestion != "" {
			fmt.Println()
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println("Practice:", r.QuizQuestion)
			for i, o := range r.QuizOptions {
				fmt.Printf("  %c) %s\n", 'A'+i, o)
			}
			fmt.Println("Answer:", r.QuizAnswer)
		}
		if r.LearningTip != "" {
			fmt.Println()
			fmt.Println("Tip:", r.LearningTip)
		}
		source := r.Provider
		if r.Fallback {
			source += " (offline)"
		}
		fmt.Printf("\n[%s · session %s]\n", source, res.SessionID)
		return nil
	},
}

func init() {
	askCmd.Flags().String("subject", "General", "Subject the question belongs to")
}
