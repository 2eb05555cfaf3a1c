package cmd

import (
	"encoding/json"
	"os"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a quiz and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()
		subject, _ := flags.GetString("subject")
		topic, _ := flags.GetString("topic")
		difficulty, _ := flags.GetString("difficulty")
		quizType, _ := flags.GetString("type")
		count, _ := flags.GetInt("count")
		hide, _ := flags.GetBool("hide-answers")

		rt, err := wire(ctx, cmd, wireOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		q, err := rt.engine.Generate(ctx, sessionFlag(cmd), quiz.Params{
			Subject:    subject,
			Topic:      topic,
			Difficulty: quiz.Difficulty(difficulty),
			Type:       quiz.Type(quizType),
			Count:      count,
		})
		if err != nil {
			return err
		}
		if hide {
			q = q.Clone()
			for i := range q.Questions {
				q.Questions[i].Correct = ""
				q.Questions[i].Explanation = ""
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	},
}

func init() {
	f := quizCmd.Flags()
	f.String("subject", "Mathematics", "Quiz subject")
	f.String("topic", "Algebra", "Quiz topic")
	f.String("difficulty", string(quiz.Intermediate), "beginner, intermediate or advanced")
	f.String("type", string(quiz.ConceptCheck), "concept_check, problem_solving, critical_thinking or real_world_application")
	f.IntP("count", "n", quiz.DefaultQuestions, "Number of questions (1-20)")
	f.Bool("hide-answers", false, "Leave correct answers and explanations out")
}
