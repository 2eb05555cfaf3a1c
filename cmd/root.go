package cmd

import (
	"github.com/spf13/cobra"
)

// defaultSessionID is the learner session the terminal commands share
// when --session is not given.
const defaultSessionID = "local"

var rootCmd = &cobra.Command{
	Use:   "smartlearn",
	Short: "AI study companion: ask questions, take quizzes, track progress",
	Long:  "SmartLearn answers subject questions, builds timed multiple choice quizzes and tracks how a learner is doing across subjects.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database DSN or sqlite file path (overrides SMARTLEARN_DB_DSN)")
	rootCmd.PersistentFlags().StringP("session", "s", defaultSessionID, "Learner session id")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func sessionFlag(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("session"); id != "" {
		return id
	}
	return defaultSessionID
}
