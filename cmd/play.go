package cmd

import (
	"context"

	"github.com/abhisek/smartlearn/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the terminal study app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Log output would draw over the TUI, so the engine logs nowhere.
	rt, err := wire(ctx, cmd, wireOptions{})
	if err != nil {
		return err
	}
	defer rt.Close()

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(rt.engine, app.Options{
		SessionID:   sessionFlag(cmd),
		LLMReady:    rt.llmReady,
		SkipWelcome: skip,
	})
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().Bool("skip-welcome", false, "Go straight to the home screen")
	}
}
