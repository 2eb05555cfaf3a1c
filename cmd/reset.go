package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase a learner session's history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id := sessionFlag(cmd)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Erase all progress for session %q? [y/N] ", id)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		rt, err := wire(ctx, cmd, wireOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.engine.Reset(ctx, id); err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
		fmt.Printf("Session %q reset.\n", id)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
