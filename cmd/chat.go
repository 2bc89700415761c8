package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azuretemplatebot/templatebot/internal/dialog"
	"github.com/azuretemplatebot/templatebot/internal/gateway"
	"github.com/azuretemplatebot/templatebot/internal/message"
	"github.com/azuretemplatebot/templatebot/internal/session"
	"github.com/azuretemplatebot/templatebot/internal/workflows"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive template deployment conversation",
	Long:  `It will guide you through collecting credentials, fetching a template and deploying it to a resource group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store := session.NewStore()
		sess := store.Get("console")
		machine := workflows.NewMachine(sess, gateway.NewAzure())
		message.Debug("starting conversation %q", "console")

		turn, err := machine.Start(ctx, workflows.IDRoot, nil)
		if err != nil {
			return fmt.Errorf("conversation failed: %w", err)
		}
		for {
			for _, line := range turn.Messages {
				sendLine(line)
			}
			if turn.Done {
				return nil
			}

			reply, err := askPrompt(turn.Prompt)
			if err != nil {
				return fmt.Errorf("failed to read reply: %w", err)
			}
			turn, err = machine.Resume(ctx, reply)
			if err != nil {
				return fmt.Errorf("conversation failed: %w", err)
			}
		}
	},
}

// sendLine renders one outbound conversation line with the renderer
// matching its level.
func sendLine(line dialog.Message) {
	switch line.Level {
	case dialog.LevelWarning:
		message.Warning("%s", line.Text)
	case dialog.LevelSuccess:
		message.Success("%s", line.Text)
	default:
		message.Info("%s", line.Text)
	}
}

// askPrompt renders a pending prompt on the terminal and returns the raw
// reply the machine should consume.
func askPrompt(prompt *dialog.Prompt) (string, error) {
	switch prompt.Kind {
	case dialog.Confirm:
		answer, err := message.BoolSelect(prompt.Text)
		if err != nil {
			return "", err
		}
		if answer {
			return "yes", nil
		}
		return "no", nil
	case dialog.Choice:
		return message.Select(prompt.Text, prompt.Options)
	default:
		return message.Prompt(prompt.Text, "")
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
