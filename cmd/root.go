package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/azuretemplatebot/templatebot/internal/message"
)

var silentMode bool
var verboseMode bool
var noEmoji bool
var noColor bool

var rootCmd = &cobra.Command{
	Use:           "templatebot",
	Short:         "An interactive bot for deploying Azure Resource Manager templates",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		message.SetSilentMode(silentMode)
		message.SetVerboseMode(verboseMode)
		message.SetEmojiMode(!noEmoji)
		message.SetColorMode(!noColor)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		message.Error("failed to execute command: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&silentMode, "silent", false, "silent mode (hides everything except prompt/failure messages)")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "verbose output (show everything, overrides silent mode)")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emojis")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and emojis")
}
