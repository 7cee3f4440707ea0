package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatforge",
	Short: "Turn WhatsApp chat exports into example-conversation JSON",
	Long:  "Chatforge converts an exported WhatsApp chat into two-party dialogue snippets for character example conversations. Everything runs locally on a single file.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)
}
