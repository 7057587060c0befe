package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "fvcheck",
	Short: "fvcheck — inspect Firestore-style field values",
	Long:  "Decode JSON documents into the field-value model and inspect their ordering and byte-budgeted comparisons.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(compareCmd)
}
