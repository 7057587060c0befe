package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/chaisql/firevalue/internal/jsondoc"
)

var compareBudget uint

var compareCmd = &cobra.Command{
	Use:   "compare <a.json> <b.json>",
	Short: "Compare two JSON documents under a byte-budgeted index comparison",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().UintVar(&compareBudget, "budget", fields.IndexTruncationThresholdBytes, "comparison byte budget")
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	b, err := decodeFile(args[1])
	if err != nil {
		return err
	}

	result := a.Compare(b, compareBudget)

	switch {
	case result.Cmp < 0:
		fmt.Printf("%s < %s (bytes consumed: %d)\n", args[0], args[1], result.Bytes)
	case result.Cmp > 0:
		fmt.Printf("%s > %s (bytes consumed: %d)\n", args[0], args[1], result.Bytes)
	default:
		fmt.Printf("%s == %s (bytes consumed: %d)\n", args[0], args[1], result.Bytes)
	}
	return nil
}

func decodeFile(path string) (fields.ObjectValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fields.ObjectValue{}, err
	}
	return jsondoc.DecodeDocument(data)
}
