package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/chaisql/firevalue/internal/jsondoc"
	"github.com/chaisql/firevalue/internal/stringutil"
)

var printCmd = &cobra.Command{
	Use:   "print <file.json>",
	Short: "Decode a JSON document and print its sorted fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	doc, err := jsondoc.DecodeDocument(data)
	if err != nil {
		return err
	}

	printObject("", doc)
	return nil
}

func printObject(prefix string, obj fields.ObjectValue) {
	obj.InorderFields(func(key string, v fields.Value) bool {
		name := stringutil.NormalizeIdentifier(key, '"')
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if child, ok := v.(fields.ObjectValue); ok {
			printObject(path, child)
			return true
		}
		fmt.Printf("%s = %s\n", path, v.String())
		return true
	})
}
