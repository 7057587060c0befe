// fvcheck decodes JSON documents and inspects them through the field-value
// model: printing their sorted-field traversal and comparing two documents
// under a configurable byte budget.
package main

import (
	"fmt"
	"os"

	"github.com/chaisql/firevalue/cmd/fvcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
