// Command ttkwidgets scaffolds custom widget code for projects using the
// ttkwidgets library.
package main

import (
	"fmt"
	"os"

	"github.com/jason-kane/ttkwidgets/cmd/ttkwidgets/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
