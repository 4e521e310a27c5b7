// Command marquee runs and inspects the marquee animation engine.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/marquee/cmd/marquee/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
