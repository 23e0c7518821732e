// Runway backend - the HTTP API for the Runway startup-finance dashboard.
package main

import (
	"os"

	"github.com/runwayhq/backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
