package main

import (
	"os"

	"github.com/campusui/campus/cmd/campus/cmd"
)

// Version is set at build time.
var Version = ""

func main() {
	if Version != "" {
		cmd.Version = Version
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
