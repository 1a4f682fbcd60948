// Package main provides the entry point for the stepmap CLI tool.
package main

import (
	"github.com/stepmap/stepmap/cmd/stepmap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
