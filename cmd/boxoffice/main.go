// Package main provides the entry point for the boxoffice CLI tool.
package main

import (
	"github.com/agentstation/boxoffice/cmd/boxoffice/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
