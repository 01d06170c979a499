// Package main is the entrypoint for the bachpan habit tracker.
package main

import "github.com/bachpan-balance/bachpan/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
