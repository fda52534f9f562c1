// Package main is the entry point for the potholectl CLI tool.
package main

import (
	"github.com/shenikar/pothole_reporting_system/internal/cli"
)

func main() {
	cli.Execute()
}
