// Package main is the entry point for the ecoleta collection-point API.
package main

import (
	"fmt"
	"os"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
