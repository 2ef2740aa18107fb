// Package main implements the flightlog command line tool. It exposes the
// session listing and reveal operations without the desktop UI.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
