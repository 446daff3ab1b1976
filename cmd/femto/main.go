// Package main provides the entry point for femto, a minimal terminal
// text editor.
//
// Usage:
//
//	femto [FILE]
package main

import (
	"os"

	"github.com/riordanpawley/femto/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
