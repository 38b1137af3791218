// rustupolis-dl resolves Rustupolis release downloads for the website.
//
// It maps the newest GitHub release onto per-platform download links and
// classifies visitors by their browser's navigator values.
package main

import (
	"os"

	"github.com/deadelineurz/rustupolis-downloads/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
