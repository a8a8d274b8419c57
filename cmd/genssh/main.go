// Package main is the entry point for the genssh binary.
//
// genssh parses an SSH destination such as "user@host:port" or
// "user@host -p port" and writes it as a JSON descriptor with a masked
// password. Without a destination it writes a placeholder template.
//
// Usage:
//
//	genssh alice@example.com:2222           # writes ssh.json
//	genssh 'bob@server -p 22' -o srv.json   # custom output path
//	genssh                                  # writes the template
//	genssh connect srv.json                 # ssh into a written descriptor
//
// The commands are built in internal/cli. This file reports errors and sets
// the exit status.
package main

import (
	"fmt"
	"os"

	"github.com/treykane/genssh/internal/cli"
)

func main() {
	// Build the root Cobra command tree: the generate command itself plus
	// the connect and history subcommands.
	cmd := cli.NewRootCommand()

	// Execute the resolved command. Cobra's own error printing is silenced,
	// so a failure is rendered here through cli.ErrorMessage, which hides
	// home-directory paths unless the config turns redaction off. Any error
	// exits with status 1.
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", cli.ErrorMessage(err))
		os.Exit(1)
	}
}
