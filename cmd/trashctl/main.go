// Command trashctl is a thin CLI wrapper around the trash package: it
// soft-deletes one or more paths via the XDG trash protocol and reports
// the outcome of each as structured logs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCommand = &cobra.Command{
	Use:   "trashctl",
	Short: "trashctl moves files and directories into the freedesktop.org trash",
}

func init() {
	rootCommand.AddCommand(deleteCommand)
}
