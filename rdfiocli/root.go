// Package rdfiocli wires github.com/rdfio/rdfio up to a cobra command tree
// for parsing and re-serializing RDF documents from the command line.
package rdfiocli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var verbose bool

// Execute builds and runs the root "rdfio" command, returning its exit
// status to the caller's os.Exit.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rdfio",
		Short: "Stream RDF between Turtle, NTriples, TriG and NQuads",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug-level diagnostics")
	cmd.AddCommand(newCatCmd())
	return cmd
}
