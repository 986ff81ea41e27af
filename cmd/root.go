package cmd

import (
	"fmt"
	"os"

	"github.com/slisp-lang/slisp/repl"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slisp",
	Short: "A small lisp interpreter",
	Long: `slisp is a small lisp interpreter.  Without arguments an interactive
read-eval-print loop is started.  Use the run subcommand to evaluate files or
expressions non-interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("lisp:> ")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
