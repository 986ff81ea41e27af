package cmd

import (
	"github.com/slisp-lang/slisp/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive interpreter",
	Long:  `Read expressions from stdin, evaluating them and printing results.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("lisp:> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
