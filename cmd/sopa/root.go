package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sopa.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sopa",
		Short: "Word-search puzzle generator",
		Long: `sopa generates word-search puzzles ("sopas de letras").

Each word is hidden left to right, top to bottom, or diagonally down and to
the right, and the remaining cells are filled with random letters A-Z and Ñ.
Puzzles are reproducible: the same words, size and seed always give the same
board. Generated puzzles are kept in a local history database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewBatchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
