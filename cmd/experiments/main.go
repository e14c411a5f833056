// Command experiments runs the memory-safety experiments one at a time.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"nickandperla.net/primer/internal/experiments"
)

var rootCmd = &cobra.Command{
	Use:   "experiments",
	Short: "Lifetime, reallocation and shallow-copy experiments",
}

var lifetimeCmd = &cobra.Command{
	Use:   "lifetime",
	Short: "Keep the longest of two values after one goes out of scope",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		experiments.Lifetime(cmd.OutOrStdout())
	},
}

var reallocCmd = &cobra.Command{
	Use:   "realloc",
	Short: "Hold an element pointer while the slice grows",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		experiments.Realloc(cmd.OutOrStdout())
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy a value that owns a buffer",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		experiments.SharedCopy(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(lifetimeCmd, reallocCmd, copyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
