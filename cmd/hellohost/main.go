// Command hellohost loads hello.wasm and calls its exports from the host side.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nickandperla.net/primer/internal/host"
	"nickandperla.net/primer/internal/logging"
)

var (
	// Global flags
	wasmPath string
	verbose  bool

	// Logger
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "hellohost",
	Short: "Call the hello wasm module's exports",
	Long: `hellohost instantiates a hello module built as a wasip1 reactor:

  GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o hello.wasm ./cmd/hello

and calls one of its exports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var addCmd = &cobra.Command{
	Use:   "add [a] [b]",
	Short: "Add two int32 values inside the module",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Greet a name inside the module",
	Args:  cobra.ExactArgs(1),
	RunE:  runGreet,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wasmPath, "wasm", "hello.wasm", "Path to the hello module")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(addCmd, greetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadModule(cmd *cobra.Command) (*host.Module, error) {
	wasm, err := os.ReadFile(wasmPath)
	if err != nil {
		return nil, fmt.Errorf("read module: %w", err)
	}
	return host.Load(cmd.Context(), wasm, host.WithLogger(logger))
}

func runAdd(cmd *cobra.Command, args []string) error {
	var n [2]int32
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid int32 %q", arg)
		}
		n[i] = int32(v)
	}

	m, err := loadModule(cmd)
	if err != nil {
		return err
	}
	defer m.Close(cmd.Context())

	sum, err := m.Add(cmd.Context(), n[0], n[1])
	if err != nil {
		return err
	}
	logger.Debug("add", zap.Int32("a", n[0]), zap.Int32("b", n[1]), zap.Int32("sum", sum))
	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}

func runGreet(cmd *cobra.Command, args []string) error {
	m, err := loadModule(cmd)
	if err != nil {
		return err
	}
	defer m.Close(cmd.Context())

	greeting, err := m.Greet(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), greeting)
	return nil
}
