// Package cli implements the cobra commands of the cart binary.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	catalogFile string
	logLevel    string
	jsonOutput  bool
	metrics     bool
}

var (
	Version = "dev"
	Commit  = "none"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "cart",
		Short: "In-memory shopping cart",
		Long: `cart models an in-memory shopping cart priced against a fixed catalog.

Run without a subcommand to execute the built-in self-test.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Args:          cobra.NoArgs,
		RunE:          run(flags, selfTestBody(&selfTestFlags{})),
	}

	rootCmd.PersistentFlags().StringVar(&flags.catalogFile, "catalog", "", "YAML price list to use instead of the built-in catalog (env CART_CATALOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&flags.metrics, "metrics", false, "Print collected metrics to stderr on exit")

	rootCmd.AddCommand(NewSelfTestCommand(flags))
	rootCmd.AddCommand(NewQuoteCommand(flags))
	rootCmd.AddCommand(NewCatalogCommand(flags))

	return rootCmd
}

// Execute runs rootCmd and exits non-zero on error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
