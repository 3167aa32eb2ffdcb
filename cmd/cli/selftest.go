package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giovaniif/shopping-cart/infra/repositories"
	"github.com/giovaniif/shopping-cart/use_cases/selftest"
)

var errSelfTestFailed = errors.New("self-test failed")

type selfTestFlags struct {
	strict bool
}

func NewSelfTestCommand(flags *globalFlags) *cobra.Command {
	stFlags := &selfTestFlags{}

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in cart demonstration",
		Long: `Run the built-in demonstration against the default catalog.

Failures are reported on stderr. The exit code stays 0 unless --strict is set.`,
		Args: cobra.NoArgs,
		RunE: run(flags, selfTestBody(stFlags)),
	}
	cmd.Flags().BoolVar(&stFlags.strict, "strict", false, "Exit with status 1 when any check fails")
	return cmd
}

func selfTestBody(flags *selfTestFlags) func(context.Context, *cobra.Command, *app) error {
	return func(ctx context.Context, cmd *cobra.Command, a *app) error {
		// The demonstration always prices against the built-in seed.
		uc := selftest.NewSelfTest(a.shopping(repositories.NewCatalogRepositoryMemory(nil)))
		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

		report, err := uc.Run(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "Test failed: %s\n", err)
			return strictResult(flags, err)
		}

		fmt.Fprintf(out, "Calculated total: %g\n", report.Calculated)
		fmt.Fprintf(out, "Expected total: %g\n", report.Expected)
		failures := report.Failures()
		for _, check := range failures {
			fmt.Fprintf(errOut, "Test failed: %s: %s\n", check.Name, check.Err)
		}
		if len(failures) > 0 {
			return strictResult(flags, fmt.Errorf("%w: %d of %d checks", errSelfTestFailed, len(failures), len(report.Checks)))
		}
		fmt.Fprintln(out, "All tests passed successfully!")
		return nil
	}
}

func strictResult(flags *selfTestFlags, err error) error {
	if !flags.strict {
		return nil
	}
	return &ExitError{Code: 1, Err: err}
}
