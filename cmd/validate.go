package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/wharflab/semvet/semvet/semver"
	"github.com/wharflab/semvet/semvet/semveterr"
)

var validateConstraints []string

var validateCmd = &cobra.Command{
	Use:   "validate [VERSION...]",
	Short: "syntax-check requirements and versions without evaluating them",
	Long: `Syntax-check every given requirement and version and report all problems at once, e.g.:

    $ semvet validate --constraint '^1.2' --constraint '>=2, <3' 1.2.3 2.0.0-rc.1
    all inputs are valid`,
	RunE: runValidateCmd,
}

func init() {
	validateCmd.Flags().StringArrayVar(&validateConstraints, "constraint", nil, "requirement to syntax-check (may be repeated)")

	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(_ *cobra.Command, args []string) error {
	if len(validateConstraints) == 0 && len(args) == 0 {
		return fmt.Errorf("nothing to validate (pass VERSION arguments or --constraint flags)")
	}

	var errs error
	for _, raw := range validateConstraints {
		if _, err := semver.ParseConstraint(raw); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for _, raw := range args {
		if _, err := semver.Parse(raw); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if errs != nil {
		return semveterr.NewExpectedErr("one or more inputs are invalid:\n%s", errs.Error())
	}

	if !appConfig.Quiet {
		fmt.Println("all inputs are valid")
	}

	return nil
}
