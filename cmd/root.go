package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wharflab/semvet/internal"
	"github.com/wharflab/semvet/internal/file"
	"github.com/wharflab/semvet/internal/format"
	"github.com/wharflab/semvet/internal/log"
	"github.com/wharflab/semvet/semvet"
	"github.com/wharflab/semvet/semvet/presenter"
	"github.com/wharflab/semvet/semvet/semver"
	"github.com/wharflab/semvet/semvet/semveterr"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [flags] CONSTRAINT VERSION [VERSION...]", internal.ApplicationName),
	Short: "A semantic version requirement checker",
	Long: format.Tprintf(`Check semantic versions against a cargo-style requirement:
    {{.appName}} '^1.2' 1.2.3 1.4.0-alpha.1        check versions given as arguments
    {{.appName}} '>=1.2, <2' --input versions.txt  check versions listed in a file
    cat versions.txt | {{.appName}} '~0.4'         check versions piped on stdin
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          validateRootArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Dev.ProfileCPU && appConfig.Dev.ProfileMem {
			return fmt.Errorf("cannot profile CPU and memory simultaneously")
		}

		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		} else if appConfig.Dev.ProfileMem {
			defer profile.Start(profile.MemProfile).Stop()
		}

		return runDefaultCmd(cmd, args)
	},
}

func init() {
	setCliOptions()
}

func validateRootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// show the help text when no requirement was given, but still fail
		if err := cmd.Help(); err != nil {
			return fmt.Errorf("unable to display help: %w", err)
		}
		return fmt.Errorf("a requirement argument is required")
	}

	return cobra.MinimumNArgs(1)(cmd, args)
}

func runDefaultCmd(_ *cobra.Command, args []string) error {
	constraint, err := semver.ParseConstraint(args[0])
	if err != nil {
		return err
	}

	rawVersions, err := collectRawVersions(args[1:])
	if err != nil {
		return err
	}
	if len(rawVersions) == 0 {
		return fmt.Errorf("no versions provided (pass VERSION arguments, use --input, or pipe versions on stdin)")
	}

	versions := make([]semver.Version, 0, len(rawVersions))
	for _, raw := range rawVersions {
		v, err := semver.Parse(raw)
		if err != nil {
			return err
		}
		versions = append(versions, v)
	}

	evaluations := semvet.CheckAll(constraint, versions...)

	presenterOption := presenter.ParseOption(appConfig.Output)
	if presenterOption == presenter.UnknownPresenter {
		return fmt.Errorf("bad --output value '%s'", appConfig.Output)
	}

	writer, closer, err := reportWriter()
	if err != nil {
		return err
	}
	defer func() {
		if err := closer(); err != nil {
			log.Warnf("unable to close report destination: %+v", err)
		}
	}()

	if err := presenter.GetPresenter(presenterOption, enableReportColor()).Present(writer, evaluations); err != nil {
		return fmt.Errorf("unable to format evaluations: %w", err)
	}

	if !evaluations.AllSatisfied() {
		return semveterr.ErrUnsatisfiedVersions
	}

	return nil
}

// collectRawVersions gathers candidate versions from the command line, the --input
// file, and (when nothing else was given) stdin, in that order.
func collectRawVersions(args []string) ([]string, error) {
	versions := make([]string, 0, len(args))
	versions = append(versions, args...)

	if appConfig.Input != "" {
		fs := afero.NewOsFs()
		if !file.Exists(fs, appConfig.Input) {
			return nil, fmt.Errorf("version input file %q does not exist", appConfig.Input)
		}
		lines, err := file.ReadLines(fs, appConfig.Input)
		if err != nil {
			return nil, fmt.Errorf("unable to read versions from %q: %w", appConfig.Input, err)
		}
		versions = append(versions, lines...)
	}

	if len(versions) == 0 {
		isPipedInput, err := internal.IsPipedInput()
		if err != nil {
			log.Warnf("unable to determine if there is piped input: %+v", err)
		} else if isPipedInput {
			lines, err := file.ReadLinesFrom(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("unable to read versions from stdin: %w", err)
			}
			versions = append(versions, lines...)
		}
	}

	return versions, nil
}

func enableReportColor() bool {
	// never color a report that lands in a file, and respect quiet mode
	return !appConfig.Quiet && appConfig.File == "" && term.IsTerminal(int(os.Stdout.Fd()))
}
