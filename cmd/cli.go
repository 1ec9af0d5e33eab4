package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wharflab/semvet/internal/config"
	"github.com/wharflab/semvet/semvet/presenter"
)

var cliOpts = config.CliOnlyOptions{}

func setCliOptions() {
	// setup global CLI options (available on all CLI commands)
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")

	setRootFlags(rootCmd.Flags())
	bindRootFlags(rootCmd.Flags())
}

func setRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output", "o", presenter.TablePresenter.String(),
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)

	flags.String(
		"file", "",
		"file to write the report output to (default is STDOUT)",
	)

	flags.String(
		"input", "",
		"file to read candidate versions from, one per line ('#' starts a comment)",
	)

	flags.BoolP(
		"quiet", "q", false,
		"suppress all logging output",
	)

	flags.CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")
}

func bindRootFlags(flags *pflag.FlagSet) {
	if err := viper.BindPFlag("output", flags.Lookup("output")); err != nil {
		fmt.Printf("unable to bind flag 'output': %+v", err)
		os.Exit(1)
	}

	if err := viper.BindPFlag("file", flags.Lookup("file")); err != nil {
		fmt.Printf("unable to bind flag 'file': %+v", err)
		os.Exit(1)
	}

	if err := viper.BindPFlag("input", flags.Lookup("input")); err != nil {
		fmt.Printf("unable to bind flag 'input': %+v", err)
		os.Exit(1)
	}

	if err := viper.BindPFlag("quiet", flags.Lookup("quiet")); err != nil {
		fmt.Printf("unable to bind flag 'quiet': %+v", err)
		os.Exit(1)
	}
}
