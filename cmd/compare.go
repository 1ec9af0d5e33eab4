package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wharflab/semvet/semvet/semver"
)

var compareCmd = &cobra.Command{
	Use:   "compare LEFT RIGHT",
	Short: "compare two versions by semver precedence",
	Long: `Compare two versions by semver precedence and print the relation, e.g.:

    $ semvet compare 1.2.3 1.10.0
    1.2.3 < 1.10.0

Build metadata is ignored, pre-release versions order below their release.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompareCmd,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompareCmd(_ *cobra.Command, args []string) error {
	left, err := semver.Parse(args[0])
	if err != nil {
		return err
	}
	right, err := semver.Parse(args[1])
	if err != nil {
		return err
	}

	relation := "="
	switch {
	case left.Compare(right) < 0:
		relation = "<"
	case left.Compare(right) > 0:
		relation = ">"
	}

	fmt.Printf("%s %s %s\n", left.String(), relation, right.String())

	return nil
}
