package cli

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check branding templates for drift",
	Long: `Compare freshly rendered templates against the committed files.

Nothing is written. Each drifted target is reported with a unified diff and
the command exits non-zero when any drift is found. Equivalent to
"branding generate --check".

Examples:
  branding check
  branding check --brand acme`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	// check shares the generate flag set except --check itself
	checkCmd.Flags().StringVarP(&generateRoot, FlagRoot, "r", "", DescRoot)
	checkCmd.Flags().StringVar(&generateToolRoot, FlagToolRoot, "", DescToolRoot)
	checkCmd.Flags().StringVarP(&generateBrand, FlagBrand, "b", "", DescBrand)
	checkCmd.Flags().StringVar(&generateESBBase, FlagESBBase, "", DescESBBase)
	checkCmd.Flags().BoolVarP(&generateForce, FlagForce, "f", false, DescForce)
	checkCmd.Flags().BoolVar(&generateVerbose, FlagVerbose, false, DescVerbose)
	checkCmd.Flags().BoolVar(&generateNoHeader, FlagNoHeader, false, DescNoHeader)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return runGeneratePipeline(true)
}
