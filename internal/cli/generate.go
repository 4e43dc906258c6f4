package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poruru-code/esb-branding-tool/internal/app"
	"github.com/poruru-code/esb-branding-tool/internal/branding"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render branding templates",
	Long: `Render all branding templates into the repository.

The brand comes from --brand or from config/branding.yaml. The run validates
the tool commit against the lock file, reconciles the downstream ESB base in
.esb-info, writes .branding.env, and renders every declared template.

Examples:
  branding generate
  branding generate --brand acme --esb-base v1.4.0
  branding generate --check
  branding generate --force --verbose`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// Generate command flags
var (
	generateRoot     string
	generateToolRoot string
	generateBrand    string
	generateESBBase  string
	generateCheck    bool
	generateForce    bool
	generateVerbose  bool
	generateNoHeader bool
)

func init() {
	// Flags for generate
	generateCmd.Flags().StringVarP(&generateRoot, FlagRoot, "r", "", DescRoot)
	generateCmd.Flags().StringVar(&generateToolRoot, FlagToolRoot, "", DescToolRoot)
	generateCmd.Flags().StringVarP(&generateBrand, FlagBrand, "b", "", DescBrand)
	generateCmd.Flags().StringVar(&generateESBBase, FlagESBBase, "", DescESBBase)
	generateCmd.Flags().BoolVar(&generateCheck, FlagCheck, false, DescCheck)
	generateCmd.Flags().BoolVarP(&generateForce, FlagForce, "f", false, DescForce)
	generateCmd.Flags().BoolVar(&generateVerbose, FlagVerbose, false, DescVerbose)
	generateCmd.Flags().BoolVar(&generateNoHeader, FlagNoHeader, false, DescNoHeader)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return runGeneratePipeline(generateCheck)
}

// runGeneratePipeline drives a generate or check run with the generate flag set.
func runGeneratePipeline(check bool) error {
	result, err := app.Generate(app.GenerateOptions{
		Root:     generateRoot,
		ToolRoot: generateToolRoot,
		Brand:    generateBrand,
		ESBBase:  generateESBBase,
		Check:    check,
		Force:    generateForce,
		Verbose:  generateVerbose,
		NoHeader: generateNoHeader,
	})
	if err != nil {
		return err
	}

	if check {
		if len(result.Mismatches) > 0 {
			printInfo("branding templates out of date:")
			for _, path := range result.Mismatches {
				printInfo(fmt.Sprintf("  - %s", path))
			}
			return branding.NewError(branding.TemplateInvalid, "branding templates out of date")
		}
		printSuccess("branding templates up to date")
		return nil
	}

	printVerbose(generateVerbose, fmt.Sprintf("brand source: %v", result.Source))
	printSuccess(fmt.Sprintf("branding rendered for %s", result.Brand))
	return nil
}
