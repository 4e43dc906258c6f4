package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poruru-code/esb-branding-tool/internal/app"
	"github.com/poruru-code/esb-branding-tool/internal/branding"
	"github.com/poruru-code/esb-branding-tool/internal/config"
	"github.com/poruru-code/esb-branding-tool/internal/esbinfo"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the branding configuration",
	Long: `Create config/branding.yaml (and optionally .esb-info) in the
repository. Prompts interactively for any value not given as a flag.

Examples:
  branding init
  branding init --brand acme
  branding init --brand acme --esb-base v1.4.0`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// Init command flags
var (
	initRoot    string
	initBrand   string
	initESBBase string
)

func init() {
	// Flags for init
	initCmd.Flags().StringVarP(&initRoot, FlagRoot, "r", "", DescRoot)
	initCmd.Flags().StringVarP(&initBrand, FlagBrand, "b", "", DescBrand)
	initCmd.Flags().StringVar(&initESBBase, FlagESBBase, "", DescESBBase)
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := app.ResolveRepoRoot(initRoot)
	if err != nil {
		return err
	}
	configPath := filepath.Join(root, config.DefaultPath)

	existing, err := config.LoadBrand(configPath)
	if err != nil {
		// A malformed existing config should not block re-initialization.
		printWarning(fmt.Sprintf("ignoring existing config: %v", err))
		existing = ""
	}

	brand := strings.TrimSpace(initBrand)
	if brand == "" {
		brand, err = promptForBrand(existing)
		if err != nil {
			return err
		}
		brand = strings.TrimSpace(brand)
	}
	if _, err := branding.Derive(brand); err != nil {
		return err
	}

	if err := config.WriteBrandConfig(configPath, brand); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("wrote %s (brand: %s)", configPath, brand))

	if brand == app.SelfBrand {
		return nil
	}

	esbBase := strings.TrimSpace(initESBBase)
	if esbBase == "" {
		esbBase, err = promptForESBBase()
		if err != nil {
			return err
		}
		esbBase = strings.TrimSpace(esbBase)
	}
	if esbBase == "" {
		printInfo("no ESB base given; set one later with generate --esb-base")
		return nil
	}

	key, value := esbinfo.ClassifyBase(esbBase)
	infoPath := filepath.Join(root, app.InfoFileName)
	if err := esbinfo.Write(infoPath, key, value); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("wrote %s (%s=%s)", infoPath, key, value))
	return nil
}
