package cli

import (
	"github.com/spf13/cobra"

	"github.com/poruru-code/esb-branding-tool/internal/app"
)

// lockCmd groups lock-file operations
var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Manage the branding lock file",
}

// lockUpdateCmd represents the lock update command
var lockUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the lock file from current checkouts",
	Long: `Resolve the tool and upstream ESB commits and record them in the
lock file. The write is skipped when nothing changed, so repeated runs do
not churn the locked_at timestamp.

Examples:
  branding lock update --esb-dir ../esb --brand acme
  branding lock update --esb-dir ../esb --brand acme --esb-ref v1.4.0
  branding lock update --esb-dir ../esb --brand acme --esb-repo acme-io/esb`,
	Args: cobra.NoArgs,
	RunE: runLockUpdate,
}

// Lock update command flags
var (
	lockToolRoot string
	lockESBDir   string
	lockESBRepo  string
	lockESBRef   string
	lockBrand    string
	lockFilePath string
)

func init() {
	// Flags for lock update
	lockUpdateCmd.Flags().StringVar(&lockToolRoot, FlagToolRoot, "", DescToolRoot)
	lockUpdateCmd.Flags().StringVar(&lockESBDir, FlagESBDir, "", DescESBDir)
	lockUpdateCmd.Flags().StringVar(&lockESBRepo, FlagESBRepo, "", DescESBRepo)
	lockUpdateCmd.Flags().StringVar(&lockESBRef, FlagESBRef, "", DescESBRef)
	lockUpdateCmd.Flags().StringVarP(&lockBrand, FlagBrand, "b", "", DescBrand)
	lockUpdateCmd.Flags().StringVar(&lockFilePath, FlagLockFile, app.LockFileName, DescLockFile)
	_ = lockUpdateCmd.MarkFlagRequired(FlagESBDir)
	_ = lockUpdateCmd.MarkFlagRequired(FlagBrand)

	lockCmd.AddCommand(lockUpdateCmd)
}

func runLockUpdate(cmd *cobra.Command, args []string) error {
	wrote, err := app.UpdateLock(app.LockUpdateOptions{
		ToolRoot: lockToolRoot,
		ESBDir:   lockESBDir,
		ESBRepo:  lockESBRepo,
		ESBRef:   lockESBRef,
		Brand:    lockBrand,
		LockFile: lockFilePath,
	})
	if err != nil {
		return err
	}
	if wrote {
		printSuccess("lock file updated")
	} else {
		printInfo("lock file unchanged")
	}
	return nil
}
