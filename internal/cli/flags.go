package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagRoot     = "root"
	FlagToolRoot = "tool-root"
	FlagBrand    = "brand"
	FlagESBBase  = "esb-base"
	FlagESBDir   = "esb-dir"
	FlagESBRepo  = "esb-repo"
	FlagESBRef   = "esb-ref"
	FlagLockFile = "lock-file"
	FlagCheck    = "check"
	FlagForce    = "force"
	FlagVerbose  = "verbose"
	FlagNoHeader = "no-header"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"

	// Flag descriptions
	DescRoot     = "Repository root override"
	DescToolRoot = "Tool repository root override"
	DescBrand    = "Brand identifier (defaults to config/branding.yaml)"
	DescESBBase  = "ESB base commit/tag for downstream tracking (.esb-info)"
	DescESBDir   = "Path to the ESB checkout"
	DescESBRepo  = "ESB repository URL or owner/repo"
	DescESBRef   = "ESB ref (tag/branch) if provided"
	DescLockFile = "Lock file path relative to the tool root"
	DescCheck    = "Check if outputs are up to date without writing"
	DescForce    = "Downgrade lock/info mismatches to warnings"
	DescVerbose  = "Print render actions"
	DescNoHeader = "Strip auto-generated headers from rendered output"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
)
