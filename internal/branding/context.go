package branding

// Context is the flat placeholder-name to value mapping consumed by the
// template renderer. Built once per run and read-only afterwards.
type Context map[string]string

// BuildContext flattens a Branding record into the renderer context.
//
// ENV_PREFIX_VAR is deliberately the unterminated fragment "${" + EnvPrefix:
// templates that reference branded shell variables append the variable-name
// remainder and the closing brace themselves.
func BuildContext(b *Branding) Context {
	return Context{
		"CLI_NAME":                       b.CLIName,
		"SLUG":                           b.Slug,
		"ENV_PREFIX":                     b.EnvPrefix,
		"ENV_PREFIX_VAR":                 "${" + b.EnvPrefix,
		"LABEL_PREFIX":                   b.LabelPrefix,
		"HOME_DIR":                       b.Paths.HomeDir,
		"OUTPUT_DIR":                     b.Paths.OutputDir,
		"STAGING_DIR":                    b.Paths.StagingDir,
		"ROOT_CA_MOUNT_ID":               b.RootCA.SecretID,
		"ROOT_CA_CERT_FILENAME":          b.RootCA.CertFilename,
		"RUNTIME_CONTAINER_PREFIX":       b.Runtime.ContainerPrefix,
		"RUNTIME_NAMESPACE":              b.Runtime.Namespace,
		"RUNTIME_CNI_NAME":               b.Runtime.CNIName,
		"RUNTIME_CNI_BRIDGE":             b.Runtime.CNIBridge,
		"RUNTIME_CNI_DIR":                b.Runtime.CNIDir,
		"RUNTIME_RESOLV_CONF_PATH":       b.Runtime.ResolvConfPath,
		"RUNTIME_LABEL_ENV":              b.Runtime.LabelEnv,
		"RUNTIME_LABEL_FUNCTION":         b.Runtime.LabelFunction,
		"RUNTIME_LABEL_CREATED_BY":       b.Runtime.LabelCreatedBy,
		"RUNTIME_LABEL_CREATED_BY_VALUE": b.Runtime.LabelCreatedByValue,
		"RUNTIME_CGROUP_PARENT":          b.Runtime.CgroupParent,
		"RUNTIME_CGROUP_LEAF":            b.Runtime.CgroupLeaf,
	}
}
