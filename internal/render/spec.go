package render

// TemplateSpec pairs a template path (relative to the tool root) with its
// target path (relative to the branded repository root). The target may
// itself contain placeholders resolved against the render context.
type TemplateSpec struct {
	Template string
	Target   string
}

// DefaultSpecs is the fixed set of branded artifacts this tool generates.
// The set is not user-extensible.
var DefaultSpecs = []TemplateSpec{
	{"templates/config/defaults.env.tmpl", "config/defaults.env"},
	{"templates/Makefile.tmpl", "Makefile"},
	{"templates/meta/meta.go.tmpl", "meta/meta.go"},
	{"templates/docker-compose.docker.yml.tmpl", "docker-compose.docker.yml"},
	{"templates/docker-compose.containerd.yml.tmpl", "docker-compose.containerd.yml"},
	{"templates/docker-compose.fc.yml.tmpl", "docker-compose.fc.yml"},
	{"templates/docker-compose.fc-node.yml.tmpl", "docker-compose.fc-node.yml"},
	{"templates/docker-bake.hcl.tmpl", "docker-bake.hcl"},
}
