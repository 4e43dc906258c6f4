package branding

import (
	"testing"
)

func TestDerive(t *testing.T) {
	t.Run("esb derives its own identifiers", func(t *testing.T) {
		b, err := Derive("esb")
		if err != nil {
			t.Fatalf("Derive failed: %v", err)
		}
		if b.Slug != "esb" {
			t.Errorf("Expected slug=esb, got %s", b.Slug)
		}
		if b.CLIName != "esb" {
			t.Errorf("Expected cli_name=esb, got %s", b.CLIName)
		}
		if b.EnvPrefix != "ESB" {
			t.Errorf("Expected env_prefix=ESB, got %s", b.EnvPrefix)
		}
		if b.LabelPrefix != "com.esb" {
			t.Errorf("Expected label_prefix=com.esb, got %s", b.LabelPrefix)
		}
		if b.Runtime.CNIBridge != "esb0" {
			t.Errorf("Expected cni_bridge=esb0, got %s", b.Runtime.CNIBridge)
		}
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		first, err := Derive("Acme Cloud")
		if err != nil {
			t.Fatalf("Derive failed: %v", err)
		}
		second, err := Derive("Acme Cloud")
		if err != nil {
			t.Fatalf("Derive failed: %v", err)
		}
		if *first != *second {
			t.Errorf("Two derivations of the same brand differ:\n%+v\n%+v", first, second)
		}
	})

	t.Run("mixed input normalizes both ways", func(t *testing.T) {
		b, err := Derive("  Acme Cloud v2! ")
		if err != nil {
			t.Fatalf("Derive failed: %v", err)
		}
		if b.Slug != "acme-cloud-v2" {
			t.Errorf("Expected slug=acme-cloud-v2, got %s", b.Slug)
		}
		if b.EnvPrefix != "ACME_CLOUD_V2" {
			t.Errorf("Expected env_prefix=ACME_CLOUD_V2, got %s", b.EnvPrefix)
		}
	})

	t.Run("runtime tokens interpolate the slug", func(t *testing.T) {
		b, err := Derive("acme")
		if err != nil {
			t.Fatalf("Derive failed: %v", err)
		}
		checks := map[string]string{
			"home_dir":         b.Paths.HomeDir,
			"secret_id":        b.RootCA.SecretID,
			"cni_name":         b.Runtime.CNIName,
			"cni_dir":          b.Runtime.CNIDir,
			"resolv_conf_path": b.Runtime.ResolvConfPath,
			"created_by_value": b.Runtime.LabelCreatedByValue,
		}
		expected := map[string]string{
			"home_dir":         ".acme",
			"secret_id":        "acme_root_ca",
			"cni_name":         "acme-net",
			"cni_dir":          "/run/acme/cni",
			"resolv_conf_path": "/run/containerd/acme/resolv.conf",
			"created_by_value": "acme-agent",
		}
		for name, got := range checks {
			if got != expected[name] {
				t.Errorf("%s: expected %q, got %q", name, expected[name], got)
			}
		}
		if b.Runtime.CgroupLeaf != "runtime-node" {
			t.Errorf("Expected cgroup_leaf=runtime-node, got %s", b.Runtime.CgroupLeaf)
		}
		if b.RootCA.CertFilename != "rootCA.crt" {
			t.Errorf("Expected cert_filename=rootCA.crt, got %s", b.RootCA.CertFilename)
		}
	})

	t.Run("slug derivation is idempotent on its own output", func(t *testing.T) {
		inputs := []string{"Acme Cloud", "a--b", "X_Y.Z", "esb"}
		for _, input := range inputs {
			first, err := normalizeSlug(input)
			if err != nil {
				t.Fatalf("normalizeSlug(%q) failed: %v", input, err)
			}
			second, err := normalizeSlug(first)
			if err != nil {
				t.Fatalf("normalizeSlug(%q) failed: %v", first, err)
			}
			if first != second {
				t.Errorf("slug(%q)=%q but slug(slug)=%q", input, first, second)
			}
		}
	})

	t.Run("invalid brands fail", func(t *testing.T) {
		cases := []struct {
			name  string
			brand string
		}{
			{"empty", ""},
			{"whitespace only", "   "},
			{"punctuation only", "!!!"},
			{"leading digit env prefix", "9lives"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := Derive(tc.brand); err == nil {
					t.Errorf("Expected error for brand %q", tc.brand)
				}
			})
		}
	})

	t.Run("error names the brand problem", func(t *testing.T) {
		_, err := Derive("!!!")
		if err == nil {
			t.Fatal("Expected error")
		}
		bErr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected *Error, got %T", err)
		}
		if bErr.Type != InvalidBrand {
			t.Errorf("Expected InvalidBrand, got %v", bErr.Type)
		}
	})
}
