package esbinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields an empty record", func(t *testing.T) {
		rec, err := Load(filepath.Join(t.TempDir(), ".esb-info"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(rec) != 0 {
			t.Errorf("Expected empty record, got %v", rec)
		}
	})

	t.Run("comments and malformed lines are skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".esb-info")
		content := "# header\nESB_BASE_TAG=v1.4.0\nno equals here\nEMPTY=\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		rec, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(rec) != 1 || rec[KeyBaseTag] != "v1.4.0" {
			t.Errorf("Expected only ESB_BASE_TAG=v1.4.0, got %v", rec)
		}
	})
}

func TestHasBase(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want bool
	}{
		{"empty", Record{}, false},
		{"commit only", Record{KeyBaseCommit: "deadbeef"}, true},
		{"tag only", Record{KeyBaseTag: "v1.0.0"}, true},
		{"unrelated key", Record{"OTHER": "x"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasBase(tc.rec); got != tc.want {
				t.Errorf("HasBase(%v)=%v, want %v", tc.rec, got, tc.want)
			}
		})
	}
}

func TestClassifyBase(t *testing.T) {
	cases := []struct {
		name  string
		value string
		key   string
	}{
		{"7 hex chars is a commit", "deadbee", KeyBaseCommit},
		{"40 hex chars is a commit", strings.Repeat("a", 40), KeyBaseCommit},
		{"uppercase hex is a commit", "DEADBEEF", KeyBaseCommit},
		{"6 hex chars is a tag", "deadbe", KeyBaseTag},
		{"41 hex chars is a tag", strings.Repeat("a", 41), KeyBaseTag},
		{"semver tag", "v1.4.0", KeyBaseTag},
		{"non-hex letters", "deadbeefg", KeyBaseTag},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, value := ClassifyBase("  " + tc.value + " ")
			if key != tc.key {
				t.Errorf("ClassifyBase(%q) key=%s, want %s", tc.value, key, tc.key)
			}
			if value != tc.value {
				t.Errorf("ClassifyBase(%q) value=%q, want trimmed input", tc.value, value)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".esb-info")
	if err := Write(path, KeyBaseCommit, "deadbeef"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "# Auto-generated by branding generator. DO NOT EDIT.\n" +
		"# Tracks downstream ESB base commit/tag for patching.\n" +
		"ESB_BASE_COMMIT=deadbeef\n"
	if string(data) != want {
		t.Errorf("Info file content mismatch:\n--- got ---\n%s\n--- want ---\n%s", data, want)
	}

	t.Run("write replaces the whole file", func(t *testing.T) {
		if err := Write(path, KeyBaseTag, "v2.0.0"); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		rec, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if rec[KeyBaseCommit] != "" {
			t.Error("Old commit entry should be gone after rewrite")
		}
		if rec[KeyBaseTag] != "v2.0.0" {
			t.Errorf("Expected ESB_BASE_TAG=v2.0.0, got %v", rec)
		}
	})
}
