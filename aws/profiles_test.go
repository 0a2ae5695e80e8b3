package aws

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestListProfilesFrom(t *testing.T) {
	path := writeConfig(t, `[default]
region = us-east-1

[profile staging]
region = eu-west-1
sso_start_url = https://example.awsapps.com/start

[profile prod]
region = us-west-2
`)

	profiles, err := ListProfilesFrom(path)
	if err != nil {
		t.Fatalf("ListProfilesFrom: %v", err)
	}

	want := []string{"default", "staging", "prod"}
	if len(profiles) != len(want) {
		t.Fatalf("got %d profiles %v, want %d", len(profiles), profiles, len(want))
	}
	for i, name := range want {
		if profiles[i] != name {
			t.Errorf("profiles[%d] = %q, want %q", i, profiles[i], name)
		}
	}
}

func TestListProfilesFromMissingFile(t *testing.T) {
	profiles, err := ListProfilesFrom(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("got %v, want empty", profiles)
	}
}

func TestListProfilesFromNoProfiles(t *testing.T) {
	path := writeConfig(t, "# nothing here\n")
	profiles, err := ListProfilesFrom(path)
	if err != nil {
		t.Fatalf("ListProfilesFrom: %v", err)
	}
	if len(profiles) != 0 {
		t.Errorf("got %v, want empty", profiles)
	}
}

func TestInstanceStable(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{"running", true},
		{"stopped", true},
		{"terminated", true},
		{"pending", false},
		{"stopping", false},
		{"shutting-down", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := (Instance{State: tt.state}).Stable(); got != tt.want {
			t.Errorf("Stable(%q) = %v, want %v", tt.state, got, tt.want)
		}
	}
}
