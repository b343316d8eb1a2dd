package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	tests := []struct {
		name     string
		commit   string
		date     string
		contains []string
		absent   string
	}{
		{"dev build", "unknown", "unknown", []string{"wallhue version 1.2.3 ("}, "commit:"},
		{"release build", "0123456789abcdef", "2025-01-02T03:04:05Z", []string{"commit: 01234567,", "built: 2025-01-02T03:04:05Z"}, "89abcdef"},
		{"short commit", "abc", "2025-01-02T03:04:05Z", []string{"commit: abc,"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = "1.2.3", tt.commit, tt.date
			got := String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("String() = %q, want it to contain %q", got, want)
				}
			}
			if tt.absent != "" && strings.Contains(got, tt.absent) {
				t.Errorf("String() = %q, should not contain %q", got, tt.absent)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "0.9.0"
	if got := UserAgent(); got != "wallhue/0.9.0" {
		t.Errorf("UserAgent() = %q", got)
	}
}
