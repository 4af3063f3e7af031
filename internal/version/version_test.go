package version

import "testing"

func TestBuildInfoString(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{"no hash", BuildInfo{Version: "dev"}, "dev"},
		{"short hash", BuildInfo{Version: "v1.0.0", CommitHash: "abc12"}, "v1.0.0 (abc12)"},
		{"long hash", BuildInfo{Version: "v1.0.0", CommitHash: "0123456789abcdef"}, "v1.0.0 (0123456)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
