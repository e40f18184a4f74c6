package version

import "testing"

func TestIsRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{name: "tagged", version: "v1.2.0", want: true},
		{name: "tagged without prefix", version: "1.2.0", want: true},
		{name: "devel", version: "devel", want: false},
		{name: "unknown", version: "unknown", want: false},
		{name: "empty", version: "", want: false},
		{name: "dirty", version: "v1.2.0+dirty", want: false},
		{name: "pseudo version", version: "v0.0.0-0.20260101000000-abcdef123456", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRelease(tt.version); got != tt.want {
				t.Errorf("IsRelease(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	if Get() == "" {
		t.Error("Get() returned empty version")
	}
}
