package cli

import (
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	tests := []struct {
		name string
		xdg  string
		home string
		want string
	}{
		{"xdg set", "/tmp/xdg-cache", "/home/u", filepath.Join("/tmp/xdg-cache", appName)},
		{"home fallback", "", "/home/u", filepath.Join("/home/u", ".cache", appName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			t.Setenv("HOME", tt.home)

			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
