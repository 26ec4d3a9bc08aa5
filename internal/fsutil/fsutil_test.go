package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuffixes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		expected []string
	}{
		{"Single suffix", "config.json", []string{".json"}},
		{"Multiple suffixes", "dir/archive.tar.gz", []string{".tar", ".gz"}},
		{"No suffix", "Makefile", nil},
		{"Dot file", ".bashrc", nil},
		{"Dot file with suffix", ".env.local", []string{".local"}},
		{"Trailing dot", "weird.", nil},
		{"Empty path", "", nil},
		{"Directory in path has dots", "some.dir/file", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Suffixes(tc.path))
		})
	}
}

func TestStatHelpers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/sub", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/data/input.csv", []byte("a,b\n"), 0o600))

	testCases := []struct {
		name       string
		path       string
		wantExists bool
		wantFile   bool
		wantDir    bool
	}{
		{"Regular file", "/data/input.csv", true, true, false},
		{"Directory", "/data/sub", true, false, true},
		{"Missing", "/data/nope.csv", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act & Assert ---
			assert.Equal(t, tc.wantExists, Exists(fs, tc.path))
			assert.Equal(t, tc.wantFile, IsFile(fs, tc.path))
			assert.Equal(t, tc.wantDir, IsDir(fs, tc.path))
		})
	}
}
