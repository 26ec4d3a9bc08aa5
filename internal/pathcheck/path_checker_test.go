package pathcheck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/pathcheck/internal/extension"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/grids.hcl", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/main.hcl", []byte(`step "print" "a" {}`), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/work/notes.txt", []byte("notes"), 0o600))
	return fs
}

func TestPathChecker_Check(t *testing.T) {
	t.Parallel()

	fs := newMemFs(t)
	hcl := extension.New(".hcl")

	testCases := []struct {
		name       string
		path       string
		wantErr    error
		wantErrMsg string
	}{
		{name: "Valid file", path: "/work/main.hcl"},
		{
			name:       "Missing file",
			path:       "/work/missing.hcl",
			wantErr:    ErrNotExist,
			wantErrMsg: "'/work/missing.hcl' does not exist.",
		},
		{
			name:       "Directory",
			path:       "/work/grids.hcl",
			wantErr:    ErrNotFile,
			wantErrMsg: "'/work/grids.hcl' is not a file.",
		},
		{
			name:       "Wrong extension",
			path:       "/work/notes.txt",
			wantErr:    ErrWrongExtension,
			wantErrMsg: "The extension of '/work/notes.txt' must be '.hcl'; found '.txt'.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			err := NewPathChecker(tc.path, hcl, WithFs(fs)).Check()

			// --- Assert ---
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			var pathErr *PathError
			require.True(t, errors.As(err, &pathErr))
			require.Equal(t, tc.path, pathErr.Path)
			require.EqualError(t, err, tc.wantErrMsg)
		})
	}
}

func TestPathChecker_Queries(t *testing.T) {
	t.Parallel()

	fs := newMemFs(t)

	file := NewPathChecker("/work/main.hcl", extension.New(".", "hcl"), WithFs(fs))
	assert.True(t, file.Exists())
	assert.True(t, file.IsFile())
	assert.False(t, file.IsDir())
	assert.True(t, file.ExtensionIsCorrect())
	assert.Equal(t, ".hcl", file.Suffix())

	dir := NewPathChecker("/work/grids.hcl", extension.New(".hcl"), WithFs(fs))
	assert.True(t, dir.Exists())
	assert.False(t, dir.IsFile())
	assert.True(t, dir.IsDir())
	assert.True(t, dir.ExtensionIsCorrect(), "extension check does not look at the file kind")
}

func TestPathChecker_DefaultsToOsFs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

	// --- Act ---
	c := NewPathChecker(path, extension.New(".csv"), WithFs(nil))

	// --- Assert ---
	require.NoError(t, c.Check())
}

func TestPathArgChecker_Check(t *testing.T) {
	t.Parallel()

	fs := newMemFs(t)
	hcl := extension.New(".", "hcl")

	testCases := []struct {
		name       string
		path       string
		wantErr    error
		wantErrMsg string
	}{
		{name: "Valid file", path: "/work/main.hcl"},
		{
			name:       "Missing file",
			path:       "/work/missing.hcl",
			wantErr:    ErrNotExist,
			wantErrMsg: "--grid: '/work/missing.hcl' does not exist.",
		},
		{
			name:       "Directory",
			path:       "/work/grids.hcl",
			wantErr:    ErrNotFile,
			wantErrMsg: "--grid: '/work/grids.hcl' is not a file.",
		},
		{
			name:       "Wrong extension",
			path:       "/work/notes.txt",
			wantErr:    ErrWrongExtension,
			wantErrMsg: "--grid: the path must have extension '.hcl'; '/work/notes.txt' has '.txt': has the wrong extension",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := NewPathArgChecker(tc.path, hcl, "--grid", WithFs(fs))
			err := c.Check()

			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			var argErr *ArgError
			require.True(t, errors.As(err, &argErr))
			require.Equal(t, "--grid", argErr.ArgName)
			require.Equal(t, tc.path, argErr.Path)
			require.EqualError(t, err, tc.wantErrMsg)
		})
	}
}

func TestPathArgChecker_IndividualChecks(t *testing.T) {
	t.Parallel()

	fs := newMemFs(t)
	c := NewPathArgChecker("/work/notes.txt", extension.New(".hcl"), "-g", WithFs(fs))

	assert.NoError(t, c.CheckExists())
	assert.NoError(t, c.CheckIsFile())
	assert.ErrorIs(t, c.CheckExtension(), ErrWrongExtension)
	assert.Equal(t, "-g", c.ArgName())
}
