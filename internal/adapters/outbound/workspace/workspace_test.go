package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/longregen/doccheck/internal/adapters/outbound/workspace"
	"github.com/longregen/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0644))
}

func TestResolve_MarkerInGivenDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Cargo.toml")

	ws, err := workspace.New().Resolve(dir, domain.DefaultRuleSet())
	require.NoError(t, err)
	assert.Equal(t, dir, ws.Root())
}

func TestResolve_FallbackSubdir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "linnix-opensource"), 0755))

	ws, err := workspace.New().Resolve(dir, domain.DefaultRuleSet())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "linnix-opensource"), ws.Root())
}

func TestResolve_ParentDir(t *testing.T) {
	parent := t.TempDir()
	touch(t, parent, "Cargo.toml")
	child := filepath.Join(parent, "scripts")
	require.NoError(t, os.MkdirAll(child, 0755))

	ws, err := workspace.New().Resolve(child, domain.DefaultRuleSet())
	require.NoError(t, err)
	assert.Equal(t, parent, ws.Root())
}

func TestResolve_NoMarkerAnywhereKeepsGivenDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "empty")
	require.NoError(t, os.MkdirAll(sub, 0755))

	ws, err := workspace.New().Resolve(sub, domain.DefaultRuleSet())
	require.NoError(t, err)
	assert.Equal(t, sub, ws.Root())
}

func TestDir_ExistsAndReadFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "src/main.rs")

	ws := workspace.NewDir(dir)
	assert.True(t, ws.Exists("src/main.rs"))
	assert.False(t, ws.Exists("src/missing.rs"))

	content, err := ws.ReadFile("src/main.rs")
	require.NoError(t, err)
	assert.Equal(t, "content\n", content)

	_, err = ws.ReadFile("src/missing.rs")
	assert.Error(t, err)
}

func TestDir_DirFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ebpf/src/main.rs")
	touch(t, dir, "ebpf/src/lib.rs")
	touch(t, dir, "ebpf/src/notes.md")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ebpf/src/nested"), 0755))

	files, err := workspace.NewDir(dir).DirFiles("ebpf/src", ".rs")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ebpf/src/main.rs", "ebpf/src/lib.rs"}, files)
}

func TestDir_SourceFilesSkipsBuildAndGitDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "cognitod/src/main.rs")
	touch(t, dir, "linnix-cli/src/main.rs")
	touch(t, dir, "target/debug/build/gen.rs")
	touch(t, dir, ".git/objects/fake.rs")
	touch(t, dir, "README.md")

	files, err := workspace.NewDir(dir).SourceFiles(".rs", []string{"target"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cognitod/src/main.rs", "linnix-cli/src/main.rs"}, files)
}
