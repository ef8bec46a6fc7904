// Package workspace implements domain.WorkspaceResolver and domain.Workspace
// on the local filesystem.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/longregen/doccheck/internal/domain"
)

// Resolver resolves a user-supplied path to a workspace root.
type Resolver struct{}

func New() *Resolver { return &Resolver{} }

// Resolve applies the marker-file fallback rules: if the given root lacks
// the project-manifest marker, try the fallback subdirectory, then the
// parent directory. Resolution never hard-fails on a missing marker; the
// per-file existence checks downstream absorb the consequence.
func (r *Resolver) Resolve(path string, rules domain.RuleSet) (domain.Workspace, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if !fileExists(filepath.Join(abs, rules.MarkerFile)) {
		fallback := filepath.Join(abs, rules.FallbackSubdir)
		parent := filepath.Dir(abs)
		switch {
		case rules.FallbackSubdir != "" && dirExists(fallback):
			abs = fallback
		case fileExists(filepath.Join(parent, rules.MarkerFile)):
			abs = parent
		}
	}

	return &Dir{root: abs}, nil
}

// Dir is a read-only view of a workspace directory.
type Dir struct {
	root string
}

// NewDir returns a workspace rooted at the given directory without any
// marker resolution. Used by tests and the MCP adapter.
func NewDir(root string) *Dir { return &Dir{root: root} }

func (d *Dir) Root() string { return d.root }

func (d *Dir) Exists(rel string) bool {
	return fileExists(filepath.Join(d.root, filepath.FromSlash(rel)))
}

func (d *Dir) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DirFiles lists files directly inside relDir with the given extension, as
// root-relative slash paths.
func (d *Dir) DirFiles(relDir, ext string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(d.root, filepath.FromSlash(relDir)))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		out = append(out, filepath.ToSlash(filepath.Join(relDir, e.Name())))
	}
	return out, nil
}

// SourceFiles walks the workspace recursively and returns every file with
// the given extension as a root-relative slash path. Directories named in
// skipDirs, plus .git, are pruned.
func (d *Dir) SourceFiles(ext string, skipDirs []string) ([]string, error) {
	skip := map[string]bool{".git": true}
	for _, s := range skipDirs {
		skip[strings.TrimSuffix(s, "/")] = true
	}

	var out []string
	err := filepath.WalkDir(d.root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if skip[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ext) {
			rel, _ := filepath.Rel(d.root, path)
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	return out, err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
