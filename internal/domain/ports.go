package domain

// Workspace provides read access to files under a resolved workspace root.
// All paths are relative to the root; implementations never write.
type Workspace interface {
	// Root returns the absolute resolved root directory.
	Root() string
	// Exists reports whether the relative path exists.
	Exists(rel string) bool
	// ReadFile returns the contents of the relative path.
	ReadFile(rel string) (string, error)
	// DirFiles lists files directly inside relDir with the given extension.
	DirFiles(relDir, ext string) ([]string, error)
	// SourceFiles lists all files with the given extension under the root,
	// recursively, skipping directories named in skipDirs.
	SourceFiles(ext string, skipDirs []string) ([]string, error)
}

// WorkspaceResolver resolves a user-supplied path to a Workspace, applying
// the marker-file fallback rules.
type WorkspaceResolver interface {
	Resolve(path string, rules RuleSet) (Workspace, error)
}

// RuleLoader loads the effective rule set for a run.
type RuleLoader interface {
	Load(path string) (RuleSet, error)
}

// GitInfo reports version-control metadata for a workspace.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
