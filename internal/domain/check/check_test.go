package check_test

import (
	"os"
	"path"
	"sort"
	"strings"
	"testing"

	"github.com/longregen/doccheck/internal/domain"
	"github.com/longregen/doccheck/internal/domain/check"
)

// fakeWorkspace implements domain.Workspace over an in-memory file map
// keyed by root-relative slash paths.
type fakeWorkspace struct {
	files map[string]string
}

func (f fakeWorkspace) Root() string { return "/fake" }

func (f fakeWorkspace) Exists(rel string) bool {
	_, ok := f.files[rel]
	return ok
}

func (f fakeWorkspace) ReadFile(rel string) (string, error) {
	content, ok := f.files[rel]
	if !ok {
		return "", os.ErrNotExist
	}
	return content, nil
}

func (f fakeWorkspace) DirFiles(relDir, ext string) ([]string, error) {
	var out []string
	for p := range f.files {
		if path.Dir(p) == relDir && strings.HasSuffix(p, ext) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f fakeWorkspace) SourceFiles(ext string, skipDirs []string) ([]string, error) {
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = true
	}

	var out []string
	for p := range f.files {
		if !strings.HasSuffix(p, ext) {
			continue
		}
		skipped := false
		for _, seg := range strings.Split(path.Dir(p), "/") {
			if skip[seg] {
				skipped = true
				break
			}
		}
		if !skipped {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func noLog(string, ...any) {}

func runPass(t *testing.T, p check.Pass, ws domain.Workspace, rules domain.RuleSet) []domain.ValidationResult {
	t.Helper()
	acc := &domain.Accumulator{}
	p.Run(ws, rules, acc, noLog)
	for _, r := range acc.Results() {
		if r.Category != p.Category() {
			t.Fatalf("result %q has category %s, want %s", r.Message, r.Category, p.Category())
		}
	}
	return acc.Results()
}

func failures(results []domain.ValidationResult) []domain.ValidationResult {
	var out []domain.ValidationResult
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
