package check

import (
	"fmt"
	"strings"

	"github.com/longregen/doccheck/internal/domain"
)

// EnvVarPass verifies that every documented environment variable appears as
// a quoted literal somewhere in source. Presence is binary, so extraction
// and comparison collapse into one step. Unreadable files are skipped
// without recording anything.
type EnvVarPass struct{}

func (EnvVarPass) Category() domain.Category { return domain.CategoryEnvVar }

func (EnvVarPass) Run(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) {
	files, err := ws.SourceFiles(rules.SourceExt, rules.BuildDirs)
	if err != nil {
		files = nil
	}
	logf("Scanning %d source files for env vars", len(files))

	for _, v := range rules.EnvVars {
		found := false
		doubleQuoted := `"` + v.Name + `"`
		singleQuoted := `'` + v.Name + `'`
		for _, f := range files {
			content, err := ws.ReadFile(f)
			if err != nil {
				continue
			}
			if strings.Contains(content, doubleQuoted) || strings.Contains(content, singleQuoted) {
				found = true
				break
			}
		}

		if found {
			acc.Add(domain.CategoryEnvVar, true, fmt.Sprintf("Env var used in code: %s", v.Name))
		} else {
			acc.Add(domain.CategoryEnvVar, false, fmt.Sprintf("Documented env var not found in code: %s", v.Name))
		}
	}
}
