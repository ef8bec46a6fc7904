package application

import (
	"fmt"
	"io"

	"github.com/longregen/doccheck/internal/domain"
	"github.com/longregen/doccheck/internal/domain/check"
)

// ValidateService drives the validation pipeline: load rules, resolve the
// workspace, run the five passes in fixed order, and assemble the report.
// Execution is strictly sequential; the accumulator is owned here and
// threaded through the passes explicitly.
type ValidateService struct {
	rules    domain.RuleLoader
	resolver domain.WorkspaceResolver
	git      domain.GitInfo
	out      io.Writer
	verbose  bool
}

// NewValidateService creates a ValidateService. Progress lines and verbose
// diagnostics are written to out.
func NewValidateService(
	rules domain.RuleLoader,
	resolver domain.WorkspaceResolver,
	git domain.GitInfo,
	out io.Writer,
	verbose bool,
) *ValidateService {
	return &ValidateService{
		rules: rules, resolver: resolver, git: git,
		out: out, verbose: verbose,
	}
}

// Validate runs all passes against the workspace at path and returns the
// report. Check failures are recorded in the report, never returned as an
// error; an error means the run itself could not proceed.
func (s *ValidateService) Validate(path string) (*domain.Report, error) {
	rules, err := s.rules.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	ws, err := s.resolver.Resolve(path, rules)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace: %w", err)
	}
	fmt.Fprintf(s.out, "Workspace: %s\n", ws.Root())

	logf := check.Logf(func(string, ...any) {})
	if s.verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(s.out, "  [DEBUG] "+format+"\n", args...)
		}
	}

	acc := &domain.Accumulator{}
	passes := check.Passes()
	for i, p := range passes {
		fmt.Fprintf(s.out, "\n[%d/%d] Validating %s...\n", i+1, len(passes), p.Category().Label())
		p.Run(ws, rules, acc, logf)
	}

	report := &domain.Report{
		Workspace: ws.Root(),
		Results:   acc.Results(),
	}

	if s.git.IsGitRepo(ws.Root()) {
		if hash, err := s.git.CommitHash(ws.Root()); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}
