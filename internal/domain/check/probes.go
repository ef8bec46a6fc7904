package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/longregen/doccheck/internal/domain"
	"github.com/longregen/doccheck/internal/domain/extract"
)

// ProbePass verifies that every mandatory process-lifecycle probe appears in
// the probe program source. This category is code-side only: no comparison
// against documentation occurs.
type ProbePass struct{}

func (ProbePass) Category() domain.Category { return domain.CategoryEBPF }

func (ProbePass) Run(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) {
	logf("eBPF probes in code: %v", probeDeclsFromDir(ws, rules))

	programPath := rules.ProbeProgramPath()
	content, err := ws.ReadFile(programPath)
	if err != nil {
		acc.AddResult(domain.ValidationResult{
			Category: domain.CategoryEBPF,
			Passed:   false,
			Message:  "eBPF program source not found",
			File:     programPath,
		})
		return
	}

	for _, probe := range rules.MandatoryProbes {
		if strings.Contains(content, probe) {
			acc.Add(domain.CategoryEBPF, true, fmt.Sprintf("Mandatory probe in code: %s", probe))
		} else {
			acc.Add(domain.CategoryEBPF, false, fmt.Sprintf("Mandatory probe missing: %s", probe))
		}
	}
}

// probeDeclsFromDir collects raw probe declarations across the probe source
// directory for diagnostic output.
func probeDeclsFromDir(ws domain.Workspace, rules domain.RuleSet) []string {
	files, err := ws.DirFiles(rules.ProbeSourceDir, rules.SourceExt)
	if err != nil {
		return nil
	}

	set := make(map[string]bool)
	for _, f := range files {
		content, err := ws.ReadFile(f)
		if err != nil {
			continue
		}
		for _, d := range extract.ProbeDecls(content) {
			set[d] = true
		}
	}

	decls := make([]string, 0, len(set))
	for d := range set {
		decls = append(decls, d)
	}
	sort.Strings(decls)
	return decls
}
