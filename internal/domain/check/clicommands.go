package check

import (
	"fmt"
	"sort"

	"github.com/longregen/doccheck/internal/domain"
	"github.com/longregen/doccheck/internal/domain/extract"
)

// CLIPass verifies that every documented CLI command is declared in the CLI
// entry-point source. The source file is optional: when absent, every
// documented command fails the comparison against the empty set.
type CLIPass struct{}

func (CLIPass) Category() domain.Category { return domain.CategoryCLI }

func (CLIPass) Run(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) {
	var codeCommands []string
	if content, err := ws.ReadFile(rules.CLISourceFile); err == nil {
		codeCommands = extract.CommandsFromSource(content)
	}
	logf("CLI commands in code: %v", codeCommands)

	codeSet := make(map[string]bool, len(codeCommands))
	for _, c := range codeCommands {
		codeSet[c] = true
	}

	docSet := make(map[string]bool)
	for _, doc := range rules.CLIDocFiles {
		content, err := ws.ReadFile(doc)
		if err != nil {
			continue
		}
		for _, c := range extract.CommandsFromDocs(content, rules.CLIBinaryName) {
			docSet[c] = true
		}
	}

	docCommands := make([]string, 0, len(docSet))
	for c := range docSet {
		docCommands = append(docCommands, c)
	}
	sort.Strings(docCommands)
	logf("CLI commands in docs: %v", docCommands)

	for _, cmd := range docCommands {
		if codeSet[cmd] {
			acc.Add(domain.CategoryCLI, true, fmt.Sprintf("CLI command exists: %s", cmd))
		} else {
			acc.Add(domain.CategoryCLI, false, fmt.Sprintf("Documented CLI command not in code: %s", cmd))
		}
	}
}
