package check

import (
	"fmt"
	"sort"

	"github.com/longregen/doccheck/internal/domain"
	"github.com/longregen/doccheck/internal/domain/extract"
)

// ConfigPass verifies that every documented TOML section maps to a config
// struct found in code. Sections mapped to null are acknowledged special
// cases and always pass.
type ConfigPass struct{}

func (ConfigPass) Category() domain.Category { return domain.CategoryConfig }

func (ConfigPass) Run(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) {
	codeFields := configStructsFromCode(ws, rules, acc, logf)

	// The example file is informational: its sections and keys are surfaced
	// in verbose mode but the comparison is driven by the section map.
	if content, err := ws.ReadFile(rules.ConfigExampleFile); err == nil {
		logf("TOML sections: %v", extract.TOMLSections(content))
	}

	sections := make([]string, 0, len(rules.SectionStructs))
	for s := range rules.SectionStructs {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, section := range sections {
		structName := rules.SectionStructs[section]
		switch {
		case structName == nil:
			acc.Add(domain.CategoryConfig, true,
				fmt.Sprintf("Config section [%s] is a special/legacy section", section))
		case hasStruct(codeFields, *structName):
			acc.Add(domain.CategoryConfig, true,
				fmt.Sprintf("Config section [%s] maps to %s", section, *structName))
		default:
			acc.Add(domain.CategoryConfig, false,
				fmt.Sprintf("Config section [%s] has no matching struct", section))
		}
	}
}

// configStructsFromCode extracts struct fields from the config source file.
// The file is mandatory.
func configStructsFromCode(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) map[string][]string {
	content, err := ws.ReadFile(rules.ConfigSourceFile)
	if err != nil {
		acc.AddResult(domain.ValidationResult{
			Category: domain.CategoryConfig,
			Passed:   false,
			Message:  fmt.Sprintf("Config file not found: %s", rules.ConfigSourceFile),
			File:     rules.ConfigSourceFile,
		})
		return nil
	}

	fields := extract.StructFields(content)
	for name, f := range fields {
		logf("Config struct %s: %v", name, f)
	}
	return fields
}

func hasStruct(fields map[string][]string, name string) bool {
	_, ok := fields[name]
	return ok
}
