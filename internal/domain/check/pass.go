// Package check holds the five validation passes. Each pass bundles the
// extract/normalize/compare steps for one fact category and appends its
// outcomes to the shared accumulator. Passes never return errors: a missing
// mandatory artifact becomes a failed result, and everything else resolves
// to a result or a silent skip.
package check

import (
	"strings"

	"github.com/longregen/doccheck/internal/domain"
)

// Logf receives verbose diagnostic lines. Passes call it with extracted fact
// sets; a no-op implementation disables the output.
type Logf func(format string, args ...any)

// Pass is one validation category.
type Pass interface {
	Category() domain.Category
	Run(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf)
}

// Passes returns the five passes in their fixed execution order.
func Passes() []Pass {
	return []Pass{
		RoutePass{},
		ConfigPass{},
		CLIPass{},
		ProbePass{},
		EnvVarPass{},
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
