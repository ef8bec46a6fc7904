package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/longregen/doccheck/internal/domain"
	"github.com/longregen/doccheck/internal/domain/extract"
)

// RoutePass verifies that every documented API route is registered in the
// routing source file.
type RoutePass struct{}

func (RoutePass) Category() domain.Category { return domain.CategoryAPI }

func (RoutePass) Run(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) {
	codeRoutes := routesFromCode(ws, rules, acc, logf)
	docRoutes := routesFromDocs(ws, rules, logf)

	codeSet := make(map[string]bool, len(codeRoutes))
	normalizedSet := make(map[string]bool, len(codeRoutes))
	for _, r := range codeRoutes {
		codeSet[r] = true
		normalizedSet[extract.NormalizeRoute(r)] = true
	}

	for _, route := range docRoutes {
		// Generic prefixes are acknowledged without a check.
		if containsAny(route, rules.IgnoredRouteSubstrings) {
			continue
		}

		switch {
		case normalizedSet[extract.NormalizeRoute(route)] || codeSet[route]:
			acc.Add(domain.CategoryAPI, true, fmt.Sprintf("Route exists: %s", route))
		case subPathOf(route, codeRoutes) != "":
			acc.Add(domain.CategoryAPI, true,
				fmt.Sprintf("Route exists: %s (sub-path of %s)", route, subPathOf(route, codeRoutes)))
		default:
			acc.Add(domain.CategoryAPI, false, fmt.Sprintf("Documented route not in code: %s", route))
		}
	}
}

// routesFromCode extracts registered routes. The route source file is
// mandatory: its absence is itself a failed check.
func routesFromCode(ws domain.Workspace, rules domain.RuleSet, acc *domain.Accumulator, logf Logf) []string {
	if !ws.Exists(rules.RouteSourceFile) {
		acc.AddResult(domain.ValidationResult{
			Category: domain.CategoryAPI,
			Passed:   false,
			Message:  fmt.Sprintf("API file not found: %s", rules.RouteSourceFile),
			File:     rules.RouteSourceFile,
		})
		return nil
	}

	content, err := ws.ReadFile(rules.RouteSourceFile)
	if err != nil {
		acc.AddResult(domain.ValidationResult{
			Category: domain.CategoryAPI,
			Passed:   false,
			Message:  fmt.Sprintf("API file unreadable: %s", rules.RouteSourceFile),
			File:     rules.RouteSourceFile,
		})
		return nil
	}

	routes := extract.RoutesFromSource(content)
	logf("Found %d routes in code: %v", len(routes), routes)
	return routes
}

func routesFromDocs(ws domain.Workspace, rules domain.RuleSet, logf Logf) []string {
	set := make(map[string]bool)
	for _, doc := range rules.RouteDocFiles {
		content, err := ws.ReadFile(doc)
		if err != nil {
			continue
		}
		for _, r := range extract.RoutesFromDocs(content) {
			set[r] = true
		}
	}

	routes := make([]string, 0, len(set))
	for r := range set {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	logf("Found %d routes in docs: %v", len(routes), routes)
	return routes
}

// subPathOf returns the first code route that the documented route extends,
// or "" when none matches. Matching is a plain prefix test against the code
// route cut at its first parameter.
func subPathOf(route string, codeRoutes []string) string {
	for _, code := range codeRoutes {
		if strings.HasPrefix(route, extract.RoutePrefix(code)) {
			return code
		}
	}
	return ""
}
