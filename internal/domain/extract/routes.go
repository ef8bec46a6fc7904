// Package extract pulls declared facts out of raw source and documentation
// text with a small fixed set of patterns per category. Extraction is
// deliberately shallow: it matches literals, never grammar, so it tolerates
// partially structured input at the cost of precision.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

// routeCallRe matches the first string literal of a routing-registration
// call, e.g. `.route("/metrics", get(metrics))`.
var routeCallRe = regexp.MustCompile(`\.route\("([^"]+)"`)

// Doc routes appear in curl examples, bare URLs, and backtick spans.
var routeDocRes = []*regexp.Regexp{
	regexp.MustCompile(`localhost:\d+(/[a-zA-Z0-9/_-]+)`),
	regexp.MustCompile(`http://[^/]+(/[a-zA-Z0-9/_-]+)`),
	regexp.MustCompile("`(/[a-zA-Z0-9/_-]+)`"),
}

// paramSegmentRe matches a braced path-parameter segment like /{pid}.
var paramSegmentRe = regexp.MustCompile(`/\{[^}]+\}`)

// RoutesFromSource returns the sorted unique routes registered in a routing
// source file.
func RoutesFromSource(content string) []string {
	set := make(map[string]bool)
	for _, m := range routeCallRe.FindAllStringSubmatch(content, -1) {
		set[m[1]] = true
	}
	return sortedKeys(set)
}

// RoutesFromDocs returns the sorted unique routes mentioned in documentation
// text. Query strings, fragments, and the bare root path are discarded.
func RoutesFromDocs(content string) []string {
	set := make(map[string]bool)
	for _, re := range routeDocRes {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			route := stripSuffixes(m[1])
			if route != "" && route != "/" {
				set[route] = true
			}
		}
	}
	return sortedKeys(set)
}

// NormalizeRoute canonicalizes a route for comparison: query and fragment
// suffixes are stripped and every parameter segment collapses to /{id}.
// Idempotent.
func NormalizeRoute(route string) string {
	return paramSegmentRe.ReplaceAllString(stripSuffixes(route), "/{id}")
}

// RoutePrefix returns the literal prefix of a route up to its first
// parameter, used for sub-path matching. A documented route that extends a
// code route past its parameter is accepted; routes that merely share a
// string prefix (e.g. /api/jobs vs /api/jobscheduler) also match, a known
// precision limit of prefix matching.
func RoutePrefix(route string) string {
	if i := strings.Index(route, "{"); i >= 0 {
		return route[:i]
	}
	return route
}

func stripSuffixes(route string) string {
	if i := strings.Index(route, "?"); i >= 0 {
		route = route[:i]
	}
	if i := strings.Index(route, "#"); i >= 0 {
		route = route[:i]
	}
	return route
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
