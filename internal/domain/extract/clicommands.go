package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// variantRe matches an enum variant opening a body or ending with a comma,
// e.g. `Export {` or `Doctor,`.
var variantRe = regexp.MustCompile(`^(\w+)\s*(?:\{|,)`)

// CommandsFromSource returns the sorted normalized CLI commands declared in
// the CLI entry-point source. Two strategies combine: walking the Command
// enum body with a brace-depth counter (not a parser; deeply irregular
// bodies can confuse it), and fixed literal checks for flag-style and
// endpoint-triggered commands.
func CommandsFromSource(content string) []string {
	set := make(map[string]bool)

	inEnum := false
	depth := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "enum Command") {
			inEnum = true
			depth = 0
			continue
		}
		if !inEnum {
			continue
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			inEnum = false
			continue
		}
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "///") ||
			strings.HasPrefix(stripped, "//") ||
			strings.HasPrefix(stripped, "#") {
			continue
		}
		if m := variantRe.FindStringSubmatch(stripped); m != nil {
			cmd := NormalizeCommand(m[1])
			if cmd != "command" {
				set[cmd] = true
			}
		}
	}

	// Flag-style commands: the presence of these literals implies the
	// associated behavior exists even without an enum variant.
	if strings.Contains(content, "stats: bool") || strings.Contains(content, "--stats") {
		set["stats"] = true
	}
	if strings.Contains(content, "alerts: bool") || strings.Contains(content, "--alerts") {
		set["alerts"] = true
	}
	// Default behavior is SSE streaming.
	if strings.Contains(content, "connect_sse") && strings.Contains(content, "/stream") {
		set["stream"] = true
	}
	if strings.Contains(content, "/metrics") {
		set["metrics"] = true
	}

	return sortedKeys(set)
}

// CommandsFromDocs returns the sorted normalized commands documented as
// `<binary> <command>` invocations.
func CommandsFromDocs(content, binary string) []string {
	re := regexp.MustCompile(regexp.QuoteMeta(binary) + `\s+(\w+)`)
	set := make(map[string]bool)
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		set[NormalizeCommand(m[1])] = true
	}
	return sortedKeys(set)
}

// NormalizeCommand folds a command identifier to a comparable token: the
// name is split on CamelCase word boundaries, non-alphanumerics are dropped,
// and the result is lower-cased. Idempotent.
func NormalizeCommand(name string) string {
	var b strings.Builder
	for _, word := range camelcase.Split(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToLower(r))
			}
		}
	}
	return b.String()
}
