package extract

import (
	"regexp"
	"strings"
)

// structRe captures a pub struct whose name carries the Config suffix,
// together with its body. Nested braces are not handled; config structs in
// practice hold flat field lists.
var structRe = regexp.MustCompile(`(?s)pub struct (\w+Config)\s*\{([^}]+)\}`)

// fieldRe captures a public field declaration inside a struct body.
var fieldRe = regexp.MustCompile(`pub\s+(\w+):`)

// StructFields returns, for each *Config struct in the source, its ordered
// public field names.
func StructFields(content string) map[string][]string {
	fields := make(map[string][]string)
	for _, m := range structRe.FindAllStringSubmatch(content, -1) {
		name, body := m[1], m[2]
		var names []string
		for _, f := range fieldRe.FindAllStringSubmatch(body, -1) {
			names = append(names, f[1])
		}
		fields[name] = names
	}
	return fields
}

// TOMLSections returns section name to key names from a TOML-style example
// file. This is a line walk, not a TOML parser: comments are skipped, a
// bracketed line opens a section, and any `key = value` line records the key
// under the current section. Keys before the first section header land under
// "root".
func TOMLSections(content string) map[string][]string {
	sections := make(map[string][]string)
	current := "root"

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			current = line[1 : len(line)-1]
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
		case strings.Contains(line, "=") && !strings.HasPrefix(line, "#"):
			key := strings.TrimSpace(strings.SplitN(line, "=", 2)[0])
			sections[current] = append(sections[current], key)
		}
	}
	return sections
}
