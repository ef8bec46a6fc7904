package extract

import "regexp"

// Probe declarations are attribute invocations on probe functions.
var probeAttrRes = []*regexp.Regexp{
	regexp.MustCompile(`#\[tracepoint\([^)]+\)\]`),
	regexp.MustCompile(`#\[kprobe\([^)]+\)\]`),
}

// ProbeDecls returns the sorted unique raw probe declarations found in a
// probe source file.
func ProbeDecls(content string) []string {
	set := make(map[string]bool)
	for _, re := range probeAttrRes {
		for _, m := range re.FindAllString(content, -1) {
			set[m] = true
		}
	}
	return sortedKeys(set)
}
