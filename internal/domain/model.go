package domain

// Category identifies one of the five validation passes.
type Category string

const (
	CategoryAPI    Category = "api"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
	CategoryEBPF   Category = "ebpf"
	CategoryEnvVar Category = "envvar"
)

// Categories lists every category in fixed execution order.
var Categories = []Category{
	CategoryAPI, CategoryConfig, CategoryCLI, CategoryEBPF, CategoryEnvVar,
}

// Label returns the human-readable pass name used in progress output.
func (c Category) Label() string {
	switch c {
	case CategoryAPI:
		return "API Routes"
	case CategoryConfig:
		return "Configuration Fields"
	case CategoryCLI:
		return "CLI Commands"
	case CategoryEBPF:
		return "eBPF Probes"
	case CategoryEnvVar:
		return "Environment Variables"
	default:
		return string(c)
	}
}

// ValidationResult is the outcome of a single check. It is created once by
// the pass that performed the check and never mutated afterwards.
type ValidationResult struct {
	Category Category `json:"category"`
	Passed   bool     `json:"passed"`
	Message  string   `json:"message"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
}

// Accumulator is the append-only ordered collection of results for one
// validator run. It is owned by the validate service and written by the
// passes in strict sequence.
type Accumulator struct {
	results []ValidationResult
}

// Add appends a result without file/line context.
func (a *Accumulator) Add(category Category, passed bool, message string) {
	a.results = append(a.results, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
	})
}

// AddResult appends a fully populated result.
func (a *Accumulator) AddResult(r ValidationResult) {
	a.results = append(a.results, r)
}

// Results returns the recorded results in insertion order.
func (a *Accumulator) Results() []ValidationResult {
	return a.results
}

// Len returns the number of recorded results.
func (a *Accumulator) Len() int { return len(a.results) }

// Report is the final product of a validator run.
type Report struct {
	Workspace  string             `json:"workspace"`
	CommitHash string             `json:"commit_hash,omitempty"`
	Results    []ValidationResult `json:"results"`
}

// CategorySummary holds per-category pass/fail counts.
type CategorySummary struct {
	Category Category `json:"category"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
}

// Summaries groups results by category in fixed category order. Categories
// that performed zero checks are omitted.
func (r *Report) Summaries() []CategorySummary {
	counts := make(map[Category]*CategorySummary)
	for _, res := range r.Results {
		s, ok := counts[res.Category]
		if !ok {
			s = &CategorySummary{Category: res.Category}
			counts[res.Category] = s
		}
		if res.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}

	var out []CategorySummary
	for _, c := range Categories {
		if s, ok := counts[c]; ok {
			out = append(out, *s)
		}
	}
	return out
}

// Failures returns every failed result in insertion order.
func (r *Report) Failures() []ValidationResult {
	var out []ValidationResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// PassedCount returns the number of passed results.
func (r *Report) PassedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// FailedCount returns the number of failed results. The process exit code is
// nonzero iff this is nonzero.
func (r *Report) FailedCount() int {
	return len(r.Results) - r.PassedCount()
}
